// Package fitting holds the per-fitting calculation cases, each
// declaratively configured over the generic table, lookup, idw, and
// correction machinery: table id(s), query fields with rounding policies,
// ratio-derivation arithmetic, and correction rules.
package fitting

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/hvaceng/ductloss/internal/pipeline"
	"github.com/hvaceng/ductloss/internal/table"
)

// Result labels shared by the single-path cases.
const (
	LabelVelocity         = "Velocity (ft/min)"
	LabelVelocityPressure = "Velocity Pressure (in w.c.)"
	LabelLossCoefficient  = "Loss Coefficient"
	LabelPressureLoss     = "Pressure Loss (in w.c.)"
)

// Result labels shared by the branch-main cases.
const (
	LabelBranchVelocity         = "Branch Velocity (ft/min)"
	LabelBranchVelocityPressure = "Branch Velocity Pressure (in w.c.)"
	LabelBranchLossCoefficient  = "Branch Loss Coefficient"
	LabelBranchPressureLoss     = "Branch Pressure Loss (in w.c.)"

	LabelMainSourceVelocity            = "Main, Source Velocity (ft/min)"
	LabelMainConvergedVelocity         = "Main, Converged Velocity (ft/min)"
	LabelMainSourceVelocityPressure    = "Main, Source Velocity Pressure (in w.c.)"
	LabelMainConvergedVelocityPressure = "Main, Converged Velocity Pressure (in w.c.)"
	LabelMainLossCoefficient           = "Main Loss Coefficient"
	LabelMainPressureLoss              = "Main Pressure Loss (in w.c.)"
)

var standardLabels = []string{
	LabelVelocity,
	LabelVelocityPressure,
	LabelLossCoefficient,
	LabelPressureLoss,
}

var branchMainLabels = []string{
	LabelBranchVelocity,
	LabelBranchVelocityPressure,
	LabelBranchLossCoefficient,
	LabelBranchPressureLoss,
	LabelMainSourceVelocity,
	LabelMainConvergedVelocity,
	LabelMainSourceVelocityPressure,
	LabelMainConvergedVelocityPressure,
	LabelMainLossCoefficient,
	LabelMainPressureLoss,
}

// setStandard fills the single-path label group from a velocity, its
// velocity pressure, and the total loss coefficient.
func setStandard(res *pipeline.Result, v, vp, c float64) {
	res.Set(LabelVelocity, v)
	res.Set(LabelVelocityPressure, vp)
	res.Set(LabelLossCoefficient, c)
	res.Set(LabelPressureLoss, c*vp)
}

var cases = make(map[string]*pipeline.Case)

func register(c *pipeline.Case) {
	if _, dup := cases[c.ID]; dup {
		panic("fitting: duplicate case " + c.ID)
	}
	cases[c.ID] = c
}

// Lookup returns the case registered under id.
func Lookup(id string) (*pipeline.Case, bool) {
	c, ok := cases[id]
	return c, ok
}

// IDs returns all registered case identifiers, sorted.
func IDs() []string {
	ids := make([]string, 0, len(cases))
	for id := range cases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Calculate runs one registered case against the given inputs.
func Calculate(reg *table.Registry, id string, in pipeline.Inputs) (*pipeline.Result, error) {
	c, ok := cases[id]
	if !ok {
		return nil, errors.Errorf("fitting: unknown case %q", id)
	}
	return c.Calculate(reg, in), nil
}
