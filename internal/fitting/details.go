package fitting

import (
	"github.com/pkg/errors"

	"github.com/hvaceng/ductloss/internal/idw"
	"github.com/hvaceng/ductloss/internal/table"
)

// Detail describes how a case's coefficient data is visualized: which table
// and fields feed the smooth interpolation grid shown in the details view.
type Detail struct {
	CaseID      string
	TableID     string
	Filters     map[string]string
	KeyFields   []string
	ValueField  string
	Description string
}

// Dims returns the number of interpolation axes.
func (d Detail) Dims() int { return len(d.KeyFields) }

// Data loads and prepares the table backing the visualization.
func (d Detail) Data(reg *table.Registry) (*table.Table, error) {
	tbl, err := reg.Table(d.TableID)
	if err != nil {
		return nil, err
	}
	if len(d.Filters) > 0 {
		tbl = tbl.Slice(d.Filters)
	}
	fields := append(append([]string{}, d.KeyFields...), d.ValueField)
	return tbl.Project(fields...), nil
}

// Profile builds the 1D interpolator for a one-axis detail.
func (d Detail) Profile(reg *table.Registry) (*idw.Interpolator1D, error) {
	if d.Dims() != 1 {
		return nil, errors.Errorf("case %s has %d key fields, not 1", d.CaseID, d.Dims())
	}
	tbl, err := d.Data(reg)
	if err != nil {
		return nil, err
	}
	return idw.New1D(tbl, d.KeyFields[0], d.ValueField)
}

// Surface builds the 2D interpolator for a two-axis detail.
func (d Detail) Surface(reg *table.Registry) (*idw.Interpolator2D, error) {
	if d.Dims() != 2 {
		return nil, errors.Errorf("case %s has %d key fields, not 2", d.CaseID, d.Dims())
	}
	tbl, err := d.Data(reg)
	if err != nil {
		return nil, err
	}
	return idw.New2D(tbl, d.KeyFields[0], d.KeyFields[1], d.ValueField)
}

var details = map[string]Detail{
	"A15C": {
		CaseID:      "A15C",
		TableID:     "A15C",
		KeyFields:   []string{"h/D"},
		ValueField:  "C",
		Description: "Exit: segmental opening in round duct (h/D → C)",
	},
	"A13C": {
		CaseID:      "A13C",
		TableID:     "A13C",
		KeyFields:   []string{"ANGLE", "As/A"},
		ValueField:  "C",
		Description: "Rectangular conical exit (ANGLE, As/A → C)",
	},
	"A8G": {
		CaseID:      "A8G",
		TableID:     "A8G",
		KeyFields:   []string{"ANGLE", "A1/A"},
		ValueField:  "C",
		Description: "Asymmetric transition at fan (ANGLE, A1/A → C)",
	},
	"A11U": {
		CaseID:      "A11U",
		TableID:     "A11U",
		Filters:     map[string]string{"PATH": "branch"},
		KeyFields:   []string{"Vb/Vc"},
		ValueField:  "C",
		Description: "Diverging tee branch (Vb/Vc → C)",
	},
}

// DetailFor returns the visualization config for a case, if it has one.
func DetailFor(caseID string) (Detail, bool) {
	d, ok := details[caseID]
	return d, ok
}
