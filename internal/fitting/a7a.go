package fitting

import (
	"math"

	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

func init() {
	register(&pipeline.Case{
		ID:          "A7A",
		Description: "Round smooth elbow, with Reynolds number correction",
		Shape:       pipeline.SinglePath,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4"},
		Labels:      standardLabels,
		Run:         runA7A,
	})
}

func runA7A(cx *pipeline.Context) error {
	d, _ := cx.Inputs.Float("entry_1")     // diameter (in)
	rd, _ := cx.Inputs.Float("entry_2")    // bend radius ratio R/D
	angle, _ := cx.Inputs.Float("entry_3") // bend angle (deg)
	q, _ := cx.Inputs.Float("entry_4")     // flow rate (cfm)

	area := airflow.CircleArea(d)
	v := airflow.Velocity(q, airflow.SquareFeet(area))

	tbl, err := cx.Table("A7A")
	if err != nil {
		return err
	}

	// Base C and the angle factor K live in separate column groups of the
	// same sheet; each resolves independently against its own projection.
	baseRow, err := lookup.Resolve(tbl.Project("R/D", "C"),
		[]lookup.Criterion{{Field: "R/D", Target: rd, Policy: lookup.Floor}},
		[]string{"R/D"})
	if err != nil {
		return err
	}
	base, err := lookup.Coefficient(baseRow, "C")
	if err != nil {
		return err
	}

	angleRow, err := lookup.Resolve(tbl.Project("ANGLE", "K"),
		[]lookup.Criterion{{Field: "ANGLE", Target: angle, Policy: lookup.Ceil}},
		[]string{"ANGLE"})
	if err != nil {
		return err
	}
	k, err := lookup.Coefficient(angleRow, "K")
	if err != nil {
		return err
	}

	rncf, err := reynoldsCorrection(cx, d, v, rd)
	if err != nil {
		return err
	}

	c := base * k * rncf
	setStandard(cx.Result, v, airflow.VelocityPressure(v), c)
	return nil
}

// reynoldsCorrection returns the low-velocity correction factor for smooth
// round elbows, or 1 outside the low-velocity regime.
func reynoldsCorrection(cx *pipeline.Context, d, v, rd float64) (float64, error) {
	eqd := 23766.76 * math.Pow(v, -1.000794)
	if v >= 23766.76/eqd {
		return 1, nil
	}

	tbl, err := cx.Table("A7RN")
	if err != nil {
		return 0, err
	}
	re := airflow.ReynoldsNumber(d, v) / 1e4
	row, err := lookup.Resolve(tbl.Project("Re", "R/D", "C"),
		[]lookup.Criterion{
			{Field: "R/D", Target: rd, Policy: lookup.Ceil},
			{Field: "Re", Target: re, Policy: lookup.Floor},
		},
		[]string{"R/D", "Re"})
	if err != nil {
		return 0, err
	}
	return lookup.Coefficient(row, "C")
}
