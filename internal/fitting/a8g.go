package fitting

import (
	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/idw"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

// Labels specific to A8G, which reports both coefficient estimates.
const (
	LabelLossCoefficientTable        = "Loss Coefficient (table)"
	LabelLossCoefficientInterpolated = "Loss Coefficient (interpolated)"
)

func init() {
	register(&pipeline.Case{
		ID:          "A8G",
		Description: "Asymmetric transition at fan, sides straight, top level",
		Shape:       pipeline.SinglePath,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4", "entry_5"},
		Labels: []string{
			LabelVelocity,
			LabelVelocityPressure,
			LabelLossCoefficientTable,
			LabelLossCoefficientInterpolated,
			LabelPressureLoss,
		},
		Run: runA8G,
	})
}

func runA8G(cx *pipeline.Context) error {
	h, _ := cx.Inputs.Float("entry_1")     // inlet height (in)
	h1, _ := cx.Inputs.Float("entry_2")    // outlet height (in)
	w, _ := cx.Inputs.Float("entry_3")     // width (in)
	angle, _ := cx.Inputs.Float("entry_4") // transition angle (deg)
	q, _ := cx.Inputs.Float("entry_5")     // flow rate (cfm)

	a := airflow.SquareFeet(airflow.RectArea(h, w))
	a1 := airflow.SquareFeet(airflow.RectArea(h1, w))
	if a <= 0 || a1 <= 0 {
		return pipeline.Domainf("computed area <= 0; check inputs")
	}
	ratio := a1 / a
	v := airflow.Velocity(q, a)
	vp := airflow.VelocityPressure(v)

	tbl, err := cx.Table("A8G")
	if err != nil {
		return err
	}
	proj := tbl.Project("ANGLE", "A1/A", "C")

	row, err := lookup.ResolveSequential(proj,
		[]lookup.Criterion{
			{Field: "ANGLE", Target: angle, Policy: lookup.Ceil},
			{Field: "A1/A", Target: ratio, Policy: lookup.Ceil},
		},
		[]string{"ANGLE", "A1/A"})
	if err != nil {
		return err
	}
	cTable, err := lookup.Coefficient(row, "C")
	if err != nil {
		return err
	}

	// Rounding to the tabulated grid is visibly discontinuous at the table
	// boundaries for this fitting. The interpolated coefficient drives the
	// reported loss; the discrete match is kept alongside for comparison.
	pts := idw.FromTable(proj, []string{"ANGLE", "A1/A"}, "C")
	cSmooth, err := idw.Interpolate(pts, []float64{angle, ratio}, idw.DefaultNeighbors, idw.DefaultPower)
	if err != nil {
		return err
	}

	res := cx.Result
	res.Set(LabelVelocity, v)
	res.Set(LabelVelocityPressure, vp)
	res.Set(LabelLossCoefficientTable, cTable)
	res.Set(LabelLossCoefficientInterpolated, cSmooth)
	res.Set(LabelPressureLoss, cSmooth*vp)
	return nil
}
