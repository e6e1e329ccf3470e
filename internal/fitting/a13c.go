package fitting

import (
	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/correction"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

func init() {
	register(&pipeline.Case{
		ID:          "A13C",
		Description: "Rectangular conical exit, with or without wall",
		Shape:       pipeline.SinglePath,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4", "entry_5"},
		Labels:      standardLabels,
		Run:         runA13C,
	})
}

func runA13C(cx *pipeline.Context) error {
	h, _ := cx.Inputs.Float("entry_1")     // height (in)
	hs, _ := cx.Inputs.Float("entry_2")    // exit height (in)
	w, _ := cx.Inputs.Float("entry_3")     // width (in)
	angle, _ := cx.Inputs.Float("entry_4") // cone angle (deg)
	q, _ := cx.Inputs.Float("entry_5")     // flow rate (cfm)

	a := airflow.RectArea(h, w)
	as := airflow.RectArea(hs, w)
	ratio := 1.0
	if a != 0 {
		ratio = as / a
	}
	v := airflow.Velocity(q, airflow.SquareFeet(a))

	// The table is a decision tree: match the angle first, then the area
	// ratio within the matched angle's rows. Small cone angles round the
	// ratio down; larger ones take the closest tabulated value.
	ratioPolicy := lookup.Nearest
	if angle <= 20 {
		ratioPolicy = lookup.Floor
	}

	tbl, err := cx.Table("A13C")
	if err != nil {
		return err
	}
	row, err := lookup.ResolveSequential(tbl.Project("ANGLE", "As/A", "C"),
		[]lookup.Criterion{
			{Field: "ANGLE", Target: angle, Policy: lookup.Ceil},
			{Field: "As/A", Target: ratio, Policy: ratioPolicy},
		},
		[]string{"ANGLE", "As/A"})
	if err != nil {
		return err
	}
	base, err := lookup.Coefficient(row, "C")
	if err != nil {
		return err
	}

	c := base
	obstruction, _ := cx.Inputs.Text("entry_6")
	if n, hasN := cx.Inputs.Float("entry_7"); obstruction == "screen" && hasN {
		aux, err := screenCoefficient(cx, n)
		if err != nil {
			return err
		}
		c = correction.Compose(base, correction.Correction{
			Aux:       aux,
			Rule:      correction.AdditiveScaled,
			AreaRatio: ratio,
		})
	}

	setStandard(cx.Result, v, airflow.VelocityPressure(v), c)
	return nil
}
