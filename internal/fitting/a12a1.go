package fitting

import (
	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/correction"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

// Thin-plate limit for orifice-style fittings: at or below this t/D the
// base coefficient is replaced by the unit term.
const thinPlateLimit = 0.05

func init() {
	register(&pipeline.Case{
		ID:          "A12A1",
		Description: "Duct-mounted orifice, optional screen or perforated plate",
		Shape:       pipeline.SinglePath,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4"},
		Labels:      standardLabels,
		Run:         runA12A1,
	})
}

func runA12A1(cx *pipeline.Context) error {
	t, _ := cx.Inputs.Float("entry_1") // orifice thickness (in)
	l, _ := cx.Inputs.Float("entry_2") // length (in)
	d, _ := cx.Inputs.Float("entry_3") // diameter (in)
	q, _ := cx.Inputs.Float("entry_4") // flow rate (cfm)

	v := airflow.Velocity(q, airflow.SquareFeet(airflow.CircleArea(d)))
	tD := t / d
	lD := l / d

	tbl, err := cx.Table("A12A1")
	if err != nil {
		return err
	}
	row, err := lookup.Resolve(tbl.Project("t/D", "L/D", "C"),
		[]lookup.Criterion{
			{Field: "t/D", Target: tD, Policy: lookup.Floor},
			{Field: "L/D", Target: lD, Policy: lookup.Ceil},
		},
		[]string{"t/D", "L/D"})
	if err != nil {
		return err
	}
	base, err := lookup.Coefficient(row, "C")
	if err != nil {
		return err
	}

	corrs, err := obstructionCorrections(cx, tD)
	if err != nil {
		return err
	}
	c := correction.Compose(base, corrs...)

	setStandard(cx.Result, v, airflow.VelocityPressure(v), c)
	return nil
}

// obstructionCorrections resolves the auxiliary coefficient for a screen or
// perforated plate mounted at the orifice, if one is declared in the inputs.
func obstructionCorrections(cx *pipeline.Context, tD float64) ([]correction.Correction, error) {
	obstruction, _ := cx.Inputs.Text("entry_5")
	n, hasN := cx.Inputs.Float("entry_6")

	switch obstruction {
	case "screen":
		if !hasN {
			return nil, nil
		}
		aux, err := screenCoefficient(cx, n)
		if err != nil {
			return nil, err
		}
		return []correction.Correction{{
			Aux:       aux,
			Rule:      correction.ThresholdSwitch,
			Ratio:     tD,
			Threshold: thinPlateLimit,
		}}, nil

	case "perforated plate":
		plateT, hasT := cx.Inputs.Float("entry_7")
		holeD, hasD := cx.Inputs.Float("entry_8")
		if !hasN || !hasT || !hasD {
			return nil, nil
		}
		tbl, err := cx.Table("A14B1")
		if err != nil {
			return nil, err
		}
		row, err := lookup.ResolveSequential(tbl.Project("n, free area ratio", "t/D", "C"),
			[]lookup.Criterion{
				{Field: "n, free area ratio", Target: n, Policy: lookup.Floor},
				{Field: "t/D", Target: plateT / holeD, Policy: lookup.Floor},
			},
			[]string{"n, free area ratio", "t/D"})
		if err != nil {
			return nil, err
		}
		aux, err := lookup.Coefficient(row, "C")
		if err != nil {
			return nil, err
		}
		return []correction.Correction{{
			Aux:       aux,
			Rule:      correction.ThresholdSwitch,
			Ratio:     tD,
			Threshold: thinPlateLimit,
		}}, nil
	}
	return nil, nil
}

// screenCoefficient resolves the wire-screen auxiliary coefficient by free
// area ratio.
func screenCoefficient(cx *pipeline.Context, n float64) (float64, error) {
	tbl, err := cx.Table("A14A1")
	if err != nil {
		return 0, err
	}
	row, err := lookup.Resolve(tbl.Project("n, free area ratio", "C"),
		[]lookup.Criterion{{Field: "n, free area ratio", Target: n, Policy: lookup.Floor}},
		[]string{"n, free area ratio"})
	if err != nil {
		return 0, err
	}
	return lookup.Coefficient(row, "C")
}
