package fitting

import (
	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

func init() {
	register(&pipeline.Case{
		ID:          "A15C",
		Description: "Exit, segmental opening in round duct",
		Shape:       pipeline.SinglePath,
		Required:    []string{"entry_1", "entry_2", "entry_3"},
		Labels:      standardLabels,
		Run:         runA15C,
	})
}

func runA15C(cx *pipeline.Context) error {
	d, _ := cx.Inputs.Float("entry_1") // duct diameter (in)
	h, _ := cx.Inputs.Float("entry_2") // segment height (in)
	q, _ := cx.Inputs.Float("entry_3") // flow rate (cfm)

	v := airflow.Velocity(q, airflow.SquareFeet(airflow.CircleArea(d)))

	tbl, err := cx.Table("A15C")
	if err != nil {
		return err
	}
	row, err := lookup.Resolve(tbl.Project("h/D", "C"),
		[]lookup.Criterion{{Field: "h/D", Target: h / d, Policy: lookup.Floor}},
		[]string{"h/D"})
	if err != nil {
		return err
	}
	c, err := lookup.Coefficient(row, "C")
	if err != nil {
		return err
	}

	setStandard(cx.Result, v, airflow.VelocityPressure(v), c)
	return nil
}
