package fitting

import (
	"fmt"

	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

var a10i1Labels = []string{
	"Branch 1 Velocity (ft/min)",
	"Branch 1 Velocity Pressure (in w.c.)",
	"Branch 1 Loss Coefficient",
	"Branch 1 Pressure Loss (in w.c.)",
	"Branch 2 Velocity (ft/min)",
	"Branch 2 Velocity Pressure (in w.c.)",
	"Branch 2 Loss Coefficient",
	"Branch 2 Pressure Loss (in w.c.)",
	LabelMainConvergedVelocity,
	LabelMainConvergedVelocityPressure,
}

func init() {
	register(&pipeline.Case{
		ID:          "A10I1",
		Description: "Symmetrical round wye, converging",
		Shape:       pipeline.DualBranch,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4"},
		Labels:      a10i1Labels,
		Run:         runA10I1,
	})
}

func runA10I1(cx *pipeline.Context) error {
	d, _ := cx.Inputs.Float("entry_1")     // branch diameter (in)
	theta, _ := cx.Inputs.Float("entry_2") // wye angle (deg)
	q1, _ := cx.Inputs.Float("entry_3")    // branch 1 flow (cfm)
	q2, _ := cx.Inputs.Float("entry_4")    // branch 2 flow (cfm)

	areaBranch := airflow.SquareFeet(airflow.CircleArea(d))
	areaMain := 2 * areaBranch

	qc := q1 + q2
	vc := airflow.Velocity(qc, areaMain)

	tbl, err := cx.Table("A10I1")
	if err != nil {
		return err
	}
	proj := tbl.Project("ANGLE", "Q_1b/Qc or Q_2b/Qc", "C")

	branch := func(qb float64, label int) error {
		row, err := lookup.ResolveSequential(proj,
			[]lookup.Criterion{
				{Field: "ANGLE", Target: theta, Policy: lookup.Ceil},
				{Field: "Q_1b/Qc or Q_2b/Qc", Target: qb / qc, Policy: lookup.Ceil},
			},
			[]string{"ANGLE", "Q_1b/Qc or Q_2b/Qc"})
		if err != nil {
			return err
		}
		c, err := lookup.Coefficient(row, "C")
		if err != nil {
			return err
		}

		vb := airflow.Velocity(qb, areaBranch)
		pvb := airflow.VelocityPressure(vb)
		res := cx.Result
		res.Set(fmt.Sprintf("Branch %d Velocity (ft/min)", label), vb)
		res.Set(fmt.Sprintf("Branch %d Velocity Pressure (in w.c.)", label), pvb)
		res.Set(fmt.Sprintf("Branch %d Loss Coefficient", label), c)
		res.Set(fmt.Sprintf("Branch %d Pressure Loss (in w.c.)", label), c*pvb)
		return nil
	}

	if err := branch(q1, 1); err != nil {
		return err
	}
	if err := branch(q2, 2); err != nil {
		return err
	}

	cx.Result.Set(LabelMainConvergedVelocity, vc)
	cx.Result.Set(LabelMainConvergedVelocityPressure, airflow.VelocityPressure(vc))
	return nil
}
