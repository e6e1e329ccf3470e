package fitting

import (
	"github.com/pkg/errors"

	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

func init() {
	register(&pipeline.Case{
		ID:          "A11U",
		Description: "Diverging tee, circular branch off rectangular main",
		Shape:       pipeline.BranchMain,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4", "entry_5"},
		Labels:      branchMainLabels,
		Run:         runA11U,
	})
}

func runA11U(cx *pipeline.Context) error {
	wMain, _ := cx.Inputs.Float("entry_1")   // main width (in)
	hMain, _ := cx.Inputs.Float("entry_2")   // main height (in)
	dBranch, _ := cx.Inputs.Float("entry_3") // branch diameter (in)
	qc, _ := cx.Inputs.Float("entry_4")      // upstream flow Qc (cfm)
	qb, _ := cx.Inputs.Float("entry_5")      // branch flow Qb (cfm)

	// Recommended-but-not-fatal geometry limit.
	if dBranch >= wMain-2 {
		cx.Result.Warning = "Branch diameter should be at least 2 inches smaller than main width."
	}

	areaMain := airflow.SquareFeet(airflow.RectArea(wMain, hMain))
	areaBranch := airflow.SquareFeet(airflow.CircleArea(dBranch))

	vc := airflow.Velocity(qc, areaMain)
	vb := airflow.Velocity(qb, areaBranch)
	vs := airflow.Velocity(qc-qb, areaMain)

	branchTbl, err := cx.Table("A11U")
	if err != nil {
		return err
	}
	branch := branchTbl.Slice(map[string]string{"PATH": "branch"}).Project("Vb/Vc", "C")
	if branch.Empty() {
		return errors.New("no branch data found for A11U")
	}
	branchRow, err := lookup.Resolve(branch,
		[]lookup.Criterion{{Field: "Vb/Vc", Target: vb / vc, Policy: lookup.Nearest}},
		[]string{"Vb/Vc"})
	if err != nil {
		return err
	}
	cBranch, err := lookup.Coefficient(branchRow, "C")
	if err != nil {
		return err
	}

	// The main path borrows the shared tee/wye main table, narrowed to its
	// named variant first.
	mainTbl, err := cx.Table("A11A")
	if err != nil {
		return err
	}
	main := mainTbl.
		Slice(map[string]string{"PATH": "main", "NAME": "Tee or Wye, Main"}).
		Project("Vs/Vc", "C")
	if main.Empty() {
		return errors.New("no main data found for A11A (Tee or Wye, Main)")
	}
	mainRow, err := lookup.Resolve(main,
		[]lookup.Criterion{{Field: "Vs/Vc", Target: vs / vc, Policy: lookup.Nearest}},
		[]string{"Vs/Vc"})
	if err != nil {
		return err
	}
	cMain, err := lookup.Coefficient(mainRow, "C")
	if err != nil {
		return err
	}

	pvb := airflow.VelocityPressure(vb)
	pvs := airflow.VelocityPressure(vs)
	pvc := airflow.VelocityPressure(vc)

	res := cx.Result
	res.Set(LabelBranchVelocity, vb)
	res.Set(LabelBranchVelocityPressure, pvb)
	res.Set(LabelBranchLossCoefficient, cBranch)
	res.Set(LabelBranchPressureLoss, cBranch*pvb)
	res.Set(LabelMainSourceVelocity, vs)
	res.Set(LabelMainConvergedVelocity, vc)
	res.Set(LabelMainSourceVelocityPressure, pvs)
	res.Set(LabelMainConvergedVelocityPressure, pvc)
	res.Set(LabelMainLossCoefficient, cMain)
	res.Set(LabelMainPressureLoss, cMain*pvs)
	return nil
}
