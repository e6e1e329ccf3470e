package fitting

import (
	"github.com/hvaceng/ductloss/internal/airflow"
	"github.com/hvaceng/ductloss/internal/lookup"
	"github.com/hvaceng/ductloss/internal/pipeline"
)

func init() {
	register(&pipeline.Case{
		ID:          "A10F",
		Description: "Converging tee, rectangular main with half-area branch",
		Shape:       pipeline.BranchMain,
		Required:    []string{"entry_1", "entry_2", "entry_3", "entry_4"},
		Labels:      branchMainLabels,
		Run:         runA10F,
	})
}

func runA10F(cx *pipeline.Context) error {
	h, _ := cx.Inputs.Float("entry_1")  // main height (in)
	w, _ := cx.Inputs.Float("entry_2")  // main width (in)
	qs, _ := cx.Inputs.Float("entry_3") // source flow Qs (cfm)
	qb, _ := cx.Inputs.Float("entry_4") // branch flow Qb (cfm)

	areaMain := airflow.SquareFeet(airflow.RectArea(h, w))
	areaBranch := areaMain / 2

	qc := qs + qb
	vs := airflow.Velocity(qs, areaMain)
	vc := airflow.Velocity(qc, areaMain)
	vb := airflow.Velocity(qb, areaBranch)

	qbqc := qb / qc
	qbqs := qb / qs
	if qbqs < 0.4 {
		return pipeline.Domainf(
			"Qb/Qs must be at least 0.4; increase branch flow rate (Qb) or decrease source flow rate (Qs)")
	}

	// Branch: Vc and Qb/Qc resolve against the same unfiltered branch
	// slice independently; the coefficient is keyed by the flow-fraction
	// match.
	branchTbl, err := cx.Table("A10F")
	if err != nil {
		return err
	}
	branch := branchTbl.Slice(map[string]string{"PATH": "branch"}).Project("Vc", "Qb/Qc", "C")
	branchRows, err := lookup.ResolveEach(branch,
		[]lookup.Criterion{
			{Field: "Vc", Target: vc, Policy: lookup.Floor},
			{Field: "Qb/Qc", Target: qbqc, Policy: lookup.Ceil},
		},
		[]string{"Vc", "Qb/Qc"})
	if err != nil {
		return err
	}
	cBranch, err := lookup.Coefficient(branchRows[1], "C")
	if err != nil {
		return err
	}

	// Main: fixed area ratios for this fitting, Qb/Qs keys the
	// coefficient. All three criteria resolve independently.
	mainTbl, err := cx.Table("A10M")
	if err != nil {
		return err
	}
	main := mainTbl.Slice(map[string]string{"PATH": "main"}).Project("As/Ac", "Ab/Ac", "Qb/Qs", "C")
	mainRows, err := lookup.ResolveEach(main,
		[]lookup.Criterion{
			{Field: "As/Ac", Target: 1.0, Policy: lookup.Nearest},
			{Field: "Ab/Ac", Target: 0.5, Policy: lookup.Ceil},
			{Field: "Qb/Qs", Target: qbqs, Policy: lookup.Floor},
		},
		[]string{"Qb/Qs"})
	if err != nil {
		return err
	}
	cMain, err := lookup.Coefficient(mainRows[2], "C")
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
