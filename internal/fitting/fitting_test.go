package fitting_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaceng/ductloss/internal/fitting"
	"github.com/hvaceng/ductloss/internal/pipeline"
	"github.com/hvaceng/ductloss/internal/table"
)

func newRegistry() *table.Registry {
	return table.NewRegistry(fitting.BuiltinSource())
}

func num(vals ...float64) pipeline.Inputs {
	in := pipeline.Inputs{}
	keys := []string{"entry_1", "entry_2", "entry_3", "entry_4", "entry_5"}
	for i, v := range vals {
		in[keys[i]] = table.Num(v)
	}
	return in
}

func value(t *testing.T, res *pipeline.Result, label string) float64 {
	t.Helper()
	v, ok := res.Value(label)
	require.True(t, ok, "label %q absent", label)
	return v
}

func TestUnknownCase(t *testing.T) {
	_, err := fitting.Calculate(newRegistry(), "A99Z", num(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A99Z")
}

func TestIDsSortedAndResolvable(t *testing.T) {
	ids := fitting.IDs()
	require.NotEmpty(t, ids)
	assert.True(t, sort.StringsAreSorted(ids))
	for _, id := range ids {
		c, ok := fitting.Lookup(id)
		require.True(t, ok)
		assert.Equal(t, id, c.ID)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Required)
	}
}

func TestMissingInputYieldsAllAbsentResult(t *testing.T) {
	// entry_4 (flow rate) omitted: no lookup runs, nothing is reported.
	res, err := fitting.Calculate(newRegistry(), "A7A", num(12, 1.0, 90))
	require.NoError(t, err)

	assert.False(t, res.Failed())
	for _, label := range res.Labels() {
		assert.True(t, res.Absent(label), "label %q should be absent", label)
	}
}

func TestUnresolvedTableIsUserFacing(t *testing.T) {
	empty := table.NewRegistry(table.StaticSource{})
	res, err := fitting.Calculate(empty, "A15C", num(10, 3.5, 500))
	require.NoError(t, err)

	require.True(t, res.Failed())
	assert.Contains(t, res.Error, "A15C")
}

func TestA7ASmoothElbow(t *testing.T) {
	// 12 in duct, R/D = 1.0, 90° bend, 1000 cfm. The velocity sits in the
	// low-Reynolds regime, so the base 0.22 picks up the 1.15 correction.
	res, err := fitting.Calculate(newRegistry(), "A7A", num(12, 1.0, 90, 1000))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 1273.2395, value(t, res, fitting.LabelVelocity), 1e-3)
	assert.InDelta(t, 0.1010683, value(t, res, fitting.LabelVelocityPressure), 1e-6)
	assert.InDelta(t, 0.253, value(t, res, fitting.LabelLossCoefficient), 1e-9)
	assert.InDelta(t, 0.0255703, value(t, res, fitting.LabelPressureLoss), 1e-6)
}

func TestA15CSegmentalExit(t *testing.T) {
	// h/D = 0.35 rounds down to the 0.3 row.
	res, err := fitting.Calculate(newRegistry(), "A15C", num(10, 3.5, 500))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 916.7325, value(t, res, fitting.LabelVelocity), 1e-3)
	assert.Equal(t, 1.63, value(t, res, fitting.LabelLossCoefficient))
	assert.InDelta(t, 0.0854020, value(t, res, fitting.LabelPressureLoss), 1e-6)
}

func TestA10FConvergingTee(t *testing.T) {
	// 12x12 main, Qs = 1000, Qb = 500: Vc = 1500 floors to the 1000 row,
	// Qb/Qc = 1/3 rounds up to 0.4, Qb/Qs = 0.5 floors to 0.4.
	res, err := fitting.Calculate(newRegistry(), "A10F", num(12, 12, 1000, 500))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 1000, value(t, res, fitting.LabelBranchVelocity), 1e-9)
	assert.Equal(t, 1.20, value(t, res, fitting.LabelBranchLossCoefficient))
	assert.InDelta(t, 0.0748129, value(t, res, fitting.LabelBranchPressureLoss), 1e-6)

	assert.InDelta(t, 1000, value(t, res, fitting.LabelMainSourceVelocity), 1e-9)
	assert.InDelta(t, 1500, value(t, res, fitting.LabelMainConvergedVelocity), 1e-9)
	assert.InDelta(t, 0.1402741, value(t, res, fitting.LabelMainConvergedVelocityPressure), 1e-6)
	assert.Equal(t, 0.22, value(t, res, fitting.LabelMainLossCoefficient))
	assert.InDelta(t, 0.0137157, value(t, res, fitting.LabelMainPressureLoss), 1e-6)
}

func TestA10FDomainViolation(t *testing.T) {
	// Qb/Qs = 0.3 is below the tabulated range: abort with guidance.
	res, err := fitting.Calculate(newRegistry(), "A10F", num(12, 12, 1000, 300))
	require.NoError(t, err)

	require.True(t, res.Failed())
	assert.Contains(t, res.Error, "Qb/Qs must be at least 0.4")
	assert.True(t, res.Absent(fitting.LabelBranchVelocity))
}

func TestA10I1SymmetricalWye(t *testing.T) {
	// 6 in branches at 45°, 400 + 600 cfm: flow fractions 0.4 and 0.6
	// round up to the 0.5 and 0.7 columns.
	res, err := fitting.Calculate(newRegistry(), "A10I1", num(6, 45, 400, 600))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 2037.1833, value(t, res, "Branch 1 Velocity (ft/min)"), 1e-3)
	assert.Equal(t, 0.58, value(t, res, "Branch 1 Loss Coefficient"))
	assert.InDelta(t, 3055.7749, value(t, res, "Branch 2 Velocity (ft/min)"), 1e-3)
	assert.Equal(t, 0.54, value(t, res, "Branch 2 Loss Coefficient"))
	assert.InDelta(t, 2546.4791, value(t, res, fitting.LabelMainConvergedVelocity), 1e-3)
}

func TestA8GExactGridHit(t *testing.T) {
	// 10 -> 20 in at 20°: angle and area ratio both land on tabulated
	// values, so the table and interpolated coefficients agree.
	res, err := fitting.Calculate(newRegistry(), "A8G", num(10, 20, 10, 20, 1000))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 1440, value(t, res, fitting.LabelVelocity), 1e-9)
	assert.Equal(t, 0.10, value(t, res, fitting.LabelLossCoefficientTable))
	assert.Equal(t, 0.10, value(t, res, fitting.LabelLossCoefficientInterpolated))
	assert.InDelta(t, 0.0129277, value(t, res, fitting.LabelPressureLoss), 1e-6)
}

func TestA12A1BareOrifice(t *testing.T) {
	// t/D = 0.04 falls below the table and picks the 0.05 row; L/D = 0.2
	// rounds up to 0.5.
	res, err := fitting.Calculate(newRegistry(), "A12A1", num(0.4, 2, 10, 800))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.Equal(t, 2.4, value(t, res, fitting.LabelLossCoefficient))
}

func TestA12A1ThinPlateScreenReplacesBase(t *testing.T) {
	// Same orifice with a wire screen: t/D = 0.04 is within the thin-plate
	// limit, so the 2.4 base is replaced by 1 + the screen's 0.97.
	in := num(0.4, 2, 10, 800)
	in["entry_5"] = table.Text("screen")
	in["entry_6"] = table.Num(0.6)

	res, err := fitting.Calculate(newRegistry(), "A12A1", in)
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 1.97, value(t, res, fitting.LabelLossCoefficient), 1e-12)
}

func TestA11UDivergingTee(t *testing.T) {
	// 24x12 main with a 10 in branch, 2000 cfm upstream, 500 to the
	// branch: Vb/Vc = 0.917 matches the 1.0 row, Vs/Vc = 0.75 matches 0.8.
	res, err := fitting.Calculate(newRegistry(), "A11U", num(24, 12, 10, 2000, 500))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.Empty(t, res.Warning)
	assert.InDelta(t, 916.7325, value(t, res, fitting.LabelBranchVelocity), 1e-3)
	assert.Equal(t, 0.74, value(t, res, fitting.LabelBranchLossCoefficient))
	assert.InDelta(t, 750, value(t, res, fitting.LabelMainSourceVelocity), 1e-9)
	assert.Equal(t, 0.02, value(t, res, fitting.LabelMainLossCoefficient))
}

func TestA11UGeometryWarning(t *testing.T) {
	// Branch diameter within 2 in of the main width warns but completes.
	res, err := fitting.Calculate(newRegistry(), "A11U", num(12, 12, 10, 2000, 500))
	require.NoError(t, err)

	require.False(t, res.Failed())
	assert.Contains(t, res.Warning, "2 inches smaller")
	assert.False(t, res.Absent(fitting.LabelBranchPressureLoss))
}

func TestA13CConicalExit(t *testing.T) {
	// 12x12 -> 24x12 at 45°: area ratio 2.0 hits the first column of the
	// 45° row.
	res, err := fitting.Calculate(newRegistry(), "A13C", num(12, 24, 12, 45, 1000))
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 1000, value(t, res, fitting.LabelVelocity), 1e-9)
	assert.Equal(t, 1.00, value(t, res, fitting.LabelLossCoefficient))
}

func TestA13CScreenScaledByAreaRatio(t *testing.T) {
	// A screen at the exit adds its coefficient divided by the square of
	// the area ratio: 1.00 + 1.7/4.
	in := num(12, 24, 12, 45, 1000)
	in["entry_6"] = table.Text("screen")
	in["entry_7"] = table.Num(0.5)

	res, err := fitting.Calculate(newRegistry(), "A13C", in)
	require.NoError(t, err)
	require.False(t, res.Failed())

	assert.InDelta(t, 1.425, value(t, res, fitting.LabelLossCoefficient), 1e-12)
}

func TestDetailsCoverRegisteredCases(t *testing.T) {
	for _, id := range []string{"A15C", "A13C", "A8G", "A11U"} {
		d, ok := fitting.DetailFor(id)
		require.True(t, ok, "case %s", id)
		assert.NotEmpty(t, d.Description)
		assert.Contains(t, []int{1, 2}, d.Dims())
	}
}

func TestDetailProfileSpansTable(t *testing.T) {
	d, ok := fitting.DetailFor("A15C")
	require.True(t, ok)
	require.Equal(t, 1, d.Dims())

	interp, err := d.Profile(newRegistry())
	require.NoError(t, err)

	lo, hi := interp.Domain()
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 1.0, hi)
	assert.Equal(t, 2.50, interp.At(0.1))
}
