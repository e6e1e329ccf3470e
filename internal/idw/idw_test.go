package idw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaceng/ductloss/internal/idw"
	"github.com/hvaceng/ductloss/internal/table"
)

func gridPoints() []idw.Point {
	// A small 2D lattice with a clear gradient.
	return []idw.Point{
		{Key: []float64{0, 0}, C: 1.0},
		{Key: []float64{0, 1}, C: 2.0},
		{Key: []float64{1, 0}, C: 3.0},
		{Key: []float64{1, 1}, C: 4.0},
	}
}

func TestExactHitReturnsTabulatedValue(t *testing.T) {
	pts := gridPoints()

	// An exact key match short-circuits the weighting for any k and power.
	for _, k := range []int{0, 1, 2, 100} {
		for _, power := range []float64{0.5, 2, 50} {
			c, err := idw.Interpolate(pts, []float64{1, 0}, k, power)
			require.NoError(t, err)
			assert.Equal(t, 3.0, c, "k=%d power=%v", k, power)
		}
	}
}

func TestHighPowerSharpensTowardNearest(t *testing.T) {
	pts := gridPoints()

	// Slightly off-grid near (1,1); a large exponent makes the nearest
	// point dominate the blend.
	c, err := idw.Interpolate(pts, []float64{0.9, 0.9}, len(pts), 50)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, c, 1e-3)
}

func TestBlendStaysWithinPointRange(t *testing.T) {
	pts := gridPoints()

	c, err := idw.Interpolate(pts, []float64{0.5, 0.5}, len(pts), idw.DefaultPower)
	require.NoError(t, err)
	assert.Greater(t, c, 1.0)
	assert.Less(t, c, 4.0)

	// The center of a symmetric lattice blends to the mean.
	assert.InDelta(t, 2.5, c, 1e-12)
}

func TestNeighborCountIsClamped(t *testing.T) {
	pts := gridPoints()

	// k beyond the point count uses all points; k <= 0 uses the default,
	// which also exceeds this table. Both reduce to the same blend.
	all, err := idw.Interpolate(pts, []float64{0.2, 0.7}, 100, idw.DefaultPower)
	require.NoError(t, err)
	dflt, err := idw.Interpolate(pts, []float64{0.2, 0.7}, 0, idw.DefaultPower)
	require.NoError(t, err)
	assert.Equal(t, all, dflt)
}

func TestKOneIsNearestNeighbor(t *testing.T) {
	pts := gridPoints()

	c, err := idw.Interpolate(pts, []float64{0.1, 0.8}, 1, idw.DefaultPower)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c)
}

func TestAllPointsCoincidentReturnsMean(t *testing.T) {
	pts := []idw.Point{
		{Key: []float64{2, 2}, C: 1.0},
		{Key: []float64{2, 2}, C: 3.0},
	}
	c, err := idw.Interpolate(pts, []float64{2, 2}, 0, idw.DefaultPower)
	require.NoError(t, err)
	assert.Equal(t, 2.0, c)
}

func TestNoPoints(t *testing.T) {
	_, err := idw.Interpolate(nil, []float64{0}, 0, idw.DefaultPower)
	assert.ErrorIs(t, err, idw.ErrNoPoints)
}

func TestDimensionMismatch(t *testing.T) {
	pts := gridPoints()
	_, err := idw.Interpolate(pts, []float64{1}, 0, idw.DefaultPower)
	assert.Error(t, err)
}

func TestFromTableSkipsIncompleteRows(t *testing.T) {
	tbl := table.New("T", []table.Row{
		{"x": table.Num(1), "y": table.Num(2), "C": table.Num(10)},
		{"x": table.Num(3), "C": table.Num(20)},       // y missing
		{"x": table.Num(5), "y": table.Num(6)},        // C missing
		{"x": table.Num(7), "y": table.Text("n/a"), "C": table.Num(30)},
	})

	pts := idw.FromTable(tbl, []string{"x", "y"}, "C")
	require.Len(t, pts, 1)
	assert.Equal(t, []float64{1, 2}, pts[0].Key)
	assert.Equal(t, 10.0, pts[0].C)
}

func TestInterpolator1DGrid(t *testing.T) {
	tbl := table.New("A15C", []table.Row{
		{"h/D": table.Num(0.1), "C": table.Num(2.50)},
		{"h/D": table.Num(0.5), "C": table.Num(1.28)},
		{"h/D": table.Num(1.0), "C": table.Num(1.00)},
	})

	interp, err := idw.New1D(tbl, "h/D", "C")
	require.NoError(t, err)

	lo, hi := interp.Domain()
	assert.Equal(t, 0.1, lo)
	assert.Equal(t, 1.0, hi)

	xs, cs := interp.Grid(10)
	require.Len(t, xs, 10)
	require.Len(t, cs, 10)
	assert.Equal(t, lo, xs[0])
	assert.InDelta(t, hi, xs[len(xs)-1], 1e-9)

	// Grid endpoints sit on tabulated keys.
	assert.Equal(t, 2.50, cs[0])
	assert.InDelta(t, 1.00, cs[len(cs)-1], 1e-6)
}

func TestInterpolator2DGrid(t *testing.T) {
	rows := []table.Row{
		{"a": table.Num(0), "b": table.Num(0), "C": table.Num(1)},
		{"a": table.Num(0), "b": table.Num(2), "C": table.Num(2)},
		{"a": table.Num(4), "b": table.Num(0), "C": table.Num(3)},
		{"a": table.Num(4), "b": table.Num(2), "C": table.Num(4)},
	}
	interp, err := idw.New2D(table.New("T", rows), "a", "b", "C")
	require.NoError(t, err)

	xs, ys, cs := interp.Grid(3, 5)
	require.Len(t, xs, 3)
	require.Len(t, ys, 5)
	require.Len(t, cs, 5) // row-major: cs[iy][ix]
	for _, row := range cs {
		require.Len(t, row, 3)
	}

	// The lattice corners reproduce the tabulated coefficients.
	assert.Equal(t, 1.0, cs[0][0])
	assert.Equal(t, 3.0, cs[0][2])
	assert.Equal(t, 2.0, cs[4][0])
	assert.Equal(t, 4.0, cs[4][2])
}
