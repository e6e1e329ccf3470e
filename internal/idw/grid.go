package idw

import "github.com/hvaceng/ductloss/internal/table"

// Interpolator1D evaluates a smooth coefficient profile over one key field,
// blending every tabulated point (no neighbor cutoff). It also generates
// evenly spaced grids for visualization, independent of discrete lookup.
type Interpolator1D struct {
	Power  float64
	points []Point
	min    float64
	max    float64
}

// New1D builds a 1D interpolator from a table's key and coefficient fields.
func New1D(t *table.Table, keyField, valueField string) (*Interpolator1D, error) {
	pts := FromTable(t, []string{keyField}, valueField)
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	in := &Interpolator1D{Power: DefaultPower, points: pts, min: pts[0].Key[0], max: pts[0].Key[0]}
	for _, p := range pts {
		if p.Key[0] < in.min {
			in.min = p.Key[0]
		}
		if p.Key[0] > in.max {
			in.max = p.Key[0]
		}
	}
	return in, nil
}

// At evaluates the profile at x.
func (in *Interpolator1D) At(x float64) float64 {
	v, _ := Interpolate(in.points, []float64{x}, len(in.points), in.Power)
	return v
}

// Domain returns the tabulated key range.
func (in *Interpolator1D) Domain() (min, max float64) { return in.min, in.max }

// Points returns the tabulated samples as parallel x and coefficient slices.
func (in *Interpolator1D) Points() (xs, cs []float64) {
	xs = make([]float64, len(in.points))
	cs = make([]float64, len(in.points))
	for i, p := range in.points {
		xs[i], cs[i] = p.Key[0], p.C
	}
	return xs, cs
}

// Grid samples the profile at n evenly spaced key values across the
// tabulated range.
func (in *Interpolator1D) Grid(n int) (xs, cs []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	cs = make([]float64, n)
	step := (in.max - in.min) / float64(n-1)
	for i := 0; i < n; i++ {
		xs[i] = in.min + float64(i)*step
		cs[i] = in.At(xs[i])
	}
	return xs, cs
}

// Interpolator2D evaluates a coefficient surface over two key fields.
type Interpolator2D struct {
	Power  float64
	points []Point
	minX   float64
	maxX   float64
	minY   float64
	maxY   float64
}

// New2D builds a 2D interpolator from a table's two key fields and its
// coefficient field.
func New2D(t *table.Table, xField, yField, valueField string) (*Interpolator2D, error) {
	pts := FromTable(t, []string{xField, yField}, valueField)
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	in := &Interpolator2D{
		Power: DefaultPower, points: pts,
		minX: pts[0].Key[0], maxX: pts[0].Key[0],
		minY: pts[0].Key[1], maxY: pts[0].Key[1],
	}
	for _, p := range pts {
		if p.Key[0] < in.minX {
			in.minX = p.Key[0]
		}
		if p.Key[0] > in.maxX {
			in.maxX = p.Key[0]
		}
		if p.Key[1] < in.minY {
			in.minY = p.Key[1]
		}
		if p.Key[1] > in.maxY {
			in.maxY = p.Key[1]
		}
	}
	return in, nil
}

// At evaluates the surface at (x, y).
func (in *Interpolator2D) At(x, y float64) float64 {
	v, _ := Interpolate(in.points, []float64{x, y}, len(in.points), in.Power)
	return v
}

// Domain returns the tabulated ranges of both key fields.
func (in *Interpolator2D) Domain() (minX, maxX, minY, maxY float64) {
	return in.minX, in.maxX, in.minY, in.maxY
}

// Grid samples the surface on an nx by ny lattice across the tabulated
// ranges. cs is indexed [iy][ix].
func (in *Interpolator2D) Grid(nx, ny int) (xs, ys []float64, cs [][]float64) {
	if nx < 2 {
		nx = 2
	}
	if ny < 2 {
		ny = 2
	}
	xs = make([]float64, nx)
	ys = make([]float64, ny)
	stepX := (in.maxX - in.minX) / float64(nx-1)
	stepY := (in.maxY - in.minY) / float64(ny-1)
	for i := range xs {
		xs[i] = in.minX + float64(i)*stepX
	}
	for j := range ys {
		ys[j] = in.minY + float64(j)*stepY
	}
	cs = make([][]float64, ny)
	for j := range cs {
		cs[j] = make([]float64, nx)
		for i := range cs[j] {
			cs[j][i] = in.At(xs[i], ys[j])
		}
	}
	return xs, ys, cs
}
