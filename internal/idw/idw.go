// Package idw implements inverse-distance-weighted interpolation over the
// scattered points of a coefficient table, in any number of key dimensions.
//
// The distance metric treats all key fields as orthogonal numeric axes
// without normalizing units (an angle in degrees can sit next to a unitless
// area ratio). That matches the tabulated reference data this engine was
// built against and is kept as-is.
package idw

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/hvaceng/ductloss/internal/table"
)

// Defaults for the neighbor count and distance exponent.
const (
	DefaultNeighbors = 8
	DefaultPower     = 2.0
)

// Point is one tabulated sample: a key vector and its coefficient.
type Point struct {
	Key []float64
	C   float64
}

// ErrNoPoints reports interpolation attempted over zero points. Callers are
// expected to validate their tables first; this should not occur in a
// normal calculation.
var ErrNoPoints = errors.New("idw: no points")

// FromTable extracts (key-vector, coefficient) pairs from a table, skipping
// rows with a missing value in any listed field.
func FromTable(t *table.Table, keyFields []string, valueField string) []Point {
	pts := make([]Point, 0, t.Len())
	for _, r := range t.Rows() {
		c, ok := r.Float(valueField)
		if !ok {
			continue
		}
		key := make([]float64, len(keyFields))
		complete := true
		for i, f := range keyFields {
			v, ok := r.Float(f)
			if !ok {
				complete = false
				break
			}
			key[i] = v
		}
		if complete {
			pts = append(pts, Point{Key: key, C: c})
		}
	}
	return pts
}

// Interpolate returns the distance-weighted blend of the k nearest points
// around target. An exact hit returns that point's coefficient directly for
// any k and power. When every point coincides with the target (degenerate
// single-point table), the arithmetic mean is returned.
func Interpolate(points []Point, target []float64, k int, power float64) (float64, error) {
	if len(points) == 0 {
		return 0, ErrNoPoints
	}

	dists := make([]float64, len(points))
	allZero := true
	for i, p := range points {
		if len(p.Key) != len(target) {
			return 0, errors.Errorf("idw: point has %d dims, target has %d", len(p.Key), len(target))
		}
		d := 0.0
		for j, x := range p.Key {
			dx := x - target[j]
			d += dx * dx
		}
		dists[i] = math.Sqrt(d)
		if dists[i] != 0 {
			allZero = false
		}
	}

	if allZero {
		sum := 0.0
		for _, p := range points {
			sum += p.C
		}
		return sum / float64(len(points)), nil
	}
	for i, d := range dists {
		if d == 0 {
			return points[i].C, nil
		}
	}

	if k <= 0 {
		k = DefaultNeighbors
	}
	if k > len(points) {
		k = len(points)
	}
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return dists[idx[a]] < dists[idx[b]] })
	idx = idx[:k]

	wsum, csum := 0.0, 0.0
	for _, i := range idx {
		w := 1.0 / math.Pow(dists[i], power)
		wsum += w
		csum += w * points[i].C
	}
	return csum / wsum, nil
}
