// Package lookup resolves loss coefficients from tabulated data using
// per-field directional rounding against discrete tabulated values.
//
// Two usage modes exist across the fitting cases and are deliberately kept
// as separate operations: narrowing (Resolve, ResolveSequential), where each
// field is matched only within rows surviving earlier fields, and
// independent (ResolveEach), where every field is resolved against the same
// unfiltered table and the caller decides which resolved rows to use.
package lookup

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/hvaceng/ductloss/internal/table"
)

// Policy is the directional rounding rule applied when matching a
// continuous query value against discrete tabulated values.
type Policy int

const (
	// Floor picks the largest tabulated value <= target, falling back to
	// the global minimum when the target is below the whole table.
	Floor Policy = iota
	// Ceil picks the smallest tabulated value >= target, falling back to
	// the global maximum when the target is above the whole table.
	Ceil
	// Nearest picks the tabulated value minimizing |v - target|.
	Nearest
)

func (p Policy) String() string {
	switch p {
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	case Nearest:
		return "nearest"
	}
	return "unknown"
}

// Criterion is one (field, target, policy) triple of a query point.
type Criterion struct {
	Field  string
	Target float64
	Policy Policy
}

// ErrEmptyTable reports a resolution attempted against a table or slice
// that has no rows at all.
var ErrEmptyTable = errors.New("lookup: empty table")

// Resolve narrows the candidate rows criterion by criterion, in listed
// order, and returns the first surviving row under the caller-supplied
// secondary sort order. The order must be given explicitly; ties are never
// broken by incidental insertion order.
func Resolve(t *table.Table, crits []Criterion, order []string) (table.Row, error) {
	if t.Empty() {
		return nil, ErrEmptyTable
	}
	rows := t.Rows()
	for _, c := range crits {
		var err error
		rows, err = narrow(rows, c)
		if err != nil {
			return nil, errors.Wrapf(err, "case %s", t.CaseID())
		}
	}
	return first(rows, order), nil
}

// ResolveEach resolves every criterion against the same unfiltered table
// independently and returns one row per criterion, in criterion order. The
// rows may differ; the caller picks the value(s) it needs (e.g. multiplying
// two independently resolved coefficients).
func ResolveEach(t *table.Table, crits []Criterion, order []string) ([]table.Row, error) {
	if t.Empty() {
		return nil, ErrEmptyTable
	}
	out := make([]table.Row, len(crits))
	for i, c := range crits {
		rows, err := narrow(t.Rows(), c)
		if err != nil {
			return nil, errors.Wrapf(err, "case %s", t.CaseID())
		}
		out[i] = first(rows, order)
	}
	return out, nil
}

// ResolveSequential resolves a table that is logically a decision tree:
// each criterion's match set is guaranteed to be a subset of the previous
// criterion's match set. It is narrowing-mode resolution under a name the
// per-fitting pipelines can reach for when the chaining is the point.
func ResolveSequential(t *table.Table, crits []Criterion, order []string) (table.Row, error) {
	return Resolve(t, crits, order)
}

// Coefficient extracts a numeric field from a resolved row.
func Coefficient(r table.Row, field string) (float64, error) {
	v, ok := r.Float(field)
	if !ok {
		return 0, errors.Errorf("lookup: resolved row has no numeric %q", field)
	}
	return v, nil
}

// narrow keeps the rows whose field equals the value selected by the
// criterion's policy. Rows missing the field never match.
func narrow(rows []table.Row, c Criterion) ([]table.Row, error) {
	vals := distinct(rows, c.Field)
	if len(vals) == 0 {
		return nil, errors.Errorf("no values for field %q; project the table first", c.Field)
	}
	want := pick(vals, c.Target, c.Policy)
	out := rows[:0:0]
	for _, r := range rows {
		if v, ok := r.Float(c.Field); ok && v == want {
			out = append(out, r)
		}
	}
	return out, nil
}

// pick selects one tabulated value for the target under the policy.
// vals must be sorted ascending and non-empty. Floor and ceil fall back to
// the global extreme when no value satisfies the direction; this is the
// documented recovery for out-of-range targets, not a failure.
func pick(vals []float64, target float64, p Policy) float64 {
	switch p {
	case Floor:
		for i := len(vals) - 1; i >= 0; i-- {
			if vals[i] <= target {
				return vals[i]
			}
		}
		return vals[0]
	case Ceil:
		for _, v := range vals {
			if v >= target {
				return v
			}
		}
		return vals[len(vals)-1]
	default: // Nearest
		best := vals[0]
		bestDist := math.Abs(vals[0] - target)
		for _, v := range vals[1:] {
			if d := math.Abs(v - target); d < bestDist {
				best, bestDist = v, d
			}
		}
		return best
	}
}

func distinct(rows []table.Row, field string) []float64 {
	seen := make(map[float64]bool)
	var vals []float64
	for _, r := range rows {
		if v, ok := r.Float(field); ok && !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	return vals
}

// first returns the first row under a stable sort by the order fields,
// ascending, numeric cells before categorical, missing cells last.
func first(rows []table.Row, order []string) table.Row {
	if len(rows) == 1 || len(order) == 0 {
		return rows[0]
	}
	sorted := make([]table.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j], order)
	})
	return sorted[0]
}

func less(a, b table.Row, order []string) bool {
	for _, field := range order {
		av, bv := a[field], b[field]
		ar, br := rank(av), rank(bv)
		if ar != br {
			return ar < br
		}
		switch ar {
		case 0:
			an, _ := av.Float()
			bn, _ := bv.Float()
			if an != bn {
				return an < bn
			}
		case 1:
			as, _ := av.Text()
			bs, _ := bv.Text()
			if as != bs {
				return as < bs
			}
		}
	}
	return false
}

func rank(v table.Value) int {
	if _, ok := v.Float(); ok {
		return 0
	}
	if _, ok := v.Text(); ok {
		return 1
	}
	return 2
}
