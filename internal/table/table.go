// Package table provides a typed, filterable view over the tabulated
// loss-coefficient datasets, keyed by fitting case identifier.
//
// Tables are immutable after load. Slice and Project return new read-only
// views; neither mutates its receiver. An empty view is a valid,
// distinguishable state rather than an error.
package table

import (
	"sort"
	"strconv"
)

type kind uint8

const (
	missing kind = iota
	numeric
	categorical
)

// Value is a single table cell: a number, a category label, or missing.
// The zero Value is missing.
type Value struct {
	num  float64
	str  string
	kind kind
}

// Num makes a numeric value.
func Num(v float64) Value { return Value{num: v, kind: numeric} }

// Text makes a categorical value (e.g. a path tag like "branch").
func Text(s string) Value { return Value{str: s, kind: categorical} }

// Float returns the numeric value, if the cell holds one.
func (v Value) Float() (float64, bool) { return v.num, v.kind == numeric }

// Text returns the category label, if the cell holds one.
func (v Value) Text() (string, bool) { return v.str, v.kind == categorical }

// IsMissing reports whether the cell holds no value.
func (v Value) IsMissing() bool { return v.kind == missing }

func (v Value) String() string {
	switch v.kind {
	case numeric:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case categorical:
		return v.str
	}
	return "—"
}

// Row maps field names to cell values. Absent fields read as missing.
type Row map[string]Value

// Float returns the numeric value of a field, if present.
func (r Row) Float(field string) (float64, bool) {
	return r[field].Float()
}

// Text returns the categorical value of a field, if present.
func (r Row) Text(field string) (string, bool) {
	return r[field].Text()
}

// Has reports whether every listed field has a non-missing value.
func (r Row) Has(fields ...string) bool {
	for _, f := range fields {
		if r[f].IsMissing() {
			return false
		}
	}
	return true
}

// Table is an ordered, read-only collection of rows for one case.
type Table struct {
	caseID string
	rows   []Row
}

// New builds a table over the given rows. The rows are not copied; the
// caller must not modify them afterwards.
func New(caseID string, rows []Row) *Table {
	return &Table{caseID: caseID, rows: rows}
}

// CaseID returns the case identifier the table was loaded for.
func (t *Table) CaseID() string { return t.caseID }

// Len returns the row count.
func (t *Table) Len() int { return len(t.rows) }

// Empty reports whether the table holds no rows.
func (t *Table) Empty() bool { return len(t.rows) == 0 }

// Rows returns the backing row slice. Treat it as read-only.
func (t *Table) Rows() []Row { return t.rows }

// Slice returns a view restricted to rows whose categorical fields equal
// every filter value.
func (t *Table) Slice(filters map[string]string) *Table {
	out := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		ok := true
		for field, want := range filters {
			got, isText := r.Text(field)
			if !isText || got != want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return &Table{caseID: t.caseID, rows: out}
}

// Project returns a view keeping only rows with non-missing values in every
// listed field. Rows with gaps are dropped before any matching happens.
func (t *Table) Project(fields ...string) *Table {
	out := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if r.Has(fields...) {
			out = append(out, r)
		}
	}
	return &Table{caseID: t.caseID, rows: out}
}

// Distinct returns the sorted distinct numeric values of a field, skipping
// missing and categorical cells.
func (t *Table) Distinct(field string) []float64 {
	seen := make(map[float64]bool)
	var vals []float64
	for _, r := range t.rows {
		if v, ok := r.Float(field); ok && !seen[v] {
			seen[v] = true
			vals = append(vals, v)
		}
	}
	sort.Float64s(vals)
	return vals
}
