package table_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hvaceng/ductloss/internal/table"
)

func sampleRows() []table.Row {
	return []table.Row{
		{"PATH": table.Text("branch"), "Vb/Vc": table.Num(0.4), "C": table.Num(1.03)},
		{"PATH": table.Text("branch"), "Vb/Vc": table.Num(0.8), "C": table.Num(0.80)},
		{"PATH": table.Text("main"), "Vs/Vc": table.Num(0.2), "C": table.Num(0.24)},
		{"PATH": table.Text("main"), "Vs/Vc": table.Num(0.6)}, // C missing
	}
}

func TestSliceFiltersCategorically(t *testing.T) {
	tbl := table.New("A11U", sampleRows())

	branch := tbl.Slice(map[string]string{"PATH": "branch"})
	assert.Equal(t, 2, branch.Len())
	for _, r := range branch.Rows() {
		path, ok := r.Text("PATH")
		require.True(t, ok)
		assert.Equal(t, "branch", path)
	}

	// Slicing never mutates the source.
	assert.Equal(t, 4, tbl.Len())
}

func TestSliceToEmptyIsAValidState(t *testing.T) {
	tbl := table.New("A11U", sampleRows())

	none := tbl.Slice(map[string]string{"PATH": "upstream"})
	assert.True(t, none.Empty())
	assert.Equal(t, "A11U", none.CaseID())
}

func TestProjectDropsRowsWithMissingValues(t *testing.T) {
	tbl := table.New("A11U", sampleRows())

	main := tbl.Slice(map[string]string{"PATH": "main"})
	require.Equal(t, 2, main.Len())

	complete := main.Project("Vs/Vc", "C")
	require.Equal(t, 1, complete.Len())
	c, ok := complete.Rows()[0].Float("C")
	require.True(t, ok)
	assert.Equal(t, 0.24, c)
}

func TestDistinctSortsNumericValues(t *testing.T) {
	tbl := table.New("T", []table.Row{
		{"x": table.Num(0.75)},
		{"x": table.Num(0.25)},
		{"x": table.Num(0.75)},
		{"x": table.Text("n/a")},
		{"x": table.Num(0.5)},
	})
	assert.Equal(t, []float64{0.25, 0.5, 0.75}, tbl.Distinct("x"))
}

func TestValueAccessors(t *testing.T) {
	n := table.Num(1.5)
	f, ok := n.Float()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)
	_, ok = n.Text()
	assert.False(t, ok)

	s := table.Text("branch")
	_, ok = s.Float()
	assert.False(t, ok)
	assert.False(t, s.IsMissing())

	var missing table.Value
	assert.True(t, missing.IsMissing())
	assert.Equal(t, "—", missing.String())
}

type countingSource struct {
	loads int
	rows  map[string][]table.Row
}

func (s *countingSource) Load(caseID string) ([]table.Row, error) {
	s.loads++
	rows, ok := s.rows[caseID]
	if !ok {
		return nil, errors.Wrapf(table.ErrNotFound, "case %q", caseID)
	}
	return rows, nil
}

func TestRegistryLoadsOncePerCase(t *testing.T) {
	src := &countingSource{rows: map[string][]table.Row{
		"A15C": {{"h/D": table.Num(0.5), "C": table.Num(1.28)}},
	}}
	reg := table.NewRegistry(src)

	first, err := reg.Table("A15C")
	require.NoError(t, err)
	second, err := reg.Table("A15C")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, src.loads)
}

func TestRegistryNotFound(t *testing.T) {
	reg := table.NewRegistry(&countingSource{})

	_, err := reg.Table("A99Z")
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrNotFound)
}

func TestStaticSourceNotFound(t *testing.T) {
	src := table.StaticSource{}
	_, err := src.Load("missing")
	assert.ErrorIs(t, err, table.ErrNotFound)
}
