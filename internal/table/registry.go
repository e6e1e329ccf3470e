package table

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrNotFound is the cause returned when the backing source has no data for
// a case identifier.
var ErrNotFound = errors.New("table not found")

// Source yields the ordered row collection for a case identifier. The
// storage format behind it is not part of this package's contract.
type Source interface {
	Load(caseID string) ([]Row, error)
}

// StaticSource serves tables from an in-memory map. It is the backing store
// for the built-in reference data and for test stubs.
type StaticSource map[string][]Row

func (s StaticSource) Load(caseID string) ([]Row, error) {
	rows, ok := s[caseID]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "case %q", caseID)
	}
	return rows, nil
}

// Registry caches loaded tables for the process lifetime. A table is loaded
// on first reference to its case identifier and is read-only afterwards, so
// concurrent calculation requests can share it without further locking.
type Registry struct {
	src Source

	mu    sync.Mutex
	cache map[string]*Table
}

// NewRegistry builds a registry over the given source.
func NewRegistry(src Source) *Registry {
	return &Registry{src: src, cache: make(map[string]*Table)}
}

// Table returns the cached table for caseID, loading it from the source on
// first use. Load failures are not cached; a later call retries.
func (r *Registry) Table(caseID string) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.cache[caseID]; ok {
		return t, nil
	}
	rows, err := r.src.Load(caseID)
	if err != nil {
		return nil, errors.Wrapf(err, "load table for %s", caseID)
	}
	t := New(caseID, rows)
	r.cache[caseID] = t
	return t, nil
}
