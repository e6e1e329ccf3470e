// Package pipeline defines the per-fitting calculation contract: raw
// geometry and flow inputs go in, derived areas, velocities, and ratios
// feed the resolvers, and a labeled result with velocity pressures and
// pressure losses comes out.
//
// Error discipline, in order of precedence:
//   - a required raw input absent short-circuits before any table access
//     and yields an all-absent result with no error;
//   - a derived ratio outside a documented physical limit (DomainError)
//     aborts before resolution with an actionable message;
//   - a missing case or auxiliary table surfaces as a user-facing error;
//   - anything else that escapes a case is caught at the pipeline boundary
//     and converted to a generic error carrying the original message.
//
// All failures are scoped to the single invocation; nothing is retried.
package pipeline

import (
	"fmt"

	"github.com/hvaceng/ductloss/internal/table"
)

// Inputs maps positional entry keys to scalar values, already normalized to
// the engine's standard units (inches, cfm).
type Inputs map[string]table.Value

// Float returns a numeric entry, if present.
func (in Inputs) Float(key string) (float64, bool) {
	return in[key].Float()
}

// Text returns a categorical entry, if present.
func (in Inputs) Text(key string) (string, bool) {
	return in[key].Text()
}

// Has reports whether every listed entry has a value.
func (in Inputs) Has(keys ...string) bool {
	for _, k := range keys {
		if in[k].IsMissing() {
			return false
		}
	}
	return true
}

// DomainError marks a derived ratio outside a documented hard physical
// limit for the case.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

// Domainf builds a DomainError.
func Domainf(format string, args ...interface{}) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// Context carries the per-request state into a case's Run function. It is
// created fresh per calculation and discarded after use.
type Context struct {
	Tables *table.Registry
	Inputs Inputs
	Result *Result
}

// Table fetches a case or auxiliary table through the injected registry.
func (cx *Context) Table(caseID string) (*table.Table, error) {
	return cx.Tables.Table(caseID)
}

// Case describes one duct fitting: the raw entries it needs, the labels it
// reports, and the calculation wiring them together.
type Case struct {
	ID          string
	Description string
	Shape       Shape

	// Required lists the entry keys that must be present; any one absent
	// short-circuits the calculation.
	Required []string

	// Labels are the result labels in presentation order.
	Labels []string

	Run func(cx *Context) error
}

// Calculate runs the case against the given inputs. It never panics: any
// failure escaping Run is converted into the result's Error entry.
func (c *Case) Calculate(reg *table.Registry, in Inputs) (res *Result) {
	res = NewResult(c.Shape, c.Labels...)

	if !in.Has(c.Required...) {
		return res
	}

	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Sprintf("%s: unexpected error: %v", c.ID, r)
		}
	}()

	cx := &Context{Tables: reg, Inputs: in, Result: res}
	if err := c.Run(cx); err != nil {
		res.Error = err.Error()
	}
	return res
}
