package pipeline

// Shape tags how a case's result labels are grouped for presentation by the
// external collaborator.
type Shape int

const (
	// SinglePath cases report one velocity/coefficient/loss group.
	SinglePath Shape = iota
	// BranchMain cases report a branch group and a source/converged main
	// group.
	BranchMain
	// DualBranch cases report two symmetric branch groups plus the main.
	DualBranch
)

func (s Shape) String() string {
	switch s {
	case SinglePath:
		return "single-path"
	case BranchMain:
		return "branch-main"
	case DualBranch:
		return "dual-branch"
	}
	return "unknown"
}

// Result is the outcome of one calculation: a fixed set of labeled numeric
// outputs, each either present or explicitly absent. A non-empty Error
// supersedes all numeric entries; a Warning accompanies them.
type Result struct {
	Shape   Shape
	Error   string
	Warning string

	order  []string
	values map[string]float64
}

// NewResult builds a result whose labels all start absent.
func NewResult(shape Shape, labels ...string) *Result {
	return &Result{
		Shape:  shape,
		order:  labels,
		values: make(map[string]float64, len(labels)),
	}
}

// Set records a numeric value for a label.
func (r *Result) Set(label string, v float64) {
	if _, known := r.values[label]; !known {
		found := false
		for _, l := range r.order {
			if l == label {
				found = true
				break
			}
		}
		if !found {
			r.order = append(r.order, label)
		}
	}
	r.values[label] = v
}

// Value returns the numeric value for a label, and whether it is present.
func (r *Result) Value(label string) (float64, bool) {
	v, ok := r.values[label]
	return v, ok
}

// Absent reports whether a label carries no value.
func (r *Result) Absent(label string) bool {
	_, ok := r.values[label]
	return !ok
}

// Labels returns the result labels in presentation order.
func (r *Result) Labels() []string { return r.order }

// Failed reports whether the calculation produced a superseding error.
func (r *Result) Failed() bool { return r.Error != "" }
