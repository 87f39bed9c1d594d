// internal/form/result.go
//
// Validation outcome: blocking errors and advisory warnings, keyed by the
// HTML-facing field name so the front-end can highlight exact inputs.
// Every field is checked before control flow consults OK(); there is no
// short-circuit inside validation, so the caller always receives the full
// set in one response.

package form

// Result aggregates per-field validation findings.
type Result struct {
	Errors   map[string]string
	Warnings map[string]string
}

// NewResult returns an empty Result ready for accumulation.
func NewResult() *Result {
	return &Result{
		Errors:   map[string]string{},
		Warnings: map[string]string{},
	}
}

// Fail records a blocking error for field.  The first message wins; later
// rules do not overwrite an existing error.
func (r *Result) Fail(field, msg string) {
	if _, ok := r.Errors[field]; !ok {
		r.Errors[field] = msg
	}
}

// Warn records a non-blocking concern for field.
func (r *Result) Warn(field, msg string) {
	if _, ok := r.Warnings[field]; !ok {
		r.Warnings[field] = msg
	}
}

// OK reports whether persistence may proceed.  Warnings never block.
func (r *Result) OK() bool { return len(r.Errors) == 0 }
