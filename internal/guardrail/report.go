package guardrail

// Report lists guardrail findings. Each entry is "<relative-file>: <finding>".
// An empty Errors list means the output passed.
type Report struct {
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Passed reports whether no errors were found.
func (r *Report) Passed() bool {
	return r != nil && len(r.Errors) == 0
}

// newReport returns a Report whose lists marshal as [] rather than null.
func newReport() *Report {
	return &Report{Errors: []string{}, Warnings: []string{}}
}
