package guardrail

import "runtime"

// Size thresholds for warnings.
const (
	DefaultMaxFileBytes  int64 = 5 << 20
	DefaultMaxTotalBytes int64 = 50 << 20
)

// DefaultExemptPrefixes are class prefixes styled by third-party
// highlighting rather than by the output's own stylesheets.
var DefaultExemptPrefixes = []string{"hl-", "language-"}

type options struct {
	maxFileBytes   int64
	maxTotalBytes  int64
	workers        int
	exemptPrefixes []string
}

func defaultOptions() options {
	return options{
		maxFileBytes:   DefaultMaxFileBytes,
		maxTotalBytes:  DefaultMaxTotalBytes,
		workers:        runtime.GOMAXPROCS(0),
		exemptPrefixes: DefaultExemptPrefixes,
	}
}

// Option configures Validate.
type Option func(*options)

// WithMaxFileBytes sets the per-file warning threshold. Values <= 0 are ignored.
func WithMaxFileBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFileBytes = n
		}
	}
}

// WithMaxTotalBytes sets the aggregate warning threshold. Values <= 0 are ignored.
func WithMaxTotalBytes(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTotalBytes = n
		}
	}
}

// WithWorkers bounds the number of files checked concurrently.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithExemptPrefixes replaces the class prefixes skipped by the class check.
func WithExemptPrefixes(prefixes ...string) Option {
	return func(o *options) {
		o.exemptPrefixes = append([]string(nil), prefixes...)
	}
}
