package unitc

import (
	"go.uber.org/zap"

	"github.com/alnah/go-unitc/internal/logger"
)

// Option configures a Compiler.
type Option func(*Compiler)

// compilerConfig holds settings applied by options.
type compilerConfig struct {
	allowlist     []string
	maxFileBytes  int64
	maxTotalBytes int64
	assetPath     string
	workers       int
	lang          string
}

// WithLogger routes compiler logs to z. The default logger discards everything.
func WithLogger(z *zap.Logger) Option {
	return func(c *Compiler) {
		c.log = logger.FromZap(z)
	}
}

// WithExternalAllowlist sets the URL prefixes the output may reference.
// Nothing external is allowed by default.
func WithExternalAllowlist(prefixes ...string) Option {
	return func(c *Compiler) {
		c.cfg.allowlist = append([]string(nil), prefixes...)
	}
}

// WithSizeBudget sets the per-file and total size warning thresholds.
// Values <= 0 keep the validator defaults.
func WithSizeBudget(maxFileBytes, maxTotalBytes int64) Option {
	return func(c *Compiler) {
		c.cfg.maxFileBytes = maxFileBytes
		c.cfg.maxTotalBytes = maxTotalBytes
	}
}

// WithAssetPath sets a directory whose styles/, scripts/ and templates/
// override the embedded assets. Missing files fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Compiler) {
		c.cfg.assetPath = path
	}
}

// WithWorkers bounds the goroutines used for resource copies and validation.
// Values < 1 use GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Compiler) {
		c.cfg.workers = n
	}
}

// WithLang sets the page's lang attribute (default "en").
func WithLang(lang string) Option {
	return func(c *Compiler) {
		c.cfg.lang = lang
	}
}
