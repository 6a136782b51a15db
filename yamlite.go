// SPDX-License-Identifier: MIT

// Package yamlite parses an indentation-sensitive YAML subset into a tree of Scalar, Sequence &
// Mapping nodes.
//
// Parsing is best-effort: malformed input degrades to partial or absent output. ParseStrict runs
// the same parser while reporting the first dropped construct as a *SyntaxError.
//
// Multi-document streams, anchors, tags, flow collections, block scalars, quoting, comments & scalar
// type inference are unsupported; scalars are always raw strings.
package yamlite

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// REF: https://yaml.org/spec/1.2.2/#chapter-6-structural-productions

type (
	// Config defines configuration options for the parse operations.
	Config struct {
		// Logger for parser messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// Strict enables diagnostics, see ParseStrict.
		Strict bool

		// PoolSize caps the goroutines used by ParseAll.
		PoolSize int
	}

	// Option defines the Config functional option type.
	Option func(*Config)
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// DefConfig obtains the package's default Config.
func DefConfig() *Config {
	return &Config{
		Logger:   fLogger,
		PoolSize: runtime.GOMAXPROCS(0),
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) { c.Logger = logger }
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithStrict configures the strict option.
func WithStrict(strict bool) Option { return func(c *Config) { c.Strict = strict } }

// WithPoolSize configures the ParseAll pool size option.
func WithPoolSize(size int) Option { return func(c *Config) { c.PoolSize = size } }

func newConfig(opts ...Option) *Config {
	cfg := DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	cfg.Validate()

	return cfg
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = fLogger
	}
	if c.PoolSize < 1 {
		c.PoolSize = runtime.GOMAXPROCS(0)
	}
}
