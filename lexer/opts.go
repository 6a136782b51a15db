// SPDX-License-Identifier: MIT
package lexer

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option defines the Lexer functional option type
type Option func(*Lexer)

const (
	// defBufferSize is the capacity of the Item channel.
	defBufferSize = 10

	// whitespace trimmed from lines, keys & scalars.
	whitespace = " \t\r\v\f"

	dashPrefix = "- "
	colon      = ':'
	space      = ' '
	lineEnd    = '\n'
)

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Lexer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSource configures the source option.
func WithSource(source io.Reader) Option { return func(l *Lexer) { l.source = source } }
