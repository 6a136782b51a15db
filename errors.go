// SPDX-License-Identifier: MIT
package yamlite

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/yamlite/lexer"
)

// Parsing errors.
//
// These are only reported by the strict operations, the lenient ones drop the affected data.
var (
	ErrEmptyDocument   = errors.New("empty document")
	ErrEmptySequence   = errors.New("sequence entry lacks a value")
	ErrMissingColon    = errors.New("mapping key lacks a colon")
	ErrMissingValue    = errors.New("key lacks a value")
	ErrUnexpectedToken = errors.New("unexpected token in mapping")
	ErrTrailingContent = errors.New("content after the document root")

	ErrPool = errors.New("failed to create a parse pool")
)

// SyntaxError describes a construct dropped by the parser.
type SyntaxError struct {
	Err   error
	Token lexer.Token
	Line  int
	Col   int
}

// Error is the error interface implementation for SyntaxError.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %v (%s)", e.Line, e.Col, e.Err, e.Token)
}

// Unwrap exposes the underlying sentinel error.
func (e *SyntaxError) Unwrap() error { return e.Err }
