// SPDX-License-Identifier: MIT
package lexer

// REF: https://gitlab.com/fisherprime/go-ddbms/-/blob/master/internal/v1/lexer.go
// REF: https://docs.python.org/3/reference/lexical_analysis.html#indentation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type (
	// Lexer converts a document into Tokens one line at a time.
	//
	// Leading spaces are resolved into Indent & Dedent Tokens; a Lexer holds the indentation
	// state of a single document & should not be reused.
	Lexer struct {
		debug  bool
		logger logrus.FieldLogger

		// c is a channel for communicating lexed Items.
		c chan Item

		// source is the input source.
		source io.Reader

		// indent is the indentation level of the current block.
		indent int
		// indentStack holds the indentation levels of the enclosing blocks.
		indentStack []int
		// line is the 1-based number of the last line read.
		line int
	}

	// emitFunc receives lexed Items.
	emitFunc func(Item)
)

var defLogger logrus.FieldLogger = logrus.New()

// New creates a new Lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger: defLogger,
		c:      make(chan Item, defBufferSize),
		source: strings.NewReader(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Tokenize converts a document into its Tokens.
//
// The operation always succeeds; an empty document yields an empty list.
func Tokenize(text string) []Token {
	tokens := []Token{}

	lexString(text, func(i Item) { tokens = append(tokens, i.Token) })

	return tokens
}

// Scan converts a document into positioned Items.
func Scan(text string) []Item {
	items := []Item{}

	lexString(text, func(i Item) { items = append(items, i) })

	return items
}

func lexString(text string, emit emitFunc) {
	l := &Lexer{logger: defLogger}

	for text != "" {
		var line string
		line, text, _ = strings.Cut(text, string(lineEnd))
		l.lexLine(line, emit)
	}
	l.flush(emit)
}

// Lex lexes the source, sending Items over the Lexer's channel.
//
// The channel is closed once the source is exhausted; a read error or context cancellation is sent
// as a final Item with Err set.
func (l *Lexer) Lex(ctx context.Context) {
	defer close(l.c)

	emit := func(i Item) {
		select {
		case l.c <- i:
		case <-ctx.Done():
		}
	}

	reader := bufio.NewReader(l.source)
	for {
		select {
		case <-ctx.Done():
			l.emitError(ctx, ctx.Err())
			return
		default:
		}

		line, err := reader.ReadString(lineEnd)
		if line != "" {
			l.lexLine(strings.TrimSuffix(line, string(lineEnd)), emit)
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		l.emitError(ctx, fmt.Errorf("line %d: %w", l.line+1, err))
		return
	}

	l.flush(emit)
}

// Item return a lexed Item from the source.
func (l *Lexer) Item() (i Item, ok bool) {
	i, ok = <-l.c
	return
}

// Items runs Lex & collects its output.
//
// Lex must not be invoked separately when using this operation.
func (l *Lexer) Items(ctx context.Context) (items []Item, err error) {
	go l.Lex(ctx)

	items = []Item{}
	for {
		item, proceed := l.Item()
		if !proceed {
			break
		}
		if item.Err != nil {
			err = item.Err
			return
		}

		items = append(items, item)
	}

	err = ctx.Err()

	return
}

// lexLine converts a single line (without its line ending) into Items.
func (l *Lexer) lexLine(raw string, emit emitFunc) {
	l.line++

	// A tab is not indentation, the count stops at the first non-space.
	level := 0
	for level < len(raw) && raw[level] == space {
		level++
	}

	switch {
	case level > l.indent:
		l.emit(emit, Indent, 1)
		l.indentStack = append(l.indentStack, l.indent)
		l.indent = level
	case level < l.indent:
		for n := len(l.indentStack); n > 0 && l.indentStack[n-1] >= level; n-- {
			l.indentStack = l.indentStack[:n-1]
			l.emit(emit, Dedent, 1)
		}
		l.indent = level
	}

	lead := len(raw) - len(strings.TrimLeft(raw, whitespace))
	trimmed := strings.Trim(raw, whitespace)

	// candidate is the line's trailing scalar, col its 1-based column.
	candidate, col := trimmed, lead+1
	switch index := strings.IndexByte(trimmed, colon); {
	case strings.HasPrefix(trimmed, dashPrefix):
		l.emit(emit, Dash, lead+1)

		rest := trimmed[len(dashPrefix):]
		candidate = strings.TrimLeft(rest, whitespace)
		col = lead + len(dashPrefix) + len(rest) - len(candidate) + 1
	case index > -1:
		// NOTE: Values containing a colon are split at the first one.
		l.emit(emit, Scalar(strings.TrimRight(trimmed[:index], whitespace)), lead+1)
		l.emit(emit, Colon, lead+index+1)

		rest := trimmed[index+1:]
		candidate = strings.TrimLeft(rest, whitespace)
		col = lead + index + 1 + len(rest) - len(candidate) + 1
	}

	if candidate != "" {
		l.emit(emit, Scalar(candidate), col)
	}
	l.emit(emit, Newline, len(raw)+1)
}

// flush closes every open block.
func (l *Lexer) flush(emit emitFunc) {
	for n := len(l.indentStack); n > 0; n-- {
		l.indentStack = l.indentStack[:n-1]
		l.emit(emit, Dedent, 1)
	}
	l.indent = 0
}

// emit positions a Token on the current line & passes it on.
func (l *Lexer) emit(emit emitFunc, t Token, col int) {
	item := Item{Token: t, Line: l.line, Col: col}

	if l.debug {
		// Debug operation makes this operation un-inlinable.
		l.logger.Debug("lexer emit: ", item)
	}

	emit(item)
}

// emitError sends a terminal error Item over the Lexer's channel.
func (l *Lexer) emitError(ctx context.Context, err error) {
	l.logger.WithError(err).Debug("lexer stopped")

	select {
	case l.c <- Item{Err: err, Line: l.line}:
	case <-ctx.Done():
		// The consumer observes the cancellation through the context.
	}
}

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	if i.Err != nil {
		return fmt.Sprintf("error@%d: %v", i.Line, i.Err)
	}

	return fmt.Sprintf("%s@%d:%d", i.Token, i.Line, i.Col)
}
