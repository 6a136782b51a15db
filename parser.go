// SPDX-License-Identifier: MIT
package yamlite

import (
	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/yamlite/lexer"
)

// parser pairs a list of Items with the recursive descent cursor.
type parser struct {
	cfg   *Config
	items []lexer.Item
	pos   int

	// err holds the first dropped construct, only populated when strict.
	err *SyntaxError
}

// Parse converts a list of Tokens into a document tree.
//
// Any Token sequence is accepted; malformed arrangements yield a nil Node, an empty or a partially
// populated container.
func Parse(tokens []lexer.Token) Node {
	items := make([]lexer.Item, len(tokens))
	for index := range tokens {
		items[index].Token = tokens[index]
	}

	root, _ := parseItems(items, DefConfig())

	return root
}

// ParseDocument tokenizes & parses a document.
func ParseDocument(text string) Node { return Parse(lexer.Tokenize(text)) }

// ParseStrict parses a document, reporting the first construct dropped by the parser.
//
// The returned Node is the best-effort tree ParseDocument would produce; the error is a
// *SyntaxError wrapping one of the package's parsing errors, or ErrEmptyDocument.
func ParseStrict(text string, opts ...Option) (Node, error) {
	cfg := newConfig(opts...)
	cfg.Strict = true

	return parseItems(lexer.Scan(text), cfg)
}

// ParseWith parses a document as configured by opts.
//
// Parsing errors are only returned when the strict option is set.
func ParseWith(text string, opts ...Option) (Node, error) { return parseText(text, newConfig(opts...)) }

// parseText parses a document as configured.
func parseText(text string, cfg *Config) (Node, error) { return parseItems(lexer.Scan(text), cfg) }

func parseItems(items []lexer.Item, cfg *Config) (root Node, err error) {
	p := &parser{cfg: cfg, items: items}
	root = p.parse()

	if cfg.Debug {
		// Skip expensive operation if not debug.
		cfg.Logger.Debugf("items: %s\ntree: %s", spew.Sdump(items), spew.Sdump(root))
	}

	if !cfg.Strict {
		return
	}

	switch {
	case p.err != nil:
		err = p.err
	case root == nil:
		err = ErrEmptyDocument
	}

	return
}

// parse invokes parseNode once for the document root.
//
// A document opening with a key & colon is an implicit block at level 0, parsed as though it were
// preceded by an Indent.
func (p *parser) parse() (root Node) {
	if p.opensBlock() {
		root = p.parseBlock()
	} else {
		root = p.parseNode()
	}

	for ; p.more(); p.pos++ {
		if id := p.items[p.pos].ID; id != lexer.TokenNewline && id != lexer.TokenDedent {
			p.drop(p.items[p.pos], ErrTrailingContent)
			break
		}
	}

	return
}

func (p *parser) parseNode() Node {
	for p.at(lexer.TokenNewline) {
		p.pos++
	}
	if !p.more() {
		return nil
	}

	item := p.items[p.pos]
	p.pos++

	switch item.ID {
	case lexer.TokenScalar:
		return Scalar(item.Val)
	case lexer.TokenDash:
		// Each Dash starts its own Sequence, sibling entries are not merged.
		seq := Sequence{}
		for p.more() && !p.at(lexer.TokenNewline) && !p.at(lexer.TokenDedent) {
			if n := p.parseNode(); n != nil {
				seq = append(seq, n)
			}
		}
		if len(seq) == 0 {
			p.drop(item, ErrEmptySequence)
		}

		return seq
	case lexer.TokenColon:
		// A bare colon forwards to its value.
		n := p.parseNode()
		if n == nil {
			p.drop(item, ErrMissingValue)
		}

		return n
	case lexer.TokenIndent:
		return p.parseBlock()
	case lexer.TokenDedent:
		return nil
	default:
		p.drop(item, ErrUnexpectedToken)
		return nil
	}
}

// parseBlock builds a Mapping up to, excluding, the closing Dedent.
func (p *parser) parseBlock() Mapping {
	m := Mapping{}

	for p.more() && !p.at(lexer.TokenDedent) {
		item := p.items[p.pos]
		p.pos++

		if item.ID == lexer.TokenNewline {
			continue
		}
		if item.ID != lexer.TokenScalar {
			p.drop(item, ErrUnexpectedToken)
			continue
		}

		if !p.at(lexer.TokenColon) {
			p.drop(item, ErrMissingColon)
			continue
		}
		p.pos++

		value := p.parseNode()
		if value == nil {
			p.drop(item, ErrMissingValue)
			continue
		}

		// Later keys overwrite earlier ones.
		m[item.Val] = value
	}

	return m
}

// opensBlock checks for a key & colon at the start of the document.
func (p *parser) opensBlock() bool {
	index := 0
	for index < len(p.items) && p.items[index].ID == lexer.TokenNewline {
		index++
	}

	return index+1 < len(p.items) &&
		p.items[index].ID == lexer.TokenScalar &&
		p.items[index+1].ID == lexer.TokenColon
}

func (p *parser) more() bool { return p.pos < len(p.items) }

func (p *parser) at(id lexer.TokenID) bool { return p.more() && p.items[p.pos].ID == id }

// drop records a construct the parser could not place in the tree.
func (p *parser) drop(item lexer.Item, err error) {
	if p.cfg.Debug {
		p.cfg.Logger.WithField("item", item).Debugf("parser dropped: %v", err)
	}

	if p.cfg.Strict && p.err == nil {
		p.err = &SyntaxError{Err: err, Token: item.Token, Line: item.Line, Col: item.Col}
	}
}
