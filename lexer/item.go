// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// TokenID int holding an identifier for the Token kinds.
	TokenID int

	// Token is a structural unit of a document.
	//
	// Tokens are comparable values; Val is only populated for TokenScalar.
	Token struct {
		Val string  // The value of a scalar Token
		ID  TokenID // The kind of this Token
	}

	// Item type holding a Token & the position it was lexed at.
	Item struct {
		Err error
		Token
		Line int // 1-based line of the Token
		Col  int // 1-based column (in bytes) of the Token
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_            TokenID = iota // Consume 0 to start actual numbering at 1.
	TokenScalar                 // Raw text value.
	TokenDash                   // "- " sequence entry marker.
	TokenColon                  // ':' key-value separator.
	TokenNewline                // End of a line.
	TokenIndent                 // Entry into a deeper indentation block.
	TokenDedent                 // Exit from an indentation block.
)

// Structural tokens.
var (
	Dash    = Token{ID: TokenDash}
	Colon   = Token{ID: TokenColon}
	Newline = Token{ID: TokenNewline}
	Indent  = Token{ID: TokenIndent}
	Dedent  = Token{ID: TokenDedent}
)

var tokenNames = map[TokenID]string{
	TokenScalar:  "Scalar",
	TokenDash:    "Dash",
	TokenColon:   "Colon",
	TokenNewline: "Newline",
	TokenIndent:  "Indent",
	TokenDedent:  "Dedent",
}

// Scalar instantiates a TokenScalar Token.
func Scalar(val string) Token { return Token{ID: TokenScalar, Val: val} }

// String is the fmt.Stringer implementation for TokenID.
func (id TokenID) String() string {
	if name, ok := tokenNames[id]; ok {
		return name
	}

	return fmt.Sprintf("TokenID(%d)", int(id))
}

// String is the fmt.Stringer implementation for Token.
func (t Token) String() string {
	if t.ID == TokenScalar {
		return fmt.Sprintf("Scalar(%q)", t.Val)
	}

	return t.ID.String()
}

// Tokens strips the position information from a list of Items.
func Tokens(items []Item) []Token {
	tokens := make([]Token, len(items))
	for index := range items {
		tokens[index] = items[index].Token
	}

	return tokens
}
