// SPDX-License-Identifier: MIT
package yamlite

import (
	"context"
	"fmt"
	"io"

	"gitlab.com/fisherprime/yamlite/lexer"
)

// Decode lexes a document from a reader & parses it.
//
// Errors from the reader or the context are returned as is (wrapped); parsing errors are only
// reported when the strict option is set.
func Decode(ctx context.Context, r io.Reader, opts ...Option) (n Node, err error) {
	cfg := newConfig(opts...)

	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	default:
		l := lexer.New(lexer.WithSource(r), lexer.WithLogger(cfg.Logger), lexer.WithDebug(cfg.Debug))

		var items []lexer.Item
		if items, err = l.Items(ctx); err != nil {
			err = fmt.Errorf("lexing document: %w", err)
			return
		}

		return parseItems(items, cfg)
	}
}
