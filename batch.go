// SPDX-License-Identifier: MIT
package yamlite

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// ParseAll parses independent documents concurrently.
//
// The returned Nodes follow the order of docs. Parsing errors (strict option) are joined & prefixed
// with the document's index; a cancelled context stops the submission of further documents.
func ParseAll(ctx context.Context, docs []string, opts ...Option) (nodes []Node, err error) {
	cfg := newConfig(opts...)

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPool, err)
		return
	}
	defer pool.Release()

	nodes = make([]Node, len(docs))
	errs := make([]error, len(docs))

	var wg sync.WaitGroup
	for index := range docs {
		if err = ctx.Err(); err != nil {
			break
		}

		index := index
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			nodes[index], errs[index] = parseText(docs[index], cfg)
		}); err != nil {
			wg.Done()
			break
		}
	}
	wg.Wait()

	if err != nil {
		return
	}

	for index := range errs {
		if errs[index] != nil {
			errs[index] = fmt.Errorf("document %d: %w", index, errs[index])
		}
	}
	err = errors.Join(errs...)

	if cfg.Debug {
		cfg.Logger.Debugf("parsed %d documents", len(docs))
	}

	return
}
