// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package interactive

import (
	"context"

	"github.com/luxfi/interactive/pkg/resolve"
	"golang.org/x/sync/errgroup"
)

// Pending is the deferred outcome of Builder.Interactive.
type Pending struct {
	group *errgroup.Group
	done  chan struct{}
	cfg   resolve.Config
}

func start(ctx context.Context, fn func(context.Context) (resolve.Config, error)) *Pending {
	group, gctx := errgroup.WithContext(ctx)
	p := &Pending{
		group: group,
		done:  make(chan struct{}),
	}
	group.Go(func() error {
		defer close(p.done)
		cfg, err := fn(gctx)
		if err != nil {
			return err
		}
		p.cfg = cfg
		return nil
	})
	return p
}

// Wait blocks until the resolution finishes. It may be called any number
// of times and always returns the same outcome.
func (p *Pending) Wait() (resolve.Config, error) {
	if err := p.group.Wait(); err != nil {
		return resolve.Config{}, err
	}
	return p.cfg, nil
}

// Done is closed once the resolution has finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}
