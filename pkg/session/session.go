// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package session runs the prompts selected by the policy evaluator, one at
// a time and in declaration order.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/interactive/pkg/options"
	luxlog "github.com/luxfi/log"
)

// ErrAborted is matched by every PromptAbortedError. Renderers return an
// error wrapping it when the user cancels a prompt.
var ErrAborted = errors.New("prompt aborted")

// ErrNoRenderer is returned when prompts are required but no renderer was
// configured.
var ErrNoRenderer = errors.New("no prompt renderer configured")

// PromptAbortedError reports the option whose prompt was cancelled. No
// answers survive an abort.
type PromptAbortedError struct {
	Option string
	Err    error
}

func (e *PromptAbortedError) Error() string {
	return fmt.Sprintf("prompt for %q aborted: %v", e.Option, e.Err)
}

func (e *PromptAbortedError) Unwrap() error {
	return e.Err
}

func (*PromptAbortedError) Is(target error) bool {
	return target == ErrAborted
}

// Renderer asks the user a single question.
type Renderer interface {
	Ask(ctx context.Context, q Question) (any, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, q Question) (any, error)

func (f RendererFunc) Ask(ctx context.Context, q Question) (any, error) {
	return f(ctx, q)
}

// Answers maps prompted option names to the collected values.
type Answers map[string]any

type Option func(*Runner)

func WithLogger(log luxlog.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// Runner holds no per-run state and can be reused.
type Runner struct {
	renderer Renderer
	log      luxlog.Logger
}

func NewRunner(renderer Renderer, opts ...Option) *Runner {
	r := &Runner{renderer: renderer, log: luxlog.NewNoOpLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prompts for names in order. The first failure stops the session and
// discards every answer collected so far.
func (r *Runner) Run(ctx context.Context, n *options.Normalized, names []string) (Answers, error) {
	answers := make(Answers, len(names))
	if len(names) == 0 {
		return answers, nil
	}
	if r.renderer == nil {
		return nil, ErrNoRenderer
	}
	for _, name := range names {
		e, ok := n.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("prompt requested for undeclared option %q", name)
		}
		if err := ctx.Err(); err != nil {
			r.log.Debug("session cancelled", "option", name, "error", err)
			return nil, &PromptAbortedError{Option: name, Err: err}
		}

		r.log.Debug("prompting", "option", name, "type", string(e.Type))
		v, err := r.renderer.Ask(ctx, NewQuestion(e))
		if err != nil {
			if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				r.log.Debug("prompt aborted", "option", name, "error", err)
				return nil, &PromptAbortedError{Option: name, Err: err}
			}
			return nil, fmt.Errorf("prompt %q: %w", name, err)
		}
		answers[name] = v
	}
	return answers, nil
}
