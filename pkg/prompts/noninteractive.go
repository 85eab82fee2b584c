// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompts

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxfi/interactive/pkg/session"
)

// ErrNonInteractive is returned when a prompt is attempted in non-interactive mode.
// Commands should catch this error and provide actionable guidance.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// NonInteractivePrompter fails fast on any prompt attempt, naming the flag
// that would have supplied the value.
type NonInteractivePrompter struct{}

// NewNonInteractivePrompter creates a prompter that fails fast on any interaction.
func NewNonInteractivePrompter() *NonInteractivePrompter {
	return &NonInteractivePrompter{}
}

func (*NonInteractivePrompter) Ask(_ context.Context, q session.Question) (any, error) {
	return nil, fmt.Errorf("%w: %s - pass --%s, or run on a TTY with %s unset",
		ErrNonInteractive, q.Message, q.Name, EnvNonInteractive)
}

// Verify NonInteractivePrompter implements session.Renderer at compile time.
var _ session.Renderer = (*NonInteractivePrompter)(nil)
