// Code generated manually for testing. Update as needed.

// Package mocks provides mock implementations for prompts.
package mocks

import (
	"context"

	"github.com/luxfi/interactive/pkg/session"
	"github.com/stretchr/testify/mock"
)

// Renderer is a mock implementation of session.Renderer
type Renderer struct {
	mock.Mock
}

func (m *Renderer) Ask(ctx context.Context, q session.Question) (any, error) {
	args := m.Called(ctx, q)
	return args.Get(0), args.Error(1)
}

var _ session.Renderer = (*Renderer)(nil)
