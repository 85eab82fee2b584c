// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package interactive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/session"
	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func projectSpec() *options.Spec {
	return options.NewSpec().
		Set("directory", options.Option{Type: options.TypeInput, Describe: "Target directory"}.WithDefault(".")).
		Set("projectName", options.Option{Type: options.TypeInput, Describe: "Project name", Prompt: "if-empty"}.WithDefault("custom"))
}

func base(t *testing.T) *Builder {
	return New().
		Args().
		Program("prog").
		Usage("$0 <command> [args]").
		Version("1.2.3").
		Help().
		WithLogger(luxlog.NewNoOpLogger()).
		WithOutput(&bytes.Buffer{})
}

type recorder struct {
	asked   []string
	answers map[string]any
	err     error
}

func (r *recorder) Ask(_ context.Context, q session.Question) (any, error) {
	r.asked = append(r.asked, q.Name)
	if r.err != nil {
		return nil, r.err
	}
	return r.answers[q.Name], nil
}

func TestArgv_ParserOutputOnly(t *testing.T) {
	cfg, err := base(t).Args("build", "--verbose").Argv()
	require.NoError(t, err)

	require.Equal(t, []string{"_", "$0", "help", "version"}, cfg.Keys())
	require.Equal(t, []string{"build"}, cfg.Positionals())
	require.Equal(t, "prog", cfg.Program())
	_, ok := cfg.Lookup(options.KeyInteractive)
	require.False(t, ok)
}

func TestArgv_HelpWritesUsage(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, err := base(t).Args("--help").WithOutput(out).Argv()
	require.NoError(t, err)

	require.True(t, cfg.Help())
	require.Contains(t, out.String(), "prog <command> [args]")
	require.Contains(t, out.String(), "--help")
	require.Contains(t, out.String(), "--version")
}

func TestInteractive_NoSpecNoFlag(t *testing.T) {
	pending, err := base(t).Interactive(context.Background(), nil)
	require.NoError(t, err)

	cfg, err := pending.Wait()
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"_":           []string{},
		"$0":          "prog",
		"help":        false,
		"version":     false,
		"interactive": false,
	}, cfg.Map())
}

func TestInteractive_InvalidSpecIsSynchronous(t *testing.T) {
	spec := options.NewSpec().Set("help", options.Option{})

	pending, err := base(t).Interactive(context.Background(), spec)
	require.ErrorIs(t, err, options.ErrInvalidSpec)
	require.Nil(t, pending)
}

func TestInteractive_MalformedArgument(t *testing.T) {
	spec := options.NewSpec().Set("count", options.Option{Type: options.TypeNumber})

	_, err := base(t).Args("--count=many").Interactive(context.Background(), spec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse arguments")
}

func TestInteractive_ArgumentsWinWithoutPrompting(t *testing.T) {
	r := &recorder{}
	pending, err := base(t).
		Args("--directory=abc", "--projectName=def").
		WithRenderer(r).
		Interactive(context.Background(), projectSpec())
	require.NoError(t, err)

	cfg, err := pending.Wait()
	require.NoError(t, err)
	require.Empty(t, r.asked)
	require.Equal(t, "abc", cfg.Get("directory"))
	require.Equal(t, "def", cfg.Get("projectName"))
	require.False(t, cfg.Interactive())
}

func TestInteractive_PromptsInDeclarationOrder(t *testing.T) {
	r := &recorder{answers: map[string]any{"directory": "src", "projectName": "demo"}}
	pending, err := base(t).
		Args("--interactive").
		WithRenderer(r).
		Interactive(context.Background(), projectSpec())
	require.NoError(t, err)

	cfg, err := pending.Wait()
	require.NoError(t, err)
	require.Equal(t, []string{"directory", "projectName"}, r.asked)
	require.Equal(t, "src", cfg.Get("directory"))
	require.Equal(t, "demo", cfg.Get("projectName"))
	require.True(t, cfg.Interactive())
}

func TestInteractive_SpecDefaultAndExplicitOverride(t *testing.T) {
	spec := projectSpec().Set(options.KeyInteractive, options.Option{}.WithDefault(true))

	r := &recorder{answers: map[string]any{"directory": "src", "projectName": "demo"}}
	pending, err := base(t).WithRenderer(r).Interactive(context.Background(), spec)
	require.NoError(t, err)
	cfg, err := pending.Wait()
	require.NoError(t, err)
	require.Equal(t, []string{"directory", "projectName"}, r.asked)
	require.True(t, cfg.Interactive())

	r = &recorder{}
	pending, err = base(t).Args("--interactive=false").WithRenderer(r).Interactive(context.Background(), spec)
	require.NoError(t, err)
	cfg, err = pending.Wait()
	require.NoError(t, err)
	require.Empty(t, r.asked)
	require.False(t, cfg.Interactive())
	require.Equal(t, ".", cfg.Get("directory"))
}

func TestInteractive_SpecDefaultNumericZero(t *testing.T) {
	spec := projectSpec().Set(options.KeyInteractive, options.Option{}.WithDefault(int32(0)))

	r := &recorder{}
	pending, err := base(t).WithRenderer(r).Interactive(context.Background(), spec)
	require.NoError(t, err)
	cfg, err := pending.Wait()
	require.NoError(t, err)
	require.Empty(t, r.asked)
	require.False(t, cfg.Interactive())
}

func TestInteractive_AbortRejects(t *testing.T) {
	r := &recorder{err: session.ErrAborted}
	pending, err := base(t).Args("-i").WithRenderer(r).Interactive(context.Background(), projectSpec())
	require.NoError(t, err, "prompt failures are reported through Pending")

	_, err = pending.Wait()
	require.ErrorIs(t, err, session.ErrAborted)
	var aborted *session.PromptAbortedError
	require.True(t, errors.As(err, &aborted))
	require.Equal(t, "directory", aborted.Option)
	require.Equal(t, []string{"directory"}, r.asked)
}

func TestInteractive_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &recorder{}
	pending, err := base(t).Args("-i").WithRenderer(r).Interactive(ctx, projectSpec())
	require.NoError(t, err)

	_, err = pending.Wait()
	require.ErrorIs(t, err, session.ErrAborted)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, r.asked)
}

func TestInteractive_HelpAndVersionSkipPrompts(t *testing.T) {
	out := &bytes.Buffer{}
	r := &recorder{}
	pending, err := base(t).
		Args("--interactive", "--version").
		WithOutput(out).
		WithRenderer(r).
		Interactive(context.Background(), projectSpec())
	require.NoError(t, err)

	cfg, err := pending.Wait()
	require.NoError(t, err)
	require.Equal(t, "1.2.3\n", out.String())
	require.Empty(t, r.asked)
	require.True(t, cfg.Version())
}

func TestInteractive_Idempotent(t *testing.T) {
	run := func() []byte {
		pending, err := base(t).Args("--directory=abc", "extra").Interactive(context.Background(), projectSpec())
		require.NoError(t, err)
		cfg, err := pending.Wait()
		require.NoError(t, err)
		b, err := json.Marshal(cfg)
		require.NoError(t, err)
		return b
	}
	require.Equal(t, run(), run())
}

func TestBuilder_SettersDoNotMutate(t *testing.T) {
	b := base(t).Args("one")
	_ = b.Program("other").Args("two")

	cfg, err := b.Argv()
	require.NoError(t, err)
	require.Equal(t, "prog", cfg.Program())
	require.Equal(t, []string{"one"}, cfg.Positionals())
}

func TestPending_WaitIsRepeatable(t *testing.T) {
	pending, err := base(t).Interactive(context.Background(), projectSpec())
	require.NoError(t, err)

	first, err := pending.Wait()
	require.NoError(t, err)
	<-pending.Done()
	second, err := pending.Wait()
	require.NoError(t, err)
	require.Equal(t, first.Map(), second.Map())
}

func TestPlan(t *testing.T) {
	mode, decisions, err := base(t).Args("-i", "--projectName=").Plan(projectSpec())
	require.NoError(t, err)
	require.True(t, mode)
	require.Len(t, decisions, 2)

	require.Equal(t, "directory", decisions[0].Name)
	require.True(t, decisions[0].Prompt)
	require.Equal(t, "projectName", decisions[1].Name)
	require.True(t, decisions[1].Supplied)
	require.True(t, decisions[1].Empty)
	require.True(t, decisions[1].Prompt)

	_, _, err = base(t).Plan(options.NewSpec().Set("$0", options.Option{}))
	require.ErrorIs(t, err, options.ErrInvalidSpec)
}
