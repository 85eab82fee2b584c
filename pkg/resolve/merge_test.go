// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package resolve

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/luxfi/interactive/pkg/argv"
	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/session"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func spec(t *testing.T) *options.Normalized {
	t.Helper()
	n, err := options.Normalize(options.NewSpec().
		Set("directory", options.Option{Type: options.TypeInput}.WithDefault(".")).
		Set("projectName", options.Option{Type: options.TypeInput, Prompt: "if-empty"}.WithDefault("custom")).
		Set("token", options.Option{Type: options.TypePassword}))
	require.NoError(t, err)
	return n
}

func baseArgs(extra argv.Arguments) argv.Arguments {
	args := argv.Arguments{
		options.KeyPositional: []string{},
		options.KeyProgram:    "prog",
		options.KeyHelp:       false,
		options.KeyVersion:    false,
	}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

func TestMerge_Precedence(t *testing.T) {
	args := baseArgs(argv.Arguments{"directory": "from-arg", "projectName": "from-arg"})
	answers := session.Answers{"projectName": "from-prompt"}

	cfg := Merge(spec(t), args, answers, true)

	require.Equal(t, "from-arg", cfg.Get("directory"))
	require.Equal(t, "from-prompt", cfg.Get("projectName"))
	_, ok := cfg.Lookup("token")
	require.False(t, ok, "options without value or default are omitted")
	require.True(t, cfg.Interactive())
}

func TestMerge_ArgumentsAndDefaults(t *testing.T) {
	cfg := Merge(spec(t), baseArgs(argv.Arguments{"directory": "abc", "projectName": "def"}), nil, false)

	require.Equal(t, map[string]any{
		"directory":            "abc",
		"projectName":          "def",
		options.KeyPositional:  []string{},
		options.KeyProgram:     "prog",
		options.KeyHelp:        false,
		options.KeyVersion:     false,
		options.KeyInteractive: false,
	}, cfg.Map())
	require.Equal(t, []string{"directory", "projectName", "_", "$0", "help", "version", "interactive"}, cfg.Keys())

	defaults := Merge(spec(t), baseArgs(nil), nil, false)
	require.Equal(t, ".", defaults.Get("directory"))
	require.Equal(t, "custom", defaults.Get("projectName"))
}

func TestMerge_EmptyArgumentBeatsDefault(t *testing.T) {
	cfg := Merge(spec(t), baseArgs(argv.Arguments{"directory": ""}), nil, false)
	require.Equal(t, "", cfg.Get("directory"))
}

func TestMerge_NilDefaultIsKept(t *testing.T) {
	n, err := options.Normalize(options.NewSpec().Set("maybe", options.Option{}.WithDefault(nil)))
	require.NoError(t, err)

	cfg := Merge(n, baseArgs(nil), nil, false)
	v, ok := cfg.Lookup("maybe")
	require.True(t, ok)
	require.Nil(t, v)
}

func TestMerge_UndeclaredArgumentsDropped(t *testing.T) {
	cfg := Merge(spec(t), baseArgs(argv.Arguments{"stray": "x"}), session.Answers{"ghost": "y"}, false)
	_, ok := cfg.Lookup("stray")
	require.False(t, ok)
	_, ok = cfg.Lookup("ghost")
	require.False(t, ok)
}

func TestMerge_Immutable(t *testing.T) {
	args := baseArgs(argv.Arguments{options.KeyPositional: []string{"cmd"}})
	cfg := Merge(spec(t), args, nil, false)

	args[options.KeyPositional].([]string)[0] = "changed"
	cfg.Positionals()[0] = "changed"
	cfg.Map()["directory"] = "changed"
	cfg.Keys()[0] = "changed"

	require.Equal(t, []string{"cmd"}, cfg.Positionals())
	require.Equal(t, ".", cfg.Get("directory"))
	require.Equal(t, "directory", cfg.Keys()[0])
	require.Equal(t, "prog", cfg.Program())
}

func TestMerge_Idempotent(t *testing.T) {
	args := baseArgs(argv.Arguments{"directory": "abc"})
	first, err := json.Marshal(Merge(spec(t), args, nil, false))
	require.NoError(t, err)
	second, err := json.Marshal(Merge(spec(t), args, nil, false))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFromArguments(t *testing.T) {
	cfg := FromArguments(argv.Arguments{options.KeyProgram: "prog", options.KeyHelp: false})
	require.Equal(t, []string{"_", "$0", "help"}, cfg.Keys())
	require.Equal(t, []string{}, cfg.Get(options.KeyPositional))
	_, ok := cfg.Lookup(options.KeyInteractive)
	require.False(t, ok)

	cfg = FromArguments(argv.Arguments{options.KeyInteractive: true})
	require.True(t, cfg.Interactive())
}

func TestConfig_JSONOrder(t *testing.T) {
	cfg := Merge(spec(t), baseArgs(argv.Arguments{"directory": "abc"}), nil, true)
	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.Equal(t,
		`{"directory":"abc","projectName":"custom","_":[],"$0":"prog","help":false,"version":false,"interactive":true}`,
		string(out))
}

func TestConfig_YAMLOrder(t *testing.T) {
	cfg := Merge(spec(t), baseArgs(argv.Arguments{"directory": "abc"}), nil, false)
	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	text := string(out)
	require.Less(t, strings.Index(text, "directory: abc"), strings.Index(text, "projectName: custom"))
	require.Less(t, strings.Index(text, "projectName: custom"), strings.Index(text, "interactive: false"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, "prog", decoded["$0"])
}

func TestConfig_ZeroValue(t *testing.T) {
	var cfg Config
	require.Zero(t, cfg.Len())
	require.Empty(t, cfg.Keys())
	require.Empty(t, cfg.Map())
	require.Nil(t, cfg.Get("directory"))
	require.False(t, cfg.Interactive())

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.Equal(t, "{}", string(out))
}
