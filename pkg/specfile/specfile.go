// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package specfile loads option specs from YAML or JSON files, keeping the
// options in the order they are written.
//
//	usage: "$0 <command> [args]"
//	version: 1.0.0
//	options:
//	  interactive:
//	    default: true
//	  directory:
//	    type: input
//	    default: .
//	    describe: Target directory
//	  projectName:
//	    describe: Project name
//	    prompt: if-empty
package specfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/luxfi/interactive/pkg/constants"
	"github.com/luxfi/interactive/pkg/options"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFile = errors.New("invalid spec file")

// File is a decoded spec file.
type File struct {
	Usage   string
	Version string
	Spec    *options.Spec
}

var (
	topLevelKeys  = []string{"usage", "version", "options"}
	attributeKeys = []string{"type", "default", "describe", "choices", "prompt"}
)

// Load reads and parses the spec file at path.
func Load(fs afero.Fs, path string) (*File, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(constants.SpecFileExtensions, ext) {
		return nil, fmt.Errorf("%w: %s: unsupported extension %q", ErrInvalidFile, path, ext)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a spec document. JSON documents are accepted as YAML.
func Parse(data []byte) (*File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	f := &File{Spec: options.NewSpec()}
	if len(doc.Content) == 0 {
		return f, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, invalid(root, "top level must be a mapping")
	}

	for i := 0; i < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "usage":
			if err := value.Decode(&f.Usage); err != nil {
				return nil, invalid(value, "usage must be a string")
			}
		case "version":
			if err := value.Decode(&f.Version); err != nil {
				return nil, invalid(value, "version must be a string")
			}
		case "options":
			if err := decodeOptions(value, f.Spec); err != nil {
				return nil, err
			}
		default:
			return nil, invalid(key, fmt.Sprintf("unknown key %q, expected one of %s", key.Value, strings.Join(topLevelKeys, ", ")))
		}
	}
	return f, nil
}

func decodeOptions(node *yaml.Node, spec *options.Spec) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return invalid(node, "options must be a mapping")
	}
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if _, ok := spec.Get(key.Value); ok {
			return invalid(key, fmt.Sprintf("duplicate option %q", key.Value))
		}
		opt, err := decodeOption(key.Value, value)
		if err != nil {
			return err
		}
		spec.Set(key.Value, opt)
	}
	return nil
}

func decodeOption(name string, node *yaml.Node) (options.Option, error) {
	var opt options.Option
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return opt, nil
	}
	if node.Kind != yaml.MappingNode {
		return opt, invalid(node, fmt.Sprintf("option %q must be a mapping", name))
	}
	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var err error
		switch key.Value {
		case "type":
			var t string
			err = value.Decode(&t)
			opt.Type = options.Type(t)
		case "default":
			var v any
			err = value.Decode(&v)
			opt = opt.WithDefault(v)
		case "describe":
			err = value.Decode(&opt.Describe)
		case "choices":
			err = value.Decode(&opt.Choices)
		case "prompt":
			err = value.Decode(&opt.Prompt)
		default:
			return opt, invalid(key, fmt.Sprintf("option %q: unknown attribute %q, expected one of %s",
				name, key.Value, strings.Join(attributeKeys, ", ")))
		}
		if err != nil {
			return opt, invalid(value, fmt.Sprintf("option %q: bad %s: %v", name, key.Value, err))
		}
	}
	return opt, nil
}

func invalid(node *yaml.Node, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidFile, node.Line, msg)
}
