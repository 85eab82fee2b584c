// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/luxfi/interactive/pkg/config"
	"github.com/luxfi/interactive/pkg/constants"
	"github.com/luxfi/interactive/pkg/interactive"
	"github.com/luxfi/interactive/pkg/session"
	"github.com/luxfi/interactive/pkg/specfile"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/afero"
)

type Lux struct {
	Log     luxlog.Logger
	baseDir string
	Conf    *config.Config
	Prompt  session.Renderer
	Fs      afero.Fs
}

func New() *Lux {
	return &Lux{}
}

func (app *Lux) Setup(baseDir string, log luxlog.Logger, conf *config.Config, prompt session.Renderer, fs afero.Fs) {
	if log == nil {
		log = luxlog.NewNoOpLogger()
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Fs = fs
}

func (app *Lux) GetBaseDir() string {
	return app.baseDir
}

// GetConfigPath is where the config file is created when none exists yet.
func (app *Lux) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName+"."+constants.ConfigFileType)
}

// SpecPath returns path, falling back to the configured spec file.
func (app *Lux) SpecPath(path string) (string, error) {
	if path == "" && app.Conf != nil {
		path = app.Conf.SpecFile()
	}
	if path == "" {
		return "", constants.ErrNoSpecFile
	}
	return path, nil
}

func (app *Lux) LoadSpecFile(path string) (*specfile.File, error) {
	app.Log.Debug("loading spec file", "path", path)
	return specfile.Load(app.Fs, path)
}

// NewBuilder prepares a builder for the options of f. The program name is
// the spec file name without its extension.
func (app *Lux) NewBuilder(path string, f *specfile.File, args []string, out io.Writer) *interactive.Builder {
	program := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	b := interactive.New().
		Args(args...).
		Program(program).
		Usage(f.Usage).
		Help().
		WithLogger(app.Log).
		WithOutput(out)
	if app.Prompt != nil {
		b = b.WithRenderer(app.Prompt)
	}
	if f.Version != "" {
		b = b.Version(f.Version)
	}
	return b
}
