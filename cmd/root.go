// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/luxfi/filesystem/perms"
	"github.com/luxfi/interactive/cmd/configcmd"
	"github.com/luxfi/interactive/cmd/plancmd"
	"github.com/luxfi/interactive/cmd/runcmd"
	"github.com/luxfi/interactive/cmd/speccmd"
	"github.com/luxfi/interactive/pkg/application"
	"github.com/luxfi/interactive/pkg/config"
	"github.com/luxfi/interactive/pkg/constants"
	"github.com/luxfi/interactive/pkg/prompts"
	"github.com/luxfi/interactive/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/luxfi/log/level"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *application.Lux
	logFactory luxlog.Factory

	logLevel       string
	Version        = "0.3.0"
	cfgFile        string
	nonInteractive bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: constants.CLIName,
		Long: `Resolve command-line options from arguments, declared defaults and
interactive prompts.

An option spec file declares every option with its type, default,
description and prompt policy. Arguments win over defaults; with
--interactive (or a spec that turns interactive mode on) the options
selected by their prompt policy are asked for in declaration order.

COMMAND OVERVIEW:

  run      Resolve a spec against arguments and print the result
  plan     Show which options would be prompted, without prompting
  spec     Validate or show a spec file
  config   Read and write CLI configuration

PROMPT POLICIES:

  always      always prompt in interactive mode
  never       never prompt
  if-empty    prompt when the argument is missing or empty
  if-no-arg   prompt when the argument is missing (default)

QUICK START:

  interactive run --spec app.yaml -- --directory=src
  interactive run --spec app.yaml -- --interactive
  interactive plan --spec app.yaml -- -i --projectName=`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lux/interactive.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, constants.ConfigLogLevelKey, "", "log level for the application (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, constants.ConfigNonInteractiveKey, false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Show only errors (quiet mode)")

	rootCmd.AddCommand(runcmd.NewCmd(app))
	rootCmd.AddCommand(plancmd.NewCmd(app))
	rootCmd.AddCommand(speccmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(cmd *cobra.Command, _ []string) error {
	fs := afero.NewOsFs()
	baseDir, err := setupEnv(fs)
	if err != nil {
		return err
	}

	cf := config.New(viper.GetViper(), fs)
	if err := initConfig(cmd, cf, baseDir); err != nil {
		return err
	}

	log, err := setupLogging(cmd, cf, baseDir)
	if err != nil {
		return err
	}
	if cf.ConfigFileExists() {
		log.Debug("using config file", "config-file", cf.GetConfigPath())
	}

	// Interactive by default on TTY, non-interactive when:
	// LUX_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompter := prompts.NewPrompterForMode(cf.NonInteractive(), log)
	app.Setup(baseDir, log, cf, prompter, fs)
	return nil
}

func setupEnv(fs afero.Fs) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to find home directory: %w", err)
	}
	baseDir := filepath.Join(home, constants.BaseDirName)
	if err := fs.MkdirAll(baseDir, perms.ReadWriteExecute); err != nil {
		return "", fmt.Errorf("failed creating the basedir %s: %w", baseDir, err)
	}
	return baseDir, nil
}

// logLevelFor picks the display level from --debug, --verbose or --quiet,
// then --log-level (or its config value).
func logLevelFor(cmd *cobra.Command, cf *config.Config) (luxlog.Level, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("debug"):
		return luxlog.Level(level.Debug), nil
	case flags.Changed("verbose"):
		return luxlog.Level(level.Info), nil
	case flags.Changed("quiet"):
		return luxlog.Level(level.Error), nil
	}
	lvl, err := luxlog.ToLevel(strings.ToUpper(cf.LogLevel()))
	if err != nil {
		return luxlog.Level(level.Info), fmt.Errorf("invalid log level %q: %w", cf.LogLevel(), err)
	}
	return lvl, nil
}

// setupLogging writes rotating log files under baseDir/logs and displays
// messages at the level picked by logLevelFor. Command output goes to stdout.
func setupLogging(cmd *cobra.Command, cf *config.Config, baseDir string) (luxlog.Logger, error) {
	displayLevel, err := logLevelFor(cmd, cf)
	if err != nil {
		return nil, err
	}

	logConfig := luxlog.Config{}
	logConfig.LogLevel = luxlog.Level(level.Info)
	if displayLevel < logConfig.LogLevel {
		logConfig.LogLevel = displayLevel
	}
	logConfig.DisplayLevel = displayLevel

	logConfig.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logConfig.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	logConfig.LogFormat = luxlog.Colors
	logConfig.MaxSize = constants.MaxLogFileSize
	logConfig.MaxFiles = constants.MaxNumOfLogFiles
	logConfig.MaxAge = constants.RetainOldFiles

	luxlog.RegisterInternalPackages("github.com/luxfi/interactive/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(logConfig)
	log, err := factory.Make(constants.CLIName)
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(cmd *cobra.Command, cf *config.Config, baseDir string) error {
	if err := cf.Load(cfgFile, baseDir); err != nil {
		return err
	}
	for _, key := range []string{constants.ConfigLogLevelKey, constants.ConfigNonInteractiveKey} {
		if err := cf.BindFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	if logFactory != nil {
		logFactory.Close()
	}
	if err != nil {
		stop()
		ux.New(app.Log, os.Stderr).PrintError("%s", err)
		os.Exit(1)
	}
}
