// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
	"github.com/luxfi/interactive/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config reads settings with the priority flags > env vars > config file >
// defaults.
type Config struct {
	v  *viper.Viper
	fs afero.Fs
}

// New wraps v. Config files are read from and written to fs.
func New(v *viper.Viper, fs afero.Fs) *Config {
	v.SetFs(fs)
	v.SetDefault(constants.ConfigLogLevelKey, constants.DefaultLogLevel)
	return &Config{v: v, fs: fs}
}

// Load binds the environment and reads cfgFile, or interactive.json under
// baseDir when cfgFile is empty. A missing default config file is not an
// error.
func (c *Config) Load(cfgFile, baseDir string) error {
	if cfgFile != "" {
		c.v.SetConfigFile(cfgFile)
	} else {
		c.v.AddConfigPath(baseDir)
		c.v.SetConfigType(constants.ConfigFileType)
		c.v.SetConfigName(constants.ConfigFileName)
	}

	_ = c.v.BindEnv(constants.ConfigSpecKey, constants.EnvSpec)
	_ = c.v.BindEnv(constants.ConfigOutputKey, constants.EnvOutput)
	_ = c.v.BindEnv(constants.ConfigNonInteractiveKey, constants.EnvNonInteractive)

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// BindFlag lets an explicitly set flag override key.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag for config key %q", key)
	}
	return c.v.BindPFlag(key, flag)
}

func (c *Config) SpecFile() string {
	return c.v.GetString(constants.ConfigSpecKey)
}

func (c *Config) OutputFormat() string {
	return c.v.GetString(constants.ConfigOutputKey)
}

func (c *Config) NonInteractive() bool {
	return c.v.GetBool(constants.ConfigNonInteractiveKey)
}

func (c *Config) LogLevel() string {
	return c.v.GetString(constants.ConfigLogLevelKey)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) ConfigFileExists() bool {
	return c.v.ConfigFileUsed() != ""
}

// SetConfigValue stores value under key in the config file, creating
// defaultPath when no config file was read.
func (c *Config) SetConfigValue(key string, value interface{}, defaultPath string) error {
	c.v.Set(key, value)
	path := c.v.ConfigFileUsed()
	if path == "" {
		path = defaultPath
		if err := c.fs.MkdirAll(filepath.Dir(path), perms.ReadWriteExecute); err != nil {
			return fmt.Errorf("failed creating config directory: %w", err)
		}
		c.v.SetConfigFile(path)
	}
	if err := c.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the configuration file
func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}
