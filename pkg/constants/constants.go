// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	CLIName     = "interactive"
	BaseDirName = ".lux"

	// ConfigFileName lives under BaseDirName in the user's home directory.
	ConfigFileName = "interactive"
	ConfigFileType = "json"

	// Environment variables, bound to the matching config keys.
	EnvSpec           = "LUX_INTERACTIVE_SPEC"
	EnvOutput         = "LUX_INTERACTIVE_OUTPUT"
	EnvNonInteractive = "LUX_NON_INTERACTIVE"

	// Config keys.
	ConfigSpecKey           = "spec"
	ConfigOutputKey         = "output"
	ConfigNonInteractiveKey = "non-interactive"
	ConfigLogLevelKey       = "log-level"

	// Logs are written to LogDir under BaseDirName.
	LogDir           = "logs"
	DefaultLogLevel  = "warn"
	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files
)

// SpecFileExtensions are the spec file extensions the loader understands.
var SpecFileExtensions = []string{".yaml", ".yml", ".json"}
