// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides the terminal renderers used by the interactive
session, following UNIX conventions.

# Design Philosophy

The CLI follows standard UNIX behavior for interactive mode:

  - If stdin is a TTY → prompting is allowed
  - If stdin is not a TTY → never prompt (piped/scripted)
  - Explicit overrides (LUX_NON_INTERACTIVE, CI) force non-interactive

# Mode Detection

Non-interactive mode is enabled when ANY of these is true:

  - LUX_NON_INTERACTIVE=1/true/yes/on environment variable
  - CI=1/true environment variable (GitHub Actions, GitLab CI, etc.)
  - stdin is not a TTY (piped/redirected/scripted)

NewPrompterForMode picks the renderer accordingly:

	renderer := prompts.NewPrompterForMode(nonInteractive, log)

# Widgets

The promptui renderer maps option types to widgets:

	input, editor  free text, default pre-filled
	password       masked text, Enter keeps the default
	number         free text validated as a float
	confirm        Yes/No select, default first
	list           single choice select, cursor on the default
	checkbox       toggle list, finished with Done

Ctrl-C and Ctrl-D are reported as session.ErrAborted, which ends the
whole resolution.

# Non-interactive Failures

The non-interactive renderer never reads input; every question fails with
ErrNonInteractive and names the flag to pass instead:

	cannot prompt in non-interactive mode: Target directory - pass --directory, or run on a TTY with LUX_NON_INTERACTIVE unset
*/
package prompts
