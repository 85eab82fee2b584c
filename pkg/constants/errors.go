// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "errors"

var ErrNoSpecFile = errors.New("\n\nNo option spec file given. To resolve this:\n- Pass --spec <file>.\n- Or set " + EnvSpec + " to the spec file path.\n") //nolint:stylecheck
