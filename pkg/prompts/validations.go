// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"errors"
	"strconv"
)

func validateNumber(input string) error {
	if input == "" {
		return errors.New("a number is required")
	}
	if _, err := strconv.ParseFloat(input, 64); err != nil {
		return errors.New("invalid number")
	}
	return nil
}
