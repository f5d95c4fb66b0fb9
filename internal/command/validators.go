// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml"}
	s, _ := value.(string)
	if !slices.Contains(validOutputFlagValues, s) {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// PositiveValidator accepts integers of at least 1.
func PositiveValidator(value any) error {
	if n, ok := value.(int); !ok || n < 1 {
		return fmt.Errorf("must be a positive integer, got %v", value)
	}
	return nil
}

// NonNegativeValidator accepts integers of at least 0.
func NonNegativeValidator(value any) error {
	if n, ok := value.(int); !ok || n < 0 {
		return fmt.Errorf("must not be negative, got %v", value)
	}
	return nil
}
