// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
)

var validSortKeys = []string{"n", "e", "s", "d"}

// SortKeysValidator verifies every requested sort key is one of the
// supported column selectors.
func SortKeysValidator(keys []string) error {
	for _, key := range keys {
		valid := false
		for _, v := range validSortKeys {
			if v == key {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("sort key %q must be one of %v", key, validSortKeys)
		}
	}
	return nil
}
