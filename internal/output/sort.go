// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package output

import (
	"cmp"
	"sort"
	"strings"

	"github.com/scopyproject/scopygo/internal/scan"
)

// SortRecords orders records in place by the given key sequence. The first
// key is primary and later keys break ties. Keys are n (name), e
// (extension), s (size) and d (directory); unknown keys fall back to name.
// Descending reverses the entire composite ordering, not each key, and the
// sort is stable for records equal on all keys.
func SortRecords(records []scan.FileRecord, keys []string, descending bool) {
	if len(keys) == 0 {
		keys = []string{"n"}
	}

	sort.SliceStable(records, func(i, j int) bool {
		c := compareRecords(records[i], records[j], keys)
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func compareRecords(a, b scan.FileRecord, keys []string) int {
	for _, key := range keys {
		var c int
		switch key {
		case "e":
			c = strings.Compare(a.Ext, b.Ext)
		case "s":
			c = cmp.Compare(a.Size, b.Size)
		case "d":
			c = strings.Compare(a.Dir, b.Dir)
		default:
			c = strings.Compare(a.Name, b.Name)
		}
		if c != 0 {
			return c
		}
	}
	return 0
}
