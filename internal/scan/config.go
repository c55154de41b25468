// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Config is the fully resolved set of options controlling discovery,
// sorting, formatting and output. It is built once by the command layer and
// passed by value to every stage.
type Config struct {
	// Dir is the root directory to scan, normalized to forward slashes.
	Dir string
	// Exts are the accepted extensions: non-empty, dot-prefixed, sorted.
	Exts []string
	// NoSubs restricts the scan to direct children of Dir.
	NoSubs bool
	// Filters are case-insensitive substrings at least one of which must
	// appear in a base name. Empty means no name filtering.
	Filters []string
	// Ignore are case-insensitive substrings pruning any subdirectory whose
	// name contains one of them.
	Ignore []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// Raw keeps original filenames in the report instead of title-casing.
	Raw bool
	// SortBy is the ordered sort-key sequence, each key one of n, e, s, d.
	SortBy []string
	// Descending reverses the composite sort ordering.
	Descending bool
	// Verbose prepends the summary header to the report.
	Verbose bool
	// Outfile is the output file path, or "" for console output.
	Outfile string
}

// NormalizeExtensions dot-prefixes, dedupes and sorts the accepted
// extension set. Sorting keeps reports and headers deterministic.
func NormalizeExtensions(exts []string) []string {
	seen := make(map[string]bool, len(exts))
	result := make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !seen[ext] {
			seen[ext] = true
			result = append(result, ext)
		}
	}
	sort.Strings(result)
	return result
}

var sizeSuffixes = map[rune]int64{
	'k': 1024,
	'm': 1024 * 1024,
	'g': 1024 * 1024 * 1024,
}

// ParseMinSize parses a minimum-size string with an optional k/m/g suffix
// (1024 multiples). An unrecognized trailing letter carries no multiplier.
// A malformed or negative size returns an error; callers fall back to 0.
func ParseMinSize(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	multi := int64(1)
	last := rune(s[len(s)-1])
	if unicode.IsLetter(last) {
		if m, ok := sizeSuffixes[unicode.ToLower(last)]; ok {
			multi = m
		}
		s = s[:len(s)-1]
	}

	size, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid file size: %q", s)
	}
	if size < 0 {
		return 0, fmt.Errorf("negative file size: %q", s)
	}

	return multi * size, nil
}

// ResolveOutfile appends a .txt extension when the requested output file
// has none. An empty name stays empty (console output).
func ResolveOutfile(name string) string {
	if name != "" && !strings.Contains(name, ".") {
		return name + ".txt"
	}
	return name
}
