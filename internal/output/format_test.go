// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT
// no-cloc

package output

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/scopyproject/scopygo/internal/scan"
)

func TestConvertBytes(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{name: "zero", size: 0, want: "  0  B"},
		{name: "bytes", size: 500, want: "500  B"},
		{name: "one kilobyte", size: 1024, want: "  1 KB"},
		{name: "rounded kilobytes", size: 1536, want: "  2 KB"},
		{name: "one megabyte", size: 1048576, want: "  1 MB"},
		{name: "one gigabyte", size: 1073741824, want: "  1 GB"},
		{name: "one terabyte", size: 1099511627776, want: "  1 TB"},
		{name: "caps at terabytes", size: 2048 * 1099511627776, want: "2048 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertBytes(tt.size))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		raw  bool
		want string
	}{
		{name: "symbols replaced and title-cased", in: "My-Book_01", want: "My Book 01"},
		{name: "dots and percent are fillers", in: "some.file%name", want: "Some File Name"},
		{name: "consecutive fillers collapse", in: "a__b--c", want: "A B C"},
		{name: "all-caps words are lowered after the first rune", in: "UPPER case", want: "Upper Case"},
		{name: "raw keeps the original", in: "My-Book_01", raw: true, want: "My-Book_01"},
		{
			name: "over-long names are cut with an ellipsis",
			in:   strings.Repeat("a", 60),
			want: strings.Repeat("a", 47) + "...",
		},
		{
			name: "width counts runes, not bytes",
			in:   strings.Repeat("é", 30),
			raw:  true,
			want: strings.Repeat("é", 30),
		},
		{
			name: "over-long multibyte names are cut on a rune boundary",
			in:   strings.Repeat("é", 60),
			raw:  true,
			want: strings.Repeat("é", 47) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayName(tt.in, tt.raw)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxWidth)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestRelativePath(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		root string
		want string
	}{
		{name: "root itself", dir: "books", root: "books", want: ""},
		{name: "nested", dir: "books/sci/deep", root: "books", want: "/sci/deep"},
		{
			name: "over-long paths lose leftmost segments",
			dir:  "books/aaaaaaaaaa/bbbbbbbbbb/cccccccccc/dddddddddd/eeeeeeeeee",
			root: "books",
			want: ".../bbbbbbbbbb/cccccccccc/dddddddddd/eeeeeeeeee",
		},
		{
			name: "multibyte path fits by rune count",
			dir:  "books/" + strings.Repeat("ü", 40),
			root: "books",
			want: "/" + strings.Repeat("ü", 40),
		},
		{
			name: "over-long multibyte segment is cut on a rune boundary",
			dir:  "books/" + strings.Repeat("ü", 60),
			root: "books",
			want: "..." + strings.Repeat("ü", 47),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := relativePath(tt.dir, tt.root)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), MaxWidth)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestFormatResults(t *testing.T) {
	records := []scan.FileRecord{
		{Name: "My-Book_01", Ext: ".pdf", Size: 2048, Dir: "books"},
		{Name: "physics", Ext: ".epub", Size: 4096, Dir: "books/sci"},
	}
	cfg := scan.Config{
		Dir:  "books",
		Exts: []string{".epub", ".pdf"},
	}

	titleLine := fmt.Sprintf("%-50s %-8s %-8s %s", "Filename:", "Ext:", "Size:", "Relative path:")

	t.Run("non-verbose report", func(t *testing.T) {
		got := FormatResults(records, cfg, false)
		lines := strings.Split(got, "\n")

		// A single leading blank line, then titles, then one row per record.
		assert.Equal(t, "", lines[0])
		assert.Equal(t, titleLine, lines[1])
		assert.Len(t, lines, 4)
		assert.Equal(t,
			fmt.Sprintf("%-50s %-8s %-8s %s", "My Book 01", ".pdf", "  2 KB", ""),
			lines[2])
		assert.Equal(t,
			fmt.Sprintf("%-50s %-8s %-8s %s", "Physics", ".epub", "  4 KB", "/sci"),
			lines[3])
	})

	t.Run("raw mode keeps filenames", func(t *testing.T) {
		rawCfg := cfg
		rawCfg.Raw = true
		got := FormatResults(records, rawCfg, false)
		assert.Contains(t, got, "My-Book_01")
		assert.NotContains(t, got, "My Book 01")
	})

	t.Run("verbose header", func(t *testing.T) {
		verboseCfg := cfg
		verboseCfg.Verbose = true
		verboseCfg.Ignore = []string{"draft"}
		verboseCfg.Filters = []string{"book"}

		got := FormatResults(records, verboseCfg, false)

		assert.Contains(t, got, fmt.Sprintf("%-36s", "Scanned directory:"))
		assert.Contains(t, got, fmt.Sprintf("%-36s", "Ignoring subdirectories containing:")+"draft")
		assert.Contains(t, got, fmt.Sprintf("%-36s", "Looking for files containing:")+"book")
		assert.Contains(t, got, fmt.Sprintf("%-36s", "With extensions:")+".epub, .pdf")
		assert.Contains(t, got, fmt.Sprintf("%-36s", "Found:")+"2 files")
		assert.Contains(t, got, fmt.Sprintf("%-36s", "Total size:"))

		// Header and table are separated by a blank line.
		assert.Contains(t, got, "\n\n"+titleLine)
	})

	t.Run("verbose header omits inactive filters", func(t *testing.T) {
		verboseCfg := cfg
		verboseCfg.Verbose = true

		got := FormatResults(records, verboseCfg, false)
		assert.NotContains(t, got, "Ignoring subdirectories containing:")
		assert.NotContains(t, got, "Looking for files containing:")
	})
}

func TestFormatResultsWidthBound(t *testing.T) {
	records := []scan.FileRecord{
		{
			Name: strings.Repeat("long-name-", 10),
			Ext:  ".pdf",
			Size: 1,
			Dir:  "books/" + strings.Repeat("deeply/", 12) + "nested",
		},
	}
	cfg := scan.Config{Dir: "books", Exts: []string{".pdf"}}

	got := FormatResults(records, cfg, false)
	for _, line := range strings.Split(got, "\n") {
		for _, field := range strings.Fields(line) {
			assert.LessOrEqual(t, len(field), MaxWidth)
		}
	}
}
