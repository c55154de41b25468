// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/scopyproject/scopygo/internal/config"
	"github.com/scopyproject/scopygo/internal/scan"
)

// MaxWidth bounds the name and path columns. It is chosen so the total
// line width stays under 120 characters and two reports fit side by side.
const MaxWidth = 50

// headerLabelWidth is the padding of the label column in the verbose
// summary block.
const headerLabelWidth = 36

var fillerRe = regexp.MustCompile(`[.$%_-]`)

// FormatResults renders the sorted records into the four-column report.
// When colorize is set (console output on a TTY), column titles and header
// labels are styled; the row data itself stays plain so the layout is
// byte-identical either way.
func FormatResults(records []scan.FileRecord, cfg scan.Config, colorize bool) string {
	style := titleStyle(colorize)

	columnNames := formatRow("Filename:", "Ext:", "Size:", "Relative path:")
	rows := make([]string, 0, len(records))
	for _, r := range records {
		name := displayName(r.Name, cfg.Raw)
		rows = append(rows, formatRow(name, r.Ext, ConvertBytes(r.Size), relativePath(r.Dir, cfg.Dir)))
	}

	table := strings.Join(append([]string{style.Render(columnNames)}, rows...), "\n")

	if cfg.Verbose {
		return summaryHeader(records, cfg, style) + "\n\n" + table
	}
	return "\n" + table
}

// formatRow lays out one line: name padded to MaxWidth, extension and size
// each padded to 8, then the relative path unpadded.
func formatRow(name, ext, size, path string) string {
	return fmt.Sprintf("%-*s %-8s %-8s %s", MaxWidth, name, ext, size, path)
}

// displayName beautifies a base name unless raw mode is on: filler symbols
// become spaces, runs of whitespace collapse and each word is title-cased.
// Over-long names are cut to MaxWidth-3 with an ellipsis.
func displayName(name string, raw bool) string {
	if !raw {
		words := strings.Fields(fillerRe.ReplaceAllString(name, " "))
		for i, w := range words {
			words[i] = titleWord(w)
		}
		name = strings.Join(words, " ")
	}

	if utf8.RuneCountInString(name) > MaxWidth {
		name = string([]rune(name)[:MaxWidth-3]) + "..."
	}
	return name
}

func titleWord(w string) string {
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// relativePath strips the scan root's prefix from the containing directory.
// Over-long paths lose their leftmost segments until the remainder fits in
// MaxWidth-3, then get an ellipsis prefix.
func relativePath(dir, root string) string {
	rel := filepath.ToSlash(strings.TrimPrefix(dir, root))
	if utf8.RuneCountInString(rel) <= MaxWidth {
		return rel
	}

	for utf8.RuneCountInString(rel) > MaxWidth-3 {
		idx := strings.Index(rel[1:], "/")
		if idx < 0 {
			// No segment boundary left to drop, cut from the left.
			runes := []rune(rel)
			rel = string(runes[len(runes)-(MaxWidth-3):])
			break
		}
		rel = rel[idx+1:]
	}
	return "..." + rel
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// ConvertBytes renders a byte count in the largest 1024-based unit where
// the value drops below 1024, as a 3-digit integer and a right-aligned
// 2-character unit.
func ConvertBytes(size int64) string {
	value := float64(size)
	for i, unit := range byteUnits {
		if value < 1024 || i == len(byteUnits)-1 {
			return fmt.Sprintf("%3.0f %2s", value, unit)
		}
		value /= 1024
	}
	return "" // unreachable
}

// summaryHeader builds the verbose block preceding the table: the scanned
// directory, active filters, accepted extensions and match statistics.
func summaryHeader(records []scan.FileRecord, cfg scan.Config, style lipgloss.Style) string {
	absDir := cfg.Dir
	if abs, err := filepath.Abs(cfg.Dir); err == nil {
		absDir = filepath.ToSlash(abs)
	}

	var total int64
	for _, r := range records {
		total += r.Size
	}

	lines := []string{""}
	add := func(label, value string) {
		padded := fmt.Sprintf("%-*s", headerLabelWidth, label)
		lines = append(lines, style.Render(padded)+value)
	}

	add("Scanned directory:", absDir)
	if len(cfg.Ignore) > 0 {
		add("Ignoring subdirectories containing:", strings.Join(cfg.Ignore, ", "))
	}
	if len(cfg.Filters) > 0 {
		add("Looking for files containing:", strings.Join(cfg.Filters, ", "))
	}
	add("With extensions:", strings.Join(cfg.Exts, ", "))
	add("Found:", fmt.Sprintf("%d files", len(records)))
	add("Total size:", humanize.IBytes(uint64(total)))

	return strings.Join(lines, "\n")
}

// titleStyle returns the style for column titles and header labels. The
// color can be overridden as colors.title in scopy.yaml.
func titleStyle(colorize bool) lipgloss.Style {
	if !colorize {
		return lipgloss.NewStyle()
	}
	color, _ := config.GetString("colors.title", "#f6be00")
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}
