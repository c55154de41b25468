// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/apex/log"
)

// ErrInvalidDir reports that the configured root is not a directory. The
// command layer turns it into a console diagnostic and a normal exit.
var ErrInvalidDir = errors.New("not a valid directory")

// FileRecord is one discovered file. Dir is the directory actually
// containing the file, not the scan root.
type FileRecord struct {
	Name string
	Ext  string
	Size int64
	Dir  string
}

// Scanner walks a directory tree through the FS seam and collects the
// records passing the configured predicates.
type Scanner struct {
	fsys FS
	cfg  Config
}

func New(fsys FS, cfg Config) *Scanner {
	return &Scanner{fsys: fsys, cfg: cfg}
}

// Run produces the records for all in-scope regular files satisfying the
// active filters. An invalid root returns ErrInvalidDir and no records.
func (s *Scanner) Run() ([]FileRecord, error) {
	info, err := s.fsys.Stat(s.cfg.Dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", s.cfg.Dir, ErrInvalidDir)
	}

	if s.cfg.NoSubs {
		return s.searchDir(s.cfg.Dir)
	}
	return s.walk(s.cfg.Dir)
}

// searchDir collects the matching regular files directly under dir.
func (s *Scanner) searchDir(dir string) ([]FileRecord, error) {
	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var results []FileRecord
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", joinPath(dir, entry.Name()), err)
		}

		base, ext := splitName(entry.Name())
		if !s.satisfiesFilters(base, ext, info.Size()) {
			continue
		}

		results = append(results, FileRecord{
			Name: base,
			Ext:  ext,
			Size: info.Size(),
			Dir:  dir,
		})
	}

	return results, nil
}

// walk searches dir and descends into its subdirectories, pruning any whose
// name contains an ignore substring. Pruned directories and all their
// descendants are skipped entirely.
func (s *Scanner) walk(dir string) ([]FileRecord, error) {
	results, err := s.searchDir(dir)
	if err != nil {
		return nil, err
	}

	entries, err := s.fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if s.ignored(entry.Name()) {
			log.Debugf("pruning %s", joinPath(dir, entry.Name()))
			continue
		}

		sub, err := s.walk(joinPath(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		results = append(results, sub...)
	}

	return results, nil
}

// satisfiesFilters applies the three predicates from the configuration:
// accepted extension, optional name substrings, minimum size.
func (s *Scanner) satisfiesFilters(base, ext string, size int64) bool {
	if !slices.Contains(s.cfg.Exts, ext) {
		return false
	}
	if size < s.cfg.MinSize {
		return false
	}

	if len(s.cfg.Filters) == 0 {
		return true
	}
	lower := strings.ToLower(base)
	for _, filter := range s.cfg.Filters {
		if strings.Contains(lower, strings.ToLower(filter)) {
			return true
		}
	}
	return false
}

// ignored reports whether a subdirectory name matches an ignore substring,
// case-insensitively.
func (s *Scanner) ignored(name string) bool {
	lower := strings.ToLower(name)
	for _, word := range s.cfg.Ignore {
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// splitName splits a filename at the last dot. A dot-less name has an empty
// extension and the whole name as base.
func splitName(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}

// joinPath joins with forward slashes so the scan root's prefix can later
// be stripped verbatim when deriving relative paths.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
