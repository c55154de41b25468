// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// footer is appended to file output only.
const footer = "\n\n\nCreated with scopy. https://github.com/scopyproject/scopygo\n"

// Spit emits the formatted report. With an outfile it writes the report
// plus the attribution footer to that file and prints a confirmation to w;
// otherwise it prints the report itself to w. Messages default to stdout
// when w is nil.
func Spit(contents string, outfile string, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	if outfile == "" {
		fmt.Fprintln(w, contents)
		return nil
	}

	if err := writeFileAtomic(outfile, []byte(contents+footer)); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	log.Debugf("wrote %d bytes to %s", len(contents)+len(footer), outfile)
	fmt.Fprintf(w, "Results saved in %s\n", outfile)
	return nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place, so a partially-written report is never visible to
// other readers.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// CreateTemp uses 0600; widen to the usual file mode before the
	// rename makes it visible.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
