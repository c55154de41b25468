// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

// Package scan discovers the files matching the resolved configuration. It
// walks the directory tree (pruning ignored subdirectories), splits names
// into base and extension, and applies the extension, name-substring and
// minimum-size predicates. The filesystem is reached through the FS seam so
// traversal is testable against an in-memory tree.
package scan
