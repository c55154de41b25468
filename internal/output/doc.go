// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

// Package output sorts discovered records, renders them into the
// fixed-width column report and emits the result to the console or a file.
package output
