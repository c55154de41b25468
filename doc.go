// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

// scopygo is the main package for the scopy command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
