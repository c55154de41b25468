// Copyright (c) 2025 The scopy authors.
// SPDX-License-Identifier: MIT

// Package version holds the build version stamped in via -ldflags.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/scopyproject/scopygo/internal/version.Version=v1.2.3"
var Version = "dev"
