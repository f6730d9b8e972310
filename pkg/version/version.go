// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is overridable at build time via -ldflags.
var Version = "0.4.0"
