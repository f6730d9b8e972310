// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/orco-compute/cfggen/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultCfggenCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cfggen: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
