// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/orco-compute/cfggen/pkg/version"
)

type CfggenOptions struct{}

func NewDefaultCfggenOptions() *CfggenOptions {
	return &CfggenOptions{}
}

func NewDefaultCfggenCmd() *cobra.Command {
	return NewCfggenCmd(NewDefaultCfggenOptions())
}

func NewCfggenCmd(o *CfggenOptions) *cobra.Command {
	cmd := NewBuildCmd(NewBuildOptions())

	cmd.Use = "cfggen"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "cfggen expands declarative configuration templates"
	cmd.Long = `cfggen expands declarative configuration templates.

Templates are trees of mappings, sequences and scalars; single-entry
mappings named '$ref', '$range', '$+', '$product', '$zip' or '$env'
are operators that are expanded until none remain, which makes it easy
to generate large sets of concrete configurations (e.g. experiment
grids) from a compact specification.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewBuildCmd(NewBuildOptions())) // named form of the top-level command

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
