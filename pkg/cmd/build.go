// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"
	"github.com/spf13/cobra"

	"github.com/orco-compute/cfggen/pkg/cmd/core"
	"github.com/orco-compute/cfggen/pkg/files"
	"github.com/orco-compute/cfggen/pkg/template"
	"github.com/orco-compute/cfggen/pkg/version"
)

type BuildOptions struct {
	Debug           bool
	RequiredVersion string

	FileFlags   FileFlags
	EnvFlags    EnvFlags
	OutputFlags OutputFlags
}

type BuildInput struct {
	Templates []interface{}
	Env       map[string]string
}

type BuildOutput struct {
	Doc   interface{}
	Bytes []byte
	Err   error
}

func NewBuildOptions() *BuildOptions {
	return &BuildOptions{
		EnvFlags:    EnvFlags{Inherit: true},
		OutputFlags: OutputFlags{Format: "yaml"},
	}
}

func NewBuildCmd(o *BuildOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Aliases: []string{"b"},
		Short:   "Build fully resolved configuration from template files",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().StringVar(&o.RequiredVersion, "required-version", "",
		"Fail unless the cfggen version is at least this version")
	o.FileFlags.Set(cmd)
	o.EnvFlags.Set(cmd)
	o.OutputFlags.Set(cmd)
	return cmd
}

type FileFlags struct {
	Files []string
}

func (s *FileFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&s.Files, "file", "f", nil,
		"Template file (.json, .json5, .yml, .yaml; can be specified multiple times; later files overwrite earlier toplevel keys)")
}

type EnvFlags struct {
	KVs     []string
	Inherit bool
}

func (s *EnvFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&s.KVs, "env", nil,
		"Set environment entry visible to '$env' (format: NAME=value) (can be specified multiple times)")
	cmd.Flags().BoolVar(&s.Inherit, "inherit-env", true,
		"Seed '$env' lookups with the process environment (true by default)")
}

func (s *EnvFlags) AsMap() (map[string]string, error) {
	env := map[string]string{}
	if s.Inherit {
		for _, pair := range os.Environ() {
			pieces := strings.SplitN(pair, "=", 2)
			if len(pieces) == 2 {
				env[pieces[0]] = pieces[1]
			}
		}
	}
	for _, kv := range s.KVs {
		pieces := strings.SplitN(kv, "=", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("Expected env flag '%s' to be in NAME=value format", kv)
		}
		env[pieces[0]] = pieces[1]
	}
	return env, nil
}

type OutputFlags struct {
	Format string
	File   string
}

func (s *OutputFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.Format, "output", "o", "yaml", "Output format (yaml, json, or toml)")
	cmd.Flags().StringVar(&s.File, "output-file", "", "Write output to file (default: stdout)")
}

func (o *BuildOptions) Run() error {
	ui := core.NewPlainUI(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	err := o.checkVersion()
	if err != nil {
		return err
	}

	if len(o.FileFlags.Files) == 0 {
		return fmt.Errorf("Expected at least one template file (specify via -f)")
	}

	var rawTpls []interface{}
	for _, path := range o.FileFlags.Files {
		ui.Debugf("loading %s\n", path)
		raw, err := files.Load(path)
		if err != nil {
			return err
		}
		rawTpls = append(rawTpls, raw)
	}

	env, err := o.EnvFlags.AsMap()
	if err != nil {
		return err
	}

	out := o.RunWithInput(BuildInput{Templates: rawTpls, Env: env}, ui)
	if out.Err != nil {
		return out.Err
	}

	if o.OutputFlags.File != "" {
		return os.WriteFile(o.OutputFlags.File, out.Bytes, 0600)
	}

	ui.Printf("%s", out.Bytes)
	return nil
}

// RunWithInput merges and resolves already-loaded templates; split out
// so tests can drive the command without a filesystem.
func (o *BuildOptions) RunWithInput(in BuildInput, ui core.PlainUI) BuildOutput {
	if len(in.Templates) == 0 {
		return BuildOutput{Err: fmt.Errorf("Expected at least one template")}
	}

	tpl := in.Templates[0]

	if len(in.Templates) > 1 {
		ui.Debugf("merging %d templates\n", len(in.Templates))
		merged, err := template.Merge(in.Templates)
		if err != nil {
			return BuildOutput{Err: err}
		}
		tpl = merged
	}

	resolved, err := template.Build(tpl, template.BuildOpts{Env: in.Env})
	if err != nil {
		return BuildOutput{Err: err}
	}

	data, err := files.Encode(resolved, files.OutputFormat(o.OutputFlags.Format))
	if err != nil {
		return BuildOutput{Err: err}
	}

	return BuildOutput{Doc: resolved, Bytes: data}
}

func (o *BuildOptions) checkVersion() error {
	if o.RequiredVersion == "" {
		return nil
	}

	required, err := goversion.NewVersion(o.RequiredVersion)
	if err != nil {
		return fmt.Errorf("Parsing required version: %s", err)
	}

	current, err := goversion.NewVersion(version.Version)
	if err != nil {
		return fmt.Errorf("Parsing cfggen version: %s", err)
	}

	if current.LessThan(required) {
		return fmt.Errorf("cfggen version %s does not meet the minimum required version %s",
			version.Version, o.RequiredVersion)
	}
	return nil
}
