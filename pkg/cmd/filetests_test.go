// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/k14s/difflib"

	"github.com/orco-compute/cfggen/pkg/cmd"
	"github.com/orco-compute/cfggen/pkg/cmd/core"
	"github.com/orco-compute/cfggen/pkg/files"
)

var (
	// Example usage:
	//   go test ./pkg/cmd/ -run TestFiletests TestFiletests.filetest=product-map.tpltest
	selectedFileTestPath = kvArg("TestFiletests.filetest")
	showErrs             = kvArg("TestFiletests.errs") // eg t|...
)

// fixture environment visible to '$env' in the .tpltest files
var filetestEnv = map[string]string{
	"CFGGEN_SEED":    "42",
	"CFGGEN_DATASET": "cifar10",
}

func TestFiletests(t *testing.T) {
	var paths []string

	err := filepath.Walk("filetests", func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		paths = append(paths, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Listing files")
	}

	if len(selectedFileTestPath) > 0 {
		fmt.Printf("only running %s test(s)\n", selectedFileTestPath)
	}

	var errs []error

	for _, path := range paths {
		if len(selectedFileTestPath) > 0 && !strings.HasSuffix(path, selectedFileTestPath) {
			continue
		}

		testDesc := fmt.Sprintf("checking %s ...\n", path)
		fmt.Printf("%s", testDesc)

		contents, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)
		if len(pieces) != 2 {
			t.Fatalf("expected file %s to include +++ separator", path)
		}

		resultStr, buildErr := buildFiletest(pieces[0])
		expectedStr := pieces[1]

		if buildErr == nil {
			err = expectEquals(resultStr, expectedStr)
		} else if strings.HasPrefix(expectedStr, "ERR:") {
			err = expectEquals(buildErr.Error(), strings.TrimSpace(strings.TrimPrefix(expectedStr, "ERR:")))
		} else {
			err = buildErr
		}

		if err != nil {
			fmt.Printf("   FAIL\n")
			if showErrs == "t" {
				sep := strings.Repeat(".", 80)
				fmt.Printf("%s\n%s%s\n", sep, err, sep)
			}
			errs = append(errs, fmt.Errorf("%s: %s", testDesc, err))
		} else {
			fmt.Printf("   .\n")
		}
	}

	if len(errs) > 0 {
		t.Errorf("%s", errs[0].Error())
	}

	if len(selectedFileTestPath) > 0 {
		t.Errorf("skipped tests")
	}
}

func buildFiletest(data string) (string, error) {
	tpl, err := files.Parse([]byte(data), "stdin.yml")
	if err != nil {
		return "", err
	}

	opts := cmd.NewBuildOptions()

	out := opts.RunWithInput(cmd.BuildInput{
		Templates: []interface{}{tpl},
		Env:       filetestEnv,
	}, core.NewPlainUI(false))
	if out.Err != nil {
		return "", out.Err
	}

	return string(out.Bytes), nil
}

func expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("Not equal; diff expected...actual:\n%v", diff)
	}
	return nil
}

func kvArg(name string) string {
	name += "="
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, name) {
			return strings.TrimPrefix(arg, name)
		}
	}
	return ""
}
