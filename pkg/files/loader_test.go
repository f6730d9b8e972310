// Copyright 2026 The cfggen Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orco-compute/cfggen/pkg/files"
	"github.com/orco-compute/cfggen/pkg/orderedmap"
)

func TestParseYAMLKeepsKeyOrder(t *testing.T) {
	data := []byte(`
z: 1
a:
  y: str
  b: [1, 2]
`)

	tpl, err := files.Parse(data, "tpl.yaml")
	require.NoError(t, err)

	require.Equal(t, orderedmap.NewMapWithItems([]orderedmap.Item{
		{Key: "z", Value: 1},
		{Key: "a", Value: orderedmap.NewMapWithItems([]orderedmap.Item{
			{Key: "y", Value: "str"},
			{Key: "b", Value: []interface{}{1, 2}},
		})},
	}), tpl)
}

func TestParseYAMLScalarTypes(t *testing.T) {
	tpl, err := files.Parse([]byte(`[1, 1.5, true, null, str]`), "tpl.yml")
	require.NoError(t, err)

	require.Equal(t, []interface{}{1, 1.5, true, nil, "str"}, tpl)
}

func TestParseYAMLEmpty(t *testing.T) {
	tpl, err := files.Parse(nil, "tpl.yaml")
	require.NoError(t, err)
	require.Nil(t, tpl)
}

func TestParseYAMLDuplicateKey(t *testing.T) {
	_, err := files.Parse([]byte("a: 1\na: 2\n"), "tpl.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique")
}

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	data := []byte(`{"z": 1, "a": {"y": "str", "b": [1, 2.5]}}`)

	tpl, err := files.Parse(data, "tpl.json")
	require.NoError(t, err)

	require.Equal(t, orderedmap.NewMapWithItems([]orderedmap.Item{
		{Key: "z", Value: 1},
		{Key: "a", Value: orderedmap.NewMapWithItems([]orderedmap.Item{
			{Key: "y", Value: "str"},
			{Key: "b", Value: []interface{}{1, 2.5}},
		})},
	}), tpl)
}

func TestParseJSON5RelaxedSyntax(t *testing.T) {
	data := []byte(`{
	  // grid axes
	  "a": [1, 2,],
	  /* block comment */
	  "b": true,
	}`)

	tpl, err := files.Parse(data, "tpl.json5")
	require.NoError(t, err)

	require.Equal(t, orderedmap.NewMapWithItems([]orderedmap.Item{
		{Key: "a", Value: []interface{}{1, 2}},
		{Key: "b", Value: true},
	}), tpl)
}

func TestParseYAMLAndJSONAgree(t *testing.T) {
	yamlTpl, err := files.Parse([]byte("a: [1, 2]\nb: str\n"), "tpl.yaml")
	require.NoError(t, err)

	jsonTpl, err := files.Parse([]byte(`{"a": [1, 2], "b": "str"}`), "tpl.json")
	require.NoError(t, err)

	require.Equal(t, yamlTpl, jsonTpl)
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := files.Parse([]byte("a = 1"), "tpl.toml")
	require.Error(t, err)

	var formatErr *files.UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, ".toml", formatErr.Ext)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tpl.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0600))

	tpl, err := files.Load(path)
	require.NoError(t, err)

	require.Equal(t, orderedmap.NewMapWithItems([]orderedmap.Item{{Key: "a", Value: 1}}), tpl)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := files.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yml")
}
