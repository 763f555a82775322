// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.hujson")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_HuJSONWithCommentsAndTrailingCommas(t *testing.T) {
	path := writeConfig(t, `{
		// ring geometry
		"capacity": 256,
		"elem_size": 32,
		"duration": "500ms",
		"mmap": true, // trailing comma next
	}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.Capacity)
	require.Equal(t, 32, cfg.ElemSize)
	require.Equal(t, "500ms", cfg.Duration)
	require.True(t, cfg.UseMmap)
	require.False(t, cfg.Journal)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"capacity": 64}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Capacity)
	require.Equal(t, DefaultConfig().ElemSize, cfg.ElemSize)
	require.Equal(t, DefaultConfig().Duration, cfg.Duration)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"capacity too small", `{"capacity": 1}`},
		{"elem size too small", `{"elem_size": 4}`},
		{"bad duration", `{"duration": "fast"}`},
		{"negative duration", `{"duration": "-1s"}`},
		{"not json", `{{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.hujson"))
	require.Error(t, err)
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
