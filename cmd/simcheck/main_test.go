package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunValidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := writeFile(t, dir, "ok.json", `{"size": [2, 2, 2], "structures": [{"geometry": {"type": "sphere", "radius": 0.5}}]}`)
	validYAML := writeFile(t, dir, "ok.yaml", "size: [2, 2, 2]\nmonitors:\n  - type: flux\n    size: [0, 1, 1]\n")
	invalid := writeFile(t, dir, "bad.json", `{"size": [2, 2, 2], "structures": [{"name": "a", "geometry": {"type": "box", "size": [1, 1, 1]}}, {"name": "a", "geometry": {"type": "box", "size": [1, 1, 1]}}]}`)
	unknownExt := writeFile(t, dir, "sim.txt", `{}`)

	cfg := appConfig{Env: "production", LogLevel: "error"}

	t.Run("all files valid", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), cfg, []string{"validate", valid, validYAML}, &stdout, &stderr)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), valid+": OK (1 structures, 0 sources, 0 monitors)")
		assert.Contains(t, stdout.String(), validYAML+": OK (0 structures, 0 sources, 1 monitors)")
	})

	t.Run("one invalid file fails the run", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), cfg, []string{"validate", valid, invalid}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout.String(), valid+": OK")
		assert.Contains(t, stdout.String(), invalid+`: INVALID: Simulation.structures: 'structures' names are not unique, given ["a", "a"].`)
	})

	t.Run("unknown extension", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), cfg, []string{"validate", unknownExt}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout.String(), "unsupported document format")
	})

	t.Run("missing file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), cfg, []string{"validate", filepath.Join(dir, "nope.json")}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Contains(t, stdout.String(), "nope.json: INVALID")
	})

	t.Run("print fills in default names", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), cfg, []string{"validate", "-print", valid}, &stdout, &stderr)

		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), `"name": "structures[0]"`)
	})

	t.Run("reserved name characters", func(t *testing.T) {
		named := writeFile(t, dir, "named.yaml", "name: scan[2]\nsize: [1, 1, 1]\n")

		var stdout, stderr bytes.Buffer
		assert.Equal(t, 0, run(context.Background(), cfg, []string{"validate", named}, &stdout, &stderr))

		strict := cfg
		strict.EnforceReservedNames = true
		stdout.Reset()
		assert.Equal(t, 1, run(context.Background(), strict, []string{"validate", named}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "Simulation.name: '[' or ']' not allowed in name: scan[2] (used for defaults)")
	})
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"unknown command", []string{"lint"}},
		{"validate without files", []string{"validate"}},
		{"bad flag", []string{"validate", "-verbose", "x.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), appConfig{}, tt.args, &stdout, &stderr)
			assert.Equal(t, 2, code)
			assert.NotEmpty(t, stderr.String())
		})
	}
}
