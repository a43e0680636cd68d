// Package testhelpers provides shared test utilities for the autoreg codegen
// packages.
package testhelpers

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files with the generated content")

// AssertGolden compares content with the golden file testdata/golden/<name>.
// Running the tests with -update rewrites the golden file instead.
func AssertGolden(t *testing.T, name string, content []byte) {
	t.Helper()
	AssertGoldenAbs(t, filepath.Join("testdata", "golden", name), content)
}

// AssertGoldenAbs compares content with the golden file at path.
func AssertGoldenAbs(t *testing.T, path string, content []byte) {
	t.Helper()
	if *update {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, content, 0o600))
		return
	}
	want, err := os.ReadFile(path)
	require.NoErrorf(t, err, "read golden file %s (run with -update to create it)", path)
	require.Equal(t, string(want), string(content), "golden file %s", path)
}
