package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moduleFiles = map[string]string{
	"go.mod": "module example.com/tmp\n\ngo 1.23\n",
	"registry.go": `package tmp

type Registry struct{ names map[string]any }

func (r *Registry) Contains(name string) bool { _, ok := r.names[name]; return ok }
func (r *Registry) Remove(name string)        { delete(r.names, name) }

type Module struct{ registry Registry }

func (m *Module) Submodules() *Registry { return &m.registry }

func (m *Module) RegisterModule(name string, v any) {
	if m.registry.names == nil {
		m.registry.names = map[string]any{}
	}
	m.registry.names[name] = v
}
`,
	"model.go": `package tmp

type Model struct {
	Module
	child   *Model ` + "`autoreg:\"\"`" + `
	Already int    ` + "`autoreg:\"\"`" + `
}
`,
}

// tempModule writes a module with one healthy and one diagnosed tagged
// field and makes it the working directory.
func tempModule(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	for name, content := range moduleFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := tempModule(t)
	generated := filepath.Join(dir, "Model_child_autoreg.go")

	stdout, stderr, err := execute(t, "generate", "--keep-going", ".")
	require.NoError(t, err)
	assert.Equal(t, "written "+generated+"\n", stdout)
	assert.Contains(t, stderr, "accessor-collision")
	content, err := os.ReadFile(generated)
	require.NoError(t, err)
	assert.Contains(t, string(content), "func (m *Model) SetChild(v *Model) {")

	stdout, _, err = execute(t, "generate", "--keep-going", ".")
	require.NoError(t, err)
	assert.Empty(t, stdout, "unchanged files are not rewritten")
}

func TestGenerateCommand_Diagnosed(t *testing.T) {
	dir := tempModule(t)

	_, _, err := execute(t, "generate", ".")

	require.ErrorIs(t, err, errDiagnosed)
	assert.FileExists(t, filepath.Join(dir, "Model_child_autoreg.go"))
}

func TestGenerateCommand_DryRun(t *testing.T) {
	dir := tempModule(t)

	stdout, _, err := execute(t, "generate", "--keep-going", "--dry-run", ".")

	require.NoError(t, err)
	assert.Contains(t, stdout, "written")
	assert.NoFileExists(t, filepath.Join(dir, "Model_child_autoreg.go"))
}

func TestGenerateCommand_Prune(t *testing.T) {
	dir := tempModule(t)
	stale := filepath.Join(dir, "Model_gone_autoreg.go")
	src := "// Code generated by autoreg. DO NOT EDIT.\n\npackage tmp\n\nfunc (m *Model) Gone() int { return m.gone }\n"
	require.NoError(t, os.WriteFile(stale, []byte(src), 0o600))

	stdout, _, err := execute(t, "generate", "--keep-going", "--prune", ".")

	require.NoError(t, err)
	assert.Contains(t, stdout, "removed "+stale)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(dir, "Model_child_autoreg.go"))
}

func TestGenerateCommand_BuildConstraint(t *testing.T) {
	dir := tempModule(t)
	src := "//go:build extra\n\npackage tmp\n\ntype Extra struct {\n\tModule\n\tchild *Model `autoreg:\"\"`\n}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "model_extra.go"), []byte(src), 0o600))
	generated := filepath.Join(dir, "Extra_child_autoreg.go")

	_, _, err := execute(t, "generate", "--keep-going", "--tags", "extra", ".")
	require.NoError(t, err)
	content, err := os.ReadFile(generated)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "// Code generated by autoreg. DO NOT EDIT.\n\n//go:build extra\n\npackage tmp\n"))

	// An untagged run neither sees the gated field nor prunes its file.
	stdout, _, err := execute(t, "generate", "--keep-going", "--prune", ".")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Extra_child")
	assert.FileExists(t, generated)
}
