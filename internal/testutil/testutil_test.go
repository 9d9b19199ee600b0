package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)
	assert.True(t, FileExists(filepath.Join(root, "go.mod")))
}

func TestGetProjectRootValidated(t *testing.T) {
	root, err := GetProjectRootValidated()
	require.NoError(t, err)
	assert.True(t, DirExists(filepath.Join(root, "internal")))
	assert.True(t, DirExists(filepath.Join(root, "cmd")))
}

func TestGetTestDataDir(t *testing.T) {
	testDataDir := GetTestDataDir(t)
	assert.NotEmpty(t, testDataDir)
	assert.Contains(t, testDataDir, "testdata")
}

func TestGetValuesDir(t *testing.T) {
	assert.Contains(t, GetValuesDir(t), filepath.Join("testdata", "values"))
}

func TestEnsureDirAndExists(t *testing.T) {
	tempDir := CreateTempDir(t)
	nested := filepath.Join(tempDir, "a", "b")

	require.NoError(t, EnsureDir(nested))
	assert.True(t, DirExists(nested))
	assert.False(t, FileExists(filepath.Join(nested, "missing.txt")))
}

func TestWriteValuesFile(t *testing.T) {
	path := filepath.Join(CreateTempDir(t), "values", "input.txt")
	WriteValuesFile(t, path, []string{"40156", "0", "123-456"})

	data, err := os.ReadFile(path) //nolint:gosec // G304: test path
	require.NoError(t, err)
	assert.Equal(t, "40156\n0\n123-456\n", string(data))
}

func TestValidateProjectRoot_Invalid(t *testing.T) {
	err := ValidateProjectRoot(CreateTempDir(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "go.mod")
}
