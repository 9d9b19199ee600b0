package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/bargo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadValues_ArgsOnly(t *testing.T) {
	values, err := ReadValues([]string{"111", "222"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222"}, values)
}

func TestReadValues_Empty(t *testing.T) {
	values, err := ReadValues(nil, "")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestReadValues_File(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "values.txt")
	testutil.WriteValuesFile(t, path, []string{
		"# product codes",
		"40156",
		"",
		"  90210  ",
		"# trailing comment",
		"123-456",
	})

	values, err := ReadValues(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"40156", "90210", "123-456"}, values)
}

func TestReadValues_ArgsAndFile(t *testing.T) {
	path := filepath.Join(testutil.CreateTempDir(t), "values.txt")
	testutil.WriteValuesFile(t, path, []string{"333"})

	values, err := ReadValues([]string{"111", "222"}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222", "333"}, values)
}

func TestReadValues_SampleFixture(t *testing.T) {
	path := filepath.Join(testutil.GetValuesDir(t), "orders.txt")

	values, err := ReadValues(nil, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"40156", "2030", "4153", "123-456", "$9.99"}, values)
}

func TestReadValues_MissingFile(t *testing.T) {
	_, err := ReadValues(nil, "/nonexistent/values.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access")
}

func TestReadValues_Stdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	original := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = original }()

	_, err = w.WriteString("123\n# skip\n456\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	values, err := ReadValues(nil, "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"123", "456"}, values)
}
