package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// EncodeFixture is a golden encode vector: a raw value plus the
// normalized form, bar pattern and display label it must produce.
type EncodeFixture struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Format      string `json:"format"`
	Normalized  string `json:"normalized"`
	Pattern     string `json:"pattern"`
	DisplayText string `json:"display_text"`
}

// GetFixturesDir returns the path to the test fixtures directory.
func GetFixturesDir(t *testing.T) string {
	t.Helper()

	return filepath.Join(GetTestDataDir(t), "fixtures")
}

// LoadEncodeFixtures reads the golden encode vectors shipped under
// testdata/fixtures.
func LoadEncodeFixtures(t *testing.T) []EncodeFixture {
	t.Helper()

	path := filepath.Join(GetFixturesDir(t), "encode_vectors.json")
	data, err := os.ReadFile(path) //nolint:gosec // G304: Reading repo-local fixture file
	require.NoError(t, err, "Failed to read fixture file %s", path)

	var fixtures []EncodeFixture
	require.NoError(t, json.Unmarshal(data, &fixtures), "Failed to parse %s", path)
	require.NotEmpty(t, fixtures, "fixture file %s has no entries", path)

	return fixtures
}

// SaveEncodeFixtures writes golden encode vectors as JSON, used by
// fixture maintenance helpers and tests.
func SaveEncodeFixtures(t *testing.T, path string, fixtures []EncodeFixture) {
	t.Helper()

	require.NoError(t, EnsureDir(filepath.Dir(path)))

	data, err := json.MarshalIndent(fixtures, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}
