package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEncodeFixtures(t *testing.T) {
	fixtures := LoadEncodeFixtures(t)
	require.NotEmpty(t, fixtures)

	names := make(map[string]bool, len(fixtures))
	for _, f := range fixtures {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Value)
		assert.NotEmpty(t, f.Format)
		assert.NotEmpty(t, f.Pattern)
		assert.False(t, names[f.Name], "duplicate fixture name %q", f.Name)
		names[f.Name] = true
	}
}

func TestSaveEncodeFixtures_RoundTrip(t *testing.T) {
	fixtures := []EncodeFixture{
		{
			Name:        "codabar 0",
			Value:       "0",
			Format:      "codabar",
			Normalized:  "A0A",
			Pattern:     "1011001001010101001101011001001",
			DisplayText: "0",
		},
	}

	path := filepath.Join(CreateTempDir(t), "fixtures", "vectors.json")
	SaveEncodeFixtures(t, path, fixtures)
	RequireFileNonEmpty(t, path)
}
