package batch

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MeKo-Tech/bargo/internal/pdf"
	"github.com/MeKo-Tech/bargo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessBatch_NoValues(t *testing.T) {
	config := &Config{
		Format:  "codabar",
		Workers: 1,
		Quiet:   true,
	}

	result, err := ProcessBatch(context.Background(), []string{}, config)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no values provided")
}

func TestProcessBatch_InvalidFormat(t *testing.T) {
	config := &Config{
		Format:  "qrcode",
		Workers: 1,
		Quiet:   true,
	}

	result, err := ProcessBatch(context.Background(), []string{"123"}, config)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestProcessBatch_GeneratesImages(t *testing.T) {
	outputDir := testutil.CreateTempDir(t)

	config := &Config{
		Format:           "codabar",
		QuietZone:        4,
		OutputDir:        outputDir,
		Workers:          1,
		Quiet:            true,
		ProgressInterval: time.Millisecond * 100,
	}

	result, err := ProcessBatch(context.Background(), []string{"111", "40156"}, config)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Succeeded())
	assert.Equal(t, 0, result.Failed())
	assert.Greater(t, result.Duration, time.Duration(0))
	assert.Equal(t, 1, result.WorkerCount)

	assert.Equal(t, filepath.Join(outputDir, "codabar-A111A.png"), result.Items[0].File)
	assert.True(t, testutil.FileExists(result.Items[0].File))
	assert.True(t, testutil.FileExists(result.Items[1].File))
	assert.NotEmpty(t, result.Items[0].Pattern)
	assert.Equal(t, "A111A", result.Items[0].Normalized)
	assert.Equal(t, "111", result.Items[0].Display)
}

func TestProcessBatch_ValuesFile(t *testing.T) {
	outputDir := testutil.CreateTempDir(t)
	valuesFile := filepath.Join(testutil.CreateTempDir(t), "values.txt")
	testutil.WriteValuesFile(t, valuesFile, []string{"# comment", "123", "", "456"})

	config := &Config{
		Format:     "codabar",
		ValuesFile: valuesFile,
		OutputDir:  outputDir,
		Workers:    2,
		Quiet:      true,
	}

	result, err := ProcessBatch(context.Background(), nil, config)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "123", result.Items[0].Value)
	assert.Equal(t, "456", result.Items[1].Value)
}

func TestProcessBatch_FailFast(t *testing.T) {
	config := &Config{
		Format:    "codabar",
		OutputDir: testutil.CreateTempDir(t),
		Workers:   1,
		Quiet:     true,
	}

	result, err := ProcessBatch(context.Background(), []string{"bad value", "111"}, config)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "batch generation failed")
}

func TestProcessBatch_ContinueOnError(t *testing.T) {
	outputDir := testutil.CreateTempDir(t)

	config := &Config{
		Format:          "codabar",
		OutputDir:       outputDir,
		Workers:         1,
		Quiet:           true,
		ContinueOnError: true,
	}

	result, err := ProcessBatch(context.Background(), []string{"bad value", "111"}, config)
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Succeeded())
	assert.Equal(t, 1, result.Failed())

	assert.NotEmpty(t, result.Items[0].Error)
	assert.Empty(t, result.Items[0].File)
	assert.Empty(t, result.Items[1].Error)
	assert.True(t, testutil.FileExists(result.Items[1].File))
}

func TestProcessBatch_NotImplementedSymbology(t *testing.T) {
	config := &Config{
		Format:          "upc",
		OutputDir:       testutil.CreateTempDir(t),
		Workers:         1,
		Quiet:           true,
		ContinueOnError: true,
	}

	result, err := ProcessBatch(context.Background(), []string{"03600029145"}, config)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Contains(t, result.Items[0].Error, "not implemented")
}

func TestProcessBatch_WithPDFSheet(t *testing.T) {
	outputDir := testutil.CreateTempDir(t)
	pdfFile := filepath.Join(outputDir, "labels.pdf")

	config := &Config{
		Format:    "codabar",
		OutputDir: outputDir,
		PDFFile:   pdfFile,
		Workers:   1,
		Quiet:     true,
	}

	result, err := ProcessBatch(context.Background(), []string{"111", "222"}, config)
	require.NoError(t, err)
	assert.Equal(t, pdfFile, result.PDFFile)
	testutil.RequireFileNonEmpty(t, pdfFile)

	pages, err := pdf.PageCount(pdfFile)
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
}

func TestProcessBatch_UnsupportedImageExt(t *testing.T) {
	config := &Config{
		Format:   "codabar",
		ImageExt: "gif",
		Workers:  1,
		Quiet:    true,
	}

	_, err := ProcessBatch(context.Background(), []string{"123"}, config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported image format")
}

func TestProcessBatch_JPEGOutput(t *testing.T) {
	outputDir := testutil.CreateTempDir(t)

	config := &Config{
		Format:    "codabar",
		OutputDir: outputDir,
		ImageExt:  "jpg",
		Workers:   1,
		Quiet:     true,
	}

	result, err := ProcessBatch(context.Background(), []string{"777"}, config)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, filepath.Join(outputDir, "codabar-A777A.jpg"), result.Items[0].File)
	assert.True(t, testutil.FileExists(result.Items[0].File))
}

func TestProcessBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := &Config{
		Format:    "codabar",
		OutputDir: testutil.CreateTempDir(t),
		Workers:   2,
		Quiet:     true,
	}

	values := make([]string, 50)
	for i := range values {
		values[i] = "123"
	}

	result, err := ProcessBatch(ctx, values, config)
	require.Error(t, err)
	assert.Nil(t, result)
}
