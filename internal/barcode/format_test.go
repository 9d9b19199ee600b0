package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "codabar", FormatCodabar.String())
	assert.Equal(t, "upca", FormatUPCA.String())
	assert.Equal(t, "code39", FormatCode39.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{name: "codabar", want: FormatCodabar},
		{name: "Codabar", want: FormatCodabar},
		{name: "CODABAR", want: FormatCodabar},
		{name: "upc", want: FormatUPCA},
		{name: "upca", want: FormatUPCA},
		{name: "UPC-A", want: FormatUPCA},
		{name: "upc_a", want: FormatUPCA},
		{name: "code39", want: FormatCode39},
		{name: "Code-39", want: FormatCode39},
		{name: "code_39", want: FormatCode39},
		{name: " codabar ", want: FormatCodabar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	for _, name := range []string{"", "ean13", "qr", "barcode"} {
		_, err := ParseFormat(name)
		require.Error(t, err, "name=%q", name)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestSymbologies(t *testing.T) {
	infos := Symbologies()
	require.Len(t, infos, len(Formats()))

	byName := make(map[string]Info, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}

	codabar := byName["codabar"]
	assert.True(t, codabar.Encodes)
	assert.Equal(t, "A", codabar.Guard)
	assert.Contains(t, codabar.Charset, "$")

	upca := byName["upca"]
	assert.False(t, upca.Encodes)
	assert.Empty(t, upca.Guard)

	code39 := byName["code39"]
	assert.True(t, code39.Encodes)
	assert.Equal(t, "*", code39.Guard)
}
