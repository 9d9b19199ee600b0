package barcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodabarValidate(t *testing.T) {
	enc := codabarEncoder{}

	valid := []string{"0", "123456789", "-$:/.+", "40156", "1-2$3:4/5.6+7"}
	for _, raw := range valid {
		assert.NoError(t, enc.validate(raw), "raw=%q", raw)
	}

	invalid := []string{"", " ", "12 34", "A", "abc", "12;34", "12\n34", "½"}
	for _, raw := range invalid {
		err := enc.validate(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCodabarNormalize_BracketsWithFixedGuard(t *testing.T) {
	enc := codabarEncoder{}
	assert.Equal(t, "A0A", enc.normalize("0"))
	assert.Equal(t, "A40156A", enc.normalize("40156"))
	assert.Equal(t, "A-$:/.+A", enc.normalize("-$:/.+"))
}

func TestCodabarPatternWidths(t *testing.T) {
	// Digits, dash and dollar are 9 cells; the remaining symbols and the
	// guard letters are 10. Every entry is strictly '0'/'1'.
	for ch, pattern := range codabarPatterns {
		switch {
		case ch >= '0' && ch <= '9', ch == '-', ch == '$':
			assert.Len(t, pattern, 9, "char %q", ch)
		default:
			assert.Len(t, pattern, 10, "char %q", ch)
		}
		assert.Equal(t, "", strings.Trim(pattern, "01"), "char %q", ch)
	}
}

func TestCodabarTableCoversCharsetAndGuards(t *testing.T) {
	for _, ch := range codabarCharset + "ABCD" {
		_, ok := codabarPatterns[ch]
		assert.True(t, ok, "missing pattern for %q", ch)
	}
}

func TestCodabarEncode_JoinsWithSeparator(t *testing.T) {
	enc := codabarEncoder{}

	pattern, err := enc.encode("A40156A")
	require.NoError(t, err)

	want := strings.Join([]string{
		codabarPatterns['A'],
		codabarPatterns['4'],
		codabarPatterns['0'],
		codabarPatterns['1'],
		codabarPatterns['5'],
		codabarPatterns['6'],
		codabarPatterns['A'],
	}, "0")
	assert.Equal(t, want, pattern)
}

func TestCodabarEncode_UnmappedCharacter(t *testing.T) {
	enc := codabarEncoder{}

	// encode only sees normalized data in production; feeding it a rune
	// outside the table simulates a validator/table mismatch.
	_, err := enc.encode("A1Z1A")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnmappedCharacter)
}

func TestCodabarDisplayText_StripsAllGuardLetters(t *testing.T) {
	enc := codabarEncoder{}
	assert.Equal(t, "1234", enc.displayText("A1234A"))
	assert.Equal(t, "1234", enc.displayText("B1234C"))
	assert.Equal(t, "-$:/.+", enc.displayText("A-$:/.+D"))
	assert.Equal(t, "", enc.displayText("AA"))
}
