package barcode

import (
	"fmt"
	"strings"
)

// code39Charset is the plain Code 39 payload alphabet. The asterisk is
// the reserved start/stop guard and is not valid payload.
const code39Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

const code39Guard = "*"

// code39Patterns maps each Code 39 character to its bar/space cells.
// Every symbol is nine elements (five bars, four spaces) of which three
// are wide; with wide elements spanning two cells each symbol occupies a
// uniform 12 cells.
var code39Patterns = map[rune]string{
	'0': "101001101101",
	'1': "110100101011",
	'2': "101100101011",
	'3': "110110010101",
	'4': "101001101011",
	'5': "110100110101",
	'6': "101100110101",
	'7': "101001011011",
	'8': "110100101101",
	'9': "101100101101",
	'A': "110101001011",
	'B': "101101001011",
	'C': "110110100101",
	'D': "101011001011",
	'E': "110101100101",
	'F': "101101100101",
	'G': "101010011011",
	'H': "110101001101",
	'I': "101101001101",
	'J': "101011001101",
	'K': "110101010011",
	'L': "101101010011",
	'M': "110110101001",
	'N': "101011010011",
	'O': "110101101001",
	'P': "101101101001",
	'Q': "101010110011",
	'R': "110101011001",
	'S': "101101011001",
	'T': "101011011001",
	'U': "110010101011",
	'V': "100110101011",
	'W': "110011010101",
	'X': "100101101011",
	'Y': "110010110101",
	'Z': "100110110101",
	'-': "100101011011",
	'.': "110010101101",
	' ': "100110101101",
	'$': "100100100101",
	'/': "100100101001",
	'+': "100101001001",
	'%': "101001001001",
	'*': "100101101101",
}

type code39Encoder struct{}

// validate accepts the Code 39 alphabet case-insensitively; lower-case
// letters are folded during normalization.
func (code39Encoder) validate(raw string) error {
	if !inCharset(strings.ToUpper(raw), code39Charset) {
		return fmt.Errorf("%w: code39 accepts one or more of [0-9A-Z-. $/+%%], got %q", ErrInvalidInput, raw)
	}
	return nil
}

func (code39Encoder) normalize(raw string) string {
	return code39Guard + strings.ToUpper(raw) + code39Guard
}

func (code39Encoder) encode(normalized string) (string, error) {
	return joinPatterns(normalized, code39Patterns)
}

func (code39Encoder) displayText(normalized string) string {
	return strings.ReplaceAll(normalized, code39Guard, "")
}

func (code39Encoder) info() Info {
	return Info{
		Format:  FormatCode39,
		Name:    FormatCode39.String(),
		Charset: code39Charset,
		Guard:   code39Guard,
		Encodes: true,
	}
}
