package barcode

import (
	"fmt"
	"strings"
)

// codabarCharset is the payload alphabet; the guard letters A-D are
// reserved for start/stop framing and are not valid payload characters.
const codabarCharset = "0123456789-$:/.+"

// codabarGuard is the fixed start/stop character wrapped around every
// payload. The standard reserves four guard letters (A-D) so readers can
// detect orientation and symbol boundaries; this implementation always
// frames with 'A' rather than exposing the choice per call. The table
// still carries all four letters for display stripping.
const codabarGuard = "A"

// codabarPatterns maps each Codabar character to its bar/space cells.
// Digits and the dash and dollar symbols occupy 9 cells; the remaining
// symbols and the guard letters occupy 10.
var codabarPatterns = map[rune]string{
	'0': "101010011",
	'1': "101011001",
	'2': "101001011",
	'3': "110010101",
	'4': "101101001",
	'5': "110101001",
	'6': "100101011",
	'7': "100101101",
	'8': "100110101",
	'9': "110100101",
	'-': "101001101",
	'$': "101100101",
	':': "1101011011",
	'/': "1101101011",
	'.': "1101101101",
	'+': "1011011011",
	'A': "1011001001",
	'B': "1001001011",
	'C': "1010010011",
	'D': "1010011001",
}

type codabarEncoder struct{}

func (codabarEncoder) validate(raw string) error {
	if !inCharset(raw, codabarCharset) {
		return fmt.Errorf("%w: codabar accepts one or more of [0-9-$:/.+], got %q", ErrInvalidInput, raw)
	}
	return nil
}

func (codabarEncoder) normalize(raw string) string {
	return codabarGuard + strings.ToUpper(raw) + codabarGuard
}

func (codabarEncoder) encode(normalized string) (string, error) {
	return joinPatterns(normalized, codabarPatterns)
}

// displayText strips the guard letters so the caption shows only the
// payload, e.g. "A1234A" renders as "1234".
func (codabarEncoder) displayText(normalized string) string {
	return strings.Map(func(ch rune) rune {
		if ch >= 'A' && ch <= 'D' {
			return -1
		}
		return ch
	}, normalized)
}

func (codabarEncoder) info() Info {
	return Info{
		Format:  FormatCodabar,
		Name:    FormatCodabar.String(),
		Charset: codabarCharset,
		Guard:   codabarGuard,
		Encodes: true,
	}
}
