package barcode

import (
	"fmt"
	"strings"
)

// encoder is the per-symbology capability set. Every Format has exactly
// one implementation; the set is closed and dispatched via the encoders
// registry so coverage stays exhaustive.
type encoder interface {
	// validate checks raw input against the symbology's character and
	// length grammar, returning ErrInvalidInput on failure.
	validate(raw string) error

	// normalize transforms validated raw input into the form that is
	// actually encoded, e.g. upper-casing and guard bracketing.
	normalize(raw string) string

	// encode maps normalized data to a flat '1'/'0' bar pattern.
	encode(normalized string) (string, error)

	// displayText derives the default human-readable label from
	// normalized data, typically with structural characters removed.
	displayText(normalized string) string

	// info reports the symbology's descriptive metadata.
	info() Info
}

var encoders = map[Format]encoder{
	FormatCodabar: codabarEncoder{},
	FormatUPCA:    upcaEncoder{},
	FormatCode39:  code39Encoder{},
}

// LookupPattern returns the bar/space pattern for ch in the given
// symbology's table. Characters outside the table fail with
// ErrUnmappedCharacter.
func LookupPattern(f Format, ch rune) (string, error) {
	table, err := patternTable(f)
	if err != nil {
		return "", err
	}
	pattern, ok := table[ch]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrUnmappedCharacter, ch, f)
	}
	return pattern, nil
}

func patternTable(f Format) (map[rune]string, error) {
	switch f {
	case FormatCodabar:
		return codabarPatterns, nil
	case FormatCode39:
		return code39Patterns, nil
	case FormatUPCA:
		return nil, fmt.Errorf("%w: upca pattern table", ErrNotImplemented)
	default:
		return nil, fmt.Errorf("%w: unknown symbology %d", ErrInvalidInput, f)
	}
}

// joinPatterns concatenates the table pattern of every rune in
// normalized, separated by a single '0' space module between adjacent
// symbols. A lookup miss aborts the whole encoding; partial patterns
// are never returned.
func joinPatterns(normalized string, table map[rune]string) (string, error) {
	var sb strings.Builder
	for i, ch := range normalized {
		pattern, ok := table[ch]
		if !ok {
			return "", fmt.Errorf("%w: %q at index %d", ErrUnmappedCharacter, ch, i)
		}
		if i > 0 {
			sb.WriteByte('0')
		}
		sb.WriteString(pattern)
	}
	return sb.String(), nil
}

// inCharset reports whether s is non-empty and built entirely from
// runes of allowed. This is a whole-string membership check, not a
// substring search.
func inCharset(s, allowed string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !strings.ContainsRune(allowed, ch) {
			return false
		}
	}
	return true
}

// isDigits reports whether s is non-empty and consists solely of ASCII
// digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
