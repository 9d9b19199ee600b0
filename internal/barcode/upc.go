package barcode

import "fmt"

// upcaEncoder accepts UPC-A input but cannot yet produce bars. Canonical
// UPC-A carries a computed 12th checksum digit and encodes digits with
// distinct left/right parity patterns plus fixed guard runs; neither the
// checksum nor the pattern tables are implemented, so encoding fails
// loudly instead of emitting an empty or misleading pattern.
type upcaEncoder struct{}

// validate accepts a string of exactly 11 or 12 digits: either a payload
// awaiting its checksum digit or a full code with the checksum already
// present.
func (upcaEncoder) validate(raw string) error {
	if !isDigits(raw) || (len(raw) != 11 && len(raw) != 12) {
		return fmt.Errorf("%w: upca requires 11 or 12 digits, got %q", ErrInvalidInput, raw)
	}
	return nil
}

func (upcaEncoder) normalize(raw string) string {
	return raw
}

func (upcaEncoder) encode(string) (string, error) {
	return "", fmt.Errorf("%w: upca bar encoding", ErrNotImplemented)
}

func (upcaEncoder) displayText(normalized string) string {
	return normalized
}

func (upcaEncoder) info() Info {
	return Info{
		Format:  FormatUPCA,
		Name:    FormatUPCA.String(),
		Charset: "0123456789",
		Guard:   "",
		Encodes: false,
	}
}

// computeChecksum is the extension point for deriving the 12th UPC-A
// digit from an 11-digit payload. The algorithm is deliberately left
// unimplemented.
func computeChecksum(string) (byte, error) {
	return 0, fmt.Errorf("%w: upca checksum computation", ErrNotImplemented)
}
