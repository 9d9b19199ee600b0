package barcode

import "fmt"

// Options carries caller-supplied encoding options. Unknown settings are
// rejected at the type level by keeping the set explicit.
type Options struct {
	// Text overrides the default display label when non-empty.
	Text string
}

// Barcode is an immutable, validated barcode value. Construction via New
// runs validation and normalization; encoding and display text are pure
// derivations recomputed per call, so values can be shared freely across
// goroutines.
type Barcode struct {
	raw        string
	normalized string
	format     Format
	opts       Options
}

// New validates raw against the symbology's grammar and returns the
// normalized barcode value. Invalid input fails with ErrInvalidInput
// before any encoding or rendering is attempted.
func New(raw string, format Format, opts Options) (*Barcode, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported symbology %d", ErrInvalidInput, format)
	}
	if err := enc.validate(raw); err != nil {
		return nil, err
	}
	return &Barcode{
		raw:        raw,
		normalized: enc.normalize(raw),
		format:     format,
		opts:       opts,
	}, nil
}

// RawData returns the user-supplied input, pre-normalization.
func (b *Barcode) RawData() string { return b.raw }

// NormalizedData returns the data actually encoded, including any guard
// characters added during normalization.
func (b *Barcode) NormalizedData() string { return b.normalized }

// Format returns the barcode's symbology.
func (b *Barcode) Format() Format { return b.format }

// DisplayText returns the human-readable label: the Text option when
// set, otherwise the symbology's default with structural characters
// stripped.
func (b *Barcode) DisplayText() string {
	if b.opts.Text != "" {
		return b.opts.Text
	}
	return encoders[b.format].displayText(b.normalized)
}

// Encode produces the bar pattern for the normalized data: one '1' or
// '0' per cell, left to right. For data that passed validation the
// lookup is total; UPC-A fails with ErrNotImplemented.
func (b *Barcode) Encode() (string, error) {
	return encoders[b.format].encode(b.normalized)
}
