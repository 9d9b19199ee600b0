package barcode

import "errors"

var (
	// ErrInvalidInput reports raw data that fails a symbology's character
	// or length grammar. Surfaced at validation time, before any encoding.
	ErrInvalidInput = errors.New("barcode: invalid input")

	// ErrUnmappedCharacter reports normalized data containing a character
	// absent from the symbology table. Validation guarantees table
	// coverage, so hitting this indicates a validator/table mismatch bug
	// rather than a user error.
	ErrUnmappedCharacter = errors.New("barcode: character not in symbology table")

	// ErrNotImplemented reports a symbology capability that has no defined
	// algorithm yet, such as UPC-A bar encoding and checksum computation.
	ErrNotImplemented = errors.New("barcode: not implemented")
)
