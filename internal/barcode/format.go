package barcode

import (
	"fmt"
	"strings"
)

// Format identifies a barcode symbology.
type Format int

const (
	FormatUnknown Format = iota
	FormatCodabar
	FormatUPCA
	FormatCode39
)

// String returns the canonical lower-case name used in filenames,
// CLI flags and API payloads.
func (f Format) String() string {
	switch f {
	case FormatCodabar:
		return "codabar"
	case FormatUPCA:
		return "upca"
	case FormatCode39:
		return "code39"
	default:
		return "unknown"
	}
}

// ParseFormat resolves a symbology name to its Format. Matching is
// case-insensitive and tolerant of common aliases ("upc", "upc-a",
// "code-39", "code_39").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "codabar":
		return FormatCodabar, nil
	case "upc", "upca", "upc-a", "upc_a":
		return FormatUPCA, nil
	case "code39", "code-39", "code_39":
		return FormatCode39, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: unknown symbology %q", ErrInvalidInput, name)
	}
}

// Formats lists the supported symbologies in a stable order.
func Formats() []Format {
	return []Format{FormatCodabar, FormatUPCA, FormatCode39}
}

// Info describes a symbology for listings and API discovery.
type Info struct {
	Format  Format `json:"-"`
	Name    string `json:"name"`
	Charset string `json:"charset"`
	Guard   string `json:"guard"`
	Encodes bool   `json:"encodes"`
}

// Symbologies returns descriptive metadata for every supported format.
func Symbologies() []Info {
	infos := make([]Info, 0, len(Formats()))
	for _, f := range Formats() {
		infos = append(infos, encoders[f].info())
	}
	return infos
}
