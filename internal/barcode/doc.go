// Package barcode encodes text into linear (1-D) barcode bit patterns.
//
// Each supported symbology defines a character grammar, a normalization
// rule (guard/start/stop insertion), and an immutable character-to-pattern
// table. Encoding maps every character of the normalized data through the
// table and joins adjacent patterns with a single '0' separator module,
// producing one flat string of '1' (bar) and '0' (space) cells for a
// renderer to consume.
//
// The tables are package-level constants with no lifecycle; all operations
// are pure functions over immutable values and are safe for concurrent use.
package barcode
