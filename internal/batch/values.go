package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadValues collects barcode values from positional arguments and an
// optional values file. A file name of "-" reads from stdin. Blank
// lines and lines starting with '#' are skipped.
func ReadValues(args []string, valuesFile string) ([]string, error) {
	values := make([]string, 0, len(args))
	values = append(values, args...)

	if valuesFile == "" {
		return values, nil
	}

	var reader io.Reader
	if valuesFile == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(valuesFile) //nolint:gosec // G304: values file path is expected user input
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", valuesFile, err)
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	fileValues, err := scanValues(reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", valuesFile, err)
	}

	return append(values, fileValues...), nil
}

// scanValues reads one value per line, skipping blanks and comments.
func scanValues(r io.Reader) ([]string, error) {
	var values []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}

	return values, scanner.Err()
}
