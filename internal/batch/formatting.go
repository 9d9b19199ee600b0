package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
)

// formatReport formats the batch results in the specified format.
func formatReport(items []Item, format string) (string, error) {
	switch format {
	case "json":
		return formatJSON(items)
	case "csv":
		return formatCSV(items)
	default: // text
		return formatText(items)
	}
}

// formatJSON formats the report as indented JSON.
func formatJSON(items []Item) (string, error) {
	report := struct {
		Barcodes []Item `json:"barcodes"`
	}{Barcodes: items}

	bts, err := json.MarshalIndent(report, "", "  ")
	return string(bts), err
}

// formatCSV formats the report as CSV.
func formatCSV(items []Item) (string, error) {
	csvData := [][]string{
		{"value", "format", "normalized", "display_text", "pattern", "file", "error"},
	}

	for _, item := range items {
		csvData = append(csvData, []string{
			item.Value,
			item.Format,
			item.Normalized,
			item.Display,
			item.Pattern,
			item.File,
			item.Error,
		})
	}

	var output strings.Builder
	writer := csv.NewWriter(&output)
	for _, row := range csvData {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return output.String(), nil
}

// formatText formats the report as plain text.
func formatText(items []Item) (string, error) {
	var output strings.Builder

	for i, item := range items {
		if i > 0 {
			output.WriteString("\n")
		}
		output.WriteString(fmt.Sprintf("# %s\n", item.Value))

		if item.Error != "" {
			output.WriteString(fmt.Sprintf("error: %s\n", item.Error))
			continue
		}

		output.WriteString(fmt.Sprintf("%s %s\n", item.Format, item.Display))
		output.WriteString(fmt.Sprintf("pattern: %s\n", item.Pattern))
		if item.File != "" {
			output.WriteString(fmt.Sprintf("file: %s\n", item.File))
		}
	}

	return output.String(), nil
}
