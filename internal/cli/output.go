package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// formatValue renders one number at the fixed text precision.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', valuePrecision, 64)
}

// formatRow renders a sample time and its components as one text line.
func formatRow(t float64, components []float64) string {
	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = formatValue(c)
	}
	return formatValue(t) + "\t" + strings.Join(parts, componentDivider)
}
