package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"scholarseek/internal/importer"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteSummary writes a run summary in the specified format.
func WriteSummary(w io.Writer, summary importer.RunSummary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	case FormatText:
		fmt.Fprintln(w, summary.String())
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
