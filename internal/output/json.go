package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twiced-technology-gmbh/taskreport/internal/clierr"
)

// JSON writes data as indented JSON to the given writer.
func JSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorResponse is the JSON envelope for structured error output.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// Error writes err to w in the given format and returns the process exit
// code. JSON gets the error envelope; other formats get the bare message.
func Error(w io.Writer, format Format, err error) int {
	cliErr := clierr.From(err)
	if format != FormatJSON {
		fmt.Fprintln(w, err)
		return cliErr.ExitCode()
	}
	resp := ErrorResponse{Error: cliErr.Message, Code: cliErr.Code, Details: cliErr.Details}
	_ = JSON(w, resp) // best-effort; if writer fails, nothing we can do
	return cliErr.ExitCode()
}

// ColumnInfo describes a registered column for JSON output.
type ColumnInfo struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Styles   []string `json:"styles"`
	Examples []string `json:"examples"`
}
