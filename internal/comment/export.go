package comment

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// ExportFormat represents supported export formats
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
)

// CommentExport is the exported view of a generated comment.
type CommentExport struct {
	Text        string    `json:"text"`
	Tone        string    `json:"tone"`
	Greeting    bool      `json:"greeting"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
	Prompt      string    `json:"prompt,omitempty"`
}

// ExportComments writes comments to writer in the given format.
// Prompts are included only when withPrompt is set.
func ExportComments(comments []*Comment, format string, withPrompt bool, writer io.Writer) error {
	exportFormat := ExportFormat(strings.ToLower(format))
	if exportFormat != FormatJSON {
		return fmt.Errorf("unsupported export format: %s (supported: json)", format)
	}

	exports := make([]CommentExport, 0, len(comments))
	for _, c := range comments {
		if c == nil {
			continue
		}
		e := CommentExport{
			Text:        c.Text,
			Tone:        string(c.Tone),
			Greeting:    c.Tone == "",
			Model:       c.Model,
			GeneratedAt: c.GeneratedAt,
		}
		if withPrompt {
			e.Prompt = c.Prompt
		}
		exports = append(exports, e)
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exports)
}
