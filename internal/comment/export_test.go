package comment

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Yates-Labs/wingman/internal/style"
)

func testComments() []*Comment {
	at := time.Date(2024, 2, 14, 19, 30, 0, 0, time.UTC)
	return []*Comment{
		{Text: "Best trail snack?", Tone: style.ToneComedic, Prompt: "p1", Model: "m", GeneratedAt: at},
		{Text: "Hi there!", Prompt: "p2", Model: "m", GeneratedAt: at},
		nil,
	}
}

func TestExportComments_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportComments(testComments(), "JSON", false, &buf); err != nil {
		t.Fatalf("ExportComments failed: %v", err)
	}

	var exports []CommentExport
	if err := json.Unmarshal(buf.Bytes(), &exports); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if len(exports) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(exports))
	}
	if exports[0].Tone != "comedic" || exports[0].Greeting {
		t.Errorf("unexpected first export %+v", exports[0])
	}
	if !exports[1].Greeting || exports[1].Tone != "" {
		t.Errorf("expected greeting export, got %+v", exports[1])
	}
	if exports[0].Prompt != "" {
		t.Error("prompt should be omitted")
	}
}

func TestExportComments_WithPrompt(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportComments(testComments(), "json", true, &buf); err != nil {
		t.Fatalf("ExportComments failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"prompt": "p1"`) {
		t.Errorf("expected prompt in output:\n%s", buf.String())
	}
}

func TestExportComments_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := ExportComments(testComments(), "xml", false, &buf)
	if err == nil {
		t.Fatal("Expected error for unsupported format, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported export format") {
		t.Errorf("Expected 'unsupported export format' error, got: %v", err)
	}
}
