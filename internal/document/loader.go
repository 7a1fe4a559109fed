package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// minTextLength guards against running extraction over an empty or
// near-empty document; such input produces noise, not terms.
const minTextLength = 100

// LoadText reads a document's text for extraction. Plain-text formats are
// read as-is; .docx files have their paragraph text extracted.
func LoadText(path string) (string, error) {
	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".srt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		text = string(data)
	case ".docx":
		var err error
		text, err = loadDocx(path)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported document format %q", filepath.Ext(path))
	}

	if len(strings.TrimSpace(text)) < minTextLength {
		return "", fmt.Errorf("document text is too short or empty")
	}

	return text, nil
}
