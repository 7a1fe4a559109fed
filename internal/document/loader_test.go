package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadText(t *testing.T) {
	content := strings.Repeat("cloud computing provides on-demand resources. ", 10)
	path := writeFile(t, "doc.txt", content)

	text, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText() error = %v", err)
	}
	if text != content {
		t.Error("loaded text differs from file content")
	}
}

func TestLoadTextRejections(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"too short", "short.txt", "tiny"},
		{"whitespace only", "blank.md", strings.Repeat(" \n", 200)},
		{"unsupported format", "doc.pdf", strings.Repeat("text ", 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := LoadText(path); err == nil {
				t.Error("LoadText() expected error")
			}
		})
	}
}

func TestLoadTextMissingFile(t *testing.T) {
	if _, err := LoadText(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("LoadText() expected error for missing file")
	}
}
