// Package notes loads supplemental context for the analysis prompt, such as
// speaker notes or slides exported to PDF.
package notes

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxLen caps how much notes text is appended to the prompt.
const maxLen = 8000

// Load reads notes from a .pdf, .txt, or .md file and truncates the text to
// a prompt-friendly length at a paragraph boundary.
func Load(path string) (string, error) {
	var text string

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		var err error
		text, err = readPDF(path)
		if err != nil {
			return "", fmt.Errorf("notes: read pdf %q: %w", path, err)
		}
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("notes: read %q: %w", path, err)
		}
		text = string(data)
	default:
		return "", fmt.Errorf("notes: unsupported file type %q", ext)
	}

	return truncate(strings.TrimSpace(text), maxLen), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncate keeps whole paragraphs until the budget is reached. If even the
// first paragraph is over budget, it cuts mid-paragraph.
func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	paragraphs := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")

	var b strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if b.Len() > 0 && b.Len()+len(p)+2 > maxLen {
			break
		}

		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(p)
	}

	if b.Len() == 0 || b.Len() > maxLen {
		return text[:maxLen]
	}
	return b.String()
}
