package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("  First point.\n\nSecond point.\n"), 0o644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "First point.\n\nSecond point.", text)
}

func TestLoad_Markdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outline.md")
	require.NoError(t, os.WriteFile(path, []byte("# Talk outline\n\n- persuasion\n"), 0o644))

	text, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Talk outline")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("notes.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestTruncate_KeepsShortTextIntact(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 100))
}

func TestTruncate_CutsAtParagraphBoundary(t *testing.T) {
	first := strings.Repeat("a", 40)
	second := strings.Repeat("b", 40)
	third := strings.Repeat("c", 40)
	text := first + "\n\n" + second + "\n\n" + third

	out := truncate(text, 90)
	assert.Equal(t, first+"\n\n"+second, out)
}

func TestTruncate_OversizedFirstParagraph(t *testing.T) {
	text := strings.Repeat("x", 200)
	out := truncate(text, 50)
	assert.Len(t, out, 50)
}
