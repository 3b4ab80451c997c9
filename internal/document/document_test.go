package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "guidelines.txt")
	err := os.WriteFile(path, []byte("Core Aubergine: #4A154B\n"), 0644)
	require.NoError(t, err)

	doc, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.PageCount())
	assert.Contains(t, doc.Pages[0].Text, "Core Aubergine: #4A154B")
}

func TestOpen_PageDirectoryOrder(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "page-02.txt"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "page-01.txt"), []byte("first"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.json"), []byte("{}"), 0644))

	doc, err := Open(tmpDir)
	require.NoError(t, err)
	require.Equal(t, 2, doc.PageCount())
	assert.Equal(t, "first", doc.Pages[0].Text)
	assert.Equal(t, "second", doc.Pages[1].Text)
	assert.Equal(t, 0, doc.Pages[0].Index)
	assert.Equal(t, 1, doc.Pages[1].Index)
}

func TestOpen_EmptyDirectory(t *testing.T) {
	doc, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, doc.PageCount())
}

func TestOpen_NotFound(t *testing.T) {
	_, err := Open("/nonexistent/guidelines")
	require.Error(t, err)
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestOpen_HTMLPage(t *testing.T) {
	tmpDir := t.TempDir()
	html := `<html><body>
<nav>Menu</nav>
<main>
<h2>Color Palette</h2>
<p>Core Aubergine: #4A154B</p>
<p>White: #FFFFFF</p>
</main>
<footer>Legal</footer>
</body></html>`
	path := filepath.Join(tmpDir, "palette.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))

	doc, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 1, doc.PageCount())
	assert.Contains(t, doc.Pages[0].Text, "Core Aubergine: #4A154B")
	assert.NotContains(t, doc.Pages[0].Text, "Menu")
	assert.NotContains(t, doc.Pages[0].Text, "Legal")
}

func TestFullText(t *testing.T) {
	doc := &Document{Pages: []Page{{Text: "one"}, {Text: "two"}}}
	assert.Equal(t, "one\n\n---\n\ntwo", doc.FullText())
}

func TestCleanText(t *testing.T) {
	input := "Line  with   spaces\r\n\n\n\n# Heading\n- bullet   item\n"
	got := CleanText(input)
	assert.Equal(t, "Line with spaces\n\n# Heading\n- bullet   item", got)
}
