package ingestion

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Jane Doe\n\nSenior\tEngineer\r\n5 years   of Go"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Senior Engineer 5 years of Go", text)
}

func TestExtractText_TxtInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, '!'}, 0644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "ok!", text)
}

func TestExtractText_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<w:document><w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Python</w:t></w:r><w:tab/><w:r><w:t>Docker</w:t></w:r></w:p>
</w:body></w:document>`)

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Python Docker", text)
}

func TestExtractText_DocxMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = ExtractText(path)
	var parseErr *ParseFailureError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractText_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0644))

	_, err := ExtractText(path)
	var parseErr *ParseFailureError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0644))

	_, err := ExtractText(path)
	var unsupported *UnsupportedFileTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Ext)
}

func TestExtractText_MissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}
