package ingestion

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a resume file and returns its plain text with all
// whitespace runs collapsed to single spaces. Supported: .pdf, .docx, .txt.
func ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extractTextFromPDF(path, data)
	case ".docx":
		return extractTextFromDocx(path, data)
	case ".txt":
		return normalizeWhitespace(strings.ToValidUTF8(string(data), "")), nil
	default:
		return "", &UnsupportedFileTypeError{Path: path, Ext: ext}
	}
}

func extractTextFromPDF(path string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseFailureError{Path: path, Message: "invalid PDF", Cause: err}
	}

	rs, err := reader.GetPlainText()
	if err != nil {
		return "", &ParseFailureError{Path: path, Message: "no extractable text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", &ParseFailureError{Path: path, Message: "failed to read text stream", Cause: err}
	}

	return normalizeWhitespace(buf.String()), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func extractTextFromDocx(path string, data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseFailureError{Path: path, Message: "invalid DOCX archive", Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &ParseFailureError{Path: path, Message: "failed to open document.xml", Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", &ParseFailureError{Path: path, Message: "failed to read document.xml", Cause: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", &ParseFailureError{Path: path, Message: "no document.xml found in docx"}
	}

	// Paragraph and tab markers become whitespace, remaining tags are dropped.
	xml := string(docXML)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := xmlTagPattern.ReplaceAllString(xml, " ")

	return normalizeWhitespace(txt), nil
}

var whitespaceRunPattern = regexp.MustCompile(`\s+`)

// normalizeWhitespace collapses all whitespace runs to single spaces and
// trims the result, producing the immutable RawText form the pipeline expects.
func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = whitespaceRunPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
