// Package ingestion reads resume documents and produces whitespace-normalized
// raw text for the extraction pipeline.
package ingestion

import "fmt"

// UnsupportedFileTypeError indicates the file extension is not handled.
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s: supported types are .pdf, .docx, .txt", e.Ext, e.Path)
}

// ParseFailureError indicates the file was recognized but its content could
// not be read into text.
type ParseFailureError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ParseFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, e.Message)
}

func (e *ParseFailureError) Unwrap() error {
	return e.Cause
}
