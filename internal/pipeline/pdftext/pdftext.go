// Package pdftext converts PDF document bytes into plain text. Extraction
// failures are reported as errors and never panic past this boundary; callers
// treat a failure as "no text" and continue with the rest of the batch.
package pdftext

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Extractor extracts plain text from PDF bytes.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the concatenated plain text of all pages.
// ledongthuc/pdf requires a file path, so the bytes are staged in a temp file.
func (e *Extractor) Extract(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	tmpFile, tmpErr := os.CreateTemp("", "scholarship-doc-*.pdf")
	if tmpErr != nil {
		return "", fmt.Errorf("creating temp file: %w", tmpErr)
	}
	defer os.Remove(tmpFile.Name())

	if _, werr := tmpFile.Write(data); werr != nil {
		tmpFile.Close()
		return "", fmt.Errorf("writing temp PDF: %w", werr)
	}
	tmpFile.Close()

	f, reader, oerr := pdf.Open(tmpFile.Name())
	if oerr != nil {
		return "", fmt.Errorf("opening PDF: %w", oerr)
	}
	defer f.Close()

	textReader, terr := reader.GetPlainText()
	if terr != nil {
		return "", fmt.Errorf("extracting plain text: %w", terr)
	}

	var buf bytes.Buffer
	if _, rerr := buf.ReadFrom(textReader); rerr != nil {
		return "", fmt.Errorf("reading text buffer: %w", rerr)
	}

	return buf.String(), nil
}
