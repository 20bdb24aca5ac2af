package utils

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extraction errors, surfaced to users as 400s by the handlers.
var (
	ErrUnsupportedFormat = errors.New("only PDF files are supported")
	ErrUnreadablePDF     = errors.New("unable to parse PDF content")
)

// Rough characters-per-page used when a PDF carries no form feeds.
const charsPerPage = 3000

// DocumentExtractor extracts plain text from uploaded documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts plain text and an estimated page count from a PDF.
// Any MIME type other than application/pdf is rejected with
// ErrUnsupportedFormat; a malformed or non-text PDF yields ErrUnreadablePDF.
func (e *DocumentExtractor) ExtractText(content []byte, mimeType string) (text string, pages int, err error) {
	if mimeType != "application/pdf" {
		return "", 0, ErrUnsupportedFormat
	}

	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	text = buf.String()
	return text, EstimatePageCount(text), nil
}

// EstimatePageCount estimates pages from form-feed characters when present,
// otherwise from text length, with a floor of one page.
func EstimatePageCount(text string) int {
	if formFeeds := strings.Count(text, "\f"); formFeeds > 0 {
		return formFeeds + 1
	}

	pages := (len(text) + charsPerPage - 1) / charsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
