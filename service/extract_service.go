package service

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractService turns a PDF file on disk into plain text.
type ExtractService interface {
	ExtractText(filePath string) (string, error)
}

type pdfExtractor struct{}

func NewPDFExtractor() ExtractService {
	return &pdfExtractor{}
}

// ExtractText concatenates the extractable text of every page. Pages without
// an extractable text layer contribute nothing; only failing to open or parse
// the file itself is an error.
func (e *pdfExtractor) ExtractText(filePath string) (string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Page with no readable text layer counts as empty.
			continue
		}
		text.WriteString(pageText)
	}
	return text.String(), nil
}
