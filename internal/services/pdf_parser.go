package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFParserService extracts plain text from PDF resumes locally, with
// no model call. Used by the extraction endpoint so text-mode callers
// can turn a PDF into pasted text.
type PDFParserService interface {
	ExtractText(r io.ReaderAt, size int64) (string, int, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText implements PDFParserService. Returns the concatenated
// page text and the page count.
func (p *pdfParserService) ExtractText(r io.ReaderAt, size int64) (string, int, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrFileRead, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", totalPage, fmt.Errorf("%w: no text content found in PDF", ErrFileRead)
	}

	return CleanText(text), totalPage, nil
}

// CleanText trims each line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
