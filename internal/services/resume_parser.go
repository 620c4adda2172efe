package services

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/ats-checker/internal/models"
)

const mimePDF = "application/pdf"

type ResumeParserService interface {
	ExtractText(file *models.ResumeFile) (string, error)
}

type resumeParserService struct{}

func NewResumeParserService() ResumeParserService {
	return &resumeParserService{}
}

// ExtractText dispatches on the file extension. A nil file yields empty text.
func (p *resumeParserService) ExtractText(file *models.ResumeFile) (string, error) {
	if file == nil {
		return "", nil
	}

	switch {
	case file.Ext() == ".pdf" || file.ContentType == mimePDF:
		return ExtractPDFText(file.Data)
	case file.Ext() == ".docx":
		return ExtractDocxText(file.Data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFileType, file.Ext())
	}
}

// ExtractPDFText concatenates the text of every page in order. Pages that
// cannot be read contribute nothing; the rest of the document still counts.
func ExtractPDFText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", nil
	}

	// ledongthuc/pdf panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: failed to read PDF: %v", ErrUnreadableDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %w", ErrUnreadableDocument, err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		textBuilder.WriteString(pageText(r, pageIndex))
	}

	return SanitizeText(textBuilder.String()), nil
}

func pageText(r *pdf.Reader, pageIndex int) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag           = regexp.MustCompile(`<[^>]*>`)
)

// ExtractDocxText returns the body text of a .docx document, one paragraph
// per line.
func ExtractDocxText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to parse docx: %w", ErrUnreadableDocument, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")

	return SanitizeText(strings.TrimSpace(html.UnescapeString(content))), nil
}

// SanitizeText drops byte sequences that are not valid UTF-8.
func SanitizeText(text string) string {
	return strings.ToValidUTF8(text, "")
}
