// Package extract pulls plain text out of uploaded resume files. PDF, DOCX,
// and plain-text uploads are supported; anything else is rejected before any
// parsing happens.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MinTextLength is the shortest extraction considered usable. Image-only PDFs
// and corrupted files tend to yield a handful of stray characters.
const MinTextLength = 50

// ErrUnsupportedType is returned for file types other than PDF, DOCX, and
// plain text.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrInsufficientText is returned when the trimmed extraction is shorter than
// MinTextLength.
var ErrInsufficientText = errors.New("could not extract sufficient text from the file")

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// ResumeText extracts text from an uploaded file, dispatching on MIME type
// with a filename-extension fallback. The result is trimmed and must clear
// MinTextLength.
func ResumeText(filename, mimeType string, data []byte) (string, error) {
	nameLower := strings.ToLower(filename)

	var text string
	var err error
	switch {
	case mimeType == "text/plain" || strings.HasSuffix(nameLower, ".txt"):
		text = string(data)
	case mimeType == "application/pdf" || strings.HasSuffix(nameLower, ".pdf"):
		text, err = pdfText(data)
	case mimeType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document" ||
		strings.HasSuffix(nameLower, ".docx"):
		text, err = docxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if len(text) < MinTextLength {
		return "", ErrInsufficientText
	}
	return text, nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML; paragraph boundaries become
	// newlines before the remaining tags are stripped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return content, nil
}
