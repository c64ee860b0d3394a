package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/meetoza/resume-analyzer/internal/textnorm"
)

// UnsupportedFormatError is returned when a document type has no text
// extractor. It is propagated to the caller unmodified.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q for %s", e.Extension, e.Path)
}

// ExtractionError wraps a failure while reading a supported document, such
// as a corrupt or password-protected file.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractText reads the document at path and returns cleaned plain text.
// Plain-text and PDF documents are supported; anything else is an
// UnsupportedFormatError.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		return CleanText(string(content)), nil
	case ".pdf":
		text, err := extractPDFText(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Cause: err}
		}
		// Layout-based extraction merges words and glues punctuation;
		// repair before any pattern matching sees the text.
		return CleanText(textnorm.Normalize(text)), nil
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
}

func extractPDFText(path string) (string, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
