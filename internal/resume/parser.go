package resume

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for file types other than PDF and DOCX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Parser turns uploaded résumé files into Parsed records.
type Parser struct {
	uploadsDir string
}

// NewParser returns a Parser. When uploadsDir is non-empty, a copy of each
// upload is kept there under a unique name.
func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// Parse extracts text from the document bytes, runs field extraction, and
// returns the structured result. The input bytes are not retained.
func (p *Parser) Parse(filename string, data []byte) (*Parsed, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	text, err := ExtractText(data, ext)
	if err != nil {
		return nil, err
	}

	p.keepCopy(filename, data)

	lines := SplitLines(text)
	return &Parsed{
		RawText:   text,
		Extracted: ExtractFields(text),
		FileInfo: FileInfo{
			Filename:   filepath.Base(filename),
			FileType:   ext,
			TotalLines: len(lines),
		},
	}, nil
}

// ExtractText converts document bytes into plain text based on the file
// extension (with leading dot). Parse failures carry the underlying cause;
// partial text is never returned silently.
func ExtractText(data []byte, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %q (supported: .pdf, .docx)", ErrUnsupportedFormat, ext)
	}
}

func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	var buf bytes.Buffer
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract PDF page %d: %w", i, err)
		}
		buf.WriteString(text)
		if i < numPages {
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

func extractDOCX(content []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("extract DOCX: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// keepCopy writes the upload into the uploads dir for later inspection.
// Best-effort: extraction already succeeded, a failed copy does not fail
// the request.
func (p *Parser) keepCopy(filename string, data []byte) {
	if p.uploadsDir == "" {
		return
	}
	if err := os.MkdirAll(p.uploadsDir, 0o755); err != nil {
		return
	}
	name := uuid.NewString() + "_" + filepath.Base(filename)
	_ = os.WriteFile(filepath.Join(p.uploadsDir, name), data, 0o644)
}
