package pdf

import (
	"fmt"

	"github.com/ledongthuc/pdf"
	pdfplumber "github.com/pyhub-apps/pdfplumber-golang"
)

// maxInspectTextSize bounds the raw text returned for one page.
const maxInspectTextSize = 64 * 1024

// Reader exposes a raw view of single BOM pages. When a document yields no
// items the page text and detected table count usually show why: headers
// worded differently, tables the library does not see, or a scanned page
// with no text at all.
type Reader struct {
	maxFileSize int64
}

// NewReader creates a reader with the given size cap.
func NewReader(maxFileSize int64) *Reader {
	return &Reader{maxFileSize: maxFileSize}
}

// InspectPage returns the plain text of one page (0-based) together with
// the number of tables the extraction library detects on it.
func (r *Reader) InspectPage(req InspectPageRequest) (*InspectPageResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	if req.Page < 0 {
		return nil, fmt.Errorf("page must be non-negative, got %d", req.Page)
	}

	text, err := r.pageText(req.Path, req.Page)
	if err != nil {
		return nil, err
	}

	tableCount, err := r.pageTableCount(req.Path, req.Page)
	if err != nil {
		return nil, err
	}

	return &InspectPageResult{
		Path:       req.Path,
		Page:       req.Page,
		Text:       text,
		TableCount: tableCount,
	}, nil
}

func (r *Reader) pageText(path string, page int) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	if page >= reader.NumPage() {
		return "", fmt.Errorf("page %d out of range (document has %d pages)", page, reader.NumPage())
	}

	p := reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		// A page with undecodable text still has a table count worth
		// reporting.
		return "", nil
	}
	if len(text) > maxInspectTextSize {
		text = text[:maxInspectTextSize]
	}
	return text, nil
}

func (r *Reader) pageTableCount(path string, page int) (int, error) {
	doc, err := pdfplumber.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF for table detection: %w", err)
	}
	defer doc.Close()

	p, err := doc.GetPage(page)
	if err != nil {
		return 0, fmt.Errorf("failed to load page %d: %w", page, err)
	}
	return len(p.ExtractTables()), nil
}
