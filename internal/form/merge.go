package form

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// templatePageIndex selects the 1-based template page to place under output
// page k (0-based). Templates usually repeat the same form layout on every
// page; when the template runs out of pages the first page is reused.
func templatePageIndex(k, templatePages int) int {
	if k < templatePages {
		return k + 1
	}
	return 1
}

// template is a loaded DD1750 template document ready for page import.
type template struct {
	data      []byte
	pageCount int
}

// loadTemplate reads and validates the template PDF at path.
func loadTemplate(path string) (*template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	pageCount, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read template page count: %w", err)
	}
	if pageCount < 1 {
		return nil, fmt.Errorf("template has no pages")
	}
	return &template{data: data, pageCount: pageCount}, nil
}

// merger composites template pages under rendered overlays. One merger
// serves one output document; the importer caches imported pages across
// calls so reusing template page 1 is cheap.
type merger struct {
	tmpl     *template
	importer *gofpdi.Importer
	rs       io.ReadSeeker
}

func newMerger(tmpl *template) *merger {
	return &merger{
		tmpl:     tmpl,
		importer: gofpdi.NewImporter(),
		rs:       bytes.NewReader(tmpl.data),
	}
}

// placeTemplatePage imports the template page backing output page k and
// draws it full-size onto the current fpdf page. Overlay text drawn
// afterwards lands on top of the template graphics.
func (m *merger) placeTemplatePage(pdf *fpdf.Fpdf, k int, layout Layout) {
	tpl := m.importer.ImportPageFromStream(pdf, &m.rs, templatePageIndex(k, m.tmpl.pageCount), "/MediaBox")
	m.importer.UseImportedTemplate(pdf, tpl, 0, 0, layout.PageWidth, 0)
}
