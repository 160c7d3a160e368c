package form

import (
	"bytes"
	"fmt"
	"os"

	"codeberg.org/go-pdf/fpdf"

	"github.com/formgrid/dd1750/internal/bom"
)

// Generator runs the full conversion: extract items from a BOM, paginate
// them, and render the completed form over the template pages.
//
// A failed extraction (unreadable BOM) and a failed output are reported as
// errors; a readable BOM that yields no items is a success with an
// ItemCount of zero and a bare copy of the template's first page.
type Generator struct {
	extractor *bom.Extractor
	layout    Layout
	fonts     FontSet
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLayout substitutes an alternate form geometry.
func WithLayout(layout Layout) GeneratorOption {
	return func(g *Generator) {
		g.layout = layout
	}
}

// WithFonts substitutes the form fonts.
func WithFonts(fonts FontSet) GeneratorOption {
	return func(g *Generator) {
		g.fonts = fonts
	}
}

// NewGenerator creates a generator using the standard DD1750 layout.
func NewGenerator(extractor *bom.Extractor, opts ...GeneratorOption) *Generator {
	g := &Generator{
		extractor: extractor,
		layout:    DefaultLayout(),
		fonts:     DefaultFonts(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result is the outcome of a successful generation run.
type Result struct {
	PDF       []byte
	ItemCount int
	Pages     int
}

// Generate converts the BOM at bomPath into a completed form using the
// template at templatePath, scanning BOM pages from startPage (0-based).
func (g *Generator) Generate(bomPath, templatePath string, startPage int) (*Result, error) {
	ext := g.extractor.ExtractFile(bomPath, startPage)
	if ext.Failed() {
		return nil, fmt.Errorf("failed to extract BOM items: %w", ext.Err)
	}

	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	pdfData, pages, err := g.render(ext.Items, tmpl)
	if err != nil {
		return nil, err
	}

	return &Result{PDF: pdfData, ItemCount: len(ext.Items), Pages: pages}, nil
}

// GenerateFile runs Generate and writes the result to outputPath.
func (g *Generator) GenerateFile(bomPath, templatePath, outputPath string, startPage int) (*Result, error) {
	result, err := g.Generate(bomPath, templatePath, startPage)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outputPath, result.PDF, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return result, nil
}

// render draws one output page per item slice. With no items at all the
// output is a single untouched copy of the template's first page.
func (g *Generator) render(items []bom.Item, tmpl *template) ([]byte, int, error) {
	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetAutoPageBreak(false, 0)

	m := newMerger(tmpl)
	o := &overlay{layout: g.layout, fonts: g.fonts}

	pages := paginate(items, g.layout.RowsPerPage)
	if len(pages) == 0 {
		pages = [][]bom.Item{nil}
	}
	for k, pageItems := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: g.layout.PageWidth, Ht: g.layout.PageHeight})
		m.placeTemplatePage(pdf, k, g.layout)
		o.drawPage(pdf, pageItems)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("failed to produce output document: %w", err)
	}
	return buf.Bytes(), len(pages), nil
}
