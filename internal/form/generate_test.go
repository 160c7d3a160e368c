package form

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formgrid/dd1750/internal/bom"
)

// writeBlankPDF creates a minimal single-page Letter PDF for use as a
// template or as an (item-free) BOM.
func writeBlankPDF(t *testing.T, path string) {
	t.Helper()
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(72, 72, "PACKING LIST")
	require.NoError(t, pdf.OutputFileAndClose(path))
}

func newTestGenerator() *Generator {
	return NewGenerator(bom.NewExtractor(1024 * 1024))
}

func TestLoadTemplate(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadTemplate("/no/such/template.pdf")
		assert.Error(t, err)
	})

	t.Run("valid single page template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "template.pdf")
		writeBlankPDF(t, path)

		tmpl, err := loadTemplate(path)
		require.NoError(t, err)
		assert.Equal(t, 1, tmpl.pageCount)
		assert.NotEmpty(t, tmpl.data)
	})

	t.Run("not a pdf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "template.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))
		_, err := loadTemplate(path)
		assert.Error(t, err)
	})
}

func TestGenerator_Render(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pdf")
	writeBlankPDF(t, templatePath)

	tmpl, err := loadTemplate(templatePath)
	require.NoError(t, err)

	g := newTestGenerator()

	tests := []struct {
		name      string
		items     int
		wantPages int
	}{
		{"zero items yields one bare page", 0, 1},
		{"partial page", 5, 1},
		{"exactly one page", 18, 1},
		{"two pages", 20, 2},
		{"three pages", 54, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, pages, err := g.render(makeItems(tt.items), tmpl)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, pages)
			assert.NotEmpty(t, data)
		})
	}
}

func TestGenerator_Render_ItemFields(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pdf")
	writeBlankPDF(t, templatePath)

	tmpl, err := loadTemplate(templatePath)
	require.NoError(t, err)

	items := []bom.Item{
		{Line: 1, Description: "Wrench, Pipe", NSN: "012345678", Qty: 3},
		{Line: 2, Description: "Tool Kit", Qty: 1},
	}

	g := newTestGenerator()
	data, pages, err := g.render(items, tmpl)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	assert.NotEmpty(t, data)
}

func TestGenerator_Generate(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pdf")
	bomPath := filepath.Join(dir, "bom.pdf")
	writeBlankPDF(t, templatePath)
	writeBlankPDF(t, bomPath)

	g := newTestGenerator()

	t.Run("unreadable BOM surfaces as error", func(t *testing.T) {
		_, err := g.Generate(filepath.Join(dir, "missing.pdf"), templatePath, 0)
		assert.Error(t, err)
	})

	t.Run("missing template surfaces as error", func(t *testing.T) {
		_, err := g.Generate(bomPath, filepath.Join(dir, "missing.pdf"), 0)
		assert.Error(t, err)
	})

	t.Run("tableless BOM is an empty success", func(t *testing.T) {
		result, err := g.Generate(bomPath, templatePath, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ItemCount)
		assert.Equal(t, 1, result.Pages)
		assert.NotEmpty(t, result.PDF)
	})

	t.Run("start page beyond document is an empty success", func(t *testing.T) {
		result, err := g.Generate(bomPath, templatePath, 99)
		require.NoError(t, err)
		assert.Equal(t, 0, result.ItemCount)
	})
}

func TestGenerator_GenerateFile(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.pdf")
	bomPath := filepath.Join(dir, "bom.pdf")
	outputPath := filepath.Join(dir, "out.pdf")
	writeBlankPDF(t, templatePath)
	writeBlankPDF(t, bomPath)

	g := newTestGenerator()

	result, err := g.GenerateFile(bomPath, templatePath, outputPath, 0)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Equal(t, int64(len(result.PDF)), info.Size())

	t.Run("unwritable output surfaces as error", func(t *testing.T) {
		_, err := g.GenerateFile(bomPath, templatePath, filepath.Join(dir, "no", "such", "dir", "out.pdf"), 0)
		assert.Error(t, err)
	})
}
