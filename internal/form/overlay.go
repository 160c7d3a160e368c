package form

import (
	"fmt"
	"strconv"

	"codeberg.org/go-pdf/fpdf"

	"github.com/formgrid/dd1750/internal/bom"
)

// renderDescriptionLen caps the description on the form; the content box is
// narrower than the 100 characters kept at extraction time.
const renderDescriptionLen = 50

// overlay draws item rows onto the current page of an fpdf document at the
// layout's grid coordinates.
type overlay struct {
	layout Layout
	fonts  FontSet
}

// drawPage renders one page slice of at most layout.RowsPerPage items.
func (o *overlay) drawPage(pdf *fpdf.Fpdf, items []bom.Item) {
	for i, item := range items {
		o.drawRow(pdf, i, item)
	}
}

// drawRow renders a single item into row i of the body grid.
func (o *overlay) drawRow(pdf *fpdf.Fpdf, i int, item bom.Item) {
	l := o.layout
	ref := l.rowReference(i)
	baseline := ref - l.BaselineDrop

	pdf.SetFont(o.fonts.Family, "", o.fonts.LineSize)
	o.textCentered(pdf, l.LineBoxLeft, l.LineBoxRight, baseline, strconv.Itoa(item.Line))

	pdf.SetFont(o.fonts.Family, "", o.fonts.DescSize)
	o.textAt(pdf, l.ContentLeft+l.PadX, baseline, truncate(item.Description, renderDescriptionLen))

	if item.NSN != "" {
		pdf.SetFont(o.fonts.Family, "", o.fonts.NSNSize)
		o.textAt(pdf, l.ContentLeft+l.PadX, ref-l.NSNDrop, fmt.Sprintf("NSN: %s", item.NSN))
	}

	qty := strconv.Itoa(item.Qty)
	pdf.SetFont(o.fonts.Family, "", o.fonts.LineSize)
	o.textCentered(pdf, l.UnitLeft, l.UnitRight, baseline, "EA")
	o.textCentered(pdf, l.InitialLeft, l.InitialRight, baseline, qty)
	// Spares are not modeled on the input side; the form always shows zero.
	o.textCentered(pdf, l.SparesLeft, l.SparesRight, baseline, "0")
	o.textCentered(pdf, l.TotalLeft, l.TotalRight, baseline, qty)
}

// textAt places s with its baseline at the bottom-left-origin coordinate
// (x, y). fpdf uses a top-left origin, so y is flipped against the page
// height here and nowhere else.
func (o *overlay) textAt(pdf *fpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x, o.layout.PageHeight-y, s)
}

// textCentered places s centered between the left and right box edges.
func (o *overlay) textCentered(pdf *fpdf.Fpdf, left, right, y float64, s string) {
	center := (left + right) / 2
	o.textAt(pdf, center-pdf.GetStringWidth(s)/2, y, s)
}

// truncate limits s to max runes without splitting a multi-byte character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
