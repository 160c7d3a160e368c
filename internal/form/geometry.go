// Package form renders extracted BOM items onto a DD Form 1750 template.
//
// The form body is a fixed grid of 18 rows on a US Letter page. Items are
// paginated into row slices, drawn as a text overlay at the grid's
// coordinates, and composited on top of the imported template pages.
package form

// Layout describes the DD1750 body grid in PDF points with a bottom-left
// origin, matching the printed form. All coordinates are fixed properties
// of the paper form; supporting an alternate form layout means substituting
// another Layout value, not editing constants elsewhere.
type Layout struct {
	PageWidth  float64
	PageHeight float64

	// Column boundaries, left to right.
	LineBoxLeft  float64
	LineBoxRight float64
	ContentLeft  float64
	ContentRight float64
	UnitLeft     float64
	UnitRight    float64
	InitialLeft  float64
	InitialRight float64
	SparesLeft   float64
	SparesRight  float64
	TotalLeft    float64
	TotalRight   float64

	// Body extent and row grid.
	TableTop    float64
	TableBottom float64
	RowsPerPage int

	// Per-row text placement.
	TopInset     float64 // row reference sits this far below the row top
	BaselineDrop float64 // baseline offset below the row reference
	NSNDrop      float64 // NSN sub-line offset below the row reference
	PadX         float64 // left padding for left-aligned fields
}

// DefaultLayout returns the geometry of the standard DD Form 1750 body.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:  612.0,
		PageHeight: 792.0,

		LineBoxLeft:  44.0,
		LineBoxRight: 88.0,
		ContentLeft:  88.0,
		ContentRight: 365.0,
		UnitLeft:     365.0,
		UnitRight:    408.5,
		InitialLeft:  408.5,
		InitialRight: 453.5,
		SparesLeft:   453.5,
		SparesRight:  514.5,
		TotalLeft:    514.5,
		TotalRight:   566.0,

		TableTop:    616.0,
		TableBottom: 89.5,
		RowsPerPage: 18,

		TopInset:     5.0,
		BaselineDrop: 7.0,
		NSNDrop:      12.0,
		PadX:         3.0,
	}
}

// RowHeight returns the height of one body row.
func (l Layout) RowHeight() float64 {
	return (l.TableTop - l.TableBottom) / float64(l.RowsPerPage)
}

// rowReference returns the bottom-left-origin y reference for row i
// (0-based from the top of the body).
func (l Layout) rowReference(i int) float64 {
	return l.TableTop - l.TopInset - float64(i)*l.RowHeight()
}

// FontSet holds the font faces and sizes used on the form body.
type FontSet struct {
	Family   string
	LineSize float64 // line number and quantity boxes
	DescSize float64 // description text
	NSNSize  float64 // NSN sub-line
}

// DefaultFonts matches the sizes used when the form is typed by hand.
func DefaultFonts() FontSet {
	return FontSet{
		Family:   "Helvetica",
		LineSize: 8,
		DescSize: 7,
		NSNSize:  6,
	}
}
