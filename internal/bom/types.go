// Package bom extracts packing-list line items from Bill of Materials PDFs.
//
// A BOM arrives as an arbitrarily formatted PDF whose tables have no fixed
// column layout. The package identifies the relevant columns per table by
// header keywords, filters the rows that carry a reportable level code, and
// normalizes each accepted row into an Item ready for form generation.
package bom

// Item is one extracted BOM line item.
type Item struct {
	// Line is the 1-based position of the item across the whole document,
	// assigned in extraction order with no gaps.
	Line int `json:"line"`

	// Description is the normalized nomenclature, at most 100 characters,
	// never empty for an emitted item.
	Description string `json:"description"`

	// NSN is either empty or exactly 9 digits.
	NSN string `json:"nsn,omitempty"`

	// Qty is the item quantity, at least 1.
	Qty int `json:"qty"`
}

// Extraction is the result of one extraction run. It distinguishes three
// outcomes: items found, a readable document that yielded nothing, and a
// document that could not be read at all.
type Extraction struct {
	Items []Item
	Err   error
}

// Failed reports whether the source document could not be opened or read.
func (e Extraction) Failed() bool {
	return e.Err != nil
}

// Empty reports whether the document was readable but yielded no items.
func (e Extraction) Empty() bool {
	return e.Err == nil && len(e.Items) == 0
}
