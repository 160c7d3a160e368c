package form

import "github.com/formgrid/dd1750/internal/bom"

// paginate splits items into consecutive slices of at most perPage entries.
// Order is preserved and the concatenation of the result reconstructs the
// input exactly. Zero items yields zero pages; the generator decides what a
// pageless document looks like.
func paginate(items []bom.Item, perPage int) [][]bom.Item {
	if perPage <= 0 || len(items) == 0 {
		return nil
	}
	pages := make([][]bom.Item, 0, (len(items)+perPage-1)/perPage)
	for start := 0; start < len(items); start += perPage {
		end := start + perPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}
