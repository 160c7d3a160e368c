package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, 612.0, l.PageWidth)
	assert.Equal(t, 792.0, l.PageHeight)
	assert.Equal(t, 18, l.RowsPerPage)

	// Column boundaries must tile left to right without gaps.
	assert.Equal(t, l.LineBoxRight, l.ContentLeft)
	assert.Equal(t, l.ContentRight, l.UnitLeft)
	assert.Equal(t, l.UnitRight, l.InitialLeft)
	assert.Equal(t, l.InitialRight, l.SparesLeft)
	assert.Equal(t, l.SparesRight, l.TotalLeft)

	assert.InDelta(t, (616.0-89.5)/18, l.RowHeight(), 1e-9)
}

func TestLayout_RowReference(t *testing.T) {
	l := DefaultLayout()

	// Row 0 sits the top inset below the body top; each further row drops
	// one row height.
	assert.InDelta(t, 611.0, l.rowReference(0), 1e-9)
	assert.InDelta(t, 611.0-l.RowHeight(), l.rowReference(1), 1e-9)
	assert.InDelta(t, 611.0-17*l.RowHeight(), l.rowReference(17), 1e-9)

	// The last row's reference stays inside the body.
	assert.Greater(t, l.rowReference(l.RowsPerPage-1), l.TableBottom)
}

func TestTemplatePageIndex(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		templatePages int
		want          int
	}{
		{"first page", 0, 3, 1},
		{"second page of long template", 1, 3, 2},
		{"last template page", 2, 3, 3},
		{"overflow reuses first page", 3, 3, 1},
		{"single page template repeats", 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templatePageIndex(tt.page, tt.templatePages))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 50))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("", 5))
	// Multi-byte runes are never split.
	assert.Equal(t, "日本", truncate("日本語", 2))
}
