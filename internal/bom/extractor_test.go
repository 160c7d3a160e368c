package bom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	grid := [][]string{
		{"LV", "DESC"},
		{"B", "Tool Kit"},
		{"C", "Spanner"},
	}
	table := NewTable(grid)

	assert.Equal(t, 3, table.NumRows())
	assert.Equal(t, []string{"LV", "DESC"}, table.Header())
	assert.Equal(t, grid[1:], table.DataRows())

	empty := NewTable(nil)
	assert.Equal(t, 0, empty.NumRows())
	assert.Nil(t, empty.Header())
	assert.Nil(t, empty.DataRows())

	headerOnly := NewTable([][]string{{"LV", "DESC"}})
	assert.Nil(t, headerOnly.DataRows())
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}
	assert.Equal(t, "a", cell(row, 0))
	assert.Equal(t, "b", cell(row, 1))
	assert.Equal(t, "", cell(row, 2), "out-of-range index yields empty cell")
	assert.Equal(t, "", cell(row, -1))
}

func TestRowIsEmpty(t *testing.T) {
	assert.True(t, rowIsEmpty(nil))
	assert.True(t, rowIsEmpty([]string{"", "  ", "\t"}))
	assert.False(t, rowIsEmpty([]string{"", "x"}))
}

func TestExtractor_ExtractFile_Failures(t *testing.T) {
	extractor := NewExtractor(1024 * 1024)

	t.Run("missing file", func(t *testing.T) {
		ext := extractor.ExtractFile("/no/such/bom.pdf", 0)
		assert.True(t, ext.Failed())
		assert.False(t, ext.Empty())
		assert.Empty(t, ext.Items)
	})

	t.Run("negative start page", func(t *testing.T) {
		ext := extractor.ExtractFile("/no/such/bom.pdf", -1)
		assert.True(t, ext.Failed())
	})

	t.Run("directory instead of file", func(t *testing.T) {
		ext := extractor.ExtractFile(t.TempDir(), 0)
		assert.True(t, ext.Failed())
	})

	t.Run("oversized file", func(t *testing.T) {
		small := NewExtractor(16)
		path := filepath.Join(t.TempDir(), "big.pdf")
		require.NoError(t, os.WriteFile(path, make([]byte, 64), 0o644))
		ext := small.ExtractFile(path, 0)
		assert.True(t, ext.Failed())
		assert.Contains(t, ext.Err.Error(), "file too large")
	})

	t.Run("not a pdf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bom.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))
		ext := extractor.ExtractFile(path, 0)
		// A garbage document must yield a failed result, never a panic.
		assert.True(t, ext.Failed())
	})
}

func TestExtractItems_TableWalk(t *testing.T) {
	extractor := NewExtractor(1024 * 1024)

	t.Run("items numbered across tables", func(t *testing.T) {
		items := extractor.collectFromGrids([][][]string{
			{
				{"LV", "DESC", "OH QTY"},
				{"B", "Tool Kit", "2"},
				{"B9", "Spanner", "1"},
			},
			{
				{"LV", "DESC", "OH QTY"},
				{"B", "Pump, Fuel", "4"},
			},
		})
		require.Len(t, items, 3)
		for i, item := range items {
			assert.Equal(t, i+1, item.Line)
		}
		assert.Equal(t, "Pump, Fuel", items[2].Description)
		assert.Equal(t, 4, items[2].Qty)
	})

	t.Run("table without description column skipped whole", func(t *testing.T) {
		items := extractor.collectFromGrids([][][]string{
			{
				{"LV", "Remarks"},
				{"B", "looks valid"},
				{"B9", "still skipped"},
			},
		})
		assert.Empty(t, items)
	})

	t.Run("table without level column skipped whole", func(t *testing.T) {
		items := extractor.collectFromGrids([][][]string{
			{
				{"Item", "DESC"},
				{"1", "Tool Kit"},
			},
		})
		assert.Empty(t, items)
	})

	t.Run("header-only table skipped", func(t *testing.T) {
		items := extractor.collectFromGrids([][][]string{
			{
				{"LV", "DESC"},
			},
		})
		assert.Empty(t, items)
	})

	t.Run("non-B rows filtered", func(t *testing.T) {
		items := extractor.collectFromGrids([][][]string{
			{
				{"LV", "DESC"},
				{"A", "Assembly"},
				{"B", "Tool Kit"},
				{"C", "Component"},
			},
		})
		require.Len(t, items, 1)
		assert.Equal(t, "Tool Kit", items[0].Description)
	})
}
