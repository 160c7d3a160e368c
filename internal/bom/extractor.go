package bom

import (
	"fmt"
	"os"

	pdfplumber "github.com/pyhub-apps/pdfplumber-golang"
)

// Extractor walks the tables of a BOM PDF and emits line items. Table and
// text extraction is delegated to the pdfplumber library; this type only
// interprets the grids it returns.
type Extractor struct {
	maxFileSize int64
	norm        normalizer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLevelPolicy overrides the level-code acceptance rule.
func WithLevelPolicy(policy LevelPolicy) Option {
	return func(e *Extractor) {
		e.norm.levelPolicy = policy
	}
}

// NewExtractor creates an extractor with the default prefix-"B" level policy.
func NewExtractor(maxFileSize int64, opts ...Option) *Extractor {
	e := &Extractor{
		maxFileSize: maxFileSize,
		norm:        normalizer{levelPolicy: LevelPrefixB},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractFile extracts all reportable items from the BOM at path, scanning
// pages from startPage (0-based) through the end of the document. Pages,
// tables and rows are visited in document order and line numbers follow
// that order.
//
// ExtractFile never panics: a document that cannot be opened or read yields
// a failed Extraction, and a start page beyond the last page yields an
// empty one.
func (e *Extractor) ExtractFile(path string, startPage int) (ext Extraction) {
	// The table library parses untrusted input; a panic there must degrade
	// to a failed result, not take down the caller.
	defer func() {
		if r := recover(); r != nil {
			ext = Extraction{Err: fmt.Errorf("bom extraction panicked: %v", r)}
		}
	}()

	if startPage < 0 {
		return Extraction{Err: fmt.Errorf("start page must be non-negative, got %d", startPage)}
	}
	if err := e.checkFileSize(path); err != nil {
		return Extraction{Err: err}
	}

	doc, err := pdfplumber.Open(path)
	if err != nil {
		return Extraction{Err: fmt.Errorf("failed to open BOM: %w", err)}
	}
	defer doc.Close()

	items := e.extractItems(doc, startPage)
	return Extraction{Items: items}
}

// extractItems walks every table on every page from startPage onward.
func (e *Extractor) extractItems(doc pdfplumber.Document, startPage int) []Item {
	var grids [][][]string
	pages := doc.GetPages()
	for pageIdx := startPage; pageIdx < len(pages); pageIdx++ {
		for _, extracted := range pages[pageIdx].ExtractTables() {
			grids = append(grids, extracted.Rows)
		}
	}
	return e.collectFromGrids(grids)
}

// collectFromGrids interprets extracted table grids in order, skipping
// tables whose key columns cannot be identified, and numbers the emitted
// items sequentially across all grids.
func (e *Extractor) collectFromGrids(grids [][][]string) []Item {
	var items []Item
	for _, grid := range grids {
		table := NewTable(grid)
		if table.NumRows() < 2 {
			continue
		}
		roles := resolveRoles(table.Header())
		if !roles.usable() {
			continue
		}
		for _, row := range table.DataRows() {
			if item, ok := e.norm.itemFromRow(row, roles, len(items)+1); ok {
				items = append(items, item)
			}
		}
	}
	return items
}

func (e *Extractor) checkFileSize(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access BOM: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if e.maxFileSize > 0 && info.Size() > e.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)", info.Size(), e.maxFileSize)
	}
	return nil
}
