package pdf

import (
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Stats reports basic facts about PDF files.
type Stats struct {
	maxFileSize int64
}

// NewStats creates a stats component with the given size cap.
func NewStats(maxFileSize int64) *Stats {
	return &Stats{maxFileSize: maxFileSize}
}

// GetFileStats returns size, page count and modification time for a PDF.
func (s *Stats) GetFileStats(req StatsFileRequest) (*StatsFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)", info.Size(), s.maxFileSize)
	}

	pages, err := api.PageCountFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page count: %w", err)
	}

	return &StatsFileResult{
		Path:     req.Path,
		Size:     info.Size(),
		Pages:    pages,
		Modified: info.ModTime().Format(time.RFC3339),
	}, nil
}

// PageCount returns the number of pages in a PDF file.
func (s *Stats) PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
