package pdf

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_GetFileStats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	writeTestPDF(t, path)

	s := NewStats(testMaxFileSize)

	result, err := s.GetFileStats(StatsFileRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 1, result.Pages)
	assert.Greater(t, result.Size, int64(0))

	modified, err := time.Parse(time.RFC3339, result.Modified)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), modified, time.Minute)
}

func TestStats_GetFileStats_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	writeTestPDF(t, path)

	s := NewStats(testMaxFileSize)

	t.Run("empty path", func(t *testing.T) {
		_, err := s.GetFileStats(StatsFileRequest{})
		assert.Error(t, err)
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := s.GetFileStats(StatsFileRequest{Path: filepath.Join(dir, "missing.pdf")})
		assert.Error(t, err)
	})

	t.Run("over size limit", func(t *testing.T) {
		small := NewStats(10)
		_, err := small.GetFileStats(StatsFileRequest{Path: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestStats_PageCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	writeTestPDF(t, path)

	s := NewStats(testMaxFileSize)
	pages, err := s.PageCount(path)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}
