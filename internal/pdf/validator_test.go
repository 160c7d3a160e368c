package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxFileSize = 10 * 1024 * 1024

// writeTestPDF creates a minimal valid one-page PDF at path.
func writeTestPDF(t *testing.T, path string) {
	t.Helper()
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)
	doc.Text(72, 72, "test document")
	require.NoError(t, doc.OutputFileAndClose(path))
}

func TestValidator_ValidateFile(t *testing.T) {
	dir := t.TempDir()

	validPath := filepath.Join(dir, "valid.pdf")
	writeTestPDF(t, validPath)

	emptyPath := filepath.Join(dir, "empty.pdf")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))

	garbagePath := filepath.Join(dir, "garbage.pdf")
	require.NoError(t, os.WriteFile(garbagePath, []byte("not a pdf at all"), 0o644))

	textPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("hello"), 0o644))

	v := NewValidator(testMaxFileSize)

	tests := []struct {
		name      string
		path      string
		wantValid bool
	}{
		{"valid pdf", validPath, true},
		{"empty path", "", false},
		{"nonexistent file", filepath.Join(dir, "missing.pdf"), false},
		{"directory", dir, false},
		{"wrong extension", textPath, false},
		{"empty file", emptyPath, false},
		{"garbage content", garbagePath, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := v.ValidateFile(ValidateFileRequest{Path: tt.path})
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Message)
			}
		})
	}
}

func TestValidator_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	writeTestPDF(t, path)

	small := NewValidator(10) // bytes
	result, err := small.ValidateFile(ValidateFileRequest{Path: path})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "too large")
}

func TestValidator_IsValidPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	writeTestPDF(t, path)

	v := NewValidator(testMaxFileSize)
	assert.True(t, v.IsValidPDF(path))
	assert.False(t, v.IsValidPDF(filepath.Join(dir, "missing.pdf")))
}
