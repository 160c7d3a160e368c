// Package web serves the upload front end: a form that accepts a BOM PDF
// and a DD1750 template PDF and returns the completed packing list.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/formgrid/dd1750/internal/config"
	"github.com/formgrid/dd1750/internal/form"
	"github.com/formgrid/dd1750/internal/pdf"
)

// Server is the HTTP upload front end.
type Server struct {
	cfg       *config.Config
	generator *form.Generator
	service   *pdf.Service
}

// NewServer creates the front end. The generator is used directly because
// uploads land in per-request temp directories outside the service's
// confined work directory.
func NewServer(cfg *config.Config, service *pdf.Service, generator *form.Generator) *Server {
	return &Server{cfg: cfg, generator: generator, service: service}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerate)

	srv := &http.Server{
		Addr:              s.cfg.Address(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

// handleGenerate accepts multipart fields bom_file, template_file and
// start_page, runs the conversion in a per-request temp directory, and
// streams the generated PDF back.
//
// A BOM with no reportable items and a conversion failure are distinct
// outcomes and get distinct responses.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(2 * s.cfg.MaxFileSize); err != nil {
		s.clientError(w, http.StatusBadRequest, "invalid upload: %v", err)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	startPage := s.cfg.StartPage
	if raw := r.FormValue("start_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.clientError(w, http.StatusBadRequest, "start_page must be a non-negative integer")
			return
		}
		startPage = parsed
	}

	tmpDir, err := os.MkdirTemp("", "dd1750-*")
	if err != nil {
		s.serverError(w, fmt.Errorf("failed to create temp dir: %w", err))
		return
	}
	defer os.RemoveAll(tmpDir)

	bomPath, err := s.saveUpload(r, "bom_file", filepath.Join(tmpDir, "bom.pdf"))
	if err != nil {
		s.clientError(w, http.StatusBadRequest, "BOM upload: %v", err)
		return
	}
	templatePath, err := s.saveUpload(r, "template_file", filepath.Join(tmpDir, "template.pdf"))
	if err != nil {
		s.clientError(w, http.StatusBadRequest, "template upload: %v", err)
		return
	}

	result, err := s.generator.Generate(bomPath, templatePath, startPage)
	if err != nil {
		s.serverError(w, fmt.Errorf("generation failed: %w", err))
		return
	}
	if result.ItemCount == 0 {
		s.clientError(w, http.StatusUnprocessableEntity, "no items found in BOM")
		return
	}

	if s.cfg.IsDebug() {
		log.Printf("generated DD1750: %d items, %d pages, %d bytes", result.ItemCount, result.Pages, len(result.PDF))
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="DD1750.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.PDF)))
	_, _ = w.Write(result.PDF)
}

// saveUpload writes one multipart file field to dst, enforcing the PDF
// extension and the configured size cap.
func (s *Server) saveUpload(r *http.Request, field, dst string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("missing file field %q", field)
	}
	defer file.Close()

	if header.Filename == "" {
		return "", fmt.Errorf("no file selected for %q", field)
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return "", fmt.Errorf("%q must be a PDF file", header.Filename)
	}
	if header.Size > s.cfg.MaxFileSize {
		return "", fmt.Errorf("%q too large: %d bytes (max: %d bytes)", header.Filename, header.Size, s.cfg.MaxFileSize)
	}

	if err := writeFile(dst, file); err != nil {
		return "", err
	}
	return dst, nil
}

func writeFile(dst string, src multipart.File) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

func (s *Server) clientError(w http.ResponseWriter, status int, format string, args ...any) {
	http.Error(w, fmt.Sprintf(format, args...), status)
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	log.Printf("error: %v", err)
	http.Error(w, "internal error: could not generate the form", http.StatusInternalServerError)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>DD1750 Generator</title></head>
<body>
<h1>DD Form 1750 Generator</h1>
<form action="/generate" method="post" enctype="multipart/form-data">
  <p><label>BOM PDF: <input type="file" name="bom_file" accept=".pdf" required></label></p>
  <p><label>DD1750 Template PDF: <input type="file" name="template_file" accept=".pdf" required></label></p>
  <p><label>Start page (0-based): <input type="number" name="start_page" value="0" min="0"></label></p>
  <p><button type="submit">Generate</button></p>
</form>
</body>
</html>
`
