package pdf

import (
	"fmt"
	"os"

	"github.com/formgrid/dd1750/internal/bom"
	"github.com/formgrid/dd1750/internal/form"
	"github.com/formgrid/dd1750/internal/pdf/security"
)

// Service orchestrates the conversion components behind one API consumed
// by the MCP server, the HTTP front end and the CLI.
type Service struct {
	maxFileSize   int64
	validator     *Validator
	stats         *Stats
	reader        *Reader
	extractor     *bom.Extractor
	generator     *form.Generator
	pathValidator *security.PathValidator
}

// NewService wires all components. File access through the service is
// confined to workDir.
func NewService(maxFileSize int64, workDir string) (*Service, error) {
	pathValidator, err := security.NewPathValidator(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	extractor := bom.NewExtractor(maxFileSize)
	return &Service{
		maxFileSize:   maxFileSize,
		validator:     NewValidator(maxFileSize),
		stats:         NewStats(maxFileSize),
		reader:        NewReader(maxFileSize),
		extractor:     extractor,
		generator:     form.NewGenerator(extractor),
		pathValidator: pathValidator,
	}, nil
}

// Generate runs the full conversion and writes the completed form to the
// requested output path.
func (s *Service) Generate(req GenerateRequest) (*GenerateResult, error) {
	for _, p := range []string{req.BOMPath, req.TemplatePath, req.OutputPath} {
		if err := s.pathValidator.ValidatePath(p); err != nil {
			return nil, fmt.Errorf("security validation failed: %w", err)
		}
	}

	result, err := s.generator.GenerateFile(req.BOMPath, req.TemplatePath, req.OutputPath, req.StartPage)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(req.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("output not accessible after write: %w", err)
	}

	return &GenerateResult{
		OutputPath: req.OutputPath,
		ItemCount:  result.ItemCount,
		Pages:      result.Pages,
		Size:       info.Size(),
	}, nil
}

// ExtractItems extracts BOM items without generating a form. Extraction
// failure is reported as an error; a readable document with no reportable
// rows yields an empty result.
func (s *Service) ExtractItems(req ExtractItemsRequest) (*ExtractItemsResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	ext := s.extractor.ExtractFile(req.Path, req.StartPage)
	if ext.Failed() {
		return nil, ext.Err
	}
	return &ExtractItemsResult{
		Path:  req.Path,
		Items: ext.Items,
		Count: len(ext.Items),
	}, nil
}

// ValidateFile checks that a file is a readable PDF.
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// StatsFile reports basic statistics about a PDF file.
func (s *Service) StatsFile(req StatsFileRequest) (*StatsFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.stats.GetFileStats(req)
}

// InspectPage returns the raw text and detected table count of one page.
func (s *Service) InspectPage(req InspectPageRequest) (*InspectPageResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.reader.InspectPage(req)
}

// ServerInfo describes the server and its tool surface.
func (s *Service) ServerInfo(_ ServerInfoRequest, serverName, version string) (*ServerInfoResult, error) {
	return &ServerInfoResult{
		ServerName:  serverName,
		Version:     version,
		WorkDir:     s.pathValidator.WorkDir(),
		MaxFileSize: s.maxFileSize,
		Tools: []ToolInfo{
			{
				Name:        "dd1750_generate",
				Description: "Convert a BOM PDF into a completed DD Form 1750 using a template PDF",
				Parameters: "bom_path (required), template_path (required), output_path (required), " +
					"start_page (optional, 0-based BOM page to start extraction from)",
			},
			{
				Name:        "bom_extract_items",
				Description: "Extract packing-list line items from a BOM PDF without generating a form",
				Parameters:  "path (required), start_page (optional)",
			},
			{
				Name:        "bom_inspect_page",
				Description: "Show the raw text and detected table count of one BOM page",
				Parameters:  "path (required), page (required, 0-based)",
			},
			{
				Name:        "pdf_validate_file",
				Description: "Check that a file is a readable PDF",
				Parameters:  "path (required)",
			},
			{
				Name:        "pdf_stats_file",
				Description: "Report size, page count and modification time of a PDF",
				Parameters:  "path (required)",
			},
		},
	}, nil
}

// Generator exposes the underlying form generator for callers that manage
// their own file locations (the HTTP front end's temp directories).
func (s *Service) Generator() *form.Generator {
	return s.generator
}

// GetMaxFileSize returns the configured file size cap.
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// WorkDir returns the directory file access is confined to.
func (s *Service) WorkDir() string {
	return s.pathValidator.WorkDir()
}
