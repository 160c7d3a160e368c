package pdf

import "github.com/formgrid/dd1750/internal/bom"

// Request and result types for the service operations. One pair per
// operation so tool surfaces (MCP, HTTP, CLI) share a single contract.

// GenerateRequest asks for a full BOM-to-DD1750 conversion.
type GenerateRequest struct {
	BOMPath      string `json:"bom_path"`
	TemplatePath string `json:"template_path"`
	OutputPath   string `json:"output_path"`
	StartPage    int    `json:"start_page,omitempty"`
}

// GenerateResult reports a completed conversion. An ItemCount of zero means
// the BOM was readable but contained no reportable rows; failures to read
// the BOM or write the output surface as errors instead.
type GenerateResult struct {
	OutputPath string `json:"output_path"`
	ItemCount  int    `json:"item_count"`
	Pages      int    `json:"pages"`
	Size       int64  `json:"size"`
}

// ExtractItemsRequest asks for item extraction without form generation.
type ExtractItemsRequest struct {
	Path      string `json:"path"`
	StartPage int    `json:"start_page,omitempty"`
}

// ExtractItemsResult carries the extracted items in document order.
type ExtractItemsResult struct {
	Path  string     `json:"path"`
	Items []bom.Item `json:"items"`
	Count int        `json:"count"`
}

// ValidateFileRequest asks whether a file is a readable PDF.
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileResult reports the validation outcome. Message is set when
// Valid is false.
type ValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// StatsFileRequest asks for basic statistics about a PDF file.
type StatsFileRequest struct {
	Path string `json:"path"`
}

// StatsFileResult carries file statistics.
type StatsFileResult struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Pages    int    `json:"pages"`
	Modified string `json:"modified"`
}

// InspectPageRequest asks for a raw look at one BOM page, for debugging
// documents whose tables fail to resolve.
type InspectPageRequest struct {
	Path string `json:"path"`
	Page int    `json:"page"` // 0-based
}

// InspectPageResult carries the page's plain text and the number of tables
// the extraction library detects on it.
type InspectPageResult struct {
	Path       string `json:"path"`
	Page       int    `json:"page"`
	Text       string `json:"text"`
	TableCount int    `json:"table_count"`
}

// ServerInfoRequest asks for server metadata and tool guidance.
type ServerInfoRequest struct{}

// ServerInfoResult describes the server and its tools.
type ServerInfoResult struct {
	ServerName  string     `json:"server_name"`
	Version     string     `json:"version"`
	WorkDir     string     `json:"work_dir"`
	MaxFileSize int64      `json:"max_file_size"`
	Tools       []ToolInfo `json:"tools"`
}

// ToolInfo describes one exposed tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  string `json:"parameters"`
}
