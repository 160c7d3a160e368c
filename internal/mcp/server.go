// Package mcp exposes the conversion service as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/formgrid/dd1750/internal/config"
	"github.com/formgrid/dd1750/internal/descriptions"
	"github.com/formgrid/dd1750/internal/pdf"
)

// Server represents the MCP server instance.
type Server struct {
	config    *config.Config
	service   *pdf.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(cfg *config.Config, service *pdf.Service) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	generateTool := mcp.NewTool(
		"dd1750_generate",
		mcp.WithDescription(descriptions.DD1750GenerateDescription),
		mcp.WithString("bom_path",
			mcp.Required(),
			mcp.Description("Full path to the BOM PDF"),
		),
		mcp.WithString("template_path",
			mcp.Required(),
			mcp.Description("Full path to the DD1750 template PDF"),
		),
		mcp.WithString("output_path",
			mcp.Required(),
			mcp.Description("Full path to write the generated PDF to"),
		),
		mcp.WithNumber("start_page",
			mcp.Description("0-based BOM page to start extraction from (default 0)"),
		),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerate)

	extractTool := mcp.NewTool(
		"bom_extract_items",
		mcp.WithDescription(descriptions.BOMExtractItemsDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the BOM PDF"),
		),
		mcp.WithNumber("start_page",
			mcp.Description("0-based BOM page to start extraction from (default 0)"),
		),
	)
	s.mcpServer.AddTool(extractTool, s.handleExtractItems)

	inspectTool := mcp.NewTool(
		"bom_inspect_page",
		mcp.WithDescription(descriptions.BOMInspectPageDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the BOM PDF"),
		),
		mcp.WithNumber("page",
			mcp.Required(),
			mcp.Description("0-based page index to inspect"),
		),
	)
	s.mcpServer.AddTool(inspectTool, s.handleInspectPage)

	validateTool := mcp.NewTool(
		"pdf_validate_file",
		mcp.WithDescription(descriptions.PDFValidateFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateTool, s.handleValidateFile)

	statsTool := mcp.NewTool(
		"pdf_stats_file",
		mcp.WithDescription(descriptions.PDFStatsFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(statsTool, s.handleStatsFile)

	infoTool := mcp.NewTool(
		"dd1750_server_info",
		mcp.WithDescription(descriptions.DD1750ServerInfoDescription),
	)
	s.mcpServer.AddTool(infoTool, s.handleServerInfo)
}

// Handler functions

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bomPath, err := request.RequireString("bom_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	templatePath, err := request.RequireString("template_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputPath, err := request.RequireString("output_path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.GenerateRequest{
		BOMPath:      bomPath,
		TemplatePath: templatePath,
		OutputPath:   outputPath,
		StartPage:    s.optionalPage(request, "start_page", s.config.StartPage),
	}
	result, err := s.service.Generate(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Generated DD1750: %s\n", result.OutputPath)
	responseText += fmt.Sprintf("Items placed: %d\n", result.ItemCount)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	if result.ItemCount == 0 {
		responseText += "\nNo reportable items were found in the BOM; the output is the bare template page. " +
			"Use 'bom_inspect_page' to see what the extractor sees.\n"
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleExtractItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	req := pdf.ExtractItemsRequest{
		Path:      path,
		StartPage: s.optionalPage(request, "start_page", s.config.StartPage),
	}
	result, err := s.service.ExtractItems(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.Count == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No reportable items found in %s", result.Path)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Extracted %d items from %s:\n\n", result.Count, result.Path)
	for _, item := range result.Items {
		fmt.Fprintf(&sb, "%4d. %s", item.Line, item.Description)
		if item.NSN != "" {
			fmt.Fprintf(&sb, " [NSN %s]", item.NSN)
		}
		fmt.Fprintf(&sb, " x%d\n", item.Qty)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleInspectPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, err := request.RequireInt("page")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.InspectPage(pdf.InspectPageRequest{Path: path, Page: page})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Page %d of %s\n", result.Page, result.Path)
	responseText += fmt.Sprintf("Detected tables: %d\n", result.TableCount)
	if result.Text == "" {
		responseText += "\nNo extractable text on this page (possibly a scanned image).\n"
	} else {
		responseText += "\nText:\n" + result.Text
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleValidateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateFile(pdf.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.Valid {
		return mcp.NewToolResultText(fmt.Sprintf("Valid PDF: %s", result.Path)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Invalid PDF: %s\nReason: %s", result.Path, result.Message)), nil
}

func (s *Server) handleStatsFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.StatsFile(pdf.StatsFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("File: %s\n", result.Path)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Modified: %s\n", result.Modified)
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.service.ServerInfo(pdf.ServerInfoRequest{}, s.config.ServerName, s.config.Version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s v%s\n", result.ServerName, result.Version)
	fmt.Fprintf(&sb, "Work directory: %s\n", result.WorkDir)
	fmt.Fprintf(&sb, "Max file size: %d bytes\n\n", result.MaxFileSize)
	sb.WriteString("Available tools:\n")
	for _, tool := range result.Tools {
		fmt.Fprintf(&sb, "\n%s\n  %s\n  Parameters: %s\n", tool.Name, tool.Description, tool.Parameters)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// optionalPage reads an optional numeric page argument, falling back to the
// configured default.
func (s *Server) optionalPage(request mcp.CallToolRequest, key string, fallback int) int {
	args := request.GetArguments()
	if v, ok := args[key].(float64); ok && v >= 0 {
		return int(v)
	}
	return fallback
}

// Run starts the MCP server over stdio. The HTTP front end has its own
// server in internal/web.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting DD1750 MCP server in stdio mode")
		log.Printf("Work directory: %s", s.config.WorkDir)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
