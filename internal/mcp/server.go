package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jcdickinson/apidocs/internal/docs"
	"github.com/jcdickinson/apidocs/internal/index"
	"github.com/jcdickinson/apidocs/internal/markdown"
	"github.com/jcdickinson/apidocs/internal/rpc"
)

//go:embed instructions.md
var instructions string

// URIScheme prefixes resource URIs: apidoc://tab/category[/subcategory].
const URIScheme = "apidoc://"

type Server struct {
	mcpServer *server.MCPServer
	project   docs.Project
	index     *index.DB
}

// NewServer exposes project over MCP. idx may be nil, in which case
// search_items reports that no index is available.
func NewServer(name, version string, project docs.Project, idx *index.DB) *Server {
	s := &Server{project: project, index: idx}

	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("get_item",
			mcp.WithDescription("Read one documented item as markdown, addressed by tab, category and optional subcategory (e.g. classes / Player / Kick)."),
			mcp.WithString("tab",
				mcp.Description("Top-level tab, such as \"classes\" or \"globals\""),
				mcp.Required(),
			),
			mcp.WithString("category",
				mcp.Description("Category within the tab"),
				mcp.Required(),
			),
			mcp.WithString("subcategory",
				mcp.Description("Optional entry within the category"),
			),
		),
		s.handleGetItem,
	)

	mcpServer.AddTool(
		mcp.NewTool("search_items",
			mcp.WithDescription("Search documented items by name or summary. Returns paths and apidoc:// URIs that can be read as resources."),
			mcp.WithString("query",
				mcp.Description("Name or keyword to look for"),
				mcp.Required(),
			),
			mcp.WithNumber("limit",
				mcp.Description(fmt.Sprintf("Maximum number of results (default %d)", index.DefaultLimit)),
			),
		),
		s.handleSearchItems,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			URIScheme+"{tab}/{category}/{subcategory}",
			"API documentation item",
			mcp.WithTemplateDescription("Read a documented member. Search results return these URIs."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			URIScheme+"{tab}/{category}",
			"API documentation category",
			mcp.WithTemplateDescription("Read a documented category such as a class or library."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
}

// ItemURI returns the resource URI for an item path.
func ItemURI(path string) string {
	tab, category, subcategory := docs.ParseDocPath(path)
	parts := []string{url.PathEscape(tab), url.PathEscape(category)}
	if subcategory != "" {
		parts = append(parts, url.PathEscape(subcategory))
	}
	return URIScheme + strings.Join(parts, "/")
}

func (s *Server) handleGetItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	tab, _ := args["tab"].(string)
	category, _ := args["category"].(string)
	subcategory, _ := args["subcategory"].(string)
	if tab == "" || category == "" {
		return mcp.NewToolResultError("missing required parameters: tab and category"), nil
	}

	it, ok := s.project.Select(tab, category, subcategory)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no item at %s", docs.Entry{Tab: tab, Category: category, Subcategory: subcategory}.Path())), nil
	}
	return mcp.NewToolResultText(markdown.Document(it, category)), nil
}

type searchResult struct {
	rpc.SearchHit
	URI string `json:"uri"`
}

func (s *Server) handleSearchItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if query == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if s.index == nil {
		return mcp.NewToolResultError("search index not available"), nil
	}

	limit := 0
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	results, err := s.index.Search(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	resp := rpc.NewSearchResponse(query, results)
	out := make([]searchResult, 0, len(resp.Results))
	for _, hit := range resp.Results {
		out = append(out, searchResult{SearchHit: hit, URI: ItemURI(hit.Path)})
	}

	resultJSON, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	if !strings.HasPrefix(uri, URIScheme) {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	tab, category, subcategory := docs.ParseDocPath(strings.TrimPrefix(uri, URIScheme))
	var err error
	for _, p := range []*string{&tab, &category, &subcategory} {
		if *p, err = url.PathUnescape(*p); err != nil {
			return nil, fmt.Errorf("invalid resource URI %s: %w", uri, err)
		}
	}

	it, ok := s.project.Select(tab, category, subcategory)
	if !ok {
		return nil, fmt.Errorf("no item at %s", uri)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     markdown.Document(it, category),
		},
	}, nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
