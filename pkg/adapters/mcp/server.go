package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/cellfn/pkg/pipeline"
	"github.com/aretw0/cellfn/pkg/registry"
	"github.com/aretw0/cellfn/pkg/value"
)

// FunctionsURI is the resource listing every registered function.
const FunctionsURI = "cellfn://functions"

// Server exposes a function registry as an MCP server.
type Server struct {
	registry  *registry.Registry
	locale    string
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(reg *registry.Registry, version, locale string) *Server {
	if locale == "" {
		locale = pipeline.DefaultLocale
	}
	s := &Server{
		registry:  reg,
		locale:    locale,
		mcpServer: server.NewMCPServer("cellfn-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying server, e.g. for an in-process client.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: list_functions
	s.mcpServer.AddTool(mcp.NewTool("list_functions",
		mcp.WithDescription("List the available spreadsheet functions with their call template."),
		mcp.WithString("category", mcp.Description("Only list functions of this category (optional)")),
	), s.handleListFunctions)

	// TOOL: describe_function
	s.mcpServer.AddTool(mcp.NewTool("describe_function",
		mcp.WithDescription("Describe a function: its arguments, their types and whether they accept ranges."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Function name, case-insensitive")),
	), s.handleDescribeFunction)

	// TOOL: invoke_function
	s.mcpServer.AddTool(mcp.NewTool("invoke_function",
		mcp.WithDescription("Call a function. Ranges are arrays of columns, e.g. [[1,2],[3,4]] has two columns."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Function name, case-insensitive")),
		mcp.WithString("args", mcp.Description("JSON array of arguments, e.g. [2, \"text\", [[1,2]]] (optional)")),
		mcp.WithString("locale", mcp.Description("Locale such as en_US (optional)")),
	), s.handleInvokeFunction)
}

func (s *Server) handleListFunctions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := request.GetString("category", "")

	type entry struct {
		Name        string `json:"name"`
		Category    string `json:"category,omitempty"`
		Usage       string `json:"usage"`
		Description string `json:"description"`
	}
	entries := []entry{}
	for _, d := range s.registry.Descriptors() {
		if d.Hidden || (category != "" && !strings.EqualFold(d.Category, category)) {
			continue
		}
		entries = append(entries, entry{Name: d.Name, Category: d.Category, Usage: d.Usage(), Description: d.Description})
	}
	return jsonResult(entries)
}

func (s *Server) handleDescribeFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, ok := s.registry.Get(name)
	if !ok {
		return lookupError(s.registry, name), nil
	}
	return jsonResult(struct {
		registry.Descriptor
		Usage string `json:"usage"`
	}{d, d.Usage()})
}

func (s *Server) handleInvokeFunction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	call, err := s.registry.Lookup(name)
	if err != nil {
		return lookupError(s.registry, name), nil
	}

	var raw []any
	if argsStr := request.GetString("args", ""); argsStr != "" {
		if err := json.Unmarshal([]byte(argsStr), &raw); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("args must be a JSON array: %v", err)), nil
		}
	}
	args, err := value.ArgsFromJSON(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	locale := request.GetString("locale", s.locale)
	out := call(pipeline.StaticContext{LocaleName: locale}, args...)
	return jsonResult(out)
}

func (s *Server) registerResources() {
	// EXPOSE: cellfn://functions
	s.mcpServer.AddResource(mcp.NewResource(FunctionsURI, "Registered Functions",
		mcp.WithMIMEType("application/json"),
	), s.handleReadFunctions)
}

func (s *Server) handleReadFunctions(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.registry.Descriptors())
	if err != nil {
		return nil, fmt.Errorf("failed to encode functions: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      FunctionsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func lookupError(reg *registry.Registry, name string) *mcp.CallToolResult {
	_, err := reg.Lookup(name)
	var unknown *registry.UnknownFunctionError
	if errors.As(err, &unknown) {
		return mcp.NewToolResultError(unknown.Error())
	}
	return mcp.NewToolResultError(fmt.Sprintf("unknown function %s", name))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
