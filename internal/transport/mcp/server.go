// Package mcp exposes the homestay search, statistics, and officer
// administration tools over the Model Context Protocol. The tool surface
// mirrors the service's public contract; each handler binds arguments,
// delegates to a usecase, and renders the result as JSON text content.
package mcp

import (
	"encoding/json"
	"net/http"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/Paurakh977/HomeStay-MCP/internal/version"
)

// Server registers the homestay tool set on an MCP server.
type Server struct {
	search    Searcher
	stats     StatsProvider
	officers  OfficerAPI
	authToken string
	logger    *zap.Logger
	mcp       *server.MCPServer
}

// NewServer wires the tool handlers. officers may be nil, in which case the
// officer tools are not registered. defaultAuthToken is used when a call
// carries no auth_token argument.
func NewServer(
	search Searcher, stats StatsProvider, officers OfficerAPI,
	defaultAuthToken string, logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		stats:     stats,
		officers:  officers,
		authToken: defaultAuthToken,
		logger:    logger,
	}

	m := server.NewMCPServer(
		"homestay-filter",
		version.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	m.AddTool(searchTool(), s.handleSearch)
	m.AddTool(statsTool(), s.handleStats)
	if officers != nil {
		m.AddTool(createOfficerTool(), s.handleCreateOfficer)
		m.AddTool(listOfficersTool(), s.handleListOfficers)
		m.AddTool(updateOfficerStatusTool(), s.handleUpdateOfficerStatus)
		m.AddTool(deleteOfficerTool(), s.handleDeleteOfficer)
		m.AddTool(updateOfficerPermissionsTool(), s.handleUpdateOfficerPermissions)
	}
	s.mcp = m
	return s
}

// Handler returns the streamable HTTP transport for mounting on a router.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp, server.WithStateLess(true))
}

// jsonResult renders v as a JSON text content block.
func jsonResult(v any) (*mcpgo.CallToolResult, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return mcpgo.NewToolResultError("encode result: " + err.Error()), nil
	}
	return mcpgo.NewToolResultText(string(raw)), nil
}

// toolError renders a usecase failure without tearing down the MCP session.
func (s *Server) toolError(op string, err error) *mcpgo.CallToolResult {
	s.logger.Warn("Tool call failed", zap.String("tool", op), zap.Error(err))
	return mcpgo.NewToolResultError(err.Error())
}

func (s *Server) token(argToken string) string {
	if argToken != "" {
		return argToken
	}
	return s.authToken
}
