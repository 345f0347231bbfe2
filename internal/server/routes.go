package server

import (
	"net/http"

	"github.com/cortexai/cosmosdb-mcp/internal/handler"
	"github.com/cortexai/cosmosdb-mcp/internal/middleware"
	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// MCPPath is where the streamable HTTP transport is mounted
const MCPPath = "/mcp"

func (s *Server) routes() http.Handler {
	healthH := handler.NewHealthHandler(Version, s.checkers)

	r := chi.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)

	r.Get("/health", healthH.Health)
	r.Handle(MCPPath, mcpserver.NewStreamableHTTPServer(s.mcp, mcpserver.WithEndpointPath(MCPPath)))

	return r
}
