// Package server exposes the finder as MCP tools.
package server

import (
	"fmt"
	"sync"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/config"
	"github.com/mj1618/uia-mcp/internal/finder"
	"github.com/mj1618/uia-mcp/internal/output"
	"github.com/mj1618/uia-mcp/internal/platform"
)

// Name is the MCP server name reported to clients.
const Name = "uia-mcp"

// Server wraps the MCP server with the platform provider. Lookups take no
// lock; input actions hold providerMu so clicks and keystrokes from
// concurrent calls do not interleave.
type Server struct {
	provider   *platform.Provider
	finder     *finder.Finder
	format     *output.Formatter
	cfg        *config.Config
	logger     *zap.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates a server with every tool registered.
func New(provider *platform.Provider, cfg *config.Config, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := "en-US"
	if provider.Locale != nil {
		lang = provider.Locale.UILanguage()
	}

	s := &Server{
		provider: provider,
		finder:   finder.New(provider.Reader, finder.WithLogger(logger), finder.WithInterval(cfg.PollInterval)),
		format:   output.NewFormatter(lang),
		cfg:      cfg,
		logger:   logger,
	}

	s.mcp = mcpserver.NewMCPServer(
		Name,
		version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer { return s.mcp }

// Serve blocks serving the configured transport.
func (s *Server) Serve() error {
	switch s.cfg.Transport {
	case config.TransportStdio:
		s.logger.Info("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case config.TransportHTTP:
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		s.logger.Info("serving MCP over streamable HTTP", zap.String("addr", addr))
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}
