package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"time"

	"github.com/cortexai/cosmosdb-mcp/internal/config"
	"github.com/cortexai/cosmosdb-mcp/internal/handler"
	"github.com/cortexai/cosmosdb-mcp/internal/security"
	"github.com/cortexai/cosmosdb-mcp/internal/service"
	"github.com/cortexai/cosmosdb-mcp/internal/tools"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	cfg        *config.Config
	dispatcher *tools.Dispatcher
	mcp        *mcpserver.MCPServer
	checkers   map[string]handler.HealthChecker

	stdin  io.Reader
	stdout io.Writer
}

// New builds the Azure clients once and wires them into the tool dispatcher.
func New(cfg *config.Config) (*Server, error) {
	cred, err := service.NewCredential()
	if err != nil {
		return nil, err
	}

	cosmos, err := service.NewCosmosService(service.CosmosConfig{
		Endpoint:          cfg.CosmosEndpoint,
		Key:               cfg.CosmosKey,
		Credential:        cred,
		Database:          cfg.CosmosDatabase,
		DefaultContainer:  cfg.CosmosContainer,
		PartitionKeyField: cfg.PartitionKeyField,
	})
	if err != nil {
		return nil, fmt.Errorf("cosmos service: %w", err)
	}

	keyVault, err := service.NewKeyVaultService(cfg.KeyVaultURI, cred)
	if err != nil {
		return nil, fmt.Errorf("key vault service: %w", err)
	}

	log.Info().
		Str("database", cosmos.Database()).
		Str("default_container", cfg.CosmosContainer).
		Bool("cosmos_key_auth", cfg.UsesKeyAuth()).
		Str("keyvault", keyVault.VaultURI()).
		Bool("audit_logging", cfg.EnableAuditLogging).
		Msg("service configuration")

	audit := security.NewAuditLogger(cfg.EnableAuditLogging)
	d, err := tools.NewDispatcher(audit, tools.All(cosmos, keyVault, keyVault, time.Now)...)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}

	return NewWithDispatcher(cfg, d, map[string]handler.HealthChecker{
		"cosmosdb": cosmos,
		"keyvault": keyVault,
	})
}

// NewWithDispatcher serves an already-built dispatcher. checkers feed /health
// on the HTTP transport.
func NewWithDispatcher(cfg *config.Config, d *tools.Dispatcher, checkers map[string]handler.HealthChecker) (*Server, error) {
	m, err := NewMCPServer(d)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:        cfg,
		dispatcher: d,
		mcp:        m,
		checkers:   checkers,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}, nil
}

// Dispatcher exposes the tool dispatcher for direct invocation
func (s *Server) Dispatcher() *tools.Dispatcher {
	return s.dispatcher
}

// Run serves MCP on the configured transport until ctx is cancelled or the
// client closes stdin.
func (s *Server) Run(ctx context.Context) error {
	switch s.cfg.Transport {
	case config.TransportHTTP:
		return s.runHTTP(ctx)
	default:
		return s.runStdio(ctx)
	}
}

func (s *Server) runStdio(ctx context.Context) error {
	stdio := mcpserver.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(stdlog.New(log.Logger, "", 0))

	log.Info().Msg("Azure Cosmos DB Server running on stdio")

	err := stdio.Listen(ctx, s.stdin, s.stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) runHTTP(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddress,
		Handler:           s.routes(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Azure Cosmos DB Server running on http")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("graceful shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
