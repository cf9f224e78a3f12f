// Package mcp exposes explain as a Model Context Protocol server.
package mcp

import (
	"context"
	"io"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	mcp "github.com/mark3labs/mcp-go/mcp"
	srv "github.com/mark3labs/mcp-go/server"

	"github.com/Laisky/explain/internal/mcp/tools"
	"github.com/Laisky/explain/library/log"
)

const (
	serverName    = "explain"
	serverVersion = "1.0.0"
)

// Server wraps the MCP server state for the stdio transport.
type Server struct {
	mcpServer *srv.MCPServer
	logger    logSDK.Logger
}

// NewServer constructs an MCP server exposing the explain tool.
func NewServer(explainer tools.Explainer, logger logSDK.Logger) (*Server, error) {
	if explainer == nil {
		return nil, errors.New("explainer is required")
	}
	if logger == nil {
		logger = log.Logger.Named("mcp")
	}

	hooks := newMCPHooks(logger.Named("mcp_hooks"))

	mcpServer := srv.NewMCPServer(
		serverName,
		serverVersion,
		srv.WithToolCapabilities(true),
		srv.WithInstructions("Use the explain tool to get a short Wikipedia-backed explanation of a concept. Set more=true for the longer extract."),
		srv.WithRecovery(),
		srv.WithHooks(hooks),
	)

	explainTool, err := tools.NewExplainTool(explainer, logger.Named("explain_tool"))
	if err != nil {
		return nil, errors.Wrap(err, "new explain tool")
	}
	mcpServer.AddTool(explainTool.Definition(), explainTool.Handle)

	return &Server{
		mcpServer: mcpServer,
		logger:    logger,
	}, nil
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *srv.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP requests read from stdin and writes responses to stdout
// until ctx is done or stdin is closed.
func (s *Server) ServeStdio(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	s.logger.Info("mcp stdio server started")
	stdio := srv.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, stdin, stdout); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "serve mcp over stdio")
	}

	s.logger.Info("mcp stdio server stopped")
	return nil
}

func newMCPHooks(logger logSDK.Logger) *srv.Hooks {
	if logger == nil {
		return nil
	}

	hooks := &srv.Hooks{}

	hooks.AddBeforeAny(func(ctx context.Context, id any, method mcp.MCPMethod, message any) {
		fields := hookLogFields(ctx, id, method)
		if message != nil {
			fields = append(fields, zap.Any("request", message))
		}
		logger.Debug("mcp request received", fields...)
	})

	hooks.AddOnSuccess(func(ctx context.Context, id any, method mcp.MCPMethod, message any, result any) {
		fields := hookLogFields(ctx, id, method)
		if result != nil {
			fields = append(fields, zap.Any("response", result))
		}
		logger.Debug("mcp request succeeded", fields...)
	})

	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		fields := hookLogFields(ctx, id, method)
		if message != nil {
			fields = append(fields, zap.Any("request", message))
		}
		fields = append(fields, zap.Error(err))
		logger.Warn("mcp request failed", fields...)
	})

	return hooks
}

func hookLogFields(ctx context.Context, id any, method mcp.MCPMethod) []zap.Field {
	fields := []zap.Field{
		zap.Any("request_id", id),
		zap.String("method", string(method)),
	}

	if session := srv.ClientSessionFromContext(ctx); session != nil {
		fields = append(fields, zap.String("session_id", session.SessionID()))
	}

	return fields
}
