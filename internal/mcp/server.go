package mcp

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/zboyco/toast-mcp/internal/config"
	"github.com/zboyco/toast-mcp/internal/identity"
	"github.com/zboyco/toast-mcp/internal/toast"
)

const (
	serverName    = "toast-mcp"
	serverVersion = "0.2.0"

	greetTool             = "greet"
	packageFamilyNameTool = "get_package_family_name"
	showNotificationTool  = "show_notification"

	nameParam  = "name"
	titleParam = "title"
	bodyParam  = "body"
)

// Server wraps an mcp-go server with the toast tools registered.
type Server struct {
	cfg       config.Settings
	logger    zerolog.Logger
	builder   *toast.Builder
	resolver  *identity.Resolver
	mcpServer *server.MCPServer
}

// NewServer builds a new MCP server backed by mark3labs/mcp-go.
func NewServer(
	cfg config.Settings,
	builder *toast.Builder,
	resolver *identity.Resolver,
	logger zerolog.Logger,
) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		builder:   builder,
		resolver:  resolver,
		mcpServer: mcpServer,
	}
	s.registerTools()
	return s
}

// Serve runs the stdio transport until stdin closes.
func (s *Server) Serve() error {
	errLogger := log.New(s.logger.With().Str("component", "stdio").Logger(), "", 0)
	return server.ServeStdio(
		s.mcpServer,
		server.WithErrorLogger(errLogger),
	)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		greetTool,
		mcp.WithDescription("Echo a greeting for the given name"),
		mcp.WithString(
			nameParam,
			mcp.Required(),
			mcp.Description("Name to greet"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.handleGreet)

	s.mcpServer.AddTool(mcp.NewTool(
		packageFamilyNameTool,
		mcp.WithDescription("Report the package family name of this process, if it runs from an installed package"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
	), s.handlePackageFamilyName)

	s.mcpServer.AddTool(mcp.NewTool(
		showNotificationTool,
		mcp.WithDescription("Show a toast notification with a title and an optional body"),
		mcp.WithString(
			titleParam,
			mcp.Description("First line of the toast"),
			mcp.DefaultString(s.cfg.DefaultTitle),
		),
		mcp.WithString(
			bodyParam,
			mcp.Description("Second line of the toast; omit for a single-line toast"),
		),
		mcp.WithTitleAnnotation("show notification"),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
	), s.handleShowNotification)
}

func (s *Server) handleGreet(
	_ context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	name, err := req.RequireString(nameParam)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(Greeting(name)), nil
}

func (s *Server) handlePackageFamilyName(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	id, ok := s.resolver.Resolve(ctx)
	if !ok {
		return mcp.NewToolResultText(NoPackageIdentity), nil
	}
	return mcp.NewToolResultText(id.FamilyName), nil
}

func (s *Server) handleShowNotification(
	ctx context.Context,
	req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	title := strings.TrimSpace(req.GetString(titleParam, ""))
	body := strings.TrimSpace(req.GetString(bodyParam, ""))

	fields, err := NotificationFields(title, body, s.cfg.DefaultTitle)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.builder.BuildAndShow(ctx, fields...); err != nil {
		s.logger.Error().Err(err).Msg("show_notification failed")
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.logger.Info().Strs("fields", fields).Msg("notification shown")
	return mcp.NewToolResultText(fmt.Sprintf("notification shown (%d field(s))", len(fields))), nil
}
