package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients during the handshake.
const Version = "0.1.0"

const readHeaderTimeout = 10 * time.Second

// Server exposes the retrieval engine as MCP tools so assistants
// can query the scientific corpus directly.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer wires the retrieval ports into an MCP server with all
// tools registered. Ports must be validated before any tool runs.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "scholia",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves MCP over stdio until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over the streamable HTTP transport on addr.
// Cancelling the context shuts the listener down and returns nil.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownErr <- httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	select {
	case err := <-shutdownErr:
		return err
	default:
		return nil
	}
}
