package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/remap/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const shutdownTimeout = 5 * time.Second

// Runner serves the mindmap tools over one transport until ctx is done.
type Runner struct {
	Service   *app.Service
	Version   string
	Transport Transport

	// Addr and Path locate the HTTP endpoint.
	Addr string
	Path string
	// CertFile and KeyFile switch HTTP to TLS; both or neither.
	CertFile string
	KeyFile  string
	// Out receives the endpoint URL once the HTTP listener is up.
	Out io.Writer
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp: runner requires a service")
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		"remap MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Browse and edit a single mindmap tree. Paths are slash separated node names starting at the root."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Service)
	registerResources(srv, svc)
	registerTools(srv, svc)

	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("mcp: unknown transport %q", r.Transport)
	}
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	secure := r.CertFile != ""
	if secure != (r.KeyFile != "") {
		return errors.New("mcp: tls needs both a certificate and a key")
	}
	path := r.Path
	if path == "" {
		path = "/mcp"
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", r.Addr)
	if err != nil {
		return fmt.Errorf("mcp: listen: %w", err)
	}
	if r.Out != nil {
		_, _ = fmt.Fprintf(r.Out, "MCP HTTP server listening on %s\n", endpointURL(ln.Addr(), path, secure))
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	})
	defer stop()

	if secure {
		err = httpSrv.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// endpointURL names the listener the way a client should dial it; wildcard
// binds are reported as loopback.
func endpointURL(addr net.Addr, path string, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	host := addr.String()
	if tcp, ok := addr.(*net.TCPAddr); ok && tcp.IP.IsUnspecified() {
		host = net.JoinHostPort("127.0.0.1", strconv.Itoa(tcp.Port))
	}
	return scheme + "://" + host + path
}
