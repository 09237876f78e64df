package base

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Gravity-Devs/liquidity/pkg/log"
)

// Client owns the gRPC connection shared by the module clients.
type Client struct {
	conn   *grpc.ClientConn
	config Config
	logger *zap.Logger
}

// New creates a base blockchain client with a gRPC connection. Extra dial
// options are appended after the defaults.
func New(ctx context.Context, cfg Config, logger *zap.Logger, extra ...grpc.DialOption) (*Client, error) {
	cfg = cfg.WithDefaults()
	logger = log.OrNop(logger)

	// Determine if we should use TLS based on the endpoint.
	// Use TLS if: port is 443, or hostname doesn't start with "localhost"/"127.0.0.1".
	useTLS := shouldUseTLS(cfg.GRPCAddr)
	if cfg.InsecureGRPC {
		useTLS = false
	}

	var creds credentials.TransportCredentials
	if useTLS {
		// Use system TLS credentials for secure connections
		creds = credentials.NewTLS(nil)
	} else {
		// Use insecure credentials for local development
		creds = insecure.NewCredentials()
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize),
			grpc.MaxCallSendMsgSize(cfg.MaxSendMsgSize),
		),
	}
	dialOpts = append(dialOpts, extra...)

	conn, err := grpc.NewClient(cfg.GRPCAddr, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gRPC: %w", err)
	}
	logger.Debug("grpc client created", zap.String("addr", cfg.GRPCAddr), zap.Bool("tls", useTLS))

	return &Client{
		conn:   conn,
		config: cfg,
		logger: logger,
	}, nil
}

// Close closes the underlying gRPC connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// GRPCConn exposes the underlying gRPC connection for specialized queries.
func (c *Client) GRPCConn() *grpc.ClientConn {
	return c.conn
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Logger returns the client logger.
func (c *Client) Logger() *zap.Logger {
	return c.logger
}

// shouldUseTLS determines if TLS should be used based on the gRPC address.
func shouldUseTLS(addr string) bool {
	if strings.HasPrefix(addr, "passthrough:") || strings.HasPrefix(addr, "unix:") {
		return false
	}

	// Check for explicit port 443 (standard HTTPS/gRPC-TLS port).
	if strings.HasSuffix(addr, ":443") {
		return true
	}

	// Check if it's a local address (localhost, 127.0.0.1, or no hostname).
	if strings.HasPrefix(addr, "localhost:") ||
		strings.HasPrefix(addr, "127.0.0.1:") ||
		strings.HasPrefix(addr, "0.0.0.0:") ||
		strings.HasPrefix(addr, ":") { // Just port, implies localhost.
		return false
	}

	// For any other remote address, prefer TLS by default for security.
	if !strings.Contains(addr, "localhost") &&
		!strings.Contains(addr, "127.0.0.1") &&
		!strings.Contains(addr, "0.0.0.0") {
		return true
	}

	return false
}
