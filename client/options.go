package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Gravity-Devs/liquidity/types"
)

// Option customises New.
type Option func(*settings)

type settings struct {
	cfg         *Config
	logger      *zap.Logger
	dialOptions []grpc.DialOption
	httpClient  *http.Client
	signer      types.Signer
}

// WithChainID sets the chain ID
func WithChainID(chainID string) Option {
	return func(s *settings) {
		s.cfg.ChainID = chainID
	}
}

// WithGRPCEndpoint sets the gRPC address
func WithGRPCEndpoint(addr string) Option {
	return func(s *settings) {
		s.cfg.GRPCEndpoint = addr
	}
}

// WithRESTEndpoint sets the gateway address used for queries
func WithRESTEndpoint(addr string) Option {
	return func(s *settings) {
		s.cfg.RESTEndpoint = addr
	}
}

// WithBlockchainTimeout sets the blockchain timeout
func WithBlockchainTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.cfg.BlockchainTimeout = timeout
	}
}

// WithMaxMessageSize sets both send and receive message sizes
func WithMaxMessageSize(size int) Option {
	return func(s *settings) {
		s.cfg.MaxRecvMsgSize = size
		s.cfg.MaxSendMsgSize = size
	}
}

// WithLogger sets the logger shared by every sub-client.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithDialOptions appends gRPC dial options.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(s *settings) {
		s.dialOptions = append(s.dialOptions, opts...)
	}
}

// WithHTTPClient replaces the HTTP client used for REST queries.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *settings) {
		s.httpClient = hc
	}
}

// WithTxSigner signs with signer instead of a keyring key.
func WithTxSigner(signer types.Signer) Option {
	return func(s *settings) {
		s.signer = signer
	}
}
