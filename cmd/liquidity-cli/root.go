package main

import (
	"context"
	"fmt"
	"io"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gravity-Devs/liquidity/client"
	clientconfig "github.com/Gravity-Devs/liquidity/client/config"
	"github.com/Gravity-Devs/liquidity/pkg/crypto"
	"github.com/Gravity-Devs/liquidity/pkg/log"
)

type globalFlags struct {
	chainID        string
	grpcAddr       string
	restAddr       string
	rpcAddr        string
	insecure       bool
	keyName        string
	keyringBackend string
	keyringDir     string
	logLevel       string
	logFormat      string
	maxMsgSize     string
	output         string
}

type app struct {
	flags  globalFlags
	cfg    clientconfig.Config
	logger *zap.Logger
	out    io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "liquidity-cli",
		Short:         "Interact with the liquidity module and IBC channels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.out = cmd.OutOrStdout()
			return a.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.flags.chainID, "chain-id", "", "chain ID, discovered from the node when empty")
	f.StringVar(&a.flags.grpcAddr, "grpc", "", "node gRPC endpoint")
	f.StringVar(&a.flags.restAddr, "rest", "", "node REST (gateway) endpoint")
	f.StringVar(&a.flags.rpcAddr, "rpc", "", "CometBFT RPC endpoint used to await txs")
	f.BoolVar(&a.flags.insecure, "insecure", false, "dial gRPC without TLS")
	f.StringVar(&a.flags.keyName, "from", "", "keyring key used to sign")
	f.StringVar(&a.flags.keyringBackend, "keyring-backend", "os", "keyring backend (os|file|test)")
	f.StringVar(&a.flags.keyringDir, "keyring-dir", "", "keyring directory")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	f.StringVar(&a.flags.logFormat, "log-format", "console", "log format (console|json)")
	f.StringVar(&a.flags.maxMsgSize, "max-msg-size", "", "max gRPC message size, e.g. 50MB")
	f.StringVarP(&a.flags.output, "output", "o", "text", "output format (text|json)")

	cmd.AddCommand(newTxCmd(a), newQueryCmd(a))
	return cmd
}

// load resolves the configuration: defaults, then LIQUIDITY_* environment,
// then flags that were set explicitly.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := clientconfig.FromEnv()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("chain-id") {
		cfg.ChainID = a.flags.chainID
	}
	if f.Changed("grpc") {
		cfg.GRPCEndpoint = a.flags.grpcAddr
	}
	if f.Changed("rest") {
		cfg.RESTEndpoint = a.flags.restAddr
	}
	if f.Changed("rpc") {
		cfg.RPCEndpoint = a.flags.rpcAddr
	}
	if f.Changed("insecure") {
		cfg.InsecureGRPC = a.flags.insecure
	}
	if f.Changed("from") {
		cfg.KeyName = a.flags.keyName
	}
	if f.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if a.flags.maxMsgSize != "" {
		size, err := humanize.ParseBytes(a.flags.maxMsgSize)
		if err != nil {
			return fmt.Errorf("invalid --max-msg-size: %w", err)
		}
		cfg.MaxRecvMsgSize = int(size)
		cfg.MaxSendMsgSize = int(size)
	}
	if a.flags.output != "text" && a.flags.output != "json" {
		return fmt.Errorf("invalid --output %q", a.flags.output)
	}

	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}
	logger, err := newLogger(a.flags.logFormat, logLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func newLogger(format, level string) (*zap.Logger, error) {
	switch format {
	case "console":
		return log.NewDevelopment(level)
	case "json":
		return log.New(level)
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}
}

// client builds a unified client. withSigner loads the --from key.
func (a *app) client(ctx context.Context, withSigner bool) (*client.Client, error) {
	cfg := a.cfg
	if !withSigner {
		cfg.KeyName = ""
		return client.New(ctx, cfg, nil, client.WithLogger(a.logger))
	}
	if cfg.KeyName == "" {
		return nil, fmt.Errorf("--from is required to sign")
	}
	kr, err := crypto.NewKeyring(crypto.KeyringParams{
		Backend: a.flags.keyringBackend,
		Dir:     a.flags.keyringDir,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return client.New(ctx, cfg, kr, client.WithLogger(a.logger))
}
