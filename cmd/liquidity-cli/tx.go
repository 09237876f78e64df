package main

import (
	"context"
	"fmt"
	"strconv"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/Gravity-Devs/liquidity/blockchain"
	"github.com/Gravity-Devs/liquidity/client"
	"github.com/Gravity-Devs/liquidity/liquidity"
	"github.com/Gravity-Devs/liquidity/types"
)

type txFlags struct {
	fees string
	gas  uint64
	memo string
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.fees, "fees", "", "explicit fee, e.g. 5000stake; simulated when empty")
	cmd.PersistentFlags().Uint64Var(&f.gas, "gas", 0, "gas limit used with --fees")
	cmd.PersistentFlags().StringVar(&f.memo, "memo", "", "tx memo")
}

func (f *txFlags) options() (blockchain.SignAndBroadcastOptions, error) {
	opts := blockchain.SignAndBroadcastOptions{Memo: f.memo}
	if f.fees == "" {
		return opts, nil
	}
	coins, err := sdk.ParseCoinsNormalized(f.fees)
	if err != nil {
		return opts, fmt.Errorf("invalid --fees: %w", err)
	}
	if f.gas == 0 {
		return opts, fmt.Errorf("--gas is required with --fees")
	}
	opts.Fee = &types.StdFee{Amount: coins, Gas: f.gas}
	return opts, nil
}

func newTxCmd(a *app) *cobra.Command {
	var tf txFlags
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Sign and broadcast transactions",
	}
	tf.register(cmd)
	cmd.AddCommand(newLiquidityTxCmd(a, &tf), newChannelTxCmd(a, &tf))
	return cmd
}

func parsePoolID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pool id %q: %w", s, err)
	}
	return id, nil
}

type liquidityTxFunc func(*client.Client, *liquidity.TxClient, blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error)

// runLiquidityTx opens a signing client and hands it with its liquidity tx
// client to fn.
func (a *app) runLiquidityTx(cmd *cobra.Command, tf *txFlags, fn liquidityTxFunc) error {
	opts, err := tf.options()
	if err != nil {
		return err
	}
	c, err := a.client(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer c.Close()

	tx, err := c.LiquidityTx()
	if err != nil {
		return err
	}
	resp, err := fn(c, tx, opts)
	if err != nil {
		return err
	}
	return a.printTx(resp)
}

// resolveSwapFeeRate parses flag, or reads the module's current rate when
// flag is empty.
func resolveSwapFeeRate(ctx context.Context, flag string, q *liquidity.QueryClient) (sdkmath.LegacyDec, error) {
	if flag != "" {
		rate, err := sdkmath.LegacyNewDecFromStr(flag)
		if err != nil {
			return sdkmath.LegacyDec{}, fmt.Errorf("invalid --swap-fee-rate: %w", err)
		}
		return rate, nil
	}
	params, err := q.Params(ctx)
	if err != nil {
		return sdkmath.LegacyDec{}, fmt.Errorf("query swap fee rate: %w", err)
	}
	return params.SwapFeeRate, nil
}

func newLiquidityTxCmd(a *app, tf *txFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Liquidity pool transactions",
	}

	createPool := &cobra.Command{
		Use:     "create-pool [deposit-coins]",
		Short:   "Create a pool with an initial reserve coin pair",
		Example: `$ liquidity-cli tx liquidity create-pool 1000000uatom,50000000uusd --from alice`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coins, err := sdk.ParseCoinsNormalized(args[0])
			if err != nil {
				return err
			}
			return a.runLiquidityTx(cmd, tf, func(_ *client.Client, tx *liquidity.TxClient, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
				return tx.CreatePool(cmd.Context(), coins, opts)
			})
		},
	}

	deposit := &cobra.Command{
		Use:   "deposit [pool-id] [deposit-coins]",
		Short: "Deposit a reserve coin pair into the current pool batch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			coins, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return err
			}
			return a.runLiquidityTx(cmd, tf, func(_ *client.Client, tx *liquidity.TxClient, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
				return tx.Deposit(cmd.Context(), poolID, coins, opts)
			})
		},
	}

	withdraw := &cobra.Command{
		Use:   "withdraw [pool-id] [pool-coin]",
		Short: "Redeem pool coins in the current pool batch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			coin, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return err
			}
			return a.runLiquidityTx(cmd, tf, func(_ *client.Client, tx *liquidity.TxClient, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
				return tx.Withdraw(cmd.Context(), poolID, coin, opts)
			})
		},
	}

	var swapFeeRate string
	swap := &cobra.Command{
		Use:     "swap [pool-id] [offer-coin] [demand-coin-denom] [order-price]",
		Short:   "Queue a swap order in the current pool batch",
		Example: `$ liquidity-cli tx liquidity swap 1 10000uatom uusd 0.019 --swap-fee-rate 0.003 --from alice`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			offer, err := sdk.ParseCoinNormalized(args[1])
			if err != nil {
				return err
			}
			price, err := sdkmath.LegacyNewDecFromStr(args[3])
			if err != nil {
				return fmt.Errorf("invalid order price: %w", err)
			}
			req := liquidity.SwapRequest{
				PoolID:          poolID,
				OfferCoin:       offer,
				DemandCoinDenom: args[2],
				OrderPrice:      price,
			}
			return a.runLiquidityTx(cmd, tf, func(c *client.Client, tx *liquidity.TxClient, opts blockchain.SignAndBroadcastOptions) (*types.BroadcastTxResponse, error) {
				rate, err := resolveSwapFeeRate(cmd.Context(), swapFeeRate, c.Liquidity)
				if err != nil {
					return nil, err
				}
				req.SwapFeeRate = rate
				return tx.Swap(cmd.Context(), req, opts)
			})
		},
	}
	swap.Flags().StringVar(&swapFeeRate, "swap-fee-rate", "", "module swap fee rate used to reserve the offer coin fee; queried from params when empty")

	cmd.AddCommand(createPool, deposit, withdraw, swap)
	return cmd
}

func newChannelTxCmd(a *app, tf *txFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "IBC channel transactions",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "close-init [port-id] [channel-id]",
		Short: "Start closing a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := tf.options()
			if err != nil {
				return err
			}
			c, err := a.client(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer c.Close()

			tx, err := c.ChannelTx()
			if err != nil {
				return err
			}
			resp, err := tx.CloseInit(cmd.Context(), args[0], args[1], opts)
			if err != nil {
				return err
			}
			return a.printTx(resp)
		},
	})
	return cmd
}
