package main

import (
	"fmt"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Gravity-Devs/liquidity/client"
	"github.com/Gravity-Devs/liquidity/types"
)

type pageFlags struct {
	limit      uint64
	offset     uint64
	countTotal bool
	reverse    bool
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.limit, "limit", 0, "page size")
	cmd.Flags().Uint64Var(&f.offset, "offset", 0, "page offset")
	cmd.Flags().BoolVar(&f.countTotal, "count-total", false, "count the total number of records")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "list in descending order")
}

func (f *pageFlags) request() *types.PageRequest {
	if f.limit == 0 && f.offset == 0 && !f.countTotal && !f.reverse {
		return nil
	}
	return &types.PageRequest{Limit: f.limit, Offset: f.offset, CountTotal: f.countTotal, Reverse: f.reverse}
}

func newQueryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Query chain state over the REST gateway",
	}
	cmd.AddCommand(newLiquidityQueryCmd(a), newChannelQueryCmd(a))
	return cmd
}

// withQueryClient opens a query-only client for the duration of fn.
func (a *app) withQueryClient(cmd *cobra.Command, fn func(*client.Client) error) error {
	c, err := a.client(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

func newLiquidityQueryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity",
		Short: "Liquidity module queries",
	}

	params := &cobra.Command{
		Use:   "params",
		Short: "Show the module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withQueryClient(cmd, func(c *client.Client) error {
				p, err := c.Liquidity.Params(cmd.Context())
				if err != nil {
					return err
				}
				p = p.WithDefaults()
				return a.printRows(p, [][2]string{
					{"pool creation fee", p.PoolCreationFee.String()},
					{"min init deposit", humanize.BigComma(p.MinInitDepositAmount.BigInt())},
					{"swap fee rate", p.SwapFeeRate.String()},
					{"withdraw fee rate", p.WithdrawFeeRate.String()},
					{"max order amount ratio", p.MaxOrderAmountRatio.String()},
					{"unit batch height", strconv.FormatUint(uint64(p.UnitBatchHeight), 10)},
					{"circuit breaker", strconv.FormatBool(p.CircuitBreakerEnabled)},
				})
			})
		},
	}

	var pf pageFlags
	pools := &cobra.Command{
		Use:   "pools",
		Short: "List liquidity pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Liquidity.Pools(cmd.Context(), pf.request())
				if err != nil {
					return err
				}
				rows := make([][2]string, 0, len(resp.Pools))
				for _, p := range resp.Pools {
					rows = append(rows, [2]string{strconv.FormatUint(p.ID, 10), strings.Join(p.ReserveCoinDenoms, "/") + "  " + p.PoolCoinDenom})
				}
				return a.printRows(resp, rows)
			})
		},
	}
	pf.register(pools)

	pool := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Show a pool and its current batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			return a.withQueryClient(cmd, func(c *client.Client) error {
				pb, err := c.Liquidity.PoolWithBatch(cmd.Context(), poolID)
				if err != nil {
					return err
				}
				return a.printRows(pb, [][2]string{
					{"id", strconv.FormatUint(pb.Pool.ID, 10)},
					{"reserve denoms", strings.Join(pb.Pool.ReserveCoinDenoms, ", ")},
					{"reserve account", pb.Pool.ReserveAccountAddress},
					{"pool coin", pb.Pool.PoolCoinDenom},
					{"batch index", strconv.FormatUint(pb.Batch.Index, 10)},
					{"batch begin height", humanize.Comma(pb.Batch.BeginHeight)},
					{"batch executed", strconv.FormatBool(pb.Batch.Executed)},
				})
			})
		},
	}

	var sf pageFlags
	swaps := &cobra.Command{
		Use:   "swaps [pool-id]",
		Short: "List swap orders in the current batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Liquidity.PoolBatchSwapMsgs(cmd.Context(), poolID, sf.request())
				if err != nil {
					return err
				}
				rows := make([][2]string, 0, len(resp.Swaps))
				for _, s := range resp.Swaps {
					desc := fmt.Sprintf("executed=%t succeeded=%t remaining=%s", s.Executed, s.Succeeded, s.RemainingOfferCoin)
					if s.Msg != nil {
						desc = fmt.Sprintf("%s -> %s @ %s  %s", s.Msg.OfferCoin, s.Msg.DemandCoinDenom, s.Msg.OrderPrice, desc)
					}
					rows = append(rows, [2]string{strconv.FormatUint(s.MsgIndex, 10), desc})
				}
				return a.printRows(resp, rows)
			})
		},
	}
	sf.register(swaps)

	var df pageFlags
	deposits := &cobra.Command{
		Use:   "deposits [pool-id]",
		Short: "List deposits in the current batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Liquidity.PoolBatchDepositMsgs(cmd.Context(), poolID, df.request())
				if err != nil {
					return err
				}
				rows := make([][2]string, 0, len(resp.Deposits))
				for _, d := range resp.Deposits {
					desc := fmt.Sprintf("executed=%t succeeded=%t", d.Executed, d.Succeeded)
					if d.Msg != nil {
						desc = d.Msg.DepositorAddress + " " + d.Msg.DepositCoins.String() + "  " + desc
					}
					rows = append(rows, [2]string{strconv.FormatUint(d.MsgIndex, 10), desc})
				}
				return a.printRows(resp, rows)
			})
		},
	}
	df.register(deposits)

	var wf pageFlags
	withdraws := &cobra.Command{
		Use:   "withdraws [pool-id]",
		Short: "List withdrawals in the current batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := parsePoolID(args[0])
			if err != nil {
				return err
			}
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Liquidity.PoolBatchWithdrawMsgs(cmd.Context(), poolID, wf.request())
				if err != nil {
					return err
				}
				rows := make([][2]string, 0, len(resp.Withdraws))
				for _, w := range resp.Withdraws {
					desc := fmt.Sprintf("executed=%t succeeded=%t", w.Executed, w.Succeeded)
					if w.Msg != nil {
						desc = w.Msg.WithdrawerAddress + " " + w.Msg.PoolCoin.String() + "  " + desc
					}
					rows = append(rows, [2]string{strconv.FormatUint(w.MsgIndex, 10), desc})
				}
				return a.printRows(resp, rows)
			})
		},
	}
	wf.register(withdraws)

	cmd.AddCommand(params, pools, pool, swaps, deposits, withdraws)
	return cmd
}

func newChannelQueryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "IBC channel queries",
	}

	var pf pageFlags
	channels := &cobra.Command{
		Use:   "channels",
		Short: "List channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Channel.Channels(cmd.Context(), pf.request())
				if err != nil {
					return err
				}
				rows := make([][2]string, 0, len(resp.Channels))
				for _, ch := range resp.Channels {
					rows = append(rows, [2]string{
						ch.PortId + "/" + ch.ChannelId,
						fmt.Sprintf("%s %s -> %s/%s", ch.State, ch.Ordering, ch.Counterparty.PortId, ch.Counterparty.ChannelId),
					})
				}
				return a.printRows(resp, rows)
			})
		},
	}
	pf.register(channels)

	channelCmd := &cobra.Command{
		Use:   "channel [port-id] [channel-id]",
		Short: "Show a channel end",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Channel.Channel(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				ch := resp.Channel
				if ch == nil {
					return fmt.Errorf("channel %s/%s: %w", args[0], args[1], types.ErrNotFound)
				}
				return a.printRows(resp, [][2]string{
					{"state", ch.State.String()},
					{"ordering", ch.Ordering.String()},
					{"counterparty", ch.Counterparty.PortId + "/" + ch.Counterparty.ChannelId},
					{"connection hops", strings.Join(ch.ConnectionHops, ", ")},
					{"version", ch.Version},
				})
			})
		},
	}

	nextSeq := &cobra.Command{
		Use:   "next-sequence [port-id] [channel-id]",
		Short: "Show the next receive sequence of a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withQueryClient(cmd, func(c *client.Client) error {
				resp, err := c.Channel.NextSequenceReceive(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				return a.printRows(resp, [][2]string{
					{"next sequence receive", humanize.Comma(int64(resp.NextSequenceReceive))},
				})
			})
		},
	}

	cmd.AddCommand(channels, channelCmd, nextSeq)
	return cmd
}
