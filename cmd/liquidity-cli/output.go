package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	gogoproto "github.com/cosmos/gogoproto/proto"
	humanize "github.com/dustin/go-humanize"

	"github.com/Gravity-Devs/liquidity/ibc/channel"
	"github.com/Gravity-Devs/liquidity/types"
)

// printJSON writes v as indented JSON. IBC messages go through the proto
// JSON codec so field names match the gateway.
func (a *app) printJSON(v any) error {
	var (
		bz  []byte
		err error
	)
	if msg, ok := v.(gogoproto.Message); ok && isIBC(msg) {
		bz, err = channel.MarshalJSON(msg)
		if err == nil {
			var tmp any
			if err = json.Unmarshal(bz, &tmp); err == nil {
				bz, err = json.MarshalIndent(tmp, "", "  ")
			}
		}
	} else {
		bz, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(bz))
	return err
}

func isIBC(msg gogoproto.Message) bool {
	return strings.HasPrefix(gogoproto.MessageName(msg), channel.ProtoPackage+".")
}

// printTx reports the outcome of a broadcast.
func (a *app) printTx(resp *types.BroadcastTxResponse) error {
	if a.flags.output == "json" {
		return a.printJSON(resp)
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "txhash\t%s\n", resp.TxHash)
	fmt.Fprintf(w, "height\t%s\n", humanize.Comma(resp.Height))
	fmt.Fprintf(w, "gas\t%s / %s\n", humanize.Comma(resp.GasUsed), humanize.Comma(resp.GasWanted))
	if resp.IsError() {
		fmt.Fprintf(w, "code\t%d (%s)\n", resp.Code, resp.Codespace)
		fmt.Fprintf(w, "log\t%s\n", resp.RawLog)
	}
	return w.Flush()
}

// printRows writes a key/value table, or v as JSON with --output json.
func (a *app) printRows(v any, rows [][2]string) error {
	if a.flags.output == "json" {
		return a.printJSON(v)
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r[0], r[1])
	}
	return w.Flush()
}
