package client

import clientconfig "github.com/Gravity-Devs/liquidity/client/config"

// Config is the unified client configuration, see config.Config.
type Config = clientconfig.Config

// WaitTxConfig tunes how long and how often inclusion is awaited.
type WaitTxConfig = clientconfig.WaitTxConfig
