package blockchain

import (
	"context"
	"fmt"
	"strings"

	authv1beta1 "cosmossdk.io/api/cosmos/auth/v1beta1"
	cmtservice "cosmossdk.io/api/cosmos/base/tendermint/v1beta1"
	vestingv1beta1 "cosmossdk.io/api/cosmos/vesting/v1beta1"
	errorsmod "cosmossdk.io/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Gravity-Devs/liquidity/types"
)

// AccountInfo carries the values a signer needs from the auth module.
type AccountInfo struct {
	Address       string
	AccountNumber uint64
	Sequence      uint64
}

type baseAccountGetter interface {
	GetBaseAccount() *authv1beta1.BaseAccount
}

type vestingAccountGetter interface {
	GetBaseVestingAccount() *vestingv1beta1.BaseVestingAccount
}

// Account resolves the account number and sequence of address.
func (c *Client) Account(ctx context.Context, address string) (AccountInfo, error) {
	resp, err := authv1beta1.NewQueryClient(c.GRPCConn()).Account(ctx, &authv1beta1.QueryAccountRequest{Address: address})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return AccountInfo{}, errorsmod.Wrapf(types.ErrNotFound, "account %s", address)
		}
		return AccountInfo{}, fmt.Errorf("query account: %w", err)
	}
	if resp.GetAccount() == nil {
		return AccountInfo{}, errorsmod.Wrapf(types.ErrNotFound, "account %s", address)
	}

	msg, err := resp.GetAccount().UnmarshalNew()
	if err != nil {
		return AccountInfo{}, fmt.Errorf("unpack account %s: %w", resp.GetAccount().GetTypeUrl(), err)
	}

	var acc *authv1beta1.BaseAccount
	switch a := msg.(type) {
	case *authv1beta1.BaseAccount:
		acc = a
	case baseAccountGetter:
		acc = a.GetBaseAccount()
	case vestingAccountGetter:
		acc = a.GetBaseVestingAccount().GetBaseAccount()
	}
	if acc == nil {
		return AccountInfo{}, fmt.Errorf("unsupported account type %s", resp.GetAccount().GetTypeUrl())
	}
	return AccountInfo{
		Address:       acc.GetAddress(),
		AccountNumber: acc.GetAccountNumber(),
		Sequence:      acc.GetSequence(),
	}, nil
}

// ChainID returns the configured chain ID, asking the node once when unset.
func (c *Client) ChainID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chainID != "" {
		return c.chainID, nil
	}

	resp, err := cmtservice.NewServiceClient(c.GRPCConn()).GetNodeInfo(ctx, &cmtservice.GetNodeInfoRequest{})
	if err != nil {
		return "", fmt.Errorf("get node info: %w", err)
	}
	network := strings.TrimSpace(resp.GetDefaultNodeInfo().GetNetwork())
	if network == "" {
		return "", errorsmod.Wrap(types.ErrInvalidConfig, "chain id is empty and the node did not report one")
	}
	c.Logger().Debug("discovered chain id", zap.String("chain_id", network))
	c.chainID = network
	return network, nil
}
