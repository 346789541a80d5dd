package maci

import (
	"context"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"
	"google.golang.org/grpc"

	"github.com/dorafactory/maci-demo/sdk-utils/broadcast"
	"github.com/dorafactory/maci-demo/wallet"
)

//go:generate moq -pkg mock -out ./mock/expected.go . Signer WasmQuerier FeegrantQuerier CertificateService RoundIndexer

// Signer exposes the wallet accounts the client transacts with
type Signer interface {
	GetAccounts(ctx context.Context) ([]wallet.Account, error)
}

// WasmQuerier runs smart queries against CosmWasm contracts
type WasmQuerier interface {
	SmartContractState(ctx context.Context, in *wasmtypes.QuerySmartContractStateRequest, opts ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error)
}

// FeegrantQuerier looks up fee allowances
type FeegrantQuerier interface {
	Allowance(ctx context.Context, in *feegrant.QueryAllowanceRequest, opts ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error)
}

// CertificateService issues eligibility certificates
type CertificateService interface {
	Sign(ctx context.Context, req CertificateRequest) (Certificate, error)
}

// RoundIndexer returns indexed round state
type RoundIndexer interface {
	Round(ctx context.Context, contractAddress string) (RoundInfo, error)
}

// BroadcasterFactory returns a broadcaster whose fees are paid by feeGranter, or by the signer if feeGranter is empty
type BroadcasterFactory func(feeGranter sdk.AccAddress) broadcast.Broadcaster
