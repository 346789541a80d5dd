package workflow

import (
	"context"
	"fmt"

	"cosmossdk.io/log"

	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/utils"
	"github.com/dorafactory/maci-demo/wallet"
)

//go:generate moq -pkg mock -out ./mock/expected.go . WalletProvider OfflineSigner ProtocolClient

// OfflineSigner gives access to the accounts of a connected wallet
type OfflineSigner interface {
	GetAccounts(ctx context.Context) ([]wallet.Account, error)
}

// WalletProvider registers chains and signs on behalf of the user
type WalletProvider interface {
	SuggestChain(ctx context.Context, info config.ChainInfo) error
	Enable(ctx context.Context, chainID string) error
	OfflineSigner(chainID string) (OfflineSigner, error)
	SignArbitrary(ctx context.Context, chainID string, address string, data []byte) (wallet.StdSignature, error)
}

// ProtocolClient submits maci transactions and queries
type ProtocolClient interface {
	GetAddress(ctx context.Context) (string, error)
	PackedPubKey() (string, error)
	CreateOracleRound(ctx context.Context, params maci.RoundParams) (maci.RoundResult, error)
	RequestCertificate(ctx context.Context, req maci.CertificateRequest) (maci.Certificate, error)
	HasFeegrant(ctx context.Context, address string, contractAddress string) (bool, error)
	Signup(ctx context.Context, params maci.SignupParams) (maci.TxResult, error)
	GetRoundInfo(ctx context.Context, contractAddress string) (maci.RoundInfo, error)
	GetStateIdxByPubKey(ctx context.Context, contractAddress string, pubKey maci.PubKey) (uint32, error)
	Vote(ctx context.Context, params maci.VoteParams) (maci.TxResult, error)
}

// ClientFactory creates a protocol client bound to the given signer and keypair
type ClientFactory func(ctx context.Context, signer OfflineSigner, keypair utils.Option[maci.Keypair]) (ProtocolClient, error)

type keyringWallet struct {
	*wallet.Wallet
}

// NewWalletProvider exposes a keyring wallet to the orchestrator
func NewWalletProvider(w *wallet.Wallet) WalletProvider {
	return keyringWallet{Wallet: w}
}

func (w keyringWallet) OfflineSigner(chainID string) (OfflineSigner, error) {
	signer, err := w.Wallet.OfflineSigner(chainID)
	if err != nil {
		return nil, err
	}

	return signer, nil
}

// DialClientFactory returns a factory that connects clients to the chain. Signers must be keyring backed.
func DialClientFactory(cfg maci.DialConfig, logger log.Logger) ClientFactory {
	return func(ctx context.Context, signer OfflineSigner, keypair utils.Option[maci.Keypair]) (ProtocolClient, error) {
		keyringSigner, ok := signer.(maci.KeyringSigner)
		if !ok {
			return nil, fmt.Errorf("signer %T cannot sign transactions", signer)
		}

		client, err := maci.Dial(ctx, cfg, keyringSigner, keypair, logger)
		if err != nil {
			return nil, err
		}

		return client, nil
	}
}
