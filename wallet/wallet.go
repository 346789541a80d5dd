package wallet

import (
	"context"
	"fmt"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/dorafactory/maci-demo/config"
)

// Wallet manages chain registrations and account access on top of a keyring.
// An empty key name grants access to every key in the keyring.
type Wallet struct {
	keybase keyring.Keyring
	keyName string
	logger  log.Logger

	mu      sync.RWMutex
	chains  map[string]config.ChainInfo
	enabled map[string]bool
}

// New returns a wallet backed by the given keyring
func New(keybase keyring.Keyring, keyName string, logger log.Logger) *Wallet {
	return &Wallet{
		keybase: keybase,
		keyName: keyName,
		logger:  logger.With("module", "wallet"),
		chains:  make(map[string]config.ChainInfo),
		enabled: make(map[string]bool),
	}
}

// SuggestChain registers the given chain with the wallet. Suggesting a chain again replaces its registration.
func (w *Wallet) SuggestChain(_ context.Context, info config.ChainInfo) error {
	if err := info.ValidateBasic(); err != nil {
		return err
	}

	if prefix := sdk.GetConfig().GetBech32AccountAddrPrefix(); info.Bech32Config.Bech32PrefixAccAddr != prefix {
		return fmt.Errorf("chain %s uses account prefix %s, wallet is configured for %s",
			info.ChainID, info.Bech32Config.Bech32PrefixAccAddr, prefix)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.chains[info.ChainID] = info
	w.logger.Debug("chain suggested", "chain_id", info.ChainID, "chain_name", info.ChainName)

	return nil
}

// Enable grants access to the wallet accounts for the given chain
func (w *Wallet) Enable(_ context.Context, chainID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.chains[chainID]; !ok {
		return errorsmod.Wrap(ErrChainNotSuggested, chainID)
	}

	if w.keyName != "" {
		if _, err := w.keybase.Key(w.keyName); err != nil {
			return errorsmod.Wrapf(ErrKeyNotFound, "%s: %s", w.keyName, err)
		}
	}

	w.enabled[chainID] = true
	w.logger.Debug("wallet enabled", "chain_id", chainID)

	return nil
}

// Chain returns the registration of the given chain
func (w *Wallet) Chain(chainID string) (config.ChainInfo, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	info, ok := w.chains[chainID]
	return info, ok
}

// OfflineSigner returns a signer for the given chain. The wallet must have been enabled for the chain.
func (w *Wallet) OfflineSigner(chainID string) (*Signer, error) {
	if err := w.checkEnabled(chainID); err != nil {
		return nil, err
	}

	return &Signer{chainID: chainID, keybase: w.keybase, keyName: w.keyName}, nil
}

// SignArbitrary signs data on behalf of address as an ADR-036 off-chain message
func (w *Wallet) SignArbitrary(ctx context.Context, chainID string, address string, data []byte) (StdSignature, error) {
	if err := w.checkEnabled(chainID); err != nil {
		return StdSignature{}, err
	}

	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return StdSignature{}, err
	}

	signer := &Signer{chainID: chainID, keybase: w.keybase, keyName: w.keyName}
	record, err := signer.record(ctx, addr)
	if err != nil {
		return StdSignature{}, err
	}

	sig, pubKey, err := w.keybase.Sign(record.Name, SignDocBytes(address, data))
	if err != nil {
		return StdSignature{}, errorsmod.Wrapf(err, "failed to sign with key %s", record.Name)
	}

	w.logger.Debug("signed arbitrary data", "address", address, "size", len(data))

	return NewStdSignature(pubKey, sig)
}

func (w *Wallet) checkEnabled(chainID string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.enabled[chainID] {
		return errorsmod.Wrap(ErrNotEnabled, chainID)
	}

	return nil
}
