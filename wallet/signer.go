package wallet

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/utils/slices"
)

// Account is an account exposed by the wallet
type Account struct {
	Address string
	PubKey  []byte
	Algo    string
}

// Signer gives access to the accounts of the wallet on a single chain
type Signer struct {
	chainID string
	keybase keyring.Keyring
	keyName string
}

// ChainID returns the chain the signer is bound to
func (s *Signer) ChainID() string {
	return s.chainID
}

// Keybase returns the keyring holding the signer's keys
func (s *Signer) Keybase() keyring.Keyring {
	return s.keybase
}

// FromName returns the name of the key the signer signs transactions with
func (s *Signer) FromName(ctx context.Context) (string, error) {
	records, err := s.records(ctx)
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		return "", errors.New("wallet holds no accounts")
	}

	return records[0].Name, nil
}

// GetAccounts returns the accounts available to the signer. The list can be empty.
func (s *Signer) GetAccounts(ctx context.Context) ([]Account, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(records))
	for _, record := range records {
		account, err := toAccount(record)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (s *Signer) records(ctx context.Context) ([]*keyring.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.keyName == "" {
		return s.keybase.List()
	}

	record, err := s.keybase.Key(s.keyName)
	switch {
	case errors.Is(err, sdkerrors.ErrKeyNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	default:
		return []*keyring.Record{record}, nil
	}
}

func (s *Signer) record(ctx context.Context, addr sdk.AccAddress) (*keyring.Record, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	matches := slices.Filter(records, func(record *keyring.Record) bool {
		recordAddr, err := record.GetAddress()
		return err == nil && recordAddr.Equals(addr)
	})
	if len(matches) == 0 {
		return nil, errorsmod.Wrap(ErrUnknownAccount, addr.String())
	}

	return matches[0], nil
}

func toAccount(record *keyring.Record) (Account, error) {
	addr, err := record.GetAddress()
	if err != nil {
		return Account{}, err
	}

	pubKey, err := record.GetPubKey()
	if err != nil {
		return Account{}, err
	}

	return Account{
		Address: addr.String(),
		PubKey:  pubKey.Bytes(),
		Algo:    pubKey.Type(),
	}, nil
}
