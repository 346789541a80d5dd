package wallet_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
	"github.com/dorafactory/maci-demo/app"
	"github.com/dorafactory/maci-demo/config"
	rand2 "github.com/dorafactory/maci-demo/testutils/rand"
	"github.com/dorafactory/maci-demo/wallet"
)

func newKeyring(t *testing.T, names ...string) keyring.Keyring {
	kr := keyring.NewInMemory(app.MakeEncodingConfig().Codec)
	for _, name := range names {
		_, _, err := kr.NewMnemonic(name, keyring.English, sdk.FullFundraiserPath, keyring.DefaultBIP39Passphrase, hd.Secp256k1)
		require.NoError(t, err)
	}

	return kr
}

func TestWallet(t *testing.T) {
	app.SetConfig()

	var (
		w       *wallet.Wallet
		kr      keyring.Keyring
		keyName string
		chain   config.ChainInfo
	)

	ctx := context.Background()

	givenWallet := Given("a wallet with one key", func() {
		keyName = rand.StrBetween(5, 10)
		kr = newKeyring(t, keyName)
		w = wallet.New(kr, keyName, log.NewNopLogger())
		chain = config.ChainConfig(config.Testnet)
	})

	givenWallet.
		When("the chain is not suggested", func() {}).
		Then("enabling fails", func(t *testing.T) {
			assert.ErrorIs(t, w.Enable(ctx, chain.ChainID), wallet.ErrChainNotSuggested)
			_, err := w.OfflineSigner(chain.ChainID)
			assert.ErrorIs(t, err, wallet.ErrNotEnabled)
		}).Run(t)

	givenWallet.
		When("a chain with a foreign account prefix is suggested", func() {
			chain.Bech32Config.Bech32PrefixAccAddr = "cosmos"
		}).
		Then("reject the chain", func(t *testing.T) {
			assert.Error(t, w.SuggestChain(ctx, chain))
			_, ok := w.Chain(chain.ChainID)
			assert.False(t, ok)
		}).Run(t)

	givenWallet.
		When("the chain is suggested and enabled", func() {
			require.NoError(t, w.SuggestChain(ctx, chain))
			require.NoError(t, w.Enable(ctx, chain.ChainID))
		}).
		Branch(
			Then("the signer exposes the key's account", func(t *testing.T) {
				signer, err := w.OfflineSigner(chain.ChainID)
				assert.NoError(t, err)

				accounts, err := signer.GetAccounts(ctx)
				assert.NoError(t, err)
				assert.Len(t, accounts, 1)

				record, err := kr.Key(keyName)
				assert.NoError(t, err)
				addr, err := record.GetAddress()
				assert.NoError(t, err)
				assert.Equal(t, addr.String(), accounts[0].Address)
				assert.Regexp(t, "^dora1", accounts[0].Address)

				from, err := signer.FromName(ctx)
				assert.NoError(t, err)
				assert.Equal(t, keyName, from)
			}),

			Then("arbitrary signatures are deterministic and verifiable", func(t *testing.T) {
				signer, err := w.OfflineSigner(chain.ChainID)
				assert.NoError(t, err)
				accounts, err := signer.GetAccounts(ctx)
				assert.NoError(t, err)

				data := []byte("Generate_MACI_Private_Key")
				sig1, err := w.SignArbitrary(ctx, chain.ChainID, accounts[0].Address, data)
				assert.NoError(t, err)
				sig2, err := w.SignArbitrary(ctx, chain.ChainID, accounts[0].Address, data)
				assert.NoError(t, err)

				assert.Equal(t, sig1, sig2)
				assert.Equal(t, "tendermint/PubKeySecp256k1", sig1.PubKey.Type)
				assert.NoError(t, wallet.VerifyArbitrary(accounts[0].Address, data, sig1))
				assert.ErrorIs(t, wallet.VerifyArbitrary(accounts[0].Address, []byte("tampered"), sig1), wallet.ErrInvalidSignature)
			}),

			Then("signing for an unknown address fails", func(t *testing.T) {
				_, err := w.SignArbitrary(ctx, chain.ChainID, rand2.AccAddr().String(), []byte("data"))
				assert.ErrorIs(t, err, wallet.ErrUnknownAccount)
			}),
		).Run(t)

	Given("a wallet configured for a missing key", func() {
		kr = newKeyring(t)
		w = wallet.New(kr, "missing", log.NewNopLogger())
		chain = config.ChainConfig(config.Mainnet)
	}).
		When("the chain is suggested", func() {
			require.NoError(t, w.SuggestChain(ctx, chain))
		}).
		Then("enabling fails", func(t *testing.T) {
			assert.ErrorIs(t, w.Enable(ctx, chain.ChainID), wallet.ErrKeyNotFound)
		}).Run(t)

	Given("a wallet over an empty keyring", func() {
		kr = newKeyring(t)
		w = wallet.New(kr, "", log.NewNopLogger())
		chain = config.ChainConfig(config.Mainnet)
	}).
		When("the chain is enabled", func() {
			require.NoError(t, w.SuggestChain(ctx, chain))
			require.NoError(t, w.Enable(ctx, chain.ChainID))
		}).
		Then("the signer has no accounts", func(t *testing.T) {
			signer, err := w.OfflineSigner(chain.ChainID)
			assert.NoError(t, err)
			accounts, err := signer.GetAccounts(ctx)
			assert.NoError(t, err)
			assert.Empty(t, accounts)

			_, err = signer.FromName(ctx)
			assert.Error(t, err)
		}).Run(t)
}

func TestSignDocBytes(t *testing.T) {
	bz := wallet.SignDocBytes("dora1signer", []byte("hi"))
	assert.Equal(t,
		`{"account_number":"0","chain_id":"","fee":{"amount":[],"gas":"0"},"memo":"","msgs":[{"type":"sign/MsgSignData","value":{"data":"aGk=","signer":"dora1signer"}}],"sequence":"0"}`,
		string(bz))
}
