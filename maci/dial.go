package maci

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/log"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"

	"github.com/dorafactory/maci-demo/app"
	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/sdk-utils/broadcast"
	"github.com/dorafactory/maci-demo/utils"
)

// KeyringSigner is a signer backed by a keyring
type KeyringSigner interface {
	Signer
	ChainID() string
	Keybase() keyring.Keyring
	FromName(ctx context.Context) (string, error)
}

// DialConfig configures the connection of a client to the chain and the protocol services
type DialConfig struct {
	Network         config.Network
	Chain           config.ChainInfo
	GasAdjustment   float64
	MaxRetries      int
	MinSleepOnRetry time.Duration
	PollingInterval time.Duration
	TxTimeout       time.Duration
	HTTPTimeout     time.Duration
}

// Dial connects a client to the chain RPC, the certificate api and the indexer of cfg.Network
func Dial(ctx context.Context, cfg DialConfig, signer KeyringSigner, keypair utils.Option[Keypair], logger log.Logger) (*Client, error) {
	if signer == nil {
		return nil, ErrNoSigner
	}

	fromName, err := signer.FromName(ctx)
	if err != nil {
		return nil, err
	}

	record, err := signer.Keybase().Key(fromName)
	if err != nil {
		return nil, err
	}

	fromAddr, err := record.GetAddress()
	if err != nil {
		return nil, err
	}

	rpc, err := client.NewClientFromNode(cfg.Chain.RPC)
	if err != nil {
		return nil, err
	}

	gasPrice, err := cfg.Chain.GasPrice()
	if err != nil {
		return nil, err
	}

	encCfg := app.MakeEncodingConfig()
	clientCtx := client.Context{}.
		WithCodec(encCfg.Codec).
		WithInterfaceRegistry(encCfg.InterfaceRegistry).
		WithTxConfig(encCfg.TxConfig).
		WithLegacyAmino(encCfg.Amino).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithChainID(cfg.Chain.ChainID).
		WithNodeURI(cfg.Chain.RPC).
		WithClient(rpc).
		WithKeyring(signer.Keybase()).
		WithFromName(fromName).
		WithFromAddress(fromAddr).
		WithBroadcastMode(flags.BroadcastSync)

	txf := tx.Factory{}.
		WithKeybase(signer.Keybase()).
		WithTxConfig(encCfg.TxConfig).
		WithAccountRetriever(clientCtx.AccountRetriever).
		WithChainID(cfg.Chain.ChainID).
		WithGasPrices(gasPrice.String()).
		WithGasAdjustment(cfg.GasAdjustment).
		WithSimulateAndExecute(true)

	logger = logger.With("chain_id", cfg.Chain.ChainID)
	var mu sync.Mutex
	cache := make(map[string]broadcast.Broadcaster)
	broadcasters := func(feeGranter sdk.AccAddress) broadcast.Broadcaster {
		mu.Lock()
		defer mu.Unlock()

		key := feeGranter.String()
		if b, ok := cache[key]; ok {
			return b
		}

		f := txf
		if !feeGranter.Empty() {
			f = f.WithFeeGranter(feeGranter)
		}

		b := broadcast.WithRetry(
			broadcast.NewBroadcaster(clientCtx, f,
				broadcast.WithPollingInterval(cfg.PollingInterval),
				broadcast.WithResponseTimeout(cfg.TxTimeout),
			),
			cfg.MaxRetries,
			utils.ExponentialBackOff(cfg.MinSleepOnRetry),
		)
		cache[key] = b

		return b
	}

	params := config.Params(cfg.Network)
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	return NewClient(cfg.Network, signer, keypair, Dependencies{
		Broadcasters: broadcasters,
		Wasm:         wasmtypes.NewQueryClient(clientCtx),
		Feegrant:     feegrant.NewQueryClient(clientCtx),
		Certificates: NewCertificateClient(params.CertificateAPIEndpoint, cfg.Network.String(), httpClient),
		Indexer:      NewIndexerClient(params.IndexerAPIEndpoint, httpClient),
	}, logger), nil
}
