package config

import (
	"fmt"
	"sort"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/exp/maps"
)

// Network selects one of the Dora Vota deployments
type Network string

// supported networks
const (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// DefaultNetwork is the network the client talks to unless configured otherwise
const DefaultNetwork = Mainnet

const (
	mainnetOraclePubKey = "71181283991507933356370686287836778892264767267594565723150933280429059165190"
	testnetOraclePubKey = "20569243924629228035563759081356417640308543737009765586195076626319661619637"

	mainnetExplorerTxURL = "https://vota-explorer.dorafactory.org/doravota/tx/"
	testnetExplorerTxURL = "https://vota-testnet-explorer.dorafactory.org/doravotatestnet/tx/"
)

// ParseNetwork returns the network with the given name
func ParseNetwork(name string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(name)))
	if err := n.Validate(); err != nil {
		return "", err
	}

	return n, nil
}

// Validate returns an error if the network is unknown
func (n Network) Validate() error {
	if _, ok := chains[n]; !ok {
		return fmt.Errorf("unknown network %q, expected one of %s", string(n), strings.Join(Networks(), ", "))
	}

	return nil
}

func (n Network) String() string {
	return string(n)
}

// Networks returns the names of all known networks in alphabetical order
func Networks() []string {
	names := make([]string, 0, len(chains))
	for _, n := range maps.Keys(chains) {
		names = append(names, n.String())
	}
	sort.Strings(names)

	return names
}

// Bip44 is the bip44 derivation configuration of a chain
type Bip44 struct {
	CoinType uint32 `json:"coinType" mapstructure:"coin_type"`
}

// Bech32Config lists the bech32 prefixes of a chain
type Bech32Config struct {
	Bech32PrefixAccAddr  string `json:"bech32PrefixAccAddr" mapstructure:"acc_addr"`
	Bech32PrefixAccPub   string `json:"bech32PrefixAccPub" mapstructure:"acc_pub"`
	Bech32PrefixValAddr  string `json:"bech32PrefixValAddr" mapstructure:"val_addr"`
	Bech32PrefixValPub   string `json:"bech32PrefixValPub" mapstructure:"val_pub"`
	Bech32PrefixConsAddr string `json:"bech32PrefixConsAddr" mapstructure:"cons_addr"`
	Bech32PrefixConsPub  string `json:"bech32PrefixConsPub" mapstructure:"cons_pub"`
}

// Currency describes a coin of a chain
type Currency struct {
	CoinDenom        string `json:"coinDenom" mapstructure:"coin_denom"`
	CoinMinimalDenom string `json:"coinMinimalDenom" mapstructure:"coin_minimal_denom"`
	CoinDecimals     uint8  `json:"coinDecimals" mapstructure:"coin_decimals"`
	CoinGeckoID      string `json:"coinGeckoId" mapstructure:"coin_gecko_id"`
}

// GasPriceStep lists the gas prices offered to a user, denominated in the minimal denom
type GasPriceStep struct {
	Low     int64 `json:"low" mapstructure:"low"`
	Average int64 `json:"average" mapstructure:"average"`
	High    int64 `json:"high" mapstructure:"high"`
}

// FeeCurrency is a currency that can pay transaction fees
type FeeCurrency struct {
	Currency     `mapstructure:",squash"`
	GasPriceStep GasPriceStep `json:"gasPriceStep" mapstructure:"gas_price_step"`
}

// ChainInfo is the chain registration a wallet needs before it can connect to a chain
type ChainInfo struct {
	ChainID       string        `json:"chainId" mapstructure:"chain_id"`
	ChainName     string        `json:"chainName" mapstructure:"chain_name"`
	RPC           string        `json:"rpc" mapstructure:"rpc"`
	REST          string        `json:"rest" mapstructure:"rest"`
	Bip44         Bip44         `json:"bip44" mapstructure:"bip44"`
	Bech32Config  Bech32Config  `json:"bech32Config" mapstructure:"bech32_config"`
	Currencies    []Currency    `json:"currencies" mapstructure:"currencies"`
	FeeCurrencies []FeeCurrency `json:"feeCurrencies" mapstructure:"fee_currencies"`
	StakeCurrency Currency      `json:"stakeCurrency" mapstructure:"stake_currency"`
	Features      []string      `json:"features" mapstructure:"features"`
}

// ValidateBasic returns an error if the chain info cannot be used to connect to the chain
func (c ChainInfo) ValidateBasic() error {
	if strings.TrimSpace(c.ChainID) == "" {
		return fmt.Errorf("chain id must not be empty")
	}

	if c.RPC == "" || c.REST == "" {
		return fmt.Errorf("chain %s: rpc and rest endpoints must be set", c.ChainID)
	}

	if c.Bech32Config.Bech32PrefixAccAddr == "" {
		return fmt.Errorf("chain %s: account address prefix must be set", c.ChainID)
	}

	if len(c.FeeCurrencies) == 0 {
		return fmt.Errorf("chain %s: at least one fee currency is required", c.ChainID)
	}

	return nil
}

// GasPrice returns the average gas price of the primary fee currency in the format of an sdk.DecCoin
func (c ChainInfo) GasPrice() (sdk.DecCoin, error) {
	if len(c.FeeCurrencies) == 0 {
		return sdk.DecCoin{}, fmt.Errorf("chain %s has no fee currency", c.ChainID)
	}

	fee := c.FeeCurrencies[0]
	return sdk.NewDecCoin(fee.CoinMinimalDenom, math.NewInt(fee.GasPriceStep.Average)), nil
}

// ProtocolParams are the per network endpoints and code ids of the voting protocol deployment
type ProtocolParams struct {
	OracleCodeID           uint64 `mapstructure:"oracle_code_id"`
	CertificateAPIEndpoint string `mapstructure:"certificate_api_endpoint"`
	IndexerAPIEndpoint     string `mapstructure:"indexer_api_endpoint"`
	WhitelistBackendPubKey string `mapstructure:"whitelist_backend_pubkey"`
}

var dora = Currency{
	CoinDenom:        "DORA",
	CoinMinimalDenom: "peaka",
	CoinDecimals:     18,
	CoinGeckoID:      "dora",
}

var doraBech32 = Bech32Config{
	Bech32PrefixAccAddr:  "dora",
	Bech32PrefixAccPub:   "dorapub",
	Bech32PrefixValAddr:  "doravaloper",
	Bech32PrefixValPub:   "doravaloperpub",
	Bech32PrefixConsAddr: "doravalcons",
	Bech32PrefixConsPub:  "doravalconspub",
}

func newChainInfo(chainID, chainName, rpc, rest string) ChainInfo {
	return ChainInfo{
		ChainID:      chainID,
		ChainName:    chainName,
		RPC:          rpc,
		REST:         rest,
		Bip44:        Bip44{CoinType: 118},
		Bech32Config: doraBech32,
		Currencies:   []Currency{dora},
		FeeCurrencies: []FeeCurrency{{
			Currency: dora,
			GasPriceStep: GasPriceStep{
				Low:     100000000000,
				Average: 150000000000,
				High:    200000000000,
			},
		}},
		StakeCurrency: dora,
		Features:      []string{},
	}
}

var chains = map[Network]ChainInfo{
	Testnet: newChainInfo("vota-testnet", "Dora Vota Testnet", "https://vota-testnet-rpc.dorafactory.org", "https://vota-testnet-rest.dorafactory.org"),
	Mainnet: newChainInfo("vota-ash", "Dora Vota", "https://vota-rpc.dorafactory.org", "https://vota-rest.dorafactory.org"),
}

var protocol = map[Network]ProtocolParams{
	Testnet: {
		OracleCodeID:           123,
		CertificateAPIEndpoint: "https://vota-testnet-certificate-api.dorafactory.org/api/v1",
		IndexerAPIEndpoint:     "https://vota-testnet-api.dorafactory.org",
		WhitelistBackendPubKey: "AoYo/zENN/JquagPdG0/NMbWBBYxOM8BVN677mBXJKJQ",
	},
	Mainnet: {
		OracleCodeID:           16,
		CertificateAPIEndpoint: "https://vota-certificate-api.dorafactory.org/api/v1",
		IndexerAPIEndpoint:     "https://vota-api.dorafactory.org",
		WhitelistBackendPubKey: "A61YtCv2ibMZmDeM02nEElil8wlHx1tLKogBk5dPgf/Q",
	},
}

// ChainConfig returns the chain registration of the given network.
// Panics if the network is unknown.
func ChainConfig(n Network) ChainInfo {
	info, ok := chains[n]
	if !ok {
		panic(n.Validate())
	}

	info.Currencies = append([]Currency(nil), info.Currencies...)
	info.FeeCurrencies = append([]FeeCurrency(nil), info.FeeCurrencies...)
	info.Features = append([]string{}, info.Features...)
	return info
}

// OraclePubKey returns the packed public key of the oracle operating rounds on the given network
func OraclePubKey(n Network) string {
	if n == Mainnet {
		return mainnetOraclePubKey
	}

	return testnetOraclePubKey
}

// ExplorerTxURL returns the block explorer link of the given transaction hash
func ExplorerTxURL(n Network, txHash string) string {
	if n == Mainnet {
		return mainnetExplorerTxURL + txHash
	}

	return testnetExplorerTxURL + txHash
}

// Params returns the voting protocol deployment parameters of the given network.
// Panics if the network is unknown.
func Params(n Network) ProtocolParams {
	params, ok := protocol[n]
	if !ok {
		panic(n.Validate())
	}

	return params
}
