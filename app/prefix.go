package app

import (
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Bech32 prefixes
var (
	AccountAddressPrefix   = "dora"
	AccountPubKeyPrefix    = AccountAddressPrefix + sdk.PrefixPublic
	ValidatorAddressPrefix = AccountAddressPrefix + sdk.PrefixValidator + sdk.PrefixOperator
	ValidatorPubKeyPrefix  = AccountAddressPrefix + sdk.PrefixValidator + sdk.PrefixOperator + sdk.PrefixPublic
	ConsNodeAddressPrefix  = AccountAddressPrefix + sdk.PrefixValidator + sdk.PrefixConsensus
	ConsNodePubKeyPrefix   = AccountAddressPrefix + sdk.PrefixValidator + sdk.PrefixConsensus + sdk.PrefixPublic
)

var sealOnce sync.Once

// SetConfig sets the Dora Vota bech32 prefixes on the global sdk config and seals it.
// Subsequent calls are no-ops.
func SetConfig() {
	sealOnce.Do(func() {
		config := sdk.GetConfig()
		config.SetBech32PrefixForAccount(AccountAddressPrefix, AccountPubKeyPrefix)
		config.SetBech32PrefixForValidator(ValidatorAddressPrefix, ValidatorPubKeyPrefix)
		config.SetBech32PrefixForConsensusNode(ConsNodeAddressPrefix, ConsNodePubKeyPrefix)
		config.SetCoinType(CoinType)
		config.Seal()
	})
}
