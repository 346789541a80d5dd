package wallet

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "wallet"

var (
	ErrChainNotSuggested = errorsmod.Register(codespace, 2, "chain has not been suggested")
	ErrNotEnabled        = errorsmod.Register(codespace, 3, "wallet is not enabled for chain")
	ErrKeyNotFound       = errorsmod.Register(codespace, 4, "key not found")
	ErrUnknownAccount    = errorsmod.Register(codespace, 5, "account is not managed by the wallet")
	ErrInvalidSignature  = errorsmod.Register(codespace, 6, "invalid signature")
)
