package maci

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "maci"

var (
	ErrNoSigner      = errorsmod.Register(codespace, 2, "signer is not available")
	ErrNoKeypair     = errorsmod.Register(codespace, 3, "maci keypair is not available")
	ErrInvalidPubKey = errorsmod.Register(codespace, 4, "invalid public key")
	ErrNotSignedUp   = errorsmod.Register(codespace, 5, "public key is not signed up")
	ErrInvalidRound  = errorsmod.Register(codespace, 6, "invalid round")
	ErrInvalidVote   = errorsmod.Register(codespace, 7, "invalid vote")
	ErrCertificate   = errorsmod.Register(codespace, 8, "certificate request failed")
	ErrIndexer       = errorsmod.Register(codespace, 9, "indexer request failed")
	ErrCipher        = errorsmod.Register(codespace, 10, "cipher failure")
)
