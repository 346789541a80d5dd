package workflow

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "workflow"

var (
	ErrWalletUnavailable   = errorsmod.Register(codespace, 2, "wallet unavailable")
	ErrNoAccounts          = errorsmod.Register(codespace, 3, "wallet has no accounts")
	ErrMissingPrerequisite = errorsmod.Register(codespace, 4, "missing prerequisite")
	ErrStepBusy            = errorsmod.Register(codespace, 5, "step is already running")
	ErrRemoteCall          = errorsmod.Register(codespace, 6, "remote call failed")
	ErrFeegrantTimeout     = errorsmod.Register(codespace, 7, "timed out waiting for fee grant")
	ErrStepPanicked        = errorsmod.Register(codespace, 8, "step panicked")
	ErrUnknownStep         = errorsmod.Register(codespace, 9, "unknown step")
)
