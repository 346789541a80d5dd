package app

import (
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/std"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"

	"github.com/dorafactory/maci-demo/app/params"
)

// MakeEncodingConfig creates an EncodingConfig that knows every message the client sends or decodes
func MakeEncodingConfig() params.EncodingConfig {
	encodingConfig := params.MakeEncodingConfig()
	std.RegisterLegacyAminoCodec(encodingConfig.Amino)
	std.RegisterInterfaces(encodingConfig.InterfaceRegistry)

	authtypes.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	banktypes.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	feegrant.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	wasmtypes.RegisterInterfaces(encodingConfig.InterfaceRegistry)
	wasmtypes.RegisterLegacyAminoCodec(encodingConfig.Amino)

	return encodingConfig
}
