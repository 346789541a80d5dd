package rand

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/axelarnetwork/utils/test/rand"
)

// AccAddr returns a random account address
func AccAddr() sdk.AccAddress {
	return rand.Bytes(address.Len)
}
