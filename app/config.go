package app

import (
	"os"
	"path/filepath"
)

const (
	// Name is the name of the client binary
	Name = "macid"

	// CoinType is the bip44 coin type used for Dora Vota accounts
	CoinType = 118
)

// DefaultNodeHome is the default home directory for config and keyring files
var DefaultNodeHome = filepath.Join(os.ExpandEnv("$HOME"), "."+Name)
