package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ChainOverride replaces the public endpoints of a network, e.g. with a private node
type ChainOverride struct {
	Network Network `mapstructure:"network"`
	RPC     string  `mapstructure:"rpc"`
	REST    string  `mapstructure:"rest"`
}

// ReadChainOverrides reads the optional chains.toml from the config paths of the given viper instance
func ReadChainOverrides(v *viper.Viper) ([]ChainOverride, error) {
	v.SetConfigName("chains")
	v.SetConfigType("toml")

	if err := v.MergeInConfig(); err != nil {
		return nil, err
	}

	var overrides []ChainOverride
	if err := v.UnmarshalKey("chain", &overrides); err != nil {
		return nil, err
	}

	seen := make(map[Network]struct{})
	for _, o := range overrides {
		if err := o.Network.Validate(); err != nil {
			return nil, err
		}

		if _, ok := seen[o.Network]; ok {
			return nil, fmt.Errorf("duplicate chain override for network %s", o.Network)
		}
		seen[o.Network] = struct{}{}
	}

	return overrides, nil
}

// ResolveChain returns the chain registration of the given network with matching overrides applied
func ResolveChain(n Network, overrides []ChainOverride) (ChainInfo, error) {
	if err := n.Validate(); err != nil {
		return ChainInfo{}, err
	}

	info := ChainConfig(n)
	for _, o := range overrides {
		if o.Network != n {
			continue
		}

		if o.RPC != "" {
			info.RPC = o.RPC
		}
		if o.REST != "" {
			info.REST = o.REST
		}
	}

	return info, info.ValidateBasic()
}
