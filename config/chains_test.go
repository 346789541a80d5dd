package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorafactory/maci-demo/config"
)

func TestReadChainOverrides(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		v := viper.New()
		v.AddConfigPath("./testdata/overrides")

		overrides, err := config.ReadChainOverrides(v)
		assert.NoError(t, err)
		assert.Len(t, overrides, 2)
		assert.Equal(t, config.Testnet, overrides[0].Network)
		assert.Equal(t, "http://localhost:26657", overrides[0].RPC)
	})

	t.Run("file exists but is empty", func(t *testing.T) {
		v := viper.New()
		v.AddConfigPath("./testdata/empty")

		overrides, err := config.ReadChainOverrides(v)
		assert.NoError(t, err)
		assert.Len(t, overrides, 0)
	})

	t.Run("duplicate network", func(t *testing.T) {
		v := viper.New()
		v.AddConfigPath("./testdata/duplicate")

		_, err := config.ReadChainOverrides(v)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("file does not exist", func(t *testing.T) {
		v := viper.New()
		v.AddConfigPath("some other path")

		overrides, err := config.ReadChainOverrides(v)
		assert.ErrorAs(t, err, &viper.ConfigFileNotFoundError{})
		assert.Len(t, overrides, 0)
	})
}

func TestResolveChain(t *testing.T) {
	overrides := []config.ChainOverride{
		{Network: config.Testnet, RPC: "http://localhost:26657"},
		{Network: config.Mainnet, REST: "https://rest.vota.example.org"},
	}

	testnet, err := config.ResolveChain(config.Testnet, overrides)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:26657", testnet.RPC)
	assert.Equal(t, "https://vota-testnet-rest.dorafactory.org", testnet.REST)

	mainnet, err := config.ResolveChain(config.Mainnet, overrides)
	require.NoError(t, err)
	assert.Equal(t, "https://vota-rpc.dorafactory.org", mainnet.RPC)
	assert.Equal(t, "https://rest.vota.example.org", mainnet.REST)

	_, err = config.ResolveChain("devnet", overrides)
	assert.Error(t, err)
}
