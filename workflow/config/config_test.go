package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
)

func TestConfig_Unmarshal(t *testing.T) {
	fp, err := buildTestdataFilePath()
	assert.NoError(t, err)

	v := viper.New()
	v.AddConfigPath(fp)
	v.SetConfigName("config.toml")
	v.SetConfigType("toml")
	require.NoError(t, v.ReadInConfig())

	conf, err := Unmarshal(v)
	require.NoError(t, err)

	assert.Equal(t, config.Testnet, conf.Network)
	assert.Equal(t, "file", conf.KeyringBackend)
	assert.Equal(t, "voter", conf.From)
	assert.Equal(t, "0.0.0.0:9000", conf.ListenAddr)
	assert.True(t, conf.SignupGasStation)

	assert.Equal(t, "pizza toppings", conf.Round.Title)
	assert.Equal(t, time.Hour, conf.Round.VotingPeriod)
	assert.Equal(t, []string{"pineapple", "mushrooms"}, conf.Round.VoteOptions)
	assert.Equal(t, maci.VotingPowerArgs{Mode: "threshold", Slope: "0", Threshold: "1"}, conf.Round.VotingPowerArgs)
	assert.Equal(t, []maci.VoteOption{{Idx: 1, Vc: 4}}, conf.Ballot.Options)
	assert.True(t, conf.Ballot.GasStation)

	assert.Equal(t, 10, conf.FeegrantPoll.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, conf.FeegrantPoll.MinSleepBeforeRetry)
	assert.Equal(t, 30*time.Second, conf.FeegrantPoll.Timeout)

	assert.Equal(t, 5, conf.Broadcast.MaxRetries)
	assert.Equal(t, 2*time.Minute, conf.Broadcast.TxTimeout)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultBroadcastConfig().PollingInterval, conf.Broadcast.PollingInterval)

	assert.NoError(t, conf.ValidateBasic())
}

func TestConfig_UnknownNetwork(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`network = "devnet"`)))

	_, err := Unmarshal(v)
	assert.Error(t, err)
}

func TestConfig_ListsReplaceDefaults(t *testing.T) {
	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(`
[round]
vote_options = ["yes"]

[[ballot.options]]
idx = 0
vc = 2
`)))

	conf, err := Unmarshal(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"yes"}, conf.Round.VoteOptions)
	assert.Equal(t, []maci.VoteOption{{Idx: 0, Vc: 2}}, conf.Ballot.Options)
	// keys missing from the file keep their defaults
	assert.Equal(t, DefaultConfig().Round.Title, conf.Round.Title)
	assert.Equal(t, DefaultConfig().FeegrantPoll, conf.FeegrantPoll)

	conf, err = Unmarshal(viper.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Round.VoteOptions, conf.Round.VoteOptions)
	assert.Equal(t, DefaultConfig().Ballot.Options, conf.Ballot.Options)
}

func TestWriteTOML(t *testing.T) {
	expected := DefaultConfig()
	expected.Network = config.Testnet
	expected.From = "voter"

	buf := new(bytes.Buffer)
	require.NoError(t, WriteTOML(buf, expected))
	assert.Contains(t, buf.String(), `network = "testnet"`)
	assert.Contains(t, buf.String(), `voting_period = "5m0s"`)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(buf))

	var actual Config
	require.NoError(t, v.Unmarshal(&actual, AddDecodeHooks))
	assert.Equal(t, expected, actual)
}

func TestConfig_DialConfig(t *testing.T) {
	conf := DefaultConfig()
	chain := config.ChainConfig(conf.Network)

	dial := conf.DialConfig(chain)
	assert.Equal(t, conf.Network, dial.Network)
	assert.Equal(t, chain, dial.Chain)
	assert.Equal(t, conf.Broadcast.TxTimeout, dial.TxTimeout)
	assert.Equal(t, conf.Broadcast.MinSleepBeforeRetry, dial.MinSleepOnRetry)

	conf.Broadcast.GasAdjustment = 0.5
	assert.Error(t, conf.ValidateBasic())
}

func buildTestdataFilePath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Join(wd, "testdata"), nil
}
