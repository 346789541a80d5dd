package config

import (
	"fmt"
	"time"

	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/workflow"
)

// Config contains all macid configurations
type Config struct {
	workflow.Params `mapstructure:",squash"`
	KeyringBackend  string          `mapstructure:"keyring_backend"`
	KeyringDir      string          `mapstructure:"keyring_dir"`
	From            string          `mapstructure:"from"`
	ListenAddr      string          `mapstructure:"listen_addr"`
	Broadcast       BroadcastConfig `mapstructure:"broadcast"`
}

// DefaultConfig returns a configuration populated with default values
func DefaultConfig() Config {
	return Config{
		Params:         workflow.DefaultParams(),
		KeyringBackend: "test",
		ListenAddr:     "127.0.0.1:8787",
		Broadcast:      DefaultBroadcastConfig(),
	}
}

// ValidateBasic returns an error if the configuration cannot run the daemon
func (c Config) ValidateBasic() error {
	if err := c.Params.ValidateBasic(); err != nil {
		return err
	}

	if c.KeyringBackend == "" {
		return fmt.Errorf("keyring backend must be set")
	}

	return c.Broadcast.ValidateBasic()
}

// BroadcastConfig is the configuration for transaction broadcasting and protocol service calls
type BroadcastConfig struct {
	GasAdjustment       float64       `mapstructure:"gas_adjustment"`
	MaxRetries          int           `mapstructure:"max_retries"`
	MinSleepBeforeRetry time.Duration `mapstructure:"min_sleep_before_retry"`
	PollingInterval     time.Duration `mapstructure:"polling_interval"`
	TxTimeout           time.Duration `mapstructure:"tx_timeout"`
	HTTPTimeout         time.Duration `mapstructure:"http_timeout"`
}

// DefaultBroadcastConfig returns a configuration populated with default values
func DefaultBroadcastConfig() BroadcastConfig {
	return BroadcastConfig{
		GasAdjustment:       1.5,
		MaxRetries:          3,
		MinSleepBeforeRetry: time.Second,
		PollingInterval:     time.Second,
		TxTimeout:           time.Minute,
		HTTPTimeout:         30 * time.Second,
	}
}

// ValidateBasic returns an error if the broadcast settings are unusable
func (c BroadcastConfig) ValidateBasic() error {
	switch {
	case c.GasAdjustment < 1:
		return fmt.Errorf("gas adjustment must be at least 1")
	case c.MaxRetries < 0:
		return fmt.Errorf("max retries must not be negative")
	case c.PollingInterval <= 0, c.TxTimeout <= 0:
		return fmt.Errorf("polling interval and tx timeout must be positive")
	default:
		return nil
	}
}

// DialConfig returns the client connection settings for the given chain
func (c Config) DialConfig(chain config.ChainInfo) maci.DialConfig {
	return maci.DialConfig{
		Network:         c.Network,
		Chain:           chain,
		GasAdjustment:   c.Broadcast.GasAdjustment,
		MaxRetries:      c.Broadcast.MaxRetries,
		MinSleepOnRetry: c.Broadcast.MinSleepBeforeRetry,
		PollingInterval: c.Broadcast.PollingInterval,
		TxTimeout:       c.Broadcast.TxTimeout,
		HTTPTimeout:     c.Broadcast.HTTPTimeout,
	}
}
