package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cosmossdk.io/log"
	tmcfg "github.com/cometbft/cometbft/config"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/keys"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dorafactory/maci-demo/app"
	"github.com/dorafactory/maci-demo/config"
	wfconfig "github.com/dorafactory/maci-demo/workflow/config"
)

// EnvPrefix prefixes the environment variables overriding config keys, e.g. MACI_NETWORK
const EnvPrefix = "MACI"

const (
	flagNetwork    = "network"
	flagListenAddr = "listen-addr"
)

// daemon carries the configuration source and logger shared by all subcommands
type daemon struct {
	v      *viper.Viper
	logger log.Logger
}

// NewRootCmd creates the macid root command
func NewRootCmd() *cobra.Command {
	app.SetConfig()

	encodingConfig := app.MakeEncodingConfig()
	initClientCtx := client.Context{}.
		WithCodec(encodingConfig.Codec).
		WithInterfaceRegistry(encodingConfig.InterfaceRegistry).
		WithTxConfig(encodingConfig.TxConfig).
		WithLegacyAmino(encodingConfig.Amino).
		WithInput(os.Stdin).
		WithAccountRetriever(authtypes.AccountRetriever{}).
		WithHomeDir(app.DefaultNodeHome).
		WithViper(EnvPrefix)

	d := &daemon{v: viper.New(), logger: log.NewNopLogger()}

	rootCmd := &cobra.Command{
		Use:   app.Name,
		Short: "MACI anonymous voting demo client for Dora Vota",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := client.SetCmdClientContextHandler(initClientCtx, cmd); err != nil {
				return err
			}

			return d.init(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagNetwork, string(config.DefaultNetwork), fmt.Sprintf("network to vote on (%s)", strings.Join(config.Networks(), "|")))
	rootCmd.PersistentFlags().String(flags.FlagFrom, "", "name of the keyring key that signs, the first key if empty")
	rootCmd.PersistentFlags().String(flags.FlagKeyringBackend, flags.DefaultKeyringBackend, "keyring backend (os|file|kwallet|pass|test|memory)")
	rootCmd.PersistentFlags().String(flags.FlagKeyringDir, "", "keyring directory, defaults to the home directory")

	rootCmd.AddCommand(
		d.startCmd(),
		d.runCmd(),
		d.chainConfigCmd(),
		d.initConfigCmd(),
		keys.Commands(app.DefaultNodeHome),
	)

	// Only set default, not actual value, so it can be overwritten by env variable
	overwriteFlagDefaults(rootCmd, map[string]string{
		flags.FlagKeyringBackend: keyring.BackendTest,
	}, false)

	return rootCmd
}

// init reads config.toml from the home directory, binds flags and environment variables and builds the logger
func (d *daemon) init(cmd *cobra.Command) error {
	v := d.v
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	bindings := map[string]string{
		"network":         flagNetwork,
		"from":            flags.FlagFrom,
		"keyring_backend": flags.FlagKeyringBackend,
		"keyring_dir":     flags.FlagKeyringDir,
	}
	for key, flag := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	if f := cmd.Flags().Lookup(flagListenAddr); f != nil {
		if err := v.BindPFlag("listen_addr", f); err != nil {
			return err
		}
	}

	v.AddConfigPath(filepath.Join(d.home(), "config"))
	v.SetConfigName("config")
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return err
	}

	logger, err := newLogger(v)
	if err != nil {
		return err
	}
	d.logger = logger

	return nil
}

func (d *daemon) home() string {
	if home := d.v.GetString(flags.FlagHome); home != "" {
		return home
	}

	return app.DefaultNodeHome
}

func (d *daemon) loadConfig() (wfconfig.Config, error) {
	conf, err := wfconfig.Unmarshal(d.v)
	if err != nil {
		return wfconfig.Config{}, err
	}

	if conf.KeyringDir == "" {
		conf.KeyringDir = d.home()
	}

	return conf, conf.ValidateBasic()
}

// resolveChain applies the endpoint overrides of an optional chains.toml next to config.toml
func (d *daemon) resolveChain(n config.Network) (config.ChainInfo, error) {
	v := viper.New()
	v.AddConfigPath(filepath.Join(d.home(), "config"))

	overrides, err := config.ReadChainOverrides(v)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		d.logger.Debug("file chains.toml not found")
		overrides = nil
	} else if err != nil {
		return config.ChainInfo{}, err
	} else {
		d.logger.Info(fmt.Sprintf("applying %d chain overrides from chains.toml", len(overrides)))
	}

	return config.ResolveChain(n, overrides)
}

func newLogger(v *viper.Viper) (log.Logger, error) {
	var logWriter io.Writer
	if strings.ToLower(v.GetString(flags.FlagLogFormat)) == tmcfg.LogFormatPlain {
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	} else {
		logWriter = os.Stderr
	}

	logLvlStr := v.GetString(flags.FlagLogLevel)
	if logLvlStr == "" {
		logLvlStr = zerolog.InfoLevel.String()
	}

	logLvl, err := zerolog.ParseLevel(logLvlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", logLvlStr, err)
	}

	return log.NewCustomLogger(zerolog.New(logWriter).Level(logLvl).With().Timestamp().Logger()), nil
}
