package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dorafactory/maci-demo/config"
	wfconfig "github.com/dorafactory/maci-demo/workflow/config"
)

// RW grants -rw------- file permissions
const RW = 0600

// RWX grants -rwx------ file permissions
const RWX = 0700

const flagForce = "force"

func (d *daemon) chainConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain-config [network]",
		Short: "Print the chain registration a wallet receives for the network",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := d.loadConfig()
			if err != nil {
				return err
			}

			network := conf.Network
			if len(args) == 1 {
				if network, err = config.ParseNetwork(args[0]); err != nil {
					return err
				}
			}

			chain, err := d.resolveChain(network)
			if err != nil {
				return err
			}

			bz, err := json.MarshalIndent(chain, "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return nil
		},
	}
}

func (d *daemon) initConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the default configuration to config.toml in the home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool(flagForce)
			if err != nil {
				return err
			}

			dir := filepath.Join(d.home(), "config")
			if err := os.MkdirAll(dir, RWX); err != nil {
				return err
			}

			path := filepath.Join(dir, "config.toml")
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --%s to overwrite it", path, flagForce)
			}

			f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, RW)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := wfconfig.WriteTOML(f, wfconfig.DefaultConfig()); err != nil {
				return err
			}

			d.logger.Info("wrote default config", "path", path)
			return nil
		},
	}

	cmd.Flags().Bool(flagForce, false, "overwrite an existing config.toml")

	return cmd
}
