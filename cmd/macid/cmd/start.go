package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dorafactory/maci-demo/app"
	"github.com/dorafactory/maci-demo/wallet"
	"github.com/dorafactory/maci-demo/workflow"
	wfconfig "github.com/dorafactory/maci-demo/workflow/config"
	"github.com/dorafactory/maci-demo/workflow/server"
)

const flagRunOnStart = "run-on-start"

func (d *daemon) startCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Serve the voting workflow api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := d.loadConfig()
			if err != nil {
				return err
			}

			if _, err := telemetry.New(telemetry.Config{
				ServiceName:             app.Name,
				Enabled:                 true,
				PrometheusRetentionTime: 60,
			}); err != nil {
				return err
			}

			orchestrator, err := d.newOrchestrator(cmd, conf, prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}

			runOnStart, err := cmd.Flags().GetBool(flagRunOnStart)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.Serve(ctx, conf.ListenAddr, server.NewRouter(orchestrator, prometheus.DefaultGatherer, d.logger), d.logger)
			})

			if runOnStart {
				g.Go(func() error {
					for _, step := range workflow.Steps() {
						if _, err := orchestrator.Run(ctx, step); err != nil {
							d.logger.Error("stopping workflow", "step", step, "error", err)
							return nil
						}
					}
					return nil
				})
			}

			err = g.Wait()
			d.logger.Info("shutting down")
			return err
		},
	}

	cmd.Flags().String(flagListenAddr, wfconfig.DefaultConfig().ListenAddr, "address the api listens on")
	cmd.Flags().Bool(flagRunOnStart, false, "run all workflow steps once after starting the api")

	return cmd
}

// newOrchestrator wires the keyring wallet and the chain client factory into an orchestrator
func (d *daemon) newOrchestrator(cmd *cobra.Command, conf wfconfig.Config, reg prometheus.Registerer) (*workflow.Orchestrator, error) {
	chain, err := d.resolveChain(conf.Network)
	if err != nil {
		return nil, err
	}

	clientCtx := client.GetClientContextFromCmd(cmd)
	kr, err := keyring.New(sdk.KeyringServiceName(), conf.KeyringBackend, conf.KeyringDir, cmd.InOrStdin(), clientCtx.Codec)
	if err != nil {
		return nil, err
	}

	w := wallet.New(kr, conf.From, d.logger)
	factory := workflow.DialClientFactory(conf.DialConfig(chain), d.logger)

	return workflow.NewOrchestrator(conf.Params, chain, workflow.NewWalletProvider(w), factory, d.logger,
		workflow.WithMetrics(workflow.NewMetrics(reg))), nil
}
