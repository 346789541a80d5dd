package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cometbft/cometbft/libs/cli"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dorafactory/maci-demo/workflow"
)

func (d *daemon) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [step...]",
		Short: "Run workflow steps once, all six in order by default",
		Long: fmt.Sprintf("Run workflow steps once. Steps are %v. "+
			"Steps run in the given order and the first failure stops the run.", workflow.Steps()),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}

			conf, err := d.loadConfig()
			if err != nil {
				return err
			}

			orchestrator, err := d.newOrchestrator(cmd, conf, prometheus.NewRegistry())
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString(cli.OutputFlag)
			if err != nil {
				return err
			}

			runErr := runSteps(cmd, orchestrator, steps)

			if output == "json" {
				bz, err := json.MarshalIndent(orchestrator.Status(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			}

			return runErr
		},
	}

	cmd.Flags().StringP(cli.OutputFlag, "o", "text", "print the session status at the end (text|json)")

	return cmd
}

func parseSteps(args []string) ([]workflow.Step, error) {
	if len(args) == 0 {
		return workflow.Steps(), nil
	}

	steps := make([]workflow.Step, 0, len(args))
	for _, arg := range args {
		step, err := workflow.ParseStep(arg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, nil
}

type stepRunner interface {
	Run(ctx context.Context, step workflow.Step) (workflow.Result, error)
}

func runSteps(cmd *cobra.Command, runner stepRunner, steps []workflow.Step) error {
	for _, step := range steps {
		res, err := runner.Run(cmd.Context(), step)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s failed  %s\n", step, err)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-8s ok      %s\n", step, res.Message)
		if tx, ok := res.Tx.Get(); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s tx      %s\n", "", tx.ExplorerURL)
		}
	}

	return nil
}
