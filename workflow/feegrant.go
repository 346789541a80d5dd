package workflow

import (
	"context"
	"errors"

	errorsmod "cosmossdk.io/errors"

	"github.com/dorafactory/maci-demo/utils"
)

// waitForFeegrant polls until the round granted fees to address. The wait is bounded by the configured
// attempts and timeout and backs off exponentially between checks.
func (o *Orchestrator) waitForFeegrant(ctx context.Context, client ProtocolClient, address string, round string) error {
	cfg := o.params.FeegrantPoll
	logger := o.logger.With("step", StepSignup, "round", round)

	err := utils.Poll(ctx, cfg, utils.ExponentialBackOff(cfg.MinSleepBeforeRetry), func(ctx context.Context, attempt int) (bool, error) {
		o.metrics.observeFeegrantPoll()

		ok, err := client.HasFeegrant(ctx, address, round)
		if err != nil {
			return false, remote(err)
		}

		logger.Debug("checked fee grant", "attempt", attempt, "granted", ok)
		return ok, nil
	})

	switch {
	case errors.Is(err, utils.ErrPollExhausted):
		return errorsmod.Wrapf(ErrFeegrantTimeout, "%s has no fee grant from %s: %s", address, round, err)
	default:
		return err
	}
}
