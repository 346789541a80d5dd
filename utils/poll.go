package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// ErrPollExhausted is returned when a polled condition does not hold within the configured bounds
var ErrPollExhausted = errors.New("polled condition not met")

// PollConfig bounds the wait for a condition
type PollConfig struct {
	MaxAttempts         int           `mapstructure:"max_attempts"`
	MinSleepBeforeRetry time.Duration `mapstructure:"min_sleep_before_retry"`
	MaxSleepBeforeRetry time.Duration `mapstructure:"max_sleep_before_retry"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

// ValidateBasic returns an error if the configuration would allow an unbounded wait
func (c PollConfig) ValidateBasic() error {
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive")
	}

	if c.MinSleepBeforeRetry <= 0 {
		return fmt.Errorf("min sleep before retry must be positive")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	return nil
}

// Poll calls check until it reports true. It gives up with ErrPollExhausted after MaxAttempts calls or once Timeout elapses,
// sleeping according to backOff between attempts. Errors returned by check abort the wait immediately, unless the
// timeout expired while check ran.
func Poll(ctx context.Context, cfg PollConfig, backOff BackOff, check func(ctx context.Context, attempt int) (bool, error)) error {
	if err := cfg.ValidateBasic(); err != nil {
		return err
	}

	pollCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	backOff = backOff.Capped(cfg.MaxSleepBeforeRetry)
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		ok, err := check(pollCtx, attempt)
		if err != nil {
			// the check failed because the overall timeout fired while it ran
			if pollCtx.Err() != nil && ctx.Err() == nil {
				return errors.Wrapf(ErrPollExhausted, "timed out after %s and %d attempts: %s", cfg.Timeout, attempt, err)
			}

			return err
		}

		if ok {
			return nil
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(backOff(attempt - 1))
		select {
		case <-pollCtx.Done():
			timer.Stop()
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return errors.Wrapf(ErrPollExhausted, "timed out after %s and %d attempts", cfg.Timeout, attempt)
		case <-timer.C:
		}
	}

	return errors.Wrapf(ErrPollExhausted, "gave up after %d attempts", cfg.MaxAttempts)
}
