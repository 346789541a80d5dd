package broadcast

import (
	"context"
	"fmt"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"

	"github.com/dorafactory/maci-demo/utils"
)

//go:generate moq -pkg mock -out ./mock/broadcast.go . Broadcaster

// Broadcaster broadcasts msgs to the chain and returns the response of the committed tx
type Broadcaster interface {
	Broadcast(ctx context.Context, msgs ...sdk.Msg) (*sdk.TxResponse, error)
}

// TxQuerier returns a committed tx by its hash
type TxQuerier func(clientCtx client.Context, hash string) (*sdk.TxResponse, error)

type txBroadcaster struct {
	clientCtx       client.Context
	txf             tx.Factory
	pollingInterval time.Duration
	responseTimeout time.Duration
	queryTx         TxQuerier
}

// Option configures the broadcaster
type Option func(*txBroadcaster)

// WithPollingInterval sets the interval between checks whether a broadcast tx got committed
func WithPollingInterval(interval time.Duration) Option {
	return func(b *txBroadcaster) { b.pollingInterval = interval }
}

// WithResponseTimeout sets the maximum time to wait for a broadcast tx to be committed
func WithResponseTimeout(timeout time.Duration) Option {
	return func(b *txBroadcaster) { b.responseTimeout = timeout }
}

// WithTxQuerier replaces the lookup of committed txs
func WithTxQuerier(querier TxQuerier) Option {
	return func(b *txBroadcaster) { b.queryTx = querier }
}

// NewBroadcaster returns a broadcaster that signs msgs with the key set as "from" on the client context,
// broadcasts them in sync mode and waits until the tx is committed
func NewBroadcaster(clientCtx client.Context, txf tx.Factory, options ...Option) Broadcaster {
	b := &txBroadcaster{
		clientCtx:       clientCtx.WithBroadcastMode(flags.BroadcastSync),
		txf:             txf,
		pollingInterval: time.Second,
		responseTimeout: time.Minute,
		queryTx:         authtx.QueryTx,
	}

	for _, option := range options {
		option(b)
	}

	if b.pollingInterval <= 0 {
		b.pollingInterval = time.Second
	}

	return b
}

// Broadcast signs and broadcasts the given msgs in a single tx
func (b *txBroadcaster) Broadcast(ctx context.Context, msgs ...sdk.Msg) (*sdk.TxResponse, error) {
	if len(msgs) == 0 {
		return nil, fmt.Errorf("call broadcast with at least one message")
	}

	for _, msg := range msgs {
		if err := msg.ValidateBasic(); err != nil {
			return nil, errorsmod.Wrapf(err, "invalid message %T", msg)
		}
	}

	txf, err := b.txf.Prepare(b.clientCtx)
	if err != nil {
		return nil, err
	}

	if txf.SimulateAndExecute() || b.clientCtx.Simulate {
		_, adjusted, err := tx.CalculateGas(b.clientCtx, txf, msgs...)
		if err != nil {
			return nil, err
		}

		txf = txf.WithGas(adjusted)
	}

	txBuilder, err := txf.BuildUnsignedTx(msgs...)
	if err != nil {
		return nil, err
	}

	if err := tx.Sign(txf, b.clientCtx.GetFromName(), txBuilder, true); err != nil {
		return nil, err
	}

	txBytes, err := b.clientCtx.TxConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, err
	}

	res, err := b.clientCtx.BroadcastTx(txBytes)
	if err != nil {
		return nil, err
	}

	if res.Code != abci.CodeTypeOK {
		return nil, errorsmod.ABCIError(res.Codespace, res.Code, res.RawLog)
	}

	return b.waitForTx(ctx, res.TxHash)
}

func (b *txBroadcaster) waitForTx(ctx context.Context, hash string) (*sdk.TxResponse, error) {
	cfg := utils.PollConfig{
		MaxAttempts:         int(b.responseTimeout/b.pollingInterval) + 1,
		MinSleepBeforeRetry: b.pollingInterval,
		Timeout:             b.responseTimeout,
	}

	var res *sdk.TxResponse
	var lastErr error
	err := utils.Poll(ctx, cfg, utils.ConstantBackOff(b.pollingInterval), func(context.Context, int) (bool, error) {
		res, lastErr = b.queryTx(b.clientCtx, hash)
		return lastErr == nil && res != nil, nil
	})
	if err != nil {
		if lastErr != nil {
			err = errorsmod.Wrap(err, lastErr.Error())
		}
		return nil, errorsmod.Wrapf(err, "timed out waiting for tx %s to be committed", hash)
	}

	if res.Code != abci.CodeTypeOK {
		return res, errorsmod.ABCIError(res.Codespace, res.Code, res.RawLog)
	}

	return res, nil
}

// IsSequenceMismatch returns true if the error is caused by a stale account sequence
func IsSequenceMismatch(err error) bool {
	return sdkerrors.ErrWrongSequence.Is(err) ||
		errorsmod.IsOf(err, sdkerrors.ErrWrongSequence) ||
		strings.Contains(err.Error(), "account sequence mismatch")
}

// IsRetryable returns true if broadcasting the same msgs again might succeed
func IsRetryable(err error) bool {
	return IsSequenceMismatch(err) ||
		errorsmod.IsOf(err, sdkerrors.ErrMempoolIsFull, sdkerrors.ErrTxInMempoolCache)
}
