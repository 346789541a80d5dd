package workflow

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/utils"
	utilserrors "github.com/dorafactory/maci-demo/utils/errors"
)

// Orchestrator sequences the voting workflow over a single session
type Orchestrator struct {
	params    Params
	chain     config.ChainInfo
	wallet    WalletProvider
	newClient ClientFactory
	session   *Session
	metrics   *Metrics
	logger    log.Logger
	now       func() time.Time
}

// Option configures the orchestrator
type Option func(*Orchestrator)

// WithClock replaces the clock round voting windows are computed from
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithMetrics replaces the unregistered default metrics
func WithMetrics(m *Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// NewOrchestrator returns an orchestrator with an empty session
func NewOrchestrator(params Params, chain config.ChainInfo, wallet WalletProvider, newClient ClientFactory, logger log.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		params:    params,
		chain:     chain,
		wallet:    wallet,
		newClient: newClient,
		session:   NewSession(),
		metrics:   NewMetrics(nil),
		logger:    logger.With("module", "workflow"),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Session returns the orchestrator's session
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Status returns a snapshot of the session
func (o *Orchestrator) Status() Status {
	status := o.session.snapshot()
	status.Network = o.params.Network.String()
	status.ChainID = o.chain.ChainID

	if client, ok := o.session.Client().Get(); ok {
		if packed, err := client.PackedPubKey(); err == nil {
			status.PackedPubKey = packed
		}
	}

	return status
}

// Result is the outcome of a successful step
type Result struct {
	Step    Step
	Message string
	Tx      utils.Option[TxRecord]
}

// Run executes the given step
func (o *Orchestrator) Run(ctx context.Context, step Step) (Result, error) {
	switch step {
	case StepConnect:
		return o.Connect(ctx)
	case StepKeypair:
		return o.DeriveKeypair(ctx)
	case StepClient:
		return o.CreateClient(ctx)
	case StepDeploy:
		return o.DeployRound(ctx)
	case StepSignup:
		return o.Signup(ctx)
	case StepVote:
		return o.Vote(ctx)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownStep, step)
	}
}

// Connect registers the chain with the wallet and connects its first account
func (o *Orchestrator) Connect(ctx context.Context) (Result, error) {
	return o.runStep(ctx, StepConnect, func(ctx context.Context) (Result, error) {
		signer, err := o.connect(ctx)
		if err != nil {
			o.session.setSigner(utils.None[SignerSession]())
			return Result{}, err
		}

		o.session.setSigner(utils.Some(signer))
		return Result{Message: fmt.Sprintf("connected %s", signer.Address)}, nil
	})
}

func (o *Orchestrator) connect(ctx context.Context) (SignerSession, error) {
	if err := o.wallet.SuggestChain(ctx, o.chain); err != nil {
		return SignerSession{}, walletError(err)
	}

	if err := o.wallet.Enable(ctx, o.chain.ChainID); err != nil {
		return SignerSession{}, walletError(err)
	}

	signer, err := o.wallet.OfflineSigner(o.chain.ChainID)
	if err != nil {
		return SignerSession{}, walletError(err)
	}

	accounts, err := signer.GetAccounts(ctx)
	if err != nil {
		return SignerSession{}, walletError(err)
	}

	if len(accounts) == 0 {
		return SignerSession{}, errorsmod.Wrap(ErrNoAccounts, o.chain.ChainID)
	}

	return SignerSession{Signer: signer, Address: accounts[0].Address}, nil
}

// DeriveKeypair derives the voting keypair from the wallet's signature of KeypairChallenge.
// A keypair already derived for the connected account is reused.
func (o *Orchestrator) DeriveKeypair(ctx context.Context) (Result, error) {
	return o.runStep(ctx, StepKeypair, func(ctx context.Context) (Result, error) {
		signer, ok := o.session.Signer().Get()
		if !ok {
			return Result{}, missing("connected wallet")
		}

		if keypair, ok := o.session.keypairOf(signer.Address); ok {
			return Result{Message: fmt.Sprintf("keypair %s already derived", maci.PackPubKey(keypair.PubKey))}, nil
		}

		sig, err := o.wallet.SignArbitrary(ctx, o.chain.ChainID, signer.Address, []byte(KeypairChallenge))
		if err != nil {
			return Result{}, walletError(err)
		}

		sigBytes, err := sig.Bytes()
		if err != nil {
			return Result{}, walletError(err)
		}

		keypair := maci.GenKeypair(maci.SeedFromSignature(sigBytes))
		o.session.setKeypair(signer.Address, keypair)

		return Result{Message: fmt.Sprintf("derived keypair %s", maci.PackPubKey(keypair.PubKey))}, nil
	})
}

// CreateClient creates the protocol client from the connected wallet and the current keypair, if any
func (o *Orchestrator) CreateClient(ctx context.Context) (Result, error) {
	return o.runStep(ctx, StepClient, func(ctx context.Context) (Result, error) {
		signer, ok := o.session.Signer().Get()
		if !ok {
			return Result{}, missing("connected wallet")
		}

		keypair := o.session.Keypair()
		client, err := o.newClient(ctx, signer.Signer, keypair)
		if err != nil {
			return Result{}, remote(err)
		}

		o.session.setClient(client)

		if keypair.IsNone() {
			return Result{Message: "client created without keypair"}, nil
		}
		return Result{Message: "client created"}, nil
	})
}

// DeployRound deploys a new round with the configured parameters
func (o *Orchestrator) DeployRound(ctx context.Context) (Result, error) {
	return o.runStep(ctx, StepDeploy, func(ctx context.Context) (Result, error) {
		if o.session.Signer().IsNone() {
			return Result{}, missing("connected wallet")
		}

		client, ok := o.session.Client().Get()
		if !ok {
			return Result{}, missing("protocol client")
		}

		res, err := client.CreateOracleRound(ctx, o.params.roundParams(o.now()))
		if err != nil {
			return Result{}, remote(err)
		}

		record := o.txRecord(res.TransactionHash)
		o.session.setRound(res.ContractAddress, record)

		return Result{Message: fmt.Sprintf("deployed round %s", res.ContractAddress), Tx: utils.Some(record)}, nil
	})
}

// Signup registers the voting keypair in the deployed round once the round granted fees to the account
func (o *Orchestrator) Signup(ctx context.Context) (Result, error) {
	return o.runStep(ctx, StepSignup, func(ctx context.Context) (Result, error) {
		client, keypair, round, err := o.votingPrerequisites()
		if err != nil {
			return Result{}, err
		}

		address, err := client.GetAddress(ctx)
		if err != nil {
			return Result{}, remote(err)
		}

		certificate, err := client.RequestCertificate(ctx, maci.CertificateRequest{
			Ecosystem:       o.params.Round.Ecosystem,
			Address:         address,
			ContractAddress: round,
			Height:          o.params.Round.SnapshotHeight,
		})
		if err != nil {
			return Result{}, remote(err)
		}

		if err := o.waitForFeegrant(ctx, client, address, round); err != nil {
			return Result{}, err
		}

		res, err := client.Signup(ctx, maci.SignupParams{
			Address:         address,
			ContractAddress: round,
			Keypair:         utils.Some(keypair),
			Certificate:     certificate,
			GasStation:      o.params.SignupGasStation,
		})
		if err != nil {
			return Result{}, remote(err)
		}

		record := o.txRecord(res.TransactionHash)
		o.session.setTxRecord(StepSignup, record)

		return Result{Message: fmt.Sprintf("signed up to round %s", round), Tx: utils.Some(record)}, nil
	})
}

// Vote casts the configured ballot, encrypted for the round's coordinator
func (o *Orchestrator) Vote(ctx context.Context) (Result, error) {
	return o.runStep(ctx, StepVote, func(ctx context.Context) (Result, error) {
		client, keypair, round, err := o.votingPrerequisites()
		if err != nil {
			return Result{}, err
		}

		info, err := client.GetRoundInfo(ctx, round)
		if err != nil {
			return Result{}, remote(err)
		}

		coordPubKey, err := info.CoordinatorPubKey()
		if err != nil {
			return Result{}, remote(err)
		}

		address, err := client.GetAddress(ctx)
		if err != nil {
			return Result{}, remote(err)
		}

		stateIdx, err := client.GetStateIdxByPubKey(ctx, round, keypair.PubKey)
		if err != nil {
			return Result{}, remote(err)
		}

		res, err := client.Vote(ctx, maci.VoteParams{
			Address:         address,
			StateIdx:        stateIdx,
			ContractAddress: round,
			SelectedOptions: o.params.Ballot.Options,
			CoordPubKey:     coordPubKey,
			Keypair:         utils.Some(keypair),
			GasStation:      o.params.Ballot.GasStation,
		})
		if err != nil {
			return Result{}, remote(err)
		}

		record := o.txRecord(res.TransactionHash)
		o.session.setTxRecord(StepVote, record)

		return Result{Message: fmt.Sprintf("voted in round %s with state index %d", round, stateIdx), Tx: utils.Some(record)}, nil
	})
}

func (o *Orchestrator) votingPrerequisites() (ProtocolClient, maci.Keypair, string, error) {
	if o.session.Signer().IsNone() {
		return nil, maci.Keypair{}, "", missing("connected wallet")
	}

	client, ok := o.session.Client().Get()
	if !ok {
		return nil, maci.Keypair{}, "", missing("protocol client")
	}

	keypair, ok := o.session.Keypair().Get()
	if !ok {
		return nil, maci.Keypair{}, "", missing("voting keypair")
	}

	round, ok := o.session.Round().Get()
	if !ok {
		return nil, maci.Keypair{}, "", missing("deployed round")
	}

	return client, keypair, round, nil
}

func (o *Orchestrator) txRecord(hash string) TxRecord {
	return TxRecord{Hash: hash, ExplorerURL: config.ExplorerTxURL(o.params.Network, hash)}
}

// runStep guards a step with its busy flag, converts panics into errors and records the outcome
func (o *Orchestrator) runStep(ctx context.Context, step Step, f func(context.Context) (Result, error)) (result Result, err error) {
	release, err := o.session.acquire(step)
	if err != nil {
		o.metrics.observeStep(step, "busy", 0)
		return Result{}, err
	}
	defer release()

	logger := o.logger.With("step", step)
	logger.Debug("step started")

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("step panicked", "panic", r, "stack", string(debug.Stack()))
			err = errorsmod.Wrapf(ErrStepPanicked, "%s: %v", step, r)
			result = Result{}
		}

		outcome := "success"
		switch {
		case err == nil:
			result.Step = step
			if tx, ok := result.Tx.Get(); ok {
				logger.Info(result.Message, "tx_hash", tx.Hash, "explorer", tx.ExplorerURL)
			} else {
				logger.Info(result.Message)
			}
		case errorsmod.IsOf(err, ErrMissingPrerequisite):
			outcome = "skipped"
			logger.Info("step skipped", append([]interface{}{"reason", err.Error()}, utilserrors.KeyVals(err)...)...)
		default:
			outcome = "failure"
			logger.Error("step failed", append([]interface{}{"error", err.Error()}, utilserrors.KeyVals(err)...)...)
		}

		o.metrics.observeStep(step, outcome, time.Since(start))
	}()

	return f(ctx)
}

func missing(what string) error {
	return utilserrors.With(errorsmod.Wrapf(ErrMissingPrerequisite, "%s required", what), "prerequisite", what)
}

func walletError(err error) error {
	return fmt.Errorf("%w: %w", ErrWalletUnavailable, err)
}

func remote(err error) error {
	return fmt.Errorf("%w: %w", ErrRemoteCall, err)
}
