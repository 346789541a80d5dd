package workflow_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"

	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/utils"
	"github.com/dorafactory/maci-demo/workflow"
)

func TestParams_ValidateBasic(t *testing.T) {
	assert.NoError(t, workflow.DefaultParams().ValidateBasic())

	testCases := map[string]func(p *workflow.Params){
		"unknown network":       func(p *workflow.Params) { p.Network = "devnet" },
		"zero voting period":    func(p *workflow.Params) { p.Round.VotingPeriod = 0 },
		"unknown circuit":       func(p *workflow.Params) { p.Round.CircuitType = "MACI" },
		"no vote options":       func(p *workflow.Params) { p.Round.VoteOptions = nil },
		"ballot out of range":   func(p *workflow.Params) { p.Ballot.Options = []maci.VoteOption{{Idx: 3, Vc: 1}} },
		"unbounded poll":        func(p *workflow.Params) { p.FeegrantPoll.MaxAttempts = 0 },
		"poll without back-off": func(p *workflow.Params) { p.FeegrantPoll.MinSleepBeforeRetry = 0 },
	}

	for name, invalidate := range testCases {
		t.Run(name, func(t *testing.T) {
			params := workflow.DefaultParams()
			invalidate(&params)
			assert.Error(t, params.ValidateBasic())
		})
	}
}

func TestParams_OperatorPubKey(t *testing.T) {
	params := workflow.DefaultParams()
	params.Network = config.Testnet
	assert.Equal(t, config.OraclePubKey(config.Testnet), params.OperatorPubKey())

	params.Round.OperatorPubKey = "12345"
	assert.Equal(t, "12345", params.OperatorPubKey())
}

func TestParseStep(t *testing.T) {
	for _, step := range workflow.Steps() {
		parsed, err := workflow.ParseStep(string(step))
		assert.NoError(t, err)
		assert.Equal(t, step, parsed)
	}

	_, err := workflow.ParseStep("tally")
	assert.ErrorIs(t, err, workflow.ErrUnknownStep)
}

func TestOrchestrator_DeployUsesClock(t *testing.T) {
	f := newFixture(config.Testnet)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	params := testParams()
	params.Network = config.Testnet

	o := workflow.NewOrchestrator(params, config.ChainConfig(config.Testnet), f.wallet,
		func(_ context.Context, _ workflow.OfflineSigner, _ utils.Option[maci.Keypair]) (workflow.ProtocolClient, error) {
			return f.client, nil
		}, log.NewNopLogger(), workflow.WithClock(func() time.Time { return now }))

	for _, step := range []workflow.Step{workflow.StepConnect, workflow.StepClient, workflow.StepDeploy} {
		_, err := o.Run(context.Background(), step)
		assert.NoError(t, err)
	}

	deploy := f.client.CreateOracleRoundCalls()[0].Params
	assert.Equal(t, now, deploy.StartVoting)
	assert.Equal(t, now.Add(5*time.Minute), deploy.EndVoting)
	assert.Equal(t, config.OraclePubKey(config.Testnet), deploy.OperatorPubKey)
}
