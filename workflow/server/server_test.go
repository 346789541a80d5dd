package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/axelarnetwork/utils/test"
	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/utils"
	"github.com/dorafactory/maci-demo/workflow"
	workflowmock "github.com/dorafactory/maci-demo/workflow/mock"
	"github.com/dorafactory/maci-demo/workflow/server"
	"github.com/dorafactory/maci-demo/workflow/server/mock"
)

func post(t *testing.T, srv *httptest.Server, step string) (int, server.StepResponse) {
	resp, err := http.Post(fmt.Sprintf("%s/api/v1/steps/%s", srv.URL, step), "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	var res server.StepResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, resp.Header.Get(server.RequestIDHeader), res.RequestID)

	return resp.StatusCode, res
}

func TestRouter_Steps(t *testing.T) {
	var (
		runner *mock.RunnerMock
		srv    *httptest.Server
	)

	givenServer := Given("an api server", func() {
		runner = &mock.RunnerMock{}
		srv = httptest.NewServer(server.NewRouter(runner, nil, log.NewNopLogger()))
	})

	givenServer.
		When("a step succeeds with a transaction", func() {
			runner.RunFunc = func(_ context.Context, step workflow.Step) (workflow.Result, error) {
				return workflow.Result{
					Step:    step,
					Message: "deployed round dora1round",
					Tx:      utils.Some(workflow.TxRecord{Hash: "ABC", ExplorerURL: "https://explorer/tx/ABC"}),
				}, nil
			}
		}).
		Then("respond with the result and the tx link", func(t *testing.T) {
			defer srv.Close()

			code, res := post(t, srv, "deploy")
			assert.Equal(t, http.StatusOK, code)
			assert.True(t, res.OK)
			assert.Equal(t, "deploy", res.Step)
			assert.Equal(t, "deployed round dora1round", res.Message)
			require.NotNil(t, res.Tx)
			assert.Equal(t, "ABC", res.Tx.Hash)
			assert.Equal(t, "https://explorer/tx/ABC", res.Tx.ExplorerURL)

			_, err := uuid.Parse(res.RequestID)
			assert.NoError(t, err)

			assert.Len(t, runner.RunCalls(), 1)
			assert.Equal(t, workflow.StepDeploy, runner.RunCalls()[0].Step)
		}).Run(t)

	givenServer.
		When("an unknown step is requested", func() {}).
		Then("respond with not found without running anything", func(t *testing.T) {
			defer srv.Close()

			code, res := post(t, srv, "tally")
			assert.Equal(t, http.StatusNotFound, code)
			assert.False(t, res.OK)
			assert.NotEmpty(t, res.Error)
			assert.Len(t, runner.RunCalls(), 0)
		}).Run(t)

	testCases := map[error]int{
		errorsmod.Wrap(workflow.ErrStepBusy, "deploy"):                  http.StatusConflict,
		errorsmod.Wrap(workflow.ErrMissingPrerequisite, "client"):       http.StatusPreconditionFailed,
		errorsmod.Wrap(workflow.ErrFeegrantTimeout, "no grant"):         http.StatusGatewayTimeout,
		fmt.Errorf("%w: %w", workflow.ErrRemoteCall, errors.New("eof")): http.StatusBadGateway,
		errorsmod.Wrap(workflow.ErrNoAccounts, "vota-ash"):              http.StatusBadGateway,
		errorsmod.Wrap(workflow.ErrStepPanicked, "boom"):                http.StatusInternalServerError,
	}

	for stepErr, expected := range testCases {
		givenServer.
			When(fmt.Sprintf("the step fails with %s", stepErr), func() {
				runner.RunFunc = func(context.Context, workflow.Step) (workflow.Result, error) {
					return workflow.Result{}, stepErr
				}
			}).
			Then(fmt.Sprintf("respond with status %d", expected), func(t *testing.T) {
				defer srv.Close()

				code, res := post(t, srv, "signup")
				assert.Equal(t, expected, code)
				assert.False(t, res.OK)
				assert.Equal(t, stepErr.Error(), res.Error)
				assert.Nil(t, res.Tx)
			}).Run(t)
	}
}

func TestRouter_StepOutlivesRequest(t *testing.T) {
	var stepCtxErr error
	runner := &mock.RunnerMock{
		RunFunc: func(ctx context.Context, step workflow.Step) (workflow.Result, error) {
			stepCtxErr = ctx.Err()
			return workflow.Result{Step: step, Message: "signed up"}, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/steps/signup", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	server.NewRouter(runner, nil, log.NewNopLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, runner.RunCalls(), 1)
	assert.NoError(t, stepCtxErr)
}

func TestRouter_Status(t *testing.T) {
	runner := &mock.RunnerMock{
		StatusFunc: func() workflow.Status {
			return workflow.Status{
				Network: "testnet",
				ChainID: "vota-testnet",
				Address: "dora1voter",
				Txs:     map[workflow.Step]workflow.TxRecord{workflow.StepVote: {Hash: "VOTE"}},
				Busy:    map[workflow.Step]bool{workflow.StepVote: false},
			}
		},
	}

	srv := httptest.NewServer(server.NewRouter(runner, nil, log.NewNopLogger()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var status workflow.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, runner.Status(), status)

	resp, err = http.Get(srv.URL + "/api/v1/steps/vote")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var res server.StepResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "not allowed")
	assert.Len(t, runner.RunCalls(), 0)
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	walletProvider := &workflowmock.WalletProviderMock{
		SuggestChainFunc: func(context.Context, config.ChainInfo) error { return nil },
		EnableFunc:       func(context.Context, string) error { return errors.New("request rejected") },
	}
	factory := func(context.Context, workflow.OfflineSigner, utils.Option[maci.Keypair]) (workflow.ProtocolClient, error) {
		return nil, errors.New("unreachable")
	}

	orchestrator := workflow.NewOrchestrator(workflow.DefaultParams(), config.ChainConfig(config.Mainnet), walletProvider, factory,
		log.NewNopLogger(), workflow.WithMetrics(workflow.NewMetrics(reg)))

	srv := httptest.NewServer(server.NewRouter(orchestrator, reg, log.NewNopLogger()))
	defer srv.Close()

	code, res := post(t, srv, "connect")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Contains(t, res.Error, "request rejected")

	code, _ = post(t, srv, "vote")
	assert.Equal(t, http.StatusPreconditionFailed, code)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `macid_workflow_step_outcomes_total{outcome="failure",step="connect"} 1`)
	assert.Contains(t, string(body), `macid_workflow_step_outcomes_total{outcome="skipped",step="vote"} 1`)
}
