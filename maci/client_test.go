package maci_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	. "github.com/axelarnetwork/utils/test"
	"github.com/dorafactory/maci-demo/app"
	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/maci/mock"
	"github.com/dorafactory/maci-demo/sdk-utils/broadcast"
	broadcastmock "github.com/dorafactory/maci-demo/sdk-utils/broadcast/mock"
	"github.com/dorafactory/maci-demo/testutils/rand"
	"github.com/dorafactory/maci-demo/utils"
	"github.com/dorafactory/maci-demo/wallet"
)

func TestClient(t *testing.T) {
	app.SetConfig()

	var (
		client       *maci.Client
		signer       *mock.SignerMock
		broadcaster  *broadcastmock.BroadcasterMock
		feeGranters  []sdk.AccAddress
		wasm         *mock.WasmQuerierMock
		feegrants    *mock.FeegrantQuerierMock
		certificates *mock.CertificateServiceMock
		indexer      *mock.RoundIndexerMock
		address      string
		round        string
		keypair      maci.Keypair
	)

	ctx := context.Background()

	newClient := func(signer maci.Signer, kp utils.Option[maci.Keypair]) *maci.Client {
		return maci.NewClient(config.Testnet, signer, kp, maci.Dependencies{
			Broadcasters: func(feeGranter sdk.AccAddress) broadcast.Broadcaster {
				feeGranters = append(feeGranters, feeGranter)
				return broadcaster
			},
			Wasm:         wasm,
			Feegrant:     feegrants,
			Certificates: certificates,
			Indexer:      indexer,
		}, log.NewNopLogger())
	}

	givenClient := Given("a client with signer and keypair", func() {
		address = rand.AccAddr().String()
		round = rand.AccAddr().String()
		keypair = maci.GenKeypair(randomSeed())
		feeGranters = nil

		signer = &mock.SignerMock{GetAccountsFunc: func(context.Context) ([]wallet.Account, error) {
			return []wallet.Account{{Address: address}}, nil
		}}
		broadcaster = &broadcastmock.BroadcasterMock{}
		wasm = &mock.WasmQuerierMock{}
		feegrants = &mock.FeegrantQuerierMock{}
		certificates = &mock.CertificateServiceMock{}
		indexer = &mock.RoundIndexerMock{}

		client = newClient(signer, utils.Some(keypair))
	})

	Given("a client without signer", func() {
		client = newClient(nil, utils.None[maci.Keypair]())
	}).
		When("calling the client", func() {}).
		Then("every call fails", func(t *testing.T) {
			_, err := client.GetAddress(ctx)
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.CreateOracleRound(ctx, maci.RoundParams{})
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.RequestCertificate(ctx, maci.CertificateRequest{})
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.HasFeegrant(ctx, "", "")
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.Signup(ctx, maci.SignupParams{})
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.GetRoundInfo(ctx, "")
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.GetStateIdxByPubKey(ctx, "", maci.GenKeypair(randomSeed()).PubKey)
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			_, err = client.Vote(ctx, maci.VoteParams{})
			assert.ErrorIs(t, err, maci.ErrNoSigner)
		}).Run(t)

	givenClient.
		When("deploying a round", func() {
			broadcaster.BroadcastFunc = func(context.Context, ...sdk.Msg) (*sdk.TxResponse, error) {
				return &sdk.TxResponse{
					TxHash: "DEPLOYHASH",
					Events: []abci.Event{{
						Type:       wasmtypes.EventTypeInstantiate,
						Attributes: []abci.EventAttribute{{Key: wasmtypes.AttributeKeyContractAddr, Value: round}},
					}},
				}, nil
			}
		}).
		Then("instantiate the oracle round contract", func(t *testing.T) {
			now := time.Now()
			res, err := client.CreateOracleRound(ctx, maci.RoundParams{
				OperatorPubKey:           config.OraclePubKey(config.Testnet),
				Title:                    "new oracle maci round",
				StartVoting:              now,
				EndVoting:                now.Add(5 * time.Minute),
				VoteOptionMap:            []string{"option1: A", "option2: B", "option3: C"},
				CircuitType:              maci.CircuitIP1V,
				WhitelistEcosystem:       "doravota",
				WhitelistSnapshotHeight:  "0",
				WhitelistVotingPowerArgs: maci.VotingPowerArgs{Mode: "slope", Slope: "1000000", Threshold: "1000000"},
			})
			require.NoError(t, err)
			assert.Equal(t, round, res.ContractAddress)
			assert.Equal(t, "DEPLOYHASH", res.TransactionHash)

			require.Len(t, broadcaster.BroadcastCalls(), 1)
			msgs := broadcaster.BroadcastCalls()[0].Msgs
			require.Len(t, msgs, 1)
			msg := msgs[0].(*wasmtypes.MsgInstantiateContract)
			assert.Equal(t, address, msg.Sender)
			assert.Equal(t, config.Params(config.Testnet).OracleCodeID, msg.CodeID)
			assert.Equal(t, "[Oracle MACI] new oracle maci round", msg.Label)

			var decoded map[string]interface{}
			require.NoError(t, json.Unmarshal(msg.Msg, &decoded))
			assert.Equal(t, "3", decoded["max_vote_options"])
			assert.Equal(t, "0", decoded["circuit_type"])
			assert.Equal(t, address, decoded["feegrant_operator"])
			assert.Nil(t, feeGranters[0])
		}).Run(t)

	givenClient.
		When("deploying a round with an empty title", func() {}).
		Then("reject the round without broadcasting", func(t *testing.T) {
			_, err := client.CreateOracleRound(ctx, maci.RoundParams{
				OperatorPubKey: config.OraclePubKey(config.Testnet),
				StartVoting:    time.Now(),
				EndVoting:      time.Now().Add(time.Minute),
				VoteOptionMap:  []string{"a"},
				CircuitType:    maci.CircuitIP1V,
			})
			assert.ErrorIs(t, err, maci.ErrInvalidRound)
			assert.Len(t, broadcaster.BroadcastCalls(), 0)
		}).Run(t)

	givenClient.
		Branch(
			When("the fee grant does not exist", func() {
				feegrants.AllowanceFunc = func(context.Context, *feegrant.QueryAllowanceRequest, ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error) {
					return nil, status.Error(codes.NotFound, "fee-grant not found")
				}
			}).
				Then("report no fee grant", func(t *testing.T) {
					ok, err := client.HasFeegrant(ctx, address, round)
					assert.NoError(t, err)
					assert.False(t, ok)
				}),
			When("the chain reports the missing fee grant through an abci query", func() {
				feegrants.AllowanceFunc = func(context.Context, *feegrant.QueryAllowanceRequest, ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error) {
					return nil, status.Error(codes.Unknown, "fee-grant not found: not found")
				}
			}).
				Then("report no fee grant", func(t *testing.T) {
					ok, err := client.HasFeegrant(ctx, address, round)
					assert.NoError(t, err)
					assert.False(t, ok)
				}),
			When("an unrelated lookup fails with not found", func() {
				feegrants.AllowanceFunc = func(context.Context, *feegrant.QueryAllowanceRequest, ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error) {
					return nil, errors.New("rpc method not found")
				}
			}).
				Then("return the error", func(t *testing.T) {
					_, err := client.HasFeegrant(ctx, address, round)
					assert.EqualError(t, err, "rpc method not found")
				}),
			When("the query fails with another code", func() {
				feegrants.AllowanceFunc = func(context.Context, *feegrant.QueryAllowanceRequest, ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error) {
					return nil, status.Error(codes.InvalidArgument, "invalid granter address: not found")
				}
			}).
				Then("return the error", func(t *testing.T) {
					_, err := client.HasFeegrant(ctx, address, round)
					assert.Error(t, err)
				}),
			When("the fee grant exists", func() {
				feegrants.AllowanceFunc = func(_ context.Context, req *feegrant.QueryAllowanceRequest, _ ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error) {
					if req.Granter != round || req.Grantee != address {
						return nil, errors.New("unexpected request")
					}
					return &feegrant.QueryAllowanceResponse{Allowance: &feegrant.Grant{Granter: round, Grantee: address, Allowance: &codectypes.Any{}}}, nil
				}
			}).
				Then("report the fee grant", func(t *testing.T) {
					ok, err := client.HasFeegrant(ctx, address, round)
					assert.NoError(t, err)
					assert.True(t, ok)
				}),
			When("the query fails", func() {
				feegrants.AllowanceFunc = func(context.Context, *feegrant.QueryAllowanceRequest, ...grpc.CallOption) (*feegrant.QueryAllowanceResponse, error) {
					return nil, status.Error(codes.Unavailable, "connection refused")
				}
			}).
				Then("return the error", func(t *testing.T) {
					_, err := client.HasFeegrant(ctx, address, round)
					assert.Error(t, err)
				}),
		).Run(t)

	givenClient.
		When("signing up with the gas station", func() {
			broadcaster.BroadcastFunc = func(context.Context, ...sdk.Msg) (*sdk.TxResponse, error) {
				return &sdk.TxResponse{TxHash: "SIGNUPHASH"}, nil
			}
		}).
		Then("execute sign_up paid by the round", func(t *testing.T) {
			res, err := client.Signup(ctx, maci.SignupParams{
				Address:         address,
				ContractAddress: round,
				Certificate:     maci.Certificate{Signature: "c2ln", Amount: "100"},
				GasStation:      true,
			})
			require.NoError(t, err)
			assert.Equal(t, "SIGNUPHASH", res.TransactionHash)
			assert.Equal(t, round, feeGranters[0].String())

			msg := broadcaster.BroadcastCalls()[0].Msgs[0].(*wasmtypes.MsgExecuteContract)
			var decoded struct {
				SignUp struct {
					PubKey      map[string]string `json:"pubkey"`
					Amount      string            `json:"amount"`
					Certificate string            `json:"certificate"`
				} `json:"sign_up"`
			}
			require.NoError(t, json.Unmarshal(msg.Msg, &decoded))
			assert.Equal(t, keypair.PubKey[0].String(), decoded.SignUp.PubKey["x"])
			assert.Equal(t, "100", decoded.SignUp.Amount)
			assert.Equal(t, "c2ln", decoded.SignUp.Certificate)
		}).Run(t)

	givenClient.
		Branch(
			When("the public key is signed up", func() {
				wasm.SmartContractStateFunc = func(context.Context, *wasmtypes.QuerySmartContractStateRequest, ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
					return &wasmtypes.QuerySmartContractStateResponse{Data: []byte(`"7"`)}, nil
				}
			}).
				Then("return its state index", func(t *testing.T) {
					idx, err := client.GetStateIdxByPubKey(ctx, round, keypair.PubKey)
					assert.NoError(t, err)
					assert.EqualValues(t, 7, idx)

					var query map[string]map[string]map[string]string
					require.NoError(t, json.Unmarshal(wasm.SmartContractStateCalls()[0].In.QueryData, &query))
					assert.Equal(t, keypair.PubKey[1].String(), query["signuped"]["pubkey"]["y"])
				}),
			When("the public key is not signed up", func() {
				wasm.SmartContractStateFunc = func(context.Context, *wasmtypes.QuerySmartContractStateRequest, ...grpc.CallOption) (*wasmtypes.QuerySmartContractStateResponse, error) {
					return &wasmtypes.QuerySmartContractStateResponse{Data: []byte(`null`)}, nil
				}
			}).
				Then("return ErrNotSignedUp", func(t *testing.T) {
					_, err := client.GetStateIdxByPubKey(ctx, round, keypair.PubKey)
					assert.ErrorIs(t, err, maci.ErrNotSignedUp)
				}),
		).Run(t)

	givenClient.
		When("voting", func() {
			broadcaster.BroadcastFunc = func(context.Context, ...sdk.Msg) (*sdk.TxResponse, error) {
				return &sdk.TxResponse{TxHash: "VOTEHASH"}, nil
			}
		}).
		Then("publish one message per option in a single tx", func(t *testing.T) {
			res, err := client.Vote(ctx, maci.VoteParams{
				Address:         address,
				StateIdx:        3,
				ContractAddress: round,
				SelectedOptions: []maci.VoteOption{{Idx: 0, Vc: 1}, {Idx: 1, Vc: 1}},
				CoordPubKey:     maci.GenKeypair(randomSeed()).PubKey,
			})
			require.NoError(t, err)
			assert.Equal(t, "VOTEHASH", res.TransactionHash)

			require.Len(t, broadcaster.BroadcastCalls(), 1)
			msgs := broadcaster.BroadcastCalls()[0].Msgs
			assert.Len(t, msgs, 2)
			for _, msg := range msgs {
				var decoded struct {
					PublishMessage struct {
						Message struct {
							Data []string `json:"data"`
						} `json:"message"`
						EncPubKey map[string]string `json:"enc_pub_key"`
					} `json:"publish_message"`
				}
				require.NoError(t, json.Unmarshal(msg.(*wasmtypes.MsgExecuteContract).Msg, &decoded))
				assert.Len(t, decoded.PublishMessage.Message.Data, 7)
				assert.NotEmpty(t, decoded.PublishMessage.EncPubKey["x"])
			}
		}).Run(t)

	givenClient.
		When("voting for another address", func() {}).
		Then("fail without broadcasting", func(t *testing.T) {
			_, err := client.Vote(ctx, maci.VoteParams{
				Address:         rand.AccAddr().String(),
				ContractAddress: round,
				SelectedOptions: []maci.VoteOption{{Idx: 0, Vc: 1}},
				CoordPubKey:     maci.GenKeypair(randomSeed()).PubKey,
			})
			assert.ErrorIs(t, err, maci.ErrNoSigner)
			assert.Len(t, broadcaster.BroadcastCalls(), 0)
		}).Run(t)

	Given("a client without keypair", func() {
		address = rand.AccAddr().String()
		signer = &mock.SignerMock{GetAccountsFunc: func(context.Context) ([]wallet.Account, error) {
			return []wallet.Account{{Address: address}}, nil
		}}
		broadcaster = &broadcastmock.BroadcasterMock{}
		client = newClient(signer, utils.None[maci.Keypair]())
	}).
		When("signing up", func() {}).
		Then("fail with ErrNoKeypair", func(t *testing.T) {
			_, err := client.Signup(ctx, maci.SignupParams{Certificate: maci.Certificate{Signature: "s", Amount: "1"}})
			assert.ErrorIs(t, err, maci.ErrNoKeypair)

			_, err = client.PackedPubKey()
			assert.ErrorIs(t, err, maci.ErrNoKeypair)
		}).Run(t)
}
