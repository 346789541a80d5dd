package maci

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/axelarnetwork/utils/funcs"
	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/utils"
)

const oracleRoundLabelPrefix = "[Oracle MACI] "

// Dependencies are the remote services a client talks to
type Dependencies struct {
	Broadcasters BroadcasterFactory
	Wasm         WasmQuerier
	Feegrant     FeegrantQuerier
	Certificates CertificateService
	Indexer      RoundIndexer
}

// Client submits maci transactions and queries for a single wallet signer
type Client struct {
	network config.Network
	params  config.ProtocolParams
	signer  Signer
	keypair utils.Option[Keypair]
	deps    Dependencies
	logger  log.Logger
}

// NewClient returns a client bound to the given network, signer and keypair. A nil signer makes every call fail with ErrNoSigner.
func NewClient(network config.Network, signer Signer, keypair utils.Option[Keypair], deps Dependencies, logger log.Logger) *Client {
	return &Client{
		network: network,
		params:  config.Params(network),
		signer:  signer,
		keypair: keypair,
		deps:    deps,
		logger:  logger.With("module", "maci"),
	}
}

// Network returns the network the client is bound to
func (c *Client) Network() config.Network {
	return c.network
}

// Keypair returns the keypair the client was created with
func (c *Client) Keypair() utils.Option[Keypair] {
	return c.keypair
}

// PackedPubKey returns the packed public key of the client's keypair
func (c *Client) PackedPubKey() (string, error) {
	kp, ok := c.keypair.Get()
	if !ok {
		return "", ErrNoKeypair
	}

	return PackPubKey(kp.PubKey).String(), nil
}

// GetAddress returns the address of the signer's first account
func (c *Client) GetAddress(ctx context.Context) (string, error) {
	if c.signer == nil {
		return "", ErrNoSigner
	}

	accounts, err := c.signer.GetAccounts(ctx)
	if err != nil {
		return "", err
	}

	if len(accounts) == 0 {
		return "", errorsmod.Wrap(ErrNoSigner, "signer has no accounts")
	}

	return accounts[0].Address, nil
}

// RoundParams configure a new oracle round
type RoundParams struct {
	OperatorPubKey           string
	Title                    string
	Description              string
	Link                     string
	StartVoting              time.Time
	EndVoting                time.Time
	VoteOptionMap            []string
	CircuitType              CircuitType
	WhitelistEcosystem       string
	WhitelistSnapshotHeight  string
	WhitelistVotingPowerArgs VotingPowerArgs
}

// ValidateBasic returns an error if the round cannot be deployed
func (p RoundParams) ValidateBasic() error {
	if err := utils.ValidateString(p.Title); err != nil {
		return errorsmod.Wrap(err, "invalid round title")
	}

	if !p.EndVoting.After(p.StartVoting) {
		return fmt.Errorf("voting must end after it starts")
	}

	if len(p.VoteOptionMap) == 0 {
		return fmt.Errorf("round needs at least one vote option")
	}

	for _, option := range p.VoteOptionMap {
		if err := utils.ValidateString(option); err != nil {
			return errorsmod.Wrapf(err, "invalid vote option %q", option)
		}
	}

	if _, ok := ParseCircuitType(string(p.CircuitType)); !ok {
		return fmt.Errorf("unknown circuit type %q", p.CircuitType)
	}

	if p.WhitelistEcosystem == "" {
		return fmt.Errorf("whitelist ecosystem must be set")
	}

	return nil
}

// TxResult identifies a committed transaction
type TxResult struct {
	TransactionHash string
	Height          int64
	GasUsed         int64
}

// RoundResult is the outcome of a round deployment
type RoundResult struct {
	TxResult
	ContractAddress string
}

// CreateOracleRound deploys a new oracle maci round operated by params.OperatorPubKey
func (c *Client) CreateOracleRound(ctx context.Context, params RoundParams) (RoundResult, error) {
	address, err := c.GetAddress(ctx)
	if err != nil {
		return RoundResult{}, err
	}

	if err := params.ValidateBasic(); err != nil {
		return RoundResult{}, errorsmod.Wrap(ErrInvalidRound, err.Error())
	}

	coordinator, err := ParsePackedPubKey(params.OperatorPubKey)
	if err != nil {
		return RoundResult{}, errorsmod.Wrap(err, "invalid operator public key")
	}

	circuitType, _ := ParseCircuitType(string(params.CircuitType))
	msg := instantiateOracleRound{
		RoundInfo:                roundInfo{Title: params.Title, Description: params.Description, Link: params.Link},
		VotingTime:               votingTime{StartTime: nanos(params.StartVoting), EndTime: nanos(params.EndVoting)},
		Coordinator:              toContractPubKey(coordinator),
		MaxVoteOptions:           fmt.Sprint(len(params.VoteOptionMap)),
		VoteOptionMap:            params.VoteOptionMap,
		WhitelistBackendPubKey:   c.params.WhitelistBackendPubKey,
		WhitelistEcosystem:       params.WhitelistEcosystem,
		WhitelistSnapshotHeight:  params.WhitelistSnapshotHeight,
		WhitelistVotingPowerArgs: params.WhitelistVotingPowerArgs,
		CircuitType:              circuitType,
		CertificationSystem:      "0",
		FeegrantOperator:         address,
	}

	res, err := c.broadcast(ctx, nil, &wasmtypes.MsgInstantiateContract{
		Sender: address,
		Admin:  address,
		CodeID: c.params.OracleCodeID,
		Label:  oracleRoundLabelPrefix + params.Title,
		Msg:    funcs.Must(json.Marshal(msg)),
		Funds:  sdk.NewCoins(),
	})
	if err != nil {
		return RoundResult{}, err
	}

	contractAddress, ok := findEventAttribute(res, wasmtypes.EventTypeInstantiate, wasmtypes.AttributeKeyContractAddr)
	if !ok {
		return RoundResult{}, errorsmod.Wrapf(ErrInvalidRound, "tx %s did not instantiate a contract", res.TxHash)
	}

	c.logger.Info("oracle round deployed", "contract", contractAddress, "tx_hash", res.TxHash)

	return RoundResult{TxResult: toTxResult(res), ContractAddress: contractAddress}, nil
}

// RequestCertificate requests the eligibility certificate of req.Address for a round
func (c *Client) RequestCertificate(ctx context.Context, req CertificateRequest) (Certificate, error) {
	if c.signer == nil {
		return Certificate{}, ErrNoSigner
	}

	if req.Address == "" {
		address, err := c.GetAddress(ctx)
		if err != nil {
			return Certificate{}, err
		}
		req.Address = address
	}

	return c.deps.Certificates.Sign(ctx, req)
}

// HasFeegrant returns true if the round grants fee allowance to address
func (c *Client) HasFeegrant(ctx context.Context, address string, contractAddress string) (bool, error) {
	if c.signer == nil {
		return false, ErrNoSigner
	}

	res, err := c.deps.Feegrant.Allowance(ctx, &feegrant.QueryAllowanceRequest{Granter: contractAddress, Grantee: address})
	switch {
	case isAllowanceNotFound(err):
		return false, nil
	case err != nil:
		return false, err
	default:
		return res.Allowance != nil, nil
	}
}

// SignupParams configure the registration of a voter in a round
type SignupParams struct {
	Address         string
	ContractAddress string
	Keypair         utils.Option[Keypair]
	Certificate     Certificate
	GasStation      bool
}

// Signup registers the keypair's public key in the round
func (c *Client) Signup(ctx context.Context, params SignupParams) (TxResult, error) {
	address, err := c.resolveAddress(ctx, params.Address)
	if err != nil {
		return TxResult{}, err
	}

	kp, err := c.resolveKeypair(params.Keypair)
	if err != nil {
		return TxResult{}, err
	}

	if err := params.Certificate.ValidateBasic(); err != nil {
		return TxResult{}, errorsmod.Wrap(ErrCertificate, err.Error())
	}

	msg := executeMsg{SignUp: &signUp{
		PubKey:      toContractPubKey(kp.PubKey),
		Amount:      params.Certificate.Amount,
		Certificate: params.Certificate.Signature,
	}}

	res, err := c.broadcast(ctx, c.feeGranter(params.GasStation, params.ContractAddress), &wasmtypes.MsgExecuteContract{
		Sender:   address,
		Contract: params.ContractAddress,
		Msg:      funcs.Must(json.Marshal(msg)),
		Funds:    sdk.NewCoins(),
	})
	if err != nil {
		return TxResult{}, err
	}

	c.logger.Info("signed up", "contract", params.ContractAddress, "tx_hash", res.TxHash)

	return toTxResult(res), nil
}

// GetRoundInfo returns the indexed state of the round
func (c *Client) GetRoundInfo(ctx context.Context, contractAddress string) (RoundInfo, error) {
	if c.signer == nil {
		return RoundInfo{}, ErrNoSigner
	}

	return c.deps.Indexer.Round(ctx, contractAddress)
}

// GetStateIdxByPubKey returns the state index the round assigned to pubKey
func (c *Client) GetStateIdxByPubKey(ctx context.Context, contractAddress string, pubKey PubKey) (uint32, error) {
	if c.signer == nil {
		return 0, ErrNoSigner
	}

	res, err := c.deps.Wasm.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contractAddress,
		QueryData: funcs.Must(json.Marshal(queryMsg{Signuped: &signupedQuery{PubKey: toContractPubKey(pubKey)}})),
	})
	if err != nil {
		return 0, err
	}

	var idx *json.Number
	if err := json.Unmarshal(res.Data, &idx); err != nil {
		var s *string
		if err := json.Unmarshal(res.Data, &s); err != nil {
			return 0, fmt.Errorf("unexpected signuped response %s", string(res.Data))
		}
		if s != nil {
			n := json.Number(*s)
			idx = &n
		}
	}

	if idx == nil {
		return 0, errorsmod.Wrapf(ErrNotSignedUp, "%s in round %s", pubKey, contractAddress)
	}

	i, err := idx.Int64()
	if err != nil || i < 0 || i > int64(^uint32(0)) {
		return 0, fmt.Errorf("invalid state index %s", idx.String())
	}

	return uint32(i), nil
}

// VoteParams configure a ballot
type VoteParams struct {
	Address         string
	StateIdx        uint32
	ContractAddress string
	SelectedOptions []VoteOption
	CoordPubKey     PubKey
	Keypair         utils.Option[Keypair]
	GasStation      bool
}

// Vote publishes the encrypted ballot in a single transaction
func (c *Client) Vote(ctx context.Context, params VoteParams) (TxResult, error) {
	address, err := c.resolveAddress(ctx, params.Address)
	if err != nil {
		return TxResult{}, err
	}

	kp, err := c.resolveKeypair(params.Keypair)
	if err != nil {
		return TxResult{}, err
	}

	plan, err := NormalizeVoteOptions(params.SelectedOptions)
	if err != nil {
		return TxResult{}, err
	}

	payloads, err := BatchGenMessage(params.StateIdx, kp, params.CoordPubKey, plan)
	if err != nil {
		return TxResult{}, err
	}

	msgs := make([]sdk.Msg, 0, len(payloads))
	for _, payload := range payloads {
		msgs = append(msgs, &wasmtypes.MsgExecuteContract{
			Sender:   address,
			Contract: params.ContractAddress,
			Msg: funcs.Must(json.Marshal(executeMsg{PublishMessage: &publishMessage{
				Message:   messageData{Data: toDecimalStrings(payload.Message)},
				EncPubKey: toContractPubKey(payload.EncPubKey),
			}})),
			Funds: sdk.NewCoins(),
		})
	}

	res, err := c.broadcast(ctx, c.feeGranter(params.GasStation, params.ContractAddress), msgs...)
	if err != nil {
		return TxResult{}, err
	}

	c.logger.Info("vote published", "contract", params.ContractAddress, "messages", len(msgs), "tx_hash", res.TxHash)

	return toTxResult(res), nil
}

func (c *Client) resolveAddress(ctx context.Context, address string) (string, error) {
	signerAddress, err := c.GetAddress(ctx)
	if err != nil {
		return "", err
	}

	if address != "" && address != signerAddress {
		return "", errorsmod.Wrapf(ErrNoSigner, "address %s is not the signer's address", address)
	}

	return signerAddress, nil
}

func (c *Client) resolveKeypair(keypair utils.Option[Keypair]) (Keypair, error) {
	if kp, ok := keypair.Get(); ok {
		return kp, nil
	}

	if kp, ok := c.keypair.Get(); ok {
		return kp, nil
	}

	return Keypair{}, ErrNoKeypair
}

func (c *Client) feeGranter(gasStation bool, contractAddress string) sdk.AccAddress {
	if !gasStation {
		return nil
	}

	granter, err := sdk.AccAddressFromBech32(contractAddress)
	if err != nil {
		return nil
	}

	return granter
}

func (c *Client) broadcast(ctx context.Context, feeGranter sdk.AccAddress, msgs ...sdk.Msg) (*sdk.TxResponse, error) {
	res, err := c.deps.Broadcasters(feeGranter).Broadcast(ctx, msgs...)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func toTxResult(res *sdk.TxResponse) TxResult {
	return TxResult{TransactionHash: res.TxHash, Height: res.Height, GasUsed: res.GasUsed}
}

func findEventAttribute(res *sdk.TxResponse, eventType string, key string) (string, bool) {
	for _, event := range res.Events {
		if event.Type != eventType {
			continue
		}

		for _, attr := range event.Attributes {
			if attr.Key == key {
				return attr.Value, true
			}
		}
	}

	for _, msgLog := range res.Logs {
		for _, event := range msgLog.Events {
			if event.Type != eventType {
				continue
			}

			for _, attr := range event.Attributes {
				if attr.Key == key {
					return attr.Value, true
				}
			}
		}
	}

	return "", false
}

// abci queries surface the feegrant keeper's ErrNotFound with codes.Unknown, so only its message identifies it
const missingAllowanceMsg = "fee-grant not found"

func isAllowanceNotFound(err error) bool {
	s, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch s.Code() {
	case codes.NotFound:
		return true
	case codes.Unknown:
		return strings.Contains(s.Message(), missingAllowanceMsg)
	default:
		return false
	}
}
