package maci

import (
	"math/big"
	"strconv"
	"time"
)

// CircuitType selects the tally circuit of a round
type CircuitType string

const (
	// CircuitIP1V counts one vote per voice credit
	CircuitIP1V CircuitType = "0"
	// CircuitQV counts the square root of the voice credits
	CircuitQV CircuitType = "1"
)

// ParseCircuitType accepts the circuit names and their contract encodings
func ParseCircuitType(s string) (CircuitType, bool) {
	switch s {
	case "IP1V", "ip1v", string(CircuitIP1V):
		return CircuitIP1V, true
	case "QV", "qv", string(CircuitQV):
		return CircuitQV, true
	default:
		return "", false
	}
}

type contractPubKey struct {
	X string `json:"x"`
	Y string `json:"y"`
}

func toContractPubKey(pk PubKey) contractPubKey {
	return contractPubKey{X: pk[0].String(), Y: pk[1].String()}
}

func (pk contractPubKey) toPubKey() (PubKey, error) {
	x, ok := new(big.Int).SetString(pk.X, 10)
	if !ok {
		return PubKey{}, ErrInvalidPubKey
	}
	y, ok := new(big.Int).SetString(pk.Y, 10)
	if !ok {
		return PubKey{}, ErrInvalidPubKey
	}

	return PubKey{x, y}, nil
}

type roundInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type votingTime struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// VotingPowerArgs describe how the whitelist backend converts balances into voice credits
type VotingPowerArgs struct {
	Mode      string `json:"mode" mapstructure:"mode"`
	Slope     string `json:"slope" mapstructure:"slope"`
	Threshold string `json:"threshold" mapstructure:"threshold"`
}

type instantiateOracleRound struct {
	RoundInfo                roundInfo       `json:"round_info"`
	VotingTime               votingTime      `json:"voting_time"`
	Coordinator              contractPubKey  `json:"coordinator"`
	MaxVoteOptions           string          `json:"max_vote_options"`
	VoteOptionMap            []string        `json:"vote_option_map"`
	WhitelistBackendPubKey   string          `json:"whitelist_backend_pubkey"`
	WhitelistEcosystem       string          `json:"whitelist_ecosystem"`
	WhitelistSnapshotHeight  string          `json:"whitelist_snapshot_height"`
	WhitelistVotingPowerArgs VotingPowerArgs `json:"whitelist_voting_power_args"`
	CircuitType              CircuitType     `json:"circuit_type"`
	CertificationSystem      string          `json:"certification_system"`
	FeegrantOperator         string          `json:"feegrant_operator"`
}

type signUp struct {
	PubKey      contractPubKey `json:"pubkey"`
	Amount      string         `json:"amount"`
	Certificate string         `json:"certificate"`
}

type messageData struct {
	Data []string `json:"data"`
}

type publishMessage struct {
	Message   messageData    `json:"message"`
	EncPubKey contractPubKey `json:"enc_pub_key"`
}

type executeMsg struct {
	SignUp         *signUp         `json:"sign_up,omitempty"`
	PublishMessage *publishMessage `json:"publish_message,omitempty"`
}

type signupedQuery struct {
	PubKey contractPubKey `json:"pubkey"`
}

type queryMsg struct {
	Signuped *signupedQuery `json:"signuped,omitempty"`
}

func nanos(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}

func toDecimalStrings(values []*big.Int) []string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = v.String()
	}

	return strs
}
