package workflow

import (
	"fmt"
	"time"

	"github.com/dorafactory/maci-demo/config"
	"github.com/dorafactory/maci-demo/maci"
	"github.com/dorafactory/maci-demo/utils"
)

// KeypairChallenge is the message the wallet signs to derive the voting keypair
const KeypairChallenge = "Generate_MACI_Private_Key"

// RoundConfig holds the parameters of deployed rounds
type RoundConfig struct {
	Title           string               `mapstructure:"title"`
	Description     string               `mapstructure:"description"`
	Link            string               `mapstructure:"link"`
	VotingPeriod    time.Duration        `mapstructure:"voting_period"`
	VoteOptions     []string             `mapstructure:"vote_options"`
	CircuitType     string               `mapstructure:"circuit_type"`
	Ecosystem       string               `mapstructure:"ecosystem"`
	SnapshotHeight  string               `mapstructure:"snapshot_height"`
	VotingPowerArgs maci.VotingPowerArgs `mapstructure:"voting_power"`
	OperatorPubKey  string               `mapstructure:"operator_pubkey"`
}

// BallotConfig holds the ballot cast by the vote step
type BallotConfig struct {
	Options    []maci.VoteOption `mapstructure:"options"`
	GasStation bool              `mapstructure:"gas_station"`
}

// Params configure the orchestrator
type Params struct {
	Network          config.Network   `mapstructure:"network"`
	Round            RoundConfig      `mapstructure:"round"`
	Ballot           BallotConfig     `mapstructure:"ballot"`
	SignupGasStation bool             `mapstructure:"signup_gas_station"`
	FeegrantPoll     utils.PollConfig `mapstructure:"feegrant_poll"`
}

// DefaultParams returns the parameters of the demo round and ballot
func DefaultParams() Params {
	return Params{
		Network: config.DefaultNetwork,
		Round: RoundConfig{
			Title:          "new oracle maci round",
			VotingPeriod:   5 * time.Minute,
			VoteOptions:    []string{"option1: A", "option2: B", "option3: C"},
			CircuitType:    "IP1V",
			Ecosystem:      "doravota",
			SnapshotHeight: "0",
			VotingPowerArgs: maci.VotingPowerArgs{
				Mode:      "slope",
				Slope:     "1000000",
				Threshold: "1000000",
			},
		},
		Ballot: BallotConfig{
			Options: []maci.VoteOption{{Idx: 0, Vc: 1}, {Idx: 1, Vc: 1}},
		},
		FeegrantPoll: utils.PollConfig{
			MaxAttempts:         30,
			MinSleepBeforeRetry: time.Second,
			MaxSleepBeforeRetry: 5 * time.Second,
			Timeout:             2 * time.Minute,
		},
	}
}

// ValidateBasic returns an error if the parameters cannot drive the workflow
func (p Params) ValidateBasic() error {
	if err := p.Network.Validate(); err != nil {
		return err
	}

	if p.Round.VotingPeriod <= 0 {
		return fmt.Errorf("round voting period must be positive")
	}

	if _, ok := maci.ParseCircuitType(p.Round.CircuitType); !ok {
		return fmt.Errorf("unknown circuit type %q", p.Round.CircuitType)
	}

	if len(p.Round.VoteOptions) == 0 {
		return fmt.Errorf("round needs at least one vote option")
	}

	for _, option := range p.Ballot.Options {
		if int(option.Idx) >= len(p.Round.VoteOptions) {
			return fmt.Errorf("ballot option %d exceeds the %d round options", option.Idx, len(p.Round.VoteOptions))
		}
	}

	if err := p.FeegrantPoll.ValidateBasic(); err != nil {
		return fmt.Errorf("invalid fee grant poll config: %w", err)
	}

	return nil
}

// OperatorPubKey returns the configured operator key, falling back to the oracle key of the network
func (p Params) OperatorPubKey() string {
	if p.Round.OperatorPubKey != "" {
		return p.Round.OperatorPubKey
	}

	return config.OraclePubKey(p.Network)
}

func (p Params) roundParams(now time.Time) maci.RoundParams {
	circuitType, _ := maci.ParseCircuitType(p.Round.CircuitType)

	return maci.RoundParams{
		OperatorPubKey:           p.OperatorPubKey(),
		Title:                    p.Round.Title,
		Description:              p.Round.Description,
		Link:                     p.Round.Link,
		StartVoting:              now,
		EndVoting:                now.Add(p.Round.VotingPeriod),
		VoteOptionMap:            append([]string(nil), p.Round.VoteOptions...),
		CircuitType:              circuitType,
		WhitelistEcosystem:       p.Round.Ecosystem,
		WhitelistSnapshotHeight:  p.Round.SnapshotHeight,
		WhitelistVotingPowerArgs: p.Round.VotingPowerArgs,
	}
}
