package maci

import (
	"crypto/rand"
	"fmt"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"golang.org/x/exp/slices"
)

const saltBits = 56

// VoteOption assigns voice credits to a vote option
type VoteOption struct {
	Idx uint32 `json:"idx" mapstructure:"idx"`
	Vc  uint32 `json:"vc" mapstructure:"vc"`
}

// NormalizeVoteOptions drops options without voice credits and sorts the rest by index.
// Returns an error if an index is used more than once.
func NormalizeVoteOptions(options []VoteOption) ([]VoteOption, error) {
	normalized := make([]VoteOption, 0, len(options))
	for _, option := range options {
		if option.Vc > 0 {
			normalized = append(normalized, option)
		}
	}

	slices.SortStableFunc(normalized, func(a, b VoteOption) int { return int(a.Idx) - int(b.Idx) })

	for i := 1; i < len(normalized); i++ {
		if normalized[i].Idx == normalized[i-1].Idx {
			return nil, errorsmod.Wrapf(ErrInvalidVote, "duplicate vote option index %d", normalized[i].Idx)
		}
	}

	return normalized, nil
}

// Command is a signed vote command before encryption
type Command struct {
	Nonce     uint32
	StateIdx  uint32
	VoIdx     uint32
	NewVotes  uint32
	Salt      *big.Int
	NewPubKey PubKey
}

// Pack packs the numeric fields of the command into a single field element
func (c Command) Pack() *big.Int {
	packed := new(big.Int).SetUint64(uint64(c.Nonce))
	packed.Add(packed, new(big.Int).Lsh(new(big.Int).SetUint64(uint64(c.StateIdx)), 32))
	packed.Add(packed, new(big.Int).Lsh(new(big.Int).SetUint64(uint64(c.VoIdx)), 64))
	packed.Add(packed, new(big.Int).Lsh(new(big.Int).SetUint64(uint64(c.NewVotes)), 96))
	packed.Add(packed, new(big.Int).Lsh(c.Salt, 192))

	return packed
}

// Sign returns the plaintext command elements signed with privKey
func (c Command) Sign(privKey *big.Int) ([]*big.Int, error) {
	packed := c.Pack()

	hash, err := poseidon.Hash([]*big.Int{packed, c.NewPubKey[0], c.NewPubKey[1]})
	if err != nil {
		return nil, err
	}

	sig, err := SignPoseidon(privKey, hash)
	if err != nil {
		return nil, err
	}

	return []*big.Int{packed, c.NewPubKey[0], c.NewPubKey[1], sig.R8.X, sig.R8.Y, sig.S}, nil
}

// Payload is an encrypted command together with the ephemeral public key it was encrypted for
type Payload struct {
	Message   []*big.Int
	EncPubKey PubKey
}

// BatchGenMessage encrypts one command per vote option for the coordinator.
// Commands are generated from the last option to the first with nonces counting from one,
// and the command of the last option resets the voter's public key.
func BatchGenMessage(stateIdx uint32, keypair Keypair, coordPubKey PubKey, plan []VoteOption) ([]Payload, error) {
	if len(plan) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidVote, "vote requires at least one option")
	}

	payloads := make([]Payload, 0, len(plan))
	for i := len(plan) - 1; i >= 0; i-- {
		encKeypair, err := GenRandomKeypair()
		if err != nil {
			return nil, err
		}

		salt, err := randomSalt()
		if err != nil {
			return nil, err
		}

		cmd := Command{
			Nonce:     uint32(i + 1),
			StateIdx:  stateIdx,
			VoIdx:     plan[i].Idx,
			NewVotes:  plan[i].Vc,
			Salt:      salt,
			NewPubKey: keypair.PubKey,
		}
		if i == len(plan)-1 {
			cmd.NewPubKey = PubKey{big.NewInt(0), big.NewInt(0)}
		}

		msg, err := genMessage(cmd, keypair.PrivKey, encKeypair.PrivKey, coordPubKey)
		if err != nil {
			return nil, fmt.Errorf("failed to generate message for option %d: %w", plan[i].Idx, err)
		}

		payloads = append(payloads, Payload{Message: msg, EncPubKey: encKeypair.PubKey})
	}

	return payloads, nil
}

func genMessage(cmd Command, signPrivKey *big.Int, encPrivKey *big.Int, coordPubKey PubKey) ([]*big.Int, error) {
	plaintext, err := cmd.Sign(signPrivKey)
	if err != nil {
		return nil, err
	}

	return Encrypt(plaintext, SharedKey(encPrivKey, coordPubKey), big.NewInt(0))
}

func randomSalt() (*big.Int, error) {
	return rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), saltBits))
}
