package maci_test

import (
	"math/big"
	"testing"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axelarnetwork/utils/test/rand"
	"github.com/dorafactory/maci-demo/maci"
)

func randomElements(count int) []*big.Int {
	elements := make([]*big.Int, count)
	for i := range elements {
		elements[i] = new(big.Int).SetBytes(rand.Bytes(31))
	}

	return elements
}

func TestEncrypt(t *testing.T) {
	alice := maci.GenKeypair(randomSeed())
	bob := maci.GenKeypair(randomSeed())
	key := maci.SharedKey(alice.PrivKey, bob.PubKey)

	for _, length := range []int{1, 3, 5, 6, 7} {
		msg := randomElements(length)

		ciphertext, err := maci.Encrypt(msg, key, big.NewInt(0))
		require.NoError(t, err)
		assert.Len(t, ciphertext, ((length+2)/3)*3+1)

		decrypted, err := maci.Decrypt(ciphertext, maci.SharedKey(bob.PrivKey, alice.PubKey), big.NewInt(0), length)
		require.NoError(t, err)
		for i := range msg {
			assert.Zero(t, msg[i].Cmp(decrypted[i]))
		}

		_, err = maci.Decrypt(ciphertext, maci.GenKeypair(randomSeed()).PubKey, big.NewInt(0), length)
		assert.ErrorIs(t, err, maci.ErrCipher)
	}
}

func TestEncrypt_RejectsLargeNonce(t *testing.T) {
	_, err := maci.Encrypt(randomElements(3), maci.GenKeypair(randomSeed()).PubKey, new(big.Int).Lsh(big.NewInt(1), 128))
	assert.ErrorIs(t, err, maci.ErrCipher)
}

func TestNormalizeVoteOptions(t *testing.T) {
	options, err := maci.NormalizeVoteOptions([]maci.VoteOption{{Idx: 2, Vc: 3}, {Idx: 0, Vc: 1}, {Idx: 1, Vc: 0}})
	assert.NoError(t, err)
	assert.Equal(t, []maci.VoteOption{{Idx: 0, Vc: 1}, {Idx: 2, Vc: 3}}, options)

	_, err = maci.NormalizeVoteOptions([]maci.VoteOption{{Idx: 1, Vc: 1}, {Idx: 1, Vc: 2}})
	assert.ErrorIs(t, err, maci.ErrInvalidVote)
}

func TestCommand_Pack(t *testing.T) {
	cmd := maci.Command{Nonce: 1, StateIdx: 2, VoIdx: 3, NewVotes: 4, Salt: big.NewInt(5)}

	packed := cmd.Pack()
	mask := new(big.Int).SetUint64(0xFFFFFFFF)

	assert.EqualValues(t, 1, new(big.Int).And(packed, mask).Uint64())
	assert.EqualValues(t, 2, new(big.Int).And(new(big.Int).Rsh(packed, 32), mask).Uint64())
	assert.EqualValues(t, 3, new(big.Int).And(new(big.Int).Rsh(packed, 64), mask).Uint64())
	assert.EqualValues(t, 4, new(big.Int).And(new(big.Int).Rsh(packed, 96), mask).Uint64())
	assert.EqualValues(t, 5, new(big.Int).Rsh(packed, 192).Uint64())
}

func TestBatchGenMessage(t *testing.T) {
	voter := maci.GenKeypair(randomSeed())
	coordinator := maci.GenKeypair(randomSeed())
	plan := []maci.VoteOption{{Idx: 0, Vc: 1}, {Idx: 1, Vc: 1}}
	stateIdx := uint32(rand.I64Between(0, 1000))

	payloads, err := maci.BatchGenMessage(stateIdx, voter, coordinator.PubKey, plan)
	require.NoError(t, err)
	require.Len(t, payloads, len(plan))

	for i, payload := range payloads {
		option := plan[len(plan)-1-i]
		assert.Len(t, payload.Message, 7)

		command, err := maci.Decrypt(payload.Message, maci.SharedKey(coordinator.PrivKey, payload.EncPubKey), big.NewInt(0), 6)
		require.NoError(t, err)

		mask := new(big.Int).SetUint64(0xFFFFFFFF)
		packed := command[0]
		assert.EqualValues(t, len(plan)-i, new(big.Int).And(packed, mask).Uint64())
		assert.EqualValues(t, stateIdx, new(big.Int).And(new(big.Int).Rsh(packed, 32), mask).Uint64())
		assert.EqualValues(t, option.Idx, new(big.Int).And(new(big.Int).Rsh(packed, 64), mask).Uint64())
		assert.EqualValues(t, option.Vc, new(big.Int).And(new(big.Int).Rsh(packed, 96), mask).Uint64())

		newPubKey := maci.PubKey{command[1], command[2]}
		if i == 0 {
			assert.True(t, newPubKey.Equal(maci.PubKey{big.NewInt(0), big.NewInt(0)}))
		} else {
			assert.True(t, newPubKey.Equal(voter.PubKey))
		}

		hash, err := poseidon.Hash([]*big.Int{packed, command[1], command[2]})
		require.NoError(t, err)
		sig := &babyjub.Signature{R8: &babyjub.Point{X: command[3], Y: command[4]}, S: command[5]}
		assert.True(t, maci.VerifyPoseidon(voter.PubKey, hash, sig))
	}
}

func TestBatchGenMessage_EmptyPlan(t *testing.T) {
	_, err := maci.BatchGenMessage(0, maci.GenKeypair(randomSeed()), maci.GenKeypair(randomSeed()).PubKey, nil)
	assert.ErrorIs(t, err, maci.ErrInvalidVote)
}
