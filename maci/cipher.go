package maci

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// Encrypt encrypts msg with the Poseidon sponge cipher keyed by an ECDH shared key.
// The ciphertext holds the message padded to a multiple of three elements plus one authentication element.
func Encrypt(msg []*big.Int, key PubKey, nonce *big.Int) ([]*big.Int, error) {
	if nonce.Cmp(two128) >= 0 {
		return nil, errorsmod.Wrap(ErrCipher, "nonce must be less than 2^128")
	}

	padded := make([]*big.Int, 0, len(msg)+2)
	for _, m := range msg {
		padded = append(padded, mod(m))
	}
	for len(padded)%3 != 0 {
		padded = append(padded, big.NewInt(0))
	}

	state := initialState(key, nonce, len(msg))

	ciphertext := make([]*big.Int, 0, len(padded)+1)
	for i := 0; i < len(padded); i += 3 {
		var err error
		if state, err = permute(state); err != nil {
			return nil, err
		}

		for j := 0; j < 3; j++ {
			state[j+1] = mod(new(big.Int).Add(state[j+1], padded[i+j]))
			ciphertext = append(ciphertext, new(big.Int).Set(state[j+1]))
		}
	}

	state, err := permute(state)
	if err != nil {
		return nil, err
	}

	return append(ciphertext, state[1]), nil
}

// Decrypt reverses Encrypt for a message of the given length
func Decrypt(ciphertext []*big.Int, key PubKey, nonce *big.Int, length int) ([]*big.Int, error) {
	if length <= 0 || len(ciphertext) != ((length+2)/3)*3+1 {
		return nil, errorsmod.Wrapf(ErrCipher, "ciphertext of %d elements cannot hold %d elements", len(ciphertext), length)
	}

	state := initialState(key, nonce, length)

	msg := make([]*big.Int, 0, len(ciphertext)-1)
	for i := 0; i < len(ciphertext)-1; i += 3 {
		var err error
		if state, err = permute(state); err != nil {
			return nil, err
		}

		for j := 0; j < 3; j++ {
			msg = append(msg, mod(new(big.Int).Sub(ciphertext[i+j], state[j+1])))
			state[j+1] = new(big.Int).Set(ciphertext[i+j])
		}
	}

	for _, m := range msg[length:] {
		if m.Sign() != 0 {
			return nil, errorsmod.Wrap(ErrCipher, "invalid padding")
		}
	}

	state, err := permute(state)
	if err != nil {
		return nil, err
	}

	if state[1].Cmp(ciphertext[len(ciphertext)-1]) != 0 {
		return nil, errorsmod.Wrap(ErrCipher, "authentication failed")
	}

	return msg[:length], nil
}

func initialState(key PubKey, nonce *big.Int, length int) []*big.Int {
	domain := new(big.Int).Mul(big.NewInt(int64(length)), two128)
	domain.Add(domain, nonce)

	return []*big.Int{big.NewInt(0), mod(key[0]), mod(key[1]), mod(domain)}
}

// permute applies the width four Poseidon permutation to state
func permute(state []*big.Int) ([]*big.Int, error) {
	return poseidon.HashWithStateEx(state[1:], state[0], len(state))
}

func mod(n *big.Int) *big.Int {
	return new(big.Int).Mod(n, SnarkFieldSize)
}
