package maci

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/dchest/blake512"
	"github.com/iden3/go-iden3-crypto/babyjub"
)

// SnarkFieldSize is the order of the BN254 scalar field all circuit inputs live in
var SnarkFieldSize = fr.Modulus()

// PubKey is a point on the Baby Jubjub curve
type PubKey [2]*big.Int

// Point returns the curve point of the public key
func (pk PubKey) Point() *babyjub.Point {
	return &babyjub.Point{X: new(big.Int).Set(pk[0]), Y: new(big.Int).Set(pk[1])}
}

// Equal returns true if both keys are the same point
func (pk PubKey) Equal(other PubKey) bool {
	return pk[0].Cmp(other[0]) == 0 && pk[1].Cmp(other[1]) == 0
}

// String returns the decimal coordinates of the key
func (pk PubKey) String() string {
	return fmt.Sprintf("[%s, %s]", pk[0], pk[1])
}

// Keypair is a maci voting keypair
type Keypair struct {
	PrivKey          *big.Int
	PubKey           PubKey
	FormattedPrivKey *big.Int
}

// GenKeypair derives the keypair for the given seed. Seeds are reduced modulo the snark field.
func GenKeypair(seed *big.Int) Keypair {
	privKey := new(big.Int).Mod(seed, SnarkFieldSize)
	formatted := formatPrivKey(privKey)
	pub := babyjub.NewPoint().Mul(formatted, babyjub.B8)

	return Keypair{
		PrivKey:          privKey,
		PubKey:           PubKey{pub.X, pub.Y},
		FormattedPrivKey: formatted,
	}
}

// GenRandomKeypair returns a keypair for a uniformly random private key
func GenRandomKeypair() (Keypair, error) {
	seed, err := rand.Int(rand.Reader, SnarkFieldSize)
	if err != nil {
		return Keypair{}, err
	}

	return GenKeypair(seed), nil
}

// SeedFromSignature interprets signature bytes as a big-endian integer
func SeedFromSignature(sig []byte) *big.Int {
	return new(big.Int).SetBytes(sig)
}

// SharedKey derives the ECDH key shared between the owner of privKey and the owner of pubKey
func SharedKey(privKey *big.Int, pubKey PubKey) PubKey {
	shared := babyjub.NewPoint().Mul(formatPrivKey(privKey), pubKey.Point())
	return PubKey{shared.X, shared.Y}
}

// PackPubKey compresses a public key into a single integer
func PackPubKey(pubKey PubKey) *big.Int {
	compressed := pubKey.Point().Compress()
	return leToInt(compressed[:])
}

// UnpackPubKey restores a public key compressed by PackPubKey
func UnpackPubKey(packed *big.Int) (PubKey, error) {
	if packed.Sign() < 0 || packed.BitLen() > 256 {
		return PubKey{}, errorsmod.Wrapf(ErrInvalidPubKey, "packed key %s out of range", packed)
	}

	var buf [32]byte
	be := packed.FillBytes(make([]byte, 32))
	for i := range be {
		buf[i] = be[31-i]
	}

	point, err := babyjub.NewPoint().Decompress(buf)
	if err != nil {
		return PubKey{}, errorsmod.Wrap(ErrInvalidPubKey, err.Error())
	}

	return PubKey{point.X, point.Y}, nil
}

// ParsePackedPubKey parses a decimal packed public key
func ParsePackedPubKey(packed string) (PubKey, error) {
	n, ok := new(big.Int).SetString(packed, 10)
	if !ok {
		return PubKey{}, errorsmod.Wrapf(ErrInvalidPubKey, "%q is not a decimal integer", packed)
	}

	return UnpackPubKey(n)
}

// formatPrivKey turns a private key into the scalar its public key is derived with
func formatPrivKey(privKey *big.Int) *big.Int {
	h := blake512Sum(privKeyBytes(privKey))
	s := leToInt(pruneBuffer(h[:32]))
	return s.Rsh(s, 3)
}

// privKeyBytes is the byte encoding private keys are hashed in. Odd-length hex encodings lose their final nibble,
// which keeps derived keys identical to those of existing maci clients.
func privKeyBytes(privKey *big.Int) []byte {
	s := privKey.Text(16)
	if len(s)%2 == 1 {
		s = s[:len(s)-1]
	}

	bz, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return bz
}

func pruneBuffer(buf []byte) []byte {
	pruned := append([]byte(nil), buf...)
	pruned[0] &= 0xF8
	pruned[31] &= 0x7F
	pruned[31] |= 0x40

	return pruned
}

func blake512Sum(data ...[]byte) []byte {
	h := blake512.New()
	for _, d := range data {
		h.Write(d)
	}

	return h.Sum(nil)
}

func leToInt(le []byte) *big.Int {
	be := make([]byte, len(le))
	for i := range le {
		be[i] = le[len(le)-1-i]
	}

	return new(big.Int).SetBytes(be)
}

func intToLE(n *big.Int, size int) []byte {
	be := n.FillBytes(make([]byte, size))
	le := make([]byte, size)
	for i := range be {
		le[i] = be[size-1-i]
	}

	return le
}
