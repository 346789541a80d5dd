package maci

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/babyjub"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// SignPoseidon signs msg with an EdDSA signature over Baby Jubjub using Poseidon as message hash.
// The signature verifies against the public key of GenKeypair(privKey) with babyjub.PublicKey.VerifyPoseidon.
func SignPoseidon(privKey *big.Int, msg *big.Int) (*babyjub.Signature, error) {
	h1 := blake512Sum(privKeyBytes(privKey))
	s := leToInt(pruneBuffer(h1[:32]))
	a := babyjub.NewPoint().Mul(new(big.Int).Rsh(s, 3), babyjub.B8)

	r := leToInt(blake512Sum(h1[32:64], intToLE(msg, 32)))
	r.Mod(r, babyjub.SubOrder)
	r8 := babyjub.NewPoint().Mul(r, babyjub.B8)

	hm, err := poseidon.Hash([]*big.Int{r8.X, r8.Y, a.X, a.Y, msg})
	if err != nil {
		return nil, err
	}

	sig := new(big.Int).Mul(hm, s)
	sig.Add(sig, r)
	sig.Mod(sig, babyjub.SubOrder)

	return &babyjub.Signature{R8: r8, S: sig}, nil
}

// VerifyPoseidon checks a signature created by SignPoseidon
func VerifyPoseidon(pubKey PubKey, msg *big.Int, sig *babyjub.Signature) bool {
	pk := babyjub.PublicKey(*pubKey.Point())
	return pk.VerifyPoseidon(msg, sig)
}
