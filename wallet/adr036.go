package wallet

import (
	"encoding/base64"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	msgSignDataType = "sign/MsgSignData"
	secp256k1Type   = "tendermint/PubKeySecp256k1"
)

// PubKey is the amino JSON encoding of a public key
type PubKey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StdSignature is a signature over an off-chain message together with the signer's public key
type StdSignature struct {
	PubKey    PubKey `json:"pub_key"`
	Signature string `json:"signature"`
}

// NewStdSignature encodes the given signature and public key
func NewStdSignature(pubKey cryptotypes.PubKey, sig []byte) (StdSignature, error) {
	if _, ok := pubKey.(*secp256k1.PubKey); !ok {
		return StdSignature{}, errorsmod.Wrapf(ErrInvalidSignature, "unsupported key type %s", pubKey.Type())
	}

	return StdSignature{
		PubKey: PubKey{
			Type:  secp256k1Type,
			Value: base64.StdEncoding.EncodeToString(pubKey.Bytes()),
		},
		Signature: base64.StdEncoding.EncodeToString(sig),
	}, nil
}

// Bytes returns the decoded signature
func (s StdSignature) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.Signature)
}

type signDataValue struct {
	Data   string `json:"data"`
	Signer string `json:"signer"`
}

type signDataMsg struct {
	Type  string        `json:"type"`
	Value signDataValue `json:"value"`
}

type signDocFee struct {
	Amount []sdk.Coin `json:"amount"`
	Gas    string     `json:"gas"`
}

type signDoc struct {
	AccountNumber string        `json:"account_number"`
	ChainID       string        `json:"chain_id"`
	Fee           signDocFee    `json:"fee"`
	Memo          string        `json:"memo"`
	Msgs          []signDataMsg `json:"msgs"`
	Sequence      string        `json:"sequence"`
}

// SignDocBytes returns the canonical ADR-036 sign bytes for data signed by signer
func SignDocBytes(signer string, data []byte) []byte {
	doc := signDoc{
		AccountNumber: "0",
		ChainID:       "",
		Fee:           signDocFee{Amount: []sdk.Coin{}, Gas: "0"},
		Memo:          "",
		Msgs: []signDataMsg{{
			Type: msgSignDataType,
			Value: signDataValue{
				Data:   base64.StdEncoding.EncodeToString(data),
				Signer: signer,
			},
		}},
		Sequence: "0",
	}

	bz, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}

	return sdk.MustSortJSON(bz)
}

// VerifyArbitrary checks that sig is a valid ADR-036 signature of data by the given address
func VerifyArbitrary(address string, data []byte, sig StdSignature) error {
	if sig.PubKey.Type != secp256k1Type {
		return errorsmod.Wrapf(ErrInvalidSignature, "unsupported key type %s", sig.PubKey.Type)
	}

	pkBytes, err := base64.StdEncoding.DecodeString(sig.PubKey.Value)
	if err != nil {
		return errorsmod.Wrap(ErrInvalidSignature, err.Error())
	}

	if len(pkBytes) != secp256k1.PubKeySize {
		return errorsmod.Wrapf(ErrInvalidSignature, "public key must be %d bytes", secp256k1.PubKeySize)
	}
	pubKey := &secp256k1.PubKey{Key: pkBytes}

	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return err
	}

	if !addr.Equals(sdk.AccAddress(pubKey.Address())) {
		return errorsmod.Wrapf(ErrInvalidSignature, "public key does not belong to %s", address)
	}

	sigBytes, err := sig.Bytes()
	if err != nil {
		return errorsmod.Wrap(ErrInvalidSignature, err.Error())
	}

	if !pubKey.VerifySignature(SignDocBytes(address, data), sigBytes) {
		return errorsmod.Wrap(ErrInvalidSignature, "signature verification failed")
	}

	return nil
}
