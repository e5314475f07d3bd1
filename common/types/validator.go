package types

import (
	"crypto/rand"

	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-slashindicator/common/util"
)

// ValidatorIDSize in bytes.
const ValidatorIDSize = 20

// ValidatorID is the consensus address of a validator.
type ValidatorID [ValidatorIDSize]byte

// EmptyValidatorID is a canonical empty ValidatorID.
var EmptyValidatorID ValidatorID

// BytesToValidatorID is a helper to copy buffer into ValidatorID.
func BytesToValidatorID(buf []byte) (id ValidatorID) {
	copy(id[:], buf)
	return id
}

// RandomValidatorID returns a random ValidatorID.
func RandomValidatorID() ValidatorID {
	var id ValidatorID
	_, _ = rand.Read(id[:])
	return id
}

// String returns a 0x prefixed hex representation of the ValidatorID.
func (id ValidatorID) String() string {
	return util.Encode(id[:])
}

// Bytes returns the byte representation of the ValidatorID.
func (id ValidatorID) Bytes() []byte {
	return id[:]
}

// ShortString returns the first 5 hex characters of the ID, for logging purposes.
func (id ValidatorID) ShortString() string {
	return Shorten(id.String()[2:], 5)
}

// MarshalText returns the hex representation of the ID.
func (id ValidatorID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses a ValidatorID in 0x prefixed hex syntax.
func (id *ValidatorID) UnmarshalText(buf []byte) error {
	return util.UnmarshalFixedText("ValidatorID", buf, id[:])
}

// EncodeScale implements scale codec interface.
func (id *ValidatorID) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, id[:])
}

// DecodeScale implements scale codec interface.
func (id *ValidatorID) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, id[:])
}

// VoteKeySize in bytes.
const VoteKeySize = 32

// VoteKey is the ed25519 public key a validator signs finality votes with.
type VoteKey [VoteKeySize]byte

// BytesToVoteKey copies buf into a VoteKey.
func BytesToVoteKey(buf []byte) (key VoteKey) {
	copy(key[:], buf)
	return key
}

// String returns a 0x prefixed hex representation of the key.
func (k VoteKey) String() string {
	return util.Encode(k[:])
}

// Bytes returns the key bytes.
func (k VoteKey) Bytes() []byte {
	return k[:]
}

// ShortString returns the first 5 hex characters of the key.
func (k VoteKey) ShortString() string {
	return Shorten(k.String()[2:], 5)
}

// MarshalText returns the hex representation of the key.
func (k VoteKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a VoteKey in 0x prefixed hex syntax.
func (k *VoteKey) UnmarshalText(buf []byte) error {
	return util.UnmarshalFixedText("VoteKey", buf, k[:])
}

// EdSignatureSize in bytes.
const EdSignatureSize = 64

// EdSignature is an ed25519 signature over a finality vote.
type EdSignature [EdSignatureSize]byte

// EmptyEdSignature is a canonical empty EdSignature.
var EmptyEdSignature EdSignature

// RandomEdSignature returns a random signature, only useful for tests.
func RandomEdSignature() EdSignature {
	var sig EdSignature
	_, _ = rand.Read(sig[:])
	return sig
}

// String returns a 0x prefixed hex representation of the signature.
func (s EdSignature) String() string {
	return util.Encode(s[:])
}

// MarshalText returns the hex representation of the signature.
func (s EdSignature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a signature in 0x prefixed hex syntax.
func (s *EdSignature) UnmarshalText(buf []byte) error {
	return util.UnmarshalFixedText("EdSignature", buf, s[:])
}

// EncodeScale implements scale codec interface.
func (s *EdSignature) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, s[:])
}

// DecodeScale implements scale codec interface.
func (s *EdSignature) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, s[:])
}

// Validator is a member of the validator set together with its vote key.
type Validator struct {
	ID      ValidatorID `mapstructure:"id"`
	VoteKey VoteKey     `mapstructure:"vote-key"`
}
