package ecc

import (
	"fmt"
	"io"

	"github.com/driftspin/libsignal-protocol-go/libsignal/errors"
	"github.com/driftspin/libsignal-protocol-go/libsignal/internal/byteutil"
	"github.com/driftspin/libsignal-protocol-go/libsignal/internal/curve25519"
)

// pointSize is the length of a public key on the wire: one type-tag byte
// followed by KeySize bytes of key material.
const pointSize = 1 + KeySize

// GenerateKeyPair generates a fresh Curve25519 key pair using rand as the
// source of entropy.
func GenerateKeyPair(rand io.Reader) (*ECKeyPair, error) {
	priv, pub, err := curve25519.GenerateKeyPair(rand)
	if err != nil {
		return nil, err
	}
	return NewECKeyPair(DjbECPublicKey{pub}, DjbECPrivateKey{priv}), nil
}

// DecodePoint parses a public key from the tagged wire format starting at
// offset. The buffer must hold the type-tag byte followed by KeySize bytes
// of key material; anything else is rejected.
func DecodePoint(bytes []byte, offset int) (ECPublicKey, error) {
	if len(bytes) == 0 || offset < 0 || len(bytes)-offset < 1 {
		return nil, errors.InvalidKeyError("No key type identifier")
	}

	keyType := bytes[offset] & 0xff
	if CurveType(keyType) != DjbType {
		return nil, errors.InvalidKeyError(fmt.Sprintf("Bad key type: %d", keyType))
	}
	if len(bytes)-offset < pointSize {
		return nil, errors.InvalidKeyError(fmt.Sprintf("Bad key length: %d", len(bytes)))
	}

	keyBytes := make([]byte, KeySize)
	if err := byteutil.Copy(keyBytes, 0, bytes, offset+1, KeySize); err != nil {
		return nil, errors.InvalidKeyError(fmt.Sprintf("Bad key type: %d", keyType))
	}
	key, err := byteutil.ToArray32(keyBytes)
	if err != nil {
		return nil, errors.InvalidKeyError(fmt.Sprintf("Bad key type: %d", keyType))
	}

	return DjbECPublicKey{key}, nil
}

// DecodePrivatePoint parses a private key from its raw untagged form. The
// buffer length must be exactly KeySize.
func DecodePrivatePoint(bytes []byte) (ECPrivateKey, error) {
	key, err := byteutil.ToArray32(bytes)
	if err != nil {
		return nil, errors.InvalidKeyError("Error decoding private point")
	}
	return DjbECPrivateKey{key}, nil
}

// Validate checks that the pair's public key belongs to its private key.
func (kp *ECKeyPair) Validate() error {
	return curve25519.ValidateKeyPair(kp.PublicKey.GetPublicKey(), kp.PrivateKey.GetPrivateKey())
}

// CalculateAgreement computes the shared secret between a public and a
// private key. Both keys must be of the supported curve type.
func CalculateAgreement(publicKey ECPublicKey, privateKey ECPrivateKey) ([]byte, error) {
	if publicKey.GetType() != privateKey.GetType() || publicKey.GetType() != DjbType {
		return nil, errors.InvalidKeyError("Public and private keys must be of the same type!")
	}

	shared := curve25519.CalculateAgreement(publicKey.GetPublicKey(), privateKey.GetPrivateKey())
	return shared[:], nil
}
