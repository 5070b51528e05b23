// Package curve25519 wraps the X25519 primitive behind the fixed-size key
// shapes used by the ecc package.
package curve25519

import (
	"crypto/subtle"
	"io"

	x25519lib "github.com/cloudflare/circl/dh/x25519"

	"github.com/driftspin/libsignal-protocol-go/libsignal/errors"
)

// KeySize is the size in bytes of public keys, private keys and shared
// secrets.
const KeySize = x25519lib.Size

// GenerateKeyPair generates a private-public key pair using rand as the
// source of entropy.
// The private key is a little-endian scalar belonging to the set
// 2^{254} + 8 * [0, 2^{251}), in order to avoid the small subgroup of the
// curve. The public key is simply priv * G where G is the base point.
// See https://cr.yp.to/ecdh.html and RFC 7748, sec 5.
func GenerateKeyPair(rand io.Reader) (priv, pub [KeySize]byte, err error) {
	maxRounds := 10
	isZero := true
	for round := 0; isZero; round++ {
		if round == maxRounds {
			err = errors.InvalidArgumentError("curve25519: zero keys only, randomness source might be corrupt")
			return
		}
		if _, err = io.ReadFull(rand, priv[:]); err != nil {
			return
		}
		isZero = constantTimeIsZero(priv[:])
	}

	// The masking is done internally to KeyGen and so is unnecessary for
	// security, but the serialized private key must be pre-masked.
	priv[0] &= 248
	priv[31] &= 127
	priv[31] |= 64

	privKey := x25519lib.Key(priv)
	var pubKey x25519lib.Key
	x25519lib.KeyGen(&pubKey, &privKey)
	pub = pubKey
	return
}

// CalculateAgreement computes the shared secret between a public key and a
// private key. It is deterministic and always succeeds for 32-byte inputs.
func CalculateAgreement(pub, priv [KeySize]byte) [KeySize]byte {
	pubKey := x25519lib.Key(pub)
	privKey := x25519lib.Key(priv)
	var shared x25519lib.Key
	x25519lib.Shared(&shared, &privKey, &pubKey)
	return shared
}

// ValidateKeyPair checks that pub is the public key belonging to priv.
func ValidateKeyPair(pub, priv [KeySize]byte) error {
	privKey := x25519lib.Key(priv)
	var expected x25519lib.Key
	x25519lib.KeyGen(&expected, &privKey)
	if subtle.ConstantTimeCompare(expected[:], pub[:]) == 0 {
		return errors.InvalidKeyError("curve25519: public key does not match private key")
	}
	return nil
}

func constantTimeIsZero(bytes []byte) bool {
	isZero := byte(0)
	for _, b := range bytes {
		isZero |= b
	}
	return isZero == 0
}
