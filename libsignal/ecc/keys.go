package ecc

// KeySize is the size in bytes of serialized public keys, private keys and
// shared secrets.
const KeySize = 32

// ECPublicKey is the read side of a validated public key: a curve-type tag
// and exactly KeySize bytes of key material.
type ECPublicKey interface {
	GetType() CurveType
	GetPublicKey() [KeySize]byte

	// Serialize returns the raw key bytes without a type tag. Callers that
	// need the tagged wire format must prepend the tag byte themselves.
	Serialize() []byte
}

// ECPrivateKey is the private-key counterpart of ECPublicKey. The accessor
// is named distinctly so public and private material cannot be conflated at
// a call site.
type ECPrivateKey interface {
	GetType() CurveType
	GetPrivateKey() [KeySize]byte
	Serialize() []byte
}

// DjbECPublicKey is a Curve25519 public key. It can only be obtained from
// DecodePoint or GenerateKeyPair, so holding one implies the bytes passed
// validation.
type DjbECPublicKey struct {
	publicKey [KeySize]byte
}

func (k DjbECPublicKey) GetType() CurveType {
	return DjbType
}

func (k DjbECPublicKey) GetPublicKey() [KeySize]byte {
	return k.publicKey
}

func (k DjbECPublicKey) Serialize() []byte {
	out := make([]byte, KeySize)
	copy(out, k.publicKey[:])
	return out
}

// Equals reports whether both keys hold the same bytes. The comparison is
// not constant-time; do not use it to compare secrets.
func (k DjbECPublicKey) Equals(other DjbECPublicKey) bool {
	return k.publicKey == other.publicKey
}

// DjbECPrivateKey is a Curve25519 private key. The scalar must never pass
// through a logging or debug-printing path.
type DjbECPrivateKey struct {
	privateKey [KeySize]byte
}

func (k DjbECPrivateKey) GetType() CurveType {
	return DjbType
}

func (k DjbECPrivateKey) GetPrivateKey() [KeySize]byte {
	return k.privateKey
}

func (k DjbECPrivateKey) Serialize() []byte {
	out := make([]byte, KeySize)
	copy(out, k.privateKey[:])
	return out
}

// Equals reports whether both keys hold the same bytes. The comparison is
// not constant-time; do not use it to compare secrets.
func (k DjbECPrivateKey) Equals(other DjbECPrivateKey) bool {
	return k.privateKey == other.privateKey
}

// ECKeyPair holds a public key and the private key it was generated with.
type ECKeyPair struct {
	PublicKey  DjbECPublicKey
	PrivateKey DjbECPrivateKey
}

// NewECKeyPair pairs an already-validated public and private key.
func NewECKeyPair(publicKey DjbECPublicKey, privateKey DjbECPrivateKey) *ECKeyPair {
	return &ECKeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	}
}
