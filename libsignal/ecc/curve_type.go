// Package ecc implements typed encoding and decoding of elliptic-curve key
// material and Diffie-Hellman agreement over it.
package ecc

// CurveType is the single-byte identifier prefixed to a public key on the
// wire, selecting the curve family the key belongs to.
type CurveType uint8

const (
	// DjbType identifies Curve25519 keys. It is the only supported type.
	DjbType CurveType = 0x05
)
