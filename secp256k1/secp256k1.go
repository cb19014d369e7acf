// Package secp256k1 instantiates the curve.Curve/signer.Signer pair for
// the standard secp256k1 domain parameters, sourced from
// github.com/btcsuite/btcd/btcec/v2 rather than hand-transcribed hex
// constants, per SPEC_FULL.md's domain-stack section.
package secp256k1

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"weierstrass/bignat"
	"weierstrass/curve"
	"weierstrass/signer"
)

// Params holds the secp256k1 domain parameters: y² = x³ + B (mod P), a
// generator G of prime order N. secp256k1's curve equation has a = 0, so
// A is always the zero Nat; it is kept as a field for symmetry with
// curve.New's (a, b, p) signature.
type Params struct {
	A, B *bignat.Nat
	P    *bignat.Nat
	Gx, Gy *bignat.Nat
	N    *bignat.Nat
}

// Standard returns the secp256k1 domain parameters as read from btcec's
// own S256().Params(), rather than a transcribed hex literal, so this
// package can never drift from the library's constants.
func Standard() Params {
	cp := btcec.S256().Params()
	return Params{
		A:  bignat.FromInt64(0),
		B:  bignat.FromBytes(cp.B.Bytes()),
		P:  bignat.FromBytes(cp.P.Bytes()),
		Gx: bignat.FromBytes(cp.Gx.Bytes()),
		Gy: bignat.FromBytes(cp.Gy.Bytes()),
		N:  bignat.FromBytes(cp.N.Bytes()),
	}
}

// Curve builds the curve.Curve for the standard secp256k1 parameters.
func Curve() *curve.Curve {
	p := Standard()
	return curve.New(p.A, p.B, p.P)
}

// Generator returns the standard base point G.
func Generator() curve.Point {
	p := Standard()
	return curve.Affine(p.Gx, p.Gy)
}

// Signer builds a signer.Signer wired to the standard secp256k1 curve,
// generator and group order.
func Signer() *signer.Signer {
	p := Standard()
	return signer.New(curve.New(p.A, p.B, p.P), curve.Affine(p.Gx, p.Gy), p.N)
}
