// Package rng provides the RNG external collaborator of spec §6
// (uniform_biguint(lo, hi) -> BigNat in [lo, hi)) and the random_scalar
// helper of §4.3.
package rng

import (
	"crypto/rand"
	"math/big"

	"github.com/cronokirby/safenum"

	"weierstrass/bignat"
	"weierstrass/fault"
)

// RNG samples a BigNat uniformly from [lo, hi). Implementations must be
// cryptographically strong for production use; CryptoRNG is.
type RNG interface {
	UniformBigNat(lo, hi *bignat.Nat) (*bignat.Nat, error)
}

// CryptoRNG is the default RNG, backed by crypto/rand.
type CryptoRNG struct{}

// UniformBigNat samples uniformly from [lo, hi) via crypto/rand.Int, which
// itself rejection-samples internally rather than reducing modulo the
// span (which would bias small values).
func (CryptoRNG) UniformBigNat(lo, hi *bignat.Nat) (*bignat.Nat, error) {
	if hi.Cmp(lo) <= 0 {
		return nil, fault.New(fault.RngExhausted, "empty range [%s, %s)", lo, hi)
	}
	span := new(big.Int).SetBytes(hi.Sub(lo).Bytes())
	v, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, fault.New(fault.RngExhausted, "crypto/rand failure: %v", err)
	}
	return lo.Add(bignat.FromBytes(v.Bytes())), nil
}

// RandomScalar samples uniformly from [0, n), per §4.3, where n is a group
// order (odd and prime for every curve this package deals with). The
// rejection-sampling loop is the one cronokirby-ctcrypto's
// elliptic.GenerateKey uses: draw BitLen(n)-sized random bytes and re-draw
// whenever the candidate is >= n, rather than reducing modulo n (which
// would bias small values). That package wraps the candidate and n in
// safenum.Nat/safenum.Modulus and compares them with CmpMod; this reuses
// exactly that pair of types for the compare step before handing the
// accepted value back as a bignat.Nat.
//
// A 0 is returned like any other draw, not re-sampled; signer.DrawNonce
// passes it on unchanged, and Sign rejects k = 0 with a BadNonce fault
// because scalar_mul(G, 0) is the point at infinity.
func RandomScalar(n *bignat.Nat) (*bignat.Nat, error) {
	modNat := new(safenum.Nat).SetBytes(n.Bytes())
	modulus := safenum.ModulusFromNat(*modNat)

	byteLen := (n.BitLen() + 7) / 8
	if byteLen == 0 {
		byteLen = 1
	}
	buf := make([]byte, byteLen)

	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, fault.New(fault.RngExhausted, "crypto/rand failure: %v", err)
		}
		candidate := new(safenum.Nat).SetBytes(buf)
		if candidate.CmpMod(modulus) >= 0 {
			continue
		}
		return bignat.FromBytes(candidate.Bytes()), nil
	}
}
