// Package signer implements the ECDSA layer of spec §4.3: key-pair
// derivation, signature production and verification over a curve.Curve.
//
// The step sequence (hash, draw a nonce, r = x_R mod n,
// s = k^-1(h + r*d) mod n, verification via u1*G + u2*Q) is
// ported from the teacher's secp256r1_ecdsa.go, which follows NIST FIPS
// 186-4 §6 in the same order and with the same comment style; the two
// Field-shaped moduli (p inside Curve, n here) are kept strictly apart per
// §9's design note by never passing an n-reduced value into a p-reduced
// Field operation or vice versa.
package signer

import (
	"weierstrass/bignat"
	"weierstrass/curve"
	"weierstrass/digest"
	"weierstrass/fault"
	"weierstrass/field"
	"weierstrass/rng"
)

// Signature is an ECDSA signature (r, s) with 1 <= r, s < n.
type Signature struct {
	R, S *bignat.Nat
}

// Equal reports whether two signatures are numerically identical.
func (s Signature) Equal(o Signature) bool {
	return s.R.Equal(o.R) && s.S.Equal(o.S)
}

// Signer holds an immutable (curve, generator, order) triple, plus the RNG
// collaborator of §6 that KeyPair draws private keys from. It is safe to
// share across goroutines for read-only use: every operation allocates
// fresh results and mutates neither the Signer nor its inputs (§5).
type Signer struct {
	Curve *curve.Curve
	G     curve.Point
	N     *bignat.Nat
	RNG   rng.RNG
	fn    *field.Field // scalar-side Field, modulus n — distinct from the
	// Field{p} curve.Curve uses internally for coordinate arithmetic.
}

// New builds a Signer backed by rng.CryptoRNG. G is assumed to be an
// on-curve affine point of prime order n (§3); New performs no validation
// beyond that assumption.
func New(c *curve.Curve, g curve.Point, n *bignat.Nat) *Signer {
	return NewWithRNG(c, g, n, rng.CryptoRNG{})
}

// NewWithRNG builds a Signer with an explicit RNG collaborator (§6), for
// callers that need a non-default source — a deterministic RNG in tests,
// say, in place of the crypto/rand-backed default.
func NewWithRNG(c *curve.Curve, g curve.Point, n *bignat.Nat, r rng.RNG) *Signer {
	return &Signer{Curve: c, G: g, N: n, RNG: r, fn: field.New(n)}
}

// HashToScalar computes e <- Digest(msg), interprets e as a big-endian
// integer h, and returns ((h mod (n-1)) + 1), a value in [1, n-1], per
// §4.3. The digest is an external collaborator (§6); SHA-256 is the
// default.
func HashToScalar(msg []byte, d digest.Digest, n *bignat.Nat) *bignat.Nat {
	sum := d.Sum(msg)
	h := bignat.FromBytes(sum[:])
	nMinus1 := n.Sub(bignat.FromInt64(1))
	return h.Mod(nMinus1).Add(bignat.FromInt64(1))
}

// KeyPair derives a fresh private/public key pair via the Signer's RNG
// collaborator (§6): d is drawn uniformly from [1, n-1] directly (§9's note
// that a [0, n) draw alone isn't enough is satisfied by excluding 0 from
// the sampled range itself, rather than rejecting and re-drawing), and
// Q = d*G. Q is never Infinity for d in that range with G of order n, so
// KeyPair does not need to reject an infinite Q the way Sign rejects an
// infinite nonce point.
func (s *Signer) KeyPair() (d *bignat.Nat, Q curve.Point, err error) {
	d, err = s.RNG.UniformBigNat(bignat.FromInt64(1), s.N)
	if err != nil {
		return nil, curve.Point{}, err
	}
	Q = s.Curve.ScalarMul(s.G, d)
	return d, Q, nil
}

// DrawNonce draws a per-signature nonce k uniformly from [0, n), via the
// safenum-based rejection sampler of rng.RandomScalar (the same algorithm
// cronokirby-ctcrypto's elliptic.GenerateKey uses for private-key draws).
// This is independent of the Signer's injected RNG collaborator: a nonce
// draw is performance-sensitive in a way a one-off key draw is not, so it
// always uses the safenum-optimized path rather than whatever RNG the
// Signer was constructed with. Sign itself takes k as an explicit
// parameter rather than calling this internally, since §4.3 treats nonce
// generation as the caller's responsibility.
func (s *Signer) DrawNonce() (*bignat.Nat, error) {
	return rng.RandomScalar(s.N)
}

// Sign produces a signature over the scalar h (typically HashToScalar's
// output) under private key d, using nonce k. Preconditions: 0 <= h, d, k
// < n (§4.3). Sign does not check them: an out-of-range h, d or k makes the
// scalar-side Field panic with a RangeViolation fault (unless Sign has
// already returned BadNonce for that k). The errors Sign returns are all
// BadNonce faults, recoverable by retrying with a fresh k.
//
// r is reduced modulo n (r = x_R mod n) rather than left as the raw
// x-coordinate: spec §9 flags this as an open question the unreduced
// source leaves ambiguous, and this implementation follows FIPS 186-4 and
// the teacher's own secp256r1_ecdsa.go, both of which reduce.
//
// s = 0 is rejected (as a BadNonce fault — the nonce must be redrawn, the
// same remedy as an infinite nonce point) and s is canonicalized to
// min(s, n-s) before being returned, per the low-s policy decided in
// SPEC_FULL.md's "Supplemented feature" section. Verify accepts either s
// or n-s so callers comparing against signatures produced before this
// canonicalization was added still round-trip.
func (s *Signer) Sign(h, d, k *bignat.Nat) (Signature, error) {
	R := s.Curve.ScalarMul(s.G, k)
	if R.IsInfinity() {
		return Signature{}, fault.New(fault.BadNonce, "scalar_mul(G, k) is the point at infinity")
	}
	xR, _ := R.XY()
	r := xR.Mod(s.N)
	if r.IsZero() {
		return Signature{}, fault.New(fault.BadNonce, "r = 0; draw a fresh nonce")
	}

	kInv := s.fn.InvMul(k)
	sVal := s.fn.Mul(s.fn.Add(h, s.fn.Mul(r, d)), kInv)
	if sVal.IsZero() {
		return Signature{}, fault.New(fault.BadNonce, "s = 0; draw a fresh nonce")
	}
	sVal = canonicalLowS(s.fn, sVal)

	return Signature{R: r, S: sVal}, nil
}

// canonicalLowS returns min(s, n-s), the low-s form.
func canonicalLowS(fn *field.Field, s *bignat.Nat) *bignat.Nat {
	neg := fn.Neg(s)
	if neg.Cmp(s) < 0 {
		return neg
	}
	return s
}

// Verify reports whether (r, s) is a valid signature over h under public
// key Q. Per §7, Verify never raises: any internal rejection (out-of-range
// r/s, a point-at-infinity reconstruction) simply yields false. When u1*G
// and u2*Q are the same point, their sum is computed with Curve.Double,
// since Curve.Add rejects equal operands.
func (s *Signer) Verify(h *bignat.Nat, Q curve.Point, sig Signature) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	one := bignat.FromInt64(1)
	if sig.R.Cmp(one) < 0 || sig.R.Cmp(s.N) >= 0 {
		return false
	}
	if sig.S.Cmp(one) < 0 || sig.S.Cmp(s.N) >= 0 {
		return false
	}

	sCandidates := []*bignat.Nat{sig.S, canonicalLowS(s.fn, sig.S)}
	for _, sVal := range sCandidates {
		sInv := s.fn.InvMul(sVal)
		u1 := s.fn.Mul(sInv, h)
		u2 := s.fn.Mul(sInv, sig.R)

		p1 := s.Curve.ScalarMul(s.G, u1)
		p2 := s.Curve.ScalarMul(Q, u2)
		var rPrime curve.Point
		if p1.Equal(p2) {
			rPrime = s.Curve.Double(p1)
		} else {
			rPrime = s.Curve.Add(p1, p2)
		}
		if rPrime.IsInfinity() {
			continue
		}
		xPrime, _ := rPrime.XY()
		if xPrime.Mod(s.N).Equal(sig.R) {
			return true
		}
	}
	return false
}
