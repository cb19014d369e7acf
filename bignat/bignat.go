// Package bignat implements BigNat, the nonnegative arbitrary-precision
// integer that field.Field and curve.Curve are built on.
//
// BigNat wraps math/big.Int the same way the teacher's E222/ECDSA code and
// the original Rust source's num_bigint::BigUint do: every operation
// allocates and returns a fresh, reduced value, and negative inputs are a
// caller bug rather than a representable state.
package bignat

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// Nat is a nonnegative arbitrary-precision integer. The zero value is 0.
type Nat struct {
	v big.Int
}

// FromInt64 builds a Nat from a nonnegative int64.
func FromInt64(n int64) *Nat {
	if n < 0 {
		panic(fmt.Sprintf("bignat: FromInt64 given negative value %d", n))
	}
	nat := &Nat{}
	nat.v.SetInt64(n)
	return nat
}

// FromBytes constructs a Nat from a big-endian byte sequence.
func FromBytes(b []byte) *Nat {
	nat := &Nat{}
	nat.v.SetBytes(b)
	return nat
}

// FromHex parses an upper- or lower-case hexadecimal string into a Nat. An
// optional "0x"/"0X" prefix is accepted. This is the Hex collaborator of
// the external interface: a parsing boundary, not a domain algorithm, so it
// is built directly on encoding/hex rather than a third-party decoder.
func FromHex(s string) (*Nat, error) {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bignat: invalid hex string: %w", err)
	}
	return FromBytes(b), nil
}

// Bytes returns the big-endian byte representation, with no leading zero
// byte beyond what is needed to represent the value (0 encodes as a single
// 0x00 byte).
func (n *Nat) Bytes() []byte {
	b := n.v.Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// String renders the decimal representation.
func (n *Nat) String() string { return n.v.String() }

// IsZero reports whether n == 0.
func (n *Nat) IsZero() bool { return n.v.Sign() == 0 }

// Cmp returns -1, 0 or +1 as n is less than, equal to, or greater than m.
func (n *Nat) Cmp(m *Nat) int { return n.v.Cmp(&m.v) }

// Equal reports numeric equality.
func (n *Nat) Equal(m *Nat) bool { return n.Cmp(m) == 0 }

// BitLen returns the number of bits required to represent n, with
// BitLen(0) == 0 exactly like math/big.Int.BitLen and num_bigint's
// BigUint::bits.
func (n *Nat) BitLen() int { return n.v.BitLen() }

// Bit returns the value of the i'th bit of n (0 for i >= BitLen()).
func (n *Nat) Bit(i int) uint { return n.v.Bit(i) }

// Add returns n + m.
func (n *Nat) Add(m *Nat) *Nat {
	r := &Nat{}
	r.v.Add(&n.v, &m.v)
	return r
}

// Sub returns n - m. Panics if m > n, matching math/big.Int's convention
// that BigNat has no negative representation.
func (n *Nat) Sub(m *Nat) *Nat {
	if n.Cmp(m) < 0 {
		panic("bignat: Sub would underflow a nonnegative integer")
	}
	r := &Nat{}
	r.v.Sub(&n.v, &m.v)
	return r
}

// Mul returns n * m.
func (n *Nat) Mul(m *Nat) *Nat {
	r := &Nat{}
	r.v.Mul(&n.v, &m.v)
	return r
}

// DivMod returns the quotient and remainder of n / m (Euclidean division;
// m must be nonzero).
func (n *Nat) DivMod(m *Nat) (q, rem *Nat) {
	if m.IsZero() {
		panic("bignat: division by zero")
	}
	q, rem = &Nat{}, &Nat{}
	q.v.DivMod(&n.v, &m.v, &rem.v)
	return q, rem
}

// Mod returns n mod m.
func (n *Nat) Mod(m *Nat) *Nat {
	_, rem := n.DivMod(m)
	return rem
}

// ModPow returns base^exp mod m, via math/big's ModPow (itself a
// square-and-multiply ladder) the same way FiniteField::inv_mul in the
// Rust source computes n^(p-2) mod p.
func (n *Nat) ModPow(exp, m *Nat) *Nat {
	r := &Nat{}
	r.v.Exp(&n.v, &exp.v, &m.v)
	return r
}
