// Package field implements Field{p}, prime-field arithmetic over a fixed
// modulus, per spec §4.1. It is the direct port of the Rust source's
// FiniteField (original_source/src/elliptic_curve/finite_field.rs): add,
// sub, mul, div, neg and inv_mul have the same names, the same contracts,
// and sub/div are defined the same way (in terms of neg/inv_mul) rather
// than as independent operations.
package field

import (
	"weierstrass/bignat"
	"weierstrass/fault"
)

// Field performs arithmetic modulo a fixed prime P. It holds no state
// beyond the modulus and does not intern or cache values: every operation
// returns a freshly reduced *bignat.Nat.
type Field struct {
	P *bignat.Nat
}

// New builds a Field over modulus p. The caller is responsible for p being
// prime and > 2 (§3); New performs no primality test, matching the spec's
// "no parameter validation beyond what individual operations enforce."
func New(p *bignat.Nat) *Field {
	return &Field{P: p}
}

func (f *Field) checkRange(n *bignat.Nat, name string) {
	if n.Cmp(f.P) >= 0 {
		fault.Panic(fault.RangeViolation, "%s = %s is >= modulus %s", name, n, f.P)
	}
}

// Add returns (a + b) mod p. Requires 0 <= a, b < p.
func (f *Field) Add(a, b *bignat.Nat) *bignat.Nat {
	f.checkRange(a, "a")
	f.checkRange(b, "b")
	return a.Add(b).Mod(f.P)
}

// Neg returns (p - n) mod p, which is 0 iff n is 0. Requires 0 <= n < p;
// violating this is a RangeViolation fault per §7, the one operation the
// spec singles out for that fault (a naive p - n would otherwise silently
// produce a value >= p for n >= p).
func (f *Field) Neg(n *bignat.Nat) *bignat.Nat {
	f.checkRange(n, "n")
	if n.IsZero() {
		return bignat.FromInt64(0)
	}
	return f.P.Sub(n)
}

// Sub returns (a - b) mod p, defined as Add(a, Neg(b)) exactly as the
// source does.
func (f *Field) Sub(a, b *bignat.Nat) *bignat.Nat {
	return f.Add(a, f.Neg(b))
}

// Mul returns (a * b) mod p. Requires 0 <= a, b < p.
func (f *Field) Mul(a, b *bignat.Nat) *bignat.Nat {
	f.checkRange(a, "a")
	f.checkRange(b, "b")
	return a.Mul(b).Mod(f.P)
}

// InvMul returns the multiplicative inverse of n modulo p, via Fermat's
// little theorem (n^(p-2) mod p), the same formula the source uses. The
// source's Rust version silently returns a garbage value for n == 0
// (modpow(p-2) of 0 is 0, which is not an inverse of anything); this port
// adds the explicit NonInvertible guard §4.1 requires of any Fermat-based
// implementation. Requires 0 < n < p.
func (f *Field) InvMul(n *bignat.Nat) *bignat.Nat {
	if n.IsZero() {
		fault.Panic(fault.NonInvertible, "0 has no multiplicative inverse mod %s", f.P)
	}
	f.checkRange(n, "n")
	two := bignat.FromInt64(2)
	exp := f.P.Sub(two)
	return n.ModPow(exp, f.P)
}

// Div returns a * InvMul(b) mod p. Requires 0 <= a < p, 0 < b < p.
func (f *Field) Div(a, b *bignat.Nat) *bignat.Nat {
	f.checkRange(a, "a")
	return f.Mul(a, f.InvMul(b))
}
