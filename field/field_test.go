package field_test

import (
	"testing"

	"weierstrass/bignat"
	"weierstrass/fault"
	"weierstrass/field"
	"weierstrass/internal/assertx"
)

func nat(n int64) *bignat.Nat { return bignat.FromInt64(n) }

func TestAdd(t *testing.T) {
	f := field.New(nat(11))
	assertx.NatsEqual(t, "4 + 10 mod 11", nat(3), f.Add(nat(4), nat(10)))
}

func TestAddBelowModulus(t *testing.T) {
	f := field.New(nat(32))
	assertx.NatsEqual(t, "4 + 10 mod 32", nat(14), f.Add(nat(4), nat(10)))
}

func TestMul(t *testing.T) {
	f := field.New(nat(11))
	assertx.NatsEqual(t, "4 * 10 mod 11", nat(7), f.Mul(nat(4), nat(10)))
}

func TestInvAdd(t *testing.T) {
	f := field.New(nat(51))
	assertx.NatsEqual(t, "neg(4) mod 51", nat(47), f.Neg(nat(4)))
}

func TestInvAddOfZero(t *testing.T) {
	f := field.New(nat(51))
	assertx.NatsEqual(t, "neg(0) mod 51", nat(0), f.Neg(nat(0)))
}

func TestInvAddRangeViolationPanics(t *testing.T) {
	f := field.New(nat(51))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Neg(52) with modulus 51 to panic")
		}
		if !fault.Is(r.(error), fault.RangeViolation) {
			t.Fatalf("expected RangeViolation fault, got %v", r)
		}
	}()
	f.Neg(nat(52))
}

func TestInvMul(t *testing.T) {
	f := field.New(nat(11))
	assertx.NatsEqual(t, "inv_mul(4) mod 11", nat(3), f.InvMul(nat(4)))
}

func TestInvMulOfZeroPanics(t *testing.T) {
	f := field.New(nat(11))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected InvMul(0) to panic")
		}
		if !fault.Is(r.(error), fault.NonInvertible) {
			t.Fatalf("expected NonInvertible fault, got %v", r)
		}
	}()
	f.InvMul(nat(0))
}

func TestSub(t *testing.T) {
	f := field.New(nat(11))
	assertx.NatsEqual(t, "10 - 4 mod 11", nat(6), f.Sub(nat(10), nat(4)))
	assertx.NatsEqual(t, "4 - 10 mod 11", nat(5), f.Sub(nat(4), nat(10)))
}

func TestDiv(t *testing.T) {
	f := field.New(nat(11))
	assertx.NatsEqual(t, "4 / 10 mod 11", nat(7), f.Div(nat(4), nat(10)))
}

// Property: add(a, neg(b)) == sub(a, b); add commutes; mul commutes;
// 0 <= result < p. (§8 property 1)
func TestFieldProperties(t *testing.T) {
	p := nat(104729) // a prime comfortably larger than the sample values
	f := field.New(p)

	for a := int64(0); a < 50; a++ {
		for b := int64(1); b < 50; b++ {
			A, B := nat(a), nat(b)
			assertx.NatsEqual(t, "add(a,neg(b)) == sub(a,b)", f.Sub(A, B), f.Add(A, f.Neg(B)))
			assertx.NatsEqual(t, "add commutes", f.Add(A, B), f.Add(B, A))
			assertx.NatsEqual(t, "mul commutes", f.Mul(A, B), f.Mul(B, A))
			sum := f.Add(A, B)
			assertx.True(t, "0 <= sum < p", sum.Cmp(p) < 0)
		}
	}
}

// Property: for a != 0, mul(a, inv_mul(a)) == 1. (§8 property 2)
func TestMultiplicativeInverseProperty(t *testing.T) {
	p := nat(104729)
	f := field.New(p)
	for a := int64(1); a < 200; a++ {
		A := nat(a)
		assertx.NatsEqual(t, "a * inv_mul(a) == 1", nat(1), f.Mul(A, f.InvMul(A)))
	}
}
