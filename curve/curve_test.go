package curve_test

import (
	"testing"

	"weierstrass/bignat"
	"weierstrass/curve"
	"weierstrass/fault"
	"weierstrass/internal/assertx"
)

func nat(n int64) *bignat.Nat { return bignat.FromInt64(n) }

// toy is the curve y² = x³ + 2x + 2 (mod 17) used throughout spec §8's
// concrete scenarios: a=2, b=2, p=17, G=(5,1), n=19.
func toy() *curve.Curve { return curve.New(nat(2), nat(2), nat(17)) }

func TestAddChord(t *testing.T) {
	c := toy()
	p := curve.Affine(nat(6), nat(3))
	q := curve.Affine(nat(5), nat(1))
	got := c.Add(p, q)
	assertx.PointsEqual(t, "(6,3) + (5,1)", curve.Affine(nat(10), nat(6)), got)
}

func TestAddIdentity(t *testing.T) {
	c := toy()
	p := curve.Affine(nat(6), nat(3))
	assertx.PointsEqual(t, "(6,3) + Infinity", p, c.Add(p, curve.Infinity))
	assertx.PointsEqual(t, "Infinity + (6,3)", p, c.Add(curve.Infinity, p))
}

func TestAddVerticalChord(t *testing.T) {
	c := toy()
	p := curve.Affine(nat(6), nat(3))
	q := curve.Affine(nat(6), nat(14)) // 17 - 3
	assertx.PointsEqual(t, "(6,3) + (6,14)", curve.Infinity, c.Add(p, q))
}

func TestAddSameOperandPanics(t *testing.T) {
	c := toy()
	p := curve.Affine(nat(6), nat(3))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Add(P, P) to panic")
		}
		if !fault.Is(r.(error), fault.SameOperand) {
			t.Fatalf("expected SameOperand fault, got %v", r)
		}
	}()
	c.Add(p, p)
}

func TestAddOffCurvePanics(t *testing.T) {
	c := toy()
	bad := curve.Affine(nat(63), nat(3))
	ok := curve.Affine(nat(6), nat(3))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Add with an off-curve point to panic")
		}
		if !fault.Is(r.(error), fault.OffCurve) {
			t.Fatalf("expected OffCurve fault, got %v", r)
		}
	}()
	c.Add(bad, ok)
}

func TestDouble(t *testing.T) {
	c := toy()
	g := curve.Affine(nat(5), nat(1))
	assertx.PointsEqual(t, "double(G)", curve.Affine(nat(6), nat(3)), c.Double(g))
	assertx.PointsEqual(t, "double(Infinity)", curve.Infinity, c.Double(curve.Infinity))
}

func TestDoubleTwoTorsion(t *testing.T) {
	c := toy()
	// y = 0 doubles to Infinity; (x, 0) is on the curve whenever
	// x^3 + 2x + 2 == 0 (mod 17). x = 0 gives 2, not 0; scan the small
	// field instead of hardcoding, to keep this grounded in the curve
	// equation rather than a magic constant.
	var zeroYPoint curve.Point
	found := false
	for x := int64(0); x < 17; x++ {
		p := curve.Affine(nat(x), nat(0))
		if c.IsOnCurve(p) {
			zeroYPoint = p
			found = true
			break
		}
	}
	if !found {
		t.Skip("toy curve has no 2-torsion point with these parameters")
	}
	assertx.PointsEqual(t, "double((x,0))", curve.Infinity, c.Double(zeroYPoint))
}

func TestScalarMul(t *testing.T) {
	c := toy()
	g := curve.Affine(nat(5), nat(1))
	assertx.PointsEqual(t, "2G", curve.Affine(nat(6), nat(3)), c.ScalarMul(g, nat(2)))
	assertx.PointsEqual(t, "10G", curve.Affine(nat(7), nat(11)), c.ScalarMul(g, nat(10)))
	assertx.PointsEqual(t, "19G", curve.Infinity, c.ScalarMul(g, nat(19)))
}

func TestScalarMulZero(t *testing.T) {
	c := toy()
	g := curve.Affine(nat(5), nat(1))
	assertx.PointsEqual(t, "0*G", curve.Infinity, c.ScalarMul(g, nat(0)))
}

func TestScalarMulOne(t *testing.T) {
	c := toy()
	g := curve.Affine(nat(5), nat(1))
	assertx.PointsEqual(t, "1*G", g, c.ScalarMul(g, nat(1)))
}

// Property: for all on-curve P, Q: add(P, Q) == add(Q, P) and the result is
// on the curve. (§8 property 3)
func TestAddCommutesAndStaysOnCurve(t *testing.T) {
	c := toy()
	g := curve.Affine(nat(5), nat(1))
	for k := int64(1); k < 18; k++ {
		for j := int64(1); j < 18; j++ {
			p := c.ScalarMul(g, nat(k))
			q := c.ScalarMul(g, nat(j))
			if p.Equal(q) || p.IsInfinity() || q.IsInfinity() {
				continue
			}
			pq := c.Add(p, q)
			qp := c.Add(q, p)
			assertx.PointsEqual(t, "add commutes", pq, qp)
			assertx.True(t, "sum on curve", c.IsOnCurve(pq))
		}
	}
}

// Property: scalar_mul(P, k) is on the curve for all k, and
// scalar_mul(G, n) == Infinity for the toy curve's order n = 19. (§8
// property 5)
func TestScalarMulOnCurveAndOrder(t *testing.T) {
	c := toy()
	g := curve.Affine(nat(5), nat(1))
	for k := int64(0); k < 25; k++ {
		p := c.ScalarMul(g, nat(k))
		assertx.True(t, "k*G on curve", c.IsOnCurve(p))
	}
	assertx.PointsEqual(t, "19*G", curve.Infinity, c.ScalarMul(g, nat(19)))
}
