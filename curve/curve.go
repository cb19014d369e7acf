// Package curve implements the short Weierstrass group
// y² = x³ + a·x + b (mod p) over a field.Field, per spec §4.2.
//
// The group law (chord-and-tangent addition, the shared x3/y3 formula, the
// left-to-right double-and-add scalar_mul loop) is ported from the teacher's
// E222.Add/E222.SecMul and from original_source's EllipticCurve::add /
// EllipticCurve::scalar_mul, generalized from the teacher's Edwards-curve
// formula (and the source's Weierstrass one) to the Weierstrass chord and
// tangent formulas of spec §4.2.1.
package curve

import (
	"fmt"

	"weierstrass/bignat"
	"weierstrass/fault"
	"weierstrass/field"
)

// Point is a tagged value: either the point at infinity (the group
// identity) or an affine coordinate pair. Per §9's design note, this is a
// sum type rather than a sentinel such as (0, 0) — that point is on some
// curves — or a null-like placeholder.
type Point struct {
	inf  bool
	x, y *bignat.Nat
}

// Infinity is the distinguished point acting as the group identity.
var Infinity = Point{inf: true}

// Affine builds a finite point with the given coordinates.
func Affine(x, y *bignat.Nat) Point {
	return Point{x: x, y: y}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.inf }

// XY returns the affine coordinates of p. Panics if p is Infinity.
func (p Point) XY() (x, y *bignat.Nat) {
	if p.inf {
		panic("curve: XY called on the point at infinity")
	}
	return p.x, p.y
}

// Equal reports whether two points are the same group element: Infinity is
// distinct from every affine point, and two affine points are equal iff
// both coordinates match numerically.
func (p Point) Equal(q Point) bool {
	if p.inf || q.inf {
		return p.inf == q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p Point) String() string {
	if p.inf {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// Curve is the group of points on y² = x³ + a·x + b (mod p), with
// 0 <= a, b < p and p > 3 prime (assumed by the caller, per §3).
type Curve struct {
	A, B *bignat.Nat
	P    *bignat.Nat
	f    *field.Field
}

// New builds a Curve with parameters (a, b, p). No validation beyond what
// individual operations enforce is performed; the caller supplies valid
// curve parameters (§6).
func New(a, b, p *bignat.Nat) *Curve {
	return &Curve{A: a, B: b, P: p, f: field.New(p)}
}

// IsOnCurve reports whether p satisfies the curve equation. Infinity is
// always on the curve. Both sides are reduced mod p, so a coordinate >= p is
// reported here as off-curve rather than tripping a Field range check.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.inf {
		return true
	}
	x, y := p.x, p.y
	lhs := y.Mul(y).Mod(c.P)
	rhs := x.Mul(x).Mul(x).Add(c.A.Mul(x)).Add(c.B).Mod(c.P)
	return lhs.Equal(rhs)
}

func (c *Curve) requireOnCurve(p Point, name string) {
	if !c.IsOnCurve(p) {
		fault.Panic(fault.OffCurve, "%s = %s is not on curve y^2 = x^3 + %s*x + %s (mod %s)",
			name, p, c.A, c.B, c.P)
	}
}

// xy3 is the shared chord/tangent formula of §4.2.1: given a slope lambda
// and the source x-coordinates (x1, x2) and the first source y-coordinate
// y1, it computes the resulting point's coordinates. Both Add's chord case
// and Double's tangent case funnel through this one helper rather than
// duplicating the modular-arithmetic sequence.
func (c *Curve) xy3(lambda, x1, x2, y1 *bignat.Nat) (x3, y3 *bignat.Nat) {
	lambdaSq := c.f.Mul(lambda, lambda)
	x3 = c.f.Sub(c.f.Sub(lambdaSq, x1), x2)
	y3 = c.f.Sub(c.f.Mul(lambda, c.f.Sub(x1, x3)), y1)
	return x3, y3
}

// Add returns P + Q. Both operands must be on the curve; P and Q must not
// be numerically equal (use Double for that case — see §4.2 case 3).
func (c *Curve) Add(p, q Point) Point {
	c.requireOnCurve(p, "P")
	c.requireOnCurve(q, "Q")

	if p.inf && q.inf {
		return Infinity
	}
	if p.inf {
		return q
	}
	if q.inf {
		return p
	}
	if p.Equal(q) {
		fault.Panic(fault.SameOperand, "Add called with P == Q == %s; use Double", p)
	}

	x1, y1 := p.x, p.y
	x2, y2 := q.x, q.y

	// Vertical-chord case: x1 == x2 and y1 + y2 == 0 (mod p). Covers the
	// reflected-point case; y == 0 doubling is handled only by Double.
	if x1.Equal(x2) && c.f.Add(y1, y2).IsZero() {
		return Infinity
	}

	lambda := c.f.Div(c.f.Sub(y2, y1), c.f.Sub(x2, x1))
	x3, y3 := c.xy3(lambda, x1, x2, y1)
	return Affine(x3, y3)
}

// Double returns 2*P. P must be on the curve.
func (c *Curve) Double(p Point) Point {
	c.requireOnCurve(p, "P")

	if p.inf {
		return Infinity
	}
	x, y := p.x, p.y
	if y.IsZero() {
		return Infinity // 2-torsion point: the tangent is vertical.
	}

	three := bignat.FromInt64(3)
	two := bignat.FromInt64(2)
	numerator := c.f.Add(c.f.Mul(three, c.f.Mul(x, x)), c.A)
	denominator := c.f.Mul(two, y)
	lambda := c.f.Div(numerator, denominator)

	x3, y3 := c.xy3(lambda, x, x, y)
	return Affine(x3, y3)
}

// ScalarMul returns the group sum of k copies of P, via left-to-right
// double-and-add over the bits of k: start at T = P, then for each bit of
// k below the top one, T <- double(T), then T <- add(T, P) if that bit is
// set. P must be on the curve.
//
// k == 0 returns Infinity (bit_length(0) == 0 makes the natural loop
// underflow; this is the explicit guard §9 calls for). k == 1 returns P
// with no loop iterations. When an addition step would add P to a running
// value that already equals P (possible once k reaches the order of P), the
// step doubles instead, since Add rejects equal operands; every k >= 0
// therefore yields the group sum.
func (c *Curve) ScalarMul(p Point, k *bignat.Nat) Point {
	c.requireOnCurve(p, "P")

	if k.IsZero() {
		return Infinity
	}

	m := k.BitLen()
	t := p
	for i := m - 2; i >= 0; i-- {
		t = c.Double(t)
		if k.Bit(i) == 1 {
			if t.Equal(p) {
				t = c.Double(t)
			} else {
				t = c.Add(t, p)
			}
		}
	}
	return t
}
