// Package fault holds the error taxonomy shared by field, curve and signer.
//
// Field and Curve treat precondition violations as caller bugs: they panic
// with a *Fault rather than returning an error, the same way the Rust
// source this package's arithmetic is modeled on treats them with
// assert!/assert_ne!. Signer, by contrast, returns a *Fault as a normal
// error value for the conditions it documents as recoverable (BadNonce,
// RngExhausted). One Kind enumeration and one type serve both styles.
package fault

import (
	"errors"
	"fmt"
)

// Kind identifies which invariant a Fault reports.
type Kind int

const (
	// OffCurve: an affine point does not satisfy the curve equation.
	OffCurve Kind = iota
	// SameOperand: Curve.Add was called with two numerically equal points;
	// the caller must use Curve.Double instead.
	SameOperand
	// RangeViolation: an argument to a Field operation (Add, Sub, Mul, Neg,
	// InvMul, Div) is >= the field modulus.
	RangeViolation
	// NonInvertible: Field.InvMul or Field.Div was given a zero argument.
	NonInvertible
	// BadNonce: scalar_mul(G, k) produced the point at infinity, or the
	// resulting signature had r = 0 or s = 0; the caller should draw a
	// fresh k.
	BadNonce
	// RngExhausted: the external RNG collaborator failed.
	RngExhausted
)

func (k Kind) String() string {
	switch k {
	case OffCurve:
		return "OffCurve"
	case SameOperand:
		return "SameOperand"
	case RangeViolation:
		return "RangeViolation"
	case NonInvertible:
		return "NonInvertible"
	case BadNonce:
		return "BadNonce"
	case RngExhausted:
		return "RngExhausted"
	default:
		return "Unknown"
	}
}

// Fault is both a panic value (for Field/Curve preconditions) and an error
// value (for Signer's recoverable failures).
type Fault struct {
	Kind Kind
	Msg  string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

// New builds a Fault of the given Kind.
func New(k Kind, format string, args ...any) *Fault {
	return &Fault{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Panic raises a Fault as a panic, for Field/Curve precondition violations.
func Panic(k Kind, format string, args ...any) {
	panic(New(k, format, args...))
}

// Is reports whether err is a *Fault of the given Kind, unwrapping as
// errors.Is/As would.
func Is(err error, k Kind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == k
}
