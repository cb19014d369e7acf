// Package assertx is a small testing.T assertion-helper package, ported
// from threshold-network-roast-go's internal/testutils/assert.go: the same
// AssertXEqual(t, description, expected, actual) shape, generalized from
// *big.Int/uint64 to this module's *bignat.Nat/curve.Point/bool/[]byte
// values.
package assertx

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"

	"weierstrass/bignat"
	"weierstrass/curve"
)

// Equaler is satisfied by the types this package compares through an Equal
// method: *bignat.Nat and curve.Point.
type Equaler[T any] interface {
	Equal(T) bool
}

// NatsEqual checks that two BigNats are numerically equal.
func NatsEqual(t *testing.T, description string, expected, actual *bignat.Nat) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("unexpected %s\nexpected: %s\nactual:   %s", description,
			spew.Sdump(expected), spew.Sdump(actual))
	}
}

// PointsEqual checks that two curve points are equal.
func PointsEqual(t *testing.T, description string, expected, actual curve.Point) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("unexpected %s\nexpected: %s\nactual:   %s", description,
			spew.Sdump(expected), spew.Sdump(actual))
	}
}

// BoolsEqual checks that two booleans are equal.
func BoolsEqual(t *testing.T, description string, expected, actual bool) {
	t.Helper()
	if expected != actual {
		t.Errorf("unexpected %s\nexpected: %v\nactual:   %v", description, expected, actual)
	}
}

// BytesEqual checks that two byte slices are equal.
func BytesEqual(t *testing.T, description string, expected, actual []byte) {
	t.Helper()
	if !slices.Equal(expected, actual) {
		t.Errorf("unexpected %s\nexpected: %v\nactual:   %v", description, expected, actual)
	}
}

// True fails the test unless cond holds.
func True(t *testing.T, description string, cond bool) {
	t.Helper()
	if !cond {
		t.Errorf("expected %s to hold", description)
	}
}
