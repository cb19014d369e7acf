// Package digest provides the Digest external collaborator of spec §6: a
// deterministic function from a message to a 32-byte hash. Two concrete
// implementations are provided to demonstrate the contract is swappable —
// the spec-mandated SHA-256 one, and an alternative built on
// golang.org/x/crypto/sha3, generalizing the teacher's hand-rolled
// SHA3XOF/Keccak sponge in model.go into the real library the rest of the
// retrieved example pack reaches for.
package digest

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// Digest hashes a message to a fixed-size byte string, deterministically.
type Digest interface {
	Sum(msg []byte) [32]byte
}

// SHA256 is the Digest spec §4.3's hash_to_scalar formula is written
// against.
type SHA256 struct{}

// Sum returns the SHA-256 digest of msg.
func (SHA256) Sum(msg []byte) [32]byte { return sha256.Sum256(msg) }

// SHA3 is an alternative Digest built on golang.org/x/crypto/sha3's
// SHA3-256, demonstrating that hash_to_scalar's external Digest
// collaborator is not tied to any one hash function.
type SHA3 struct{}

// Sum returns the SHA3-256 digest of msg.
func (SHA3) Sum(msg []byte) [32]byte { return sha3.Sum256(msg) }
