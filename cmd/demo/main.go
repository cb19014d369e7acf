// Command demo mirrors the teacher's run_ecdsa entry point: generate a
// key pair, sign a message, verify the signature, and print the result.
// It exists to exercise the library end to end; the library itself does
// no I/O.
package main

import (
	"fmt"
	"os"

	"weierstrass/digest"
	"weierstrass/secp256k1"
	"weierstrass/signer"
)

func main() {
	s := secp256k1.Signer()

	d, Q, err := s.KeyPair()
	if err != nil {
		fmt.Fprintln(os.Stderr, "key generation failed:", err)
		os.Exit(1)
	}

	k, err := s.DrawNonce()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nonce generation failed:", err)
		os.Exit(1)
	}

	msg := []byte("Bob transferring 1 coin to Alice")
	h := signer.HashToScalar(msg, digest.SHA256{}, s.N)

	sig, err := s.Sign(h, d, k)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sign failed:", err)
		os.Exit(1)
	}

	valid := s.Verify(h, Q, sig)
	fmt.Printf("message:   %s\n", msg)
	fmt.Printf("signature: r=%s s=%s\n", sig.R, sig.S)
	fmt.Printf("verified:  %v\n", valid)
}
