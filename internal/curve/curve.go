// Package curve wraps the BLS12-381 pairing suite (the external field &
// group collaborator, component A of the design) behind the narrow surface
// the rest of the module actually needs: two prime-order groups and a
// bilinear pairing between them. Public keys always live on G1, signatures
// and ciphertext tags on G2, matching the data model this module implements.
package curve

import (
	"os"

	bls "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/pairing"
)

// Suite is the pairing suite used throughout the module.
type Suite = pairing.Suite

// dst1/dst2 are the RFC 9380 domain-separation tags for the suite's own
// hash-to-curve machinery. This module never calls that machinery directly
// (hash-to-curve is reimplemented per this module's own construction in
// internal/xhash), but constructing a suite still requires tags.
var (
	dst1 = []byte("TBLS_BLS12381G1_XMD:SHA-256_SSWU_RO_")
	dst2 = []byte("TBLS_BLS12381G2_XMD:SHA-256_SSWU_RO_")
)

// New constructs the default pairing suite.
func New() Suite {
	return bls.NewBLS12381SuiteWithDST(dst1, dst2)
}

var defaultSuite = New()

// Default returns the package-wide default suite. Constructing a suite is
// cheap and side-effect-free, so sharing this instance is purely a
// convenience for callers that don't need a fresh one.
func Default() Suite {
	return defaultSuite
}

// envVar names the environment variable FromEnv reads to suffix the suite's
// domain-separation tags.
const envVar = "TBLS_DST_SUFFIX"

// FromEnv returns a suite whose domain-separation tags are suffixed with
// TBLS_DST_SUFFIX, if set, and Default otherwise. The tags only affect the
// suite's own hash-to-curve, which internal/xhash does not use, so the
// suffix does not change H2, H12 or X; the root package builds on Default,
// not on FromEnv.
func FromEnv() Suite {
	suffix := os.Getenv(envVar)
	if suffix == "" {
		return Default()
	}
	return bls.NewBLS12381SuiteWithDST(
		append(append([]byte{}, dst1...), suffix...),
		append(append([]byte{}, dst2...), suffix...),
	)
}
