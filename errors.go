package tbls

import (
	"errors"

	"github.com/dedis/tbls/internal/interpolate"
	"github.com/dedis/tbls/internal/poly"
)

// ErrNotEnoughShares is returned by a combiner when fewer than t+1 shares
// were supplied.
var ErrNotEnoughShares = interpolate.ErrNotEnoughShares

// ErrDuplicateEntry is returned by a combiner when two shares carry the same
// (shifted) index.
var ErrDuplicateEntry = interpolate.ErrDuplicateEntry

// ErrMutableAllocationFailed is returned by any polynomial or secret-storage
// constructor when the requested allocation cannot be made zero-on-drop,
// e.g. a threshold so large the coefficient slice would overflow.
var ErrMutableAllocationFailed = poly.ErrAllocationFailed

// errOSRNG is the fixed panic message used by the convenience constructors
// that fall back to an OS random number generator; callers who want to
// recover from RNG initialization failure should use the explicit
// *WithRng variants instead.
var errOSRNG = errors.New("tbls: could not initialize the OS random number generator")

// errCiphertextNotWellFormed is returned by PublicKeySet.Decrypt when the
// mandatory CCA check fails, mirroring the bool SecretKey.Decrypt returns
// for the same condition on the non-threshold path.
var errCiphertextNotWellFormed = errors.New("tbls: ciphertext failed well-formedness check")
