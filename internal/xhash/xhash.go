// Package xhash implements the three hash-derived primitives the rest of
// the module builds on: a hash-to-G2 construction, its compound form used
// to bind a ciphertext's ephemeral point to its payload, and a XOR
// keystream used as the symmetric part of the encryption scheme. All three
// are modeled as random oracles; see the package-level doc comment on each
// function for the exact construction.
package xhash

import (
	"crypto/cipher"
	"encoding/binary"

	"github.com/drand/kyber"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// rngSeedWords is the number of big-endian u32 words a 256-bit digest is
// split into before seeding the ChaCha stream. Changing the word order or
// endianness here silently breaks compatibility with any other
// implementation of this scheme, so it is pinned.
const rngSeedWords = 8

const shortMessageThreshold = 64

// H2 maps an arbitrary byte string onto a uniform point of g by hashing the
// message, reinterpreting the digest as 8 big-endian u32 words, seeding a
// ChaCha stream with them, and drawing a point from that stream via the
// group's own uniform Pick.
func H2(g kyber.Group, msg []byte) kyber.Point {
	digest := sha3.Sum256(msg)
	stream := seedStream(digest[:])
	return g.Point().Pick(stream)
}

// H12 binds a G1 point u to a variable-length payload v before mapping the
// result into g via H2. Payloads of at most 64 bytes are embedded verbatim;
// longer payloads are hashed first. The 64-byte threshold is a performance
// knob only, but it must match bit-for-bit between encryption and
// decryption, so it is pinned here rather than left configurable.
func H12(g kyber.Group, u kyber.Point, v []byte) (kyber.Point, error) {
	var mp []byte
	if len(v) <= shortMessageThreshold {
		mp = append(mp, v...)
	} else {
		digest := sha3.Sum256(v)
		mp = append(mp, digest[:]...)
	}
	uBytes, err := u.MarshalBinary()
	if err != nil {
		return nil, err
	}
	mp = append(mp, uBytes...)
	return H2(g, mp), nil
}

// X XORs data with a pseudorandom keystream derived from the compressed
// encoding of u, producing output of the same length as data. Applying X
// twice with the same u recovers the original data.
func X(u kyber.Point, data []byte) ([]byte, error) {
	uBytes, err := u.MarshalBinary()
	if err != nil {
		return nil, err
	}
	digest := sha3.Sum256(uBytes)
	stream := seedStream(digest[:])
	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)
	return out, nil
}

// seedStream reinterprets a 32-byte digest as 8 big-endian u32 words and
// seeds a ChaCha20 keystream from them. ChaCha20 wants a 32-byte key and a
// 12-byte nonce; we derive the key directly from the big-endian word layout
// (so the pinned word order is the only thing that matters for
// compatibility) and use the all-zero nonce, since the key itself is always
// fresh per call site.
func seedStream(digest []byte) cipher.Stream {
	var words [rngSeedWords]uint32
	for i := range words {
		words[i] = binary.BigEndian.Uint32(digest[4*i : 4*i+4])
	}
	var key [32]byte
	for i, w := range words {
		binary.BigEndian.PutUint32(key[4*i:4*i+4], w)
	}
	var nonce [chacha20.NonceSize]byte
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only possible if key/nonce sizes are wrong, which they never are
		// here since they are fixed-size arrays matching the cipher's
		// constants.
		panic(err)
	}
	return stream
}
