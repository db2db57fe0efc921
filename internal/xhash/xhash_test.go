package xhash

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tbls/internal/curve"
)

func suite() curve.Suite {
	return curve.New()
}

func TestH2Deterministic(t *testing.T) {
	g := suite().G2()
	a := H2(g, []byte("Real news"))
	b := H2(g, []byte("Real news"))
	require.True(t, a.Equal(b))
}

func TestH2DifferentMessagesDiffer(t *testing.T) {
	g := suite().G2()
	a := H2(g, []byte("Real news"))
	b := H2(g, []byte("Fake news"))
	require.False(t, a.Equal(b))
}

func TestH12ShortAndLongPayload(t *testing.T) {
	g := suite().G2()
	s := suite()
	u := s.G1().Point().Mul(s.G1().Scalar().SetInt64(7), nil)

	short := []byte("Muffins in the canteen today!")
	long := make([]byte, 200)
	for i := range long {
		long[i] = byte(i)
	}

	hs, err := H12(g, u, short)
	require.NoError(t, err)
	hl, err := H12(g, u, long)
	require.NoError(t, err)
	require.False(t, hs.Equal(hl))

	hs2, err := H12(g, u, short)
	require.NoError(t, err)
	require.True(t, hs.Equal(hs2))
}

func TestH12BoundaryLength(t *testing.T) {
	g := suite().G2()
	s := suite()
	u := s.G1().Point().Mul(s.G1().Scalar().SetInt64(3), nil)

	exact := make([]byte, shortMessageThreshold)
	overOne := make([]byte, shortMessageThreshold+1)

	h1, err := H12(g, u, exact)
	require.NoError(t, err)
	h2, err := H12(g, u, overOne)
	require.NoError(t, err)
	require.False(t, h1.Equal(h2))
}

func TestXRoundTrip(t *testing.T) {
	s := suite()
	u := s.G1().Point().Mul(s.G1().Scalar().SetInt64(42), nil)
	msg := []byte("Totally real news")

	ct, err := X(u, msg)
	require.NoError(t, err)
	require.NotEqual(t, msg, ct)

	pt, err := X(u, ct)
	require.NoError(t, err)
	require.Equal(t, msg, pt)
}

func TestXDifferentPointsDiffer(t *testing.T) {
	s := suite()
	u1 := s.G1().Point().Mul(s.G1().Scalar().SetInt64(1), nil)
	u2 := s.G1().Point().Mul(s.G1().Scalar().SetInt64(2), nil)
	msg := []byte("same message")

	ct1, err := X(u1, msg)
	require.NoError(t, err)
	ct2, err := X(u2, msg)
	require.NoError(t, err)
	require.NotEqual(t, ct1, ct2)
}
