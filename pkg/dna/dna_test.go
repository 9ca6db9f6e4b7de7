package dna

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaddedLen(t *testing.T) {
	// (4*n)%3 == 0 exactly when n is a multiple of 3.
	expected := map[int]int{0: 0, 1: 3, 2: 3, 3: 3, 4: 6, 5: 6, 6: 6, 7: 9, 8: 9, 9: 9}
	for n, want := range expected {
		require.Equal(t, want, PaddedLen(n), "PaddedLen(%d)", n)
	}
}

func TestEncode(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Empty(t, Encode(nil))
	})

	t.Run("golden single byte", func(t *testing.T) {
		// 0x41 is 01000001, so CAAC; two padding spaces (00100000) follow.
		require.Equal(t, "CAACAGAAAGAA", string(Encode([]byte("A"))))
	})

	t.Run("all four symbols", func(t *testing.T) {
		// 0x1B is 00011011.
		require.Equal(t, "ACGT", string(Encode([]byte{0x1B})[:4]))
	})

	t.Run("length is four symbols per padded byte", func(t *testing.T) {
		for n := 0; n <= 10; n++ {
			seq := Encode(make([]byte, n))
			require.Len(t, seq, 4*PaddedLen(n))
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("golden", func(t *testing.T) {
		data, err := Decode([]byte("CAACAGAAAGAA"))
		require.NoError(t, err)
		require.Equal(t, "A  ", string(data))
	})

	t.Run("empty", func(t *testing.T) {
		data, err := Decode(nil)
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("invalid symbol", func(t *testing.T) {
		_, err := Decode([]byte("CAXC"))
		require.ErrorIs(t, err, ErrInvalidSymbol)
		require.ErrorContains(t, err, "position 2")
	})

	t.Run("partial trailing byte", func(t *testing.T) {
		_, err := Decode([]byte("CAACAG"))
		require.ErrorIs(t, err, ErrTruncated)
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("hello world"),
		[]byte("abc"),
		{0x00, 0xFF, 0x80, 0x7F},
		[]byte("exactly-9"),
	}
	for _, in := range inputs {
		out, err := Decode(Encode(in))
		require.NoError(t, err)
		// Padding spaces survive the round trip.
		require.Equal(t, in, out[:len(in)])
		for _, b := range out[len(in):] {
			require.Equal(t, byte(' '), b)
		}
		require.Len(t, out, PaddedLen(len(in)))
	}
}

func TestBitsBijection(t *testing.T) {
	for v := byte(0); v < 4; v++ {
		sym := symbols[v]
		bits, ok := bitsOf(sym)
		require.True(t, ok)
		require.Equal(t, v, bits)
	}
}
