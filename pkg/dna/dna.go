// Package dna converts byte buffers to and from their 2-bit nucleotide
// representation. Each byte maps to exactly four symbols, most significant
// bits first: A=00, C=01, G=10, T=11.
package dna

import "github.com/cockroachdb/errors"

// Decode failure kinds.
var (
	ErrInvalidSymbol = errors.New("invalid nucleotide symbol")
	ErrTruncated     = errors.New("truncated nucleotide sequence")
)

// symbols maps each 2-bit value to its nucleotide. The reverse direction is
// the exhaustive switch in bitsOf, so the two cannot drift apart.
var symbols = [4]byte{'A', 'C', 'G', 'T'}

// padByte is appended until the sequence forms whole codons.
const padByte = ' '

// PaddedLen returns the byte count after codon padding. Bytes are appended
// until the 4*n nucleotides they produce form whole codons (groups of 3).
// Existing .dna artifacts depend on this exact rule.
func PaddedLen(n int) int {
	for (4*n)%3 != 0 {
		n++
	}
	return n
}

// Encode converts data to its nucleotide sequence, padding with ASCII
// spaces per PaddedLen. The result is always 4*PaddedLen(len(data))
// symbols. Encode never fails; padding is not stripped by Decode.
func Encode(data []byte) []byte {
	n := PaddedLen(len(data))
	seq := make([]byte, 0, 4*n)
	for i := 0; i < n; i++ {
		b := byte(padByte)
		if i < len(data) {
			b = data[i]
		}
		seq = append(seq, symbols[b>>6], symbols[b>>4&0x03], symbols[b>>2&0x03], symbols[b&0x03])
	}
	return seq
}

// Decode converts a nucleotide sequence back to bytes. A symbol outside
// {A,C,G,T} fails with ErrInvalidSymbol. A sequence whose length is not a
// multiple of 4 cannot have been produced by Encode and fails with
// ErrTruncated rather than dropping the partial trailing byte.
func Decode(seq []byte) ([]byte, error) {
	if len(seq)%4 != 0 {
		return nil, errors.Wrapf(ErrTruncated, "%d symbols do not form whole bytes", len(seq))
	}
	data := make([]byte, len(seq)/4)
	for i, sym := range seq {
		bits, ok := bitsOf(sym)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSymbol, "symbol %q at position %d", sym, i)
		}
		data[i/4] = data[i/4]<<2 | bits
	}
	return data, nil
}

func bitsOf(sym byte) (byte, bool) {
	switch sym {
	case 'A':
		return 0, true
	case 'C':
		return 1, true
	case 'G':
		return 2, true
	case 'T':
		return 3, true
	}
	return 0, false
}
