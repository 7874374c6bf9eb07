// Package radix implements arbitrary-precision positional base conversion
// between raw bytes (base 256) and an alphabet of symbol bytes. The alphabet
// defines the base: its length is the radix and the symbol at position zero is
// the "leader", the digit used to represent leading zero bytes of the input.
package radix

import (
	"github.com/pkg/errors"
)

// Encode converts input from base 256 into the positional system defined by
// alphabet, most significant symbol first. Every leading zero byte of the
// input maps to exactly one leader symbol in the output. An empty input
// encodes to an empty output.
func Encode(alphabet, input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	base := uint32(len(alphabet))
	if base == 0 {
		return nil, errors.Errorf("cannot encode with an empty alphabet")
	}
	if base == 1 {
		// A single-symbol alphabet has only the zero digit, so any nonzero
		// value cannot be represented.
		for _, c := range input {
			if c != 0 {
				return nil, errors.Errorf("unary alphabet cannot represent nonzero byte 0x%02x", c)
			}
		}
	}

	// Little-endian digit vector in the target base. Each input byte shifts
	// the accumulated number left by 8 bits and adds itself, with the carry
	// rippling through the existing digits.
	digits := make([]uint32, 1, len(input)*2)

	for _, c := range input {
		carry := uint32(c)
		for j := range digits {
			carry += digits[j] << 8
			digits[j] = carry % base
			carry /= base
		}
		for carry > 0 {
			digits = append(digits, carry%base)
			carry /= base
		}
	}

	// One extra zero digit per leading zero byte. The last byte never counts
	// as a leader, so a lone zero byte still goes through the numeric path.
	for _, c := range input[:len(input)-1] {
		if c != 0 {
			break
		}
		digits = append(digits, 0)
	}

	out := make([]byte, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = alphabet[d]
	}
	return out, nil
}

// Decode converts input, a sequence of symbols in the positional system
// defined by alphabet, back into bytes. It is the exact inverse of Encode:
// every leading leader symbol maps to one zero byte. Decode fails on the
// first symbol which is not part of the alphabet.
func Decode(alphabet, input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	if len(alphabet) == 0 {
		return nil, errors.Errorf("cannot decode with an empty alphabet")
	}

	base := uint32(len(alphabet))
	leader := alphabet[0]

	// Symbol byte to digit value, -1 marks bytes outside the alphabet.
	var lookup [256]int16
	for i := range lookup {
		lookup[i] = -1
	}
	for i, c := range alphabet {
		lookup[c] = int16(i)
	}

	// Little-endian byte vector. Each symbol multiplies the accumulated
	// number by the base and adds the symbol's digit value.
	out := make([]byte, 1, len(input))

	for i, c := range input {
		digit := lookup[c]
		if digit < 0 {
			return nil, errors.Errorf("symbol %q at position %v is not part of the alphabet", string(c), i)
		}

		carry := uint32(digit)
		for j := range out {
			carry += uint32(out[j]) * base
			out[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			out = append(out, byte(carry))
			carry >>= 8
		}
	}

	// One extra zero byte per leading leader symbol, excluding the last
	// symbol. This mirrors the leading zero byte handling in Encode.
	for _, c := range input[:len(input)-1] {
		if c != leader {
			break
		}
		out = append(out, 0)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
