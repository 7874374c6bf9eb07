// Package multibase implements self-describing base encoding of binary data.
// The first character of an encoded string identifies the base it was encoded
// with, so a decoder can recover the original bytes without being told the
// base in advance. Leading zero bytes are preserved exactly: each one maps to
// a single leader symbol (the alphabet's zero digit) in the encoded form.
package multibase

import (
	"github.com/pkg/errors"

	"github.com/radixform/multibase/internal/radix"
)

// Encode encodes data in the given base and prepends the base's code byte.
// Empty data encodes to just the code byte.
func Encode(base Base, data []byte) ([]byte, error) {
	alphabet, err := base.Alphabet()
	if err != nil {
		return nil, err
	}

	encoded, err := radix.Encode(alphabet, data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(encoded)+1)
	out = append(out, base.Code())
	out = append(out, encoded...)
	return out, nil
}

// EncodeToString is Encode with a string result.
func EncodeToString(base Base, data []byte) (string, error) {
	encoded, err := Encode(base, data)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Decode reads the first byte of data as a base code, resolves the base and
// decodes the remaining symbols, returning the resolved base alongside the
// recovered bytes. Empty input carries no code byte and fails with
// ErrUnknownBase.
func Decode(data []byte) (Base, []byte, error) {
	var code byte
	if len(data) > 0 {
		code = data[0]
	}

	base, err := FromCode(code)
	if err != nil {
		return 0, nil, err
	}

	alphabet, err := base.Alphabet()
	if err != nil {
		return 0, nil, err
	}

	decoded, err := radix.Decode(alphabet, data[1:])
	if err != nil {
		return 0, nil, errors.Wrap(ErrInvalidBaseString, err.Error())
	}
	return base, decoded, nil
}

// DecodeString is Decode over a string input.
func DecodeString(data string) (Base, []byte, error) {
	return Decode([]byte(data))
}
