package multibase

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Base identifies a single variant from the base table. Its value is the
// variant's one-byte code, the character prefixed to every encoded string.
type Base byte

const (
	Base1             Base = '1' // unary
	Base2             Base = '0' // binary
	Base8             Base = '7' // octal
	Base10            Base = '9' // decimal
	Base16            Base = 'f' // hexadecimal
	Base16Upper       Base = 'F'
	Base32Hex         Base = 'v' // rfc4648 extended hex, no padding
	Base32HexUpper    Base = 'V'
	Base32HexPad      Base = 't' // rfc4648 extended hex with padding, reserved
	Base32HexPadUpper Base = 'T'
	Base32            Base = 'b' // rfc4648, no padding
	Base32Upper       Base = 'B'
	Base32Pad         Base = 'c' // rfc4648 with padding, reserved
	Base32PadUpper    Base = 'C'
	Base32Z           Base = 'h' // z-base-32, used by Tahoe-LAFS
	Base58Flickr      Base = 'Z'
	Base58BTC         Base = 'z'
	Base64            Base = 'm' // rfc4648, no padding
	Base64Pad         Base = 'M' // rfc4648 with padding (MIME), reserved
	Base64URL         Base = 'u' // rfc4648 url-safe, no padding
	Base64URLPad      Base = 'U' // rfc4648 url-safe with padding, reserved
)

// descriptor pairs a base with its name and alphabet. Reserved variants keep
// an empty alphabet: they are part of the code table for forward compatibility
// but resolving their alphabet fails with ErrUnsupportedBase.
type descriptor struct {
	base     Base
	name     string
	alphabet string
}

var table = []descriptor{
	{Base1, "base1", "1"},
	{Base2, "base2", "01"},
	{Base8, "base8", "01234567"},
	{Base10, "base10", "0123456789"},
	{Base16, "base16", "0123456789abcdef"},
	{Base16Upper, "base16upper", "0123456789ABCDEF"},
	{Base32Hex, "base32hex", "0123456789abcdefghijklmnopqrstuv"},
	{Base32HexUpper, "base32hexupper", "0123456789ABCDEFGHIJKLMNOPQRSTUV"},
	{Base32HexPad, "base32hexpad", ""},
	{Base32HexPadUpper, "base32hexpadupper", ""},
	{Base32, "base32", "abcdefghijklmnopqrstuvwxyz234567"},
	{Base32Upper, "base32upper", "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"},
	{Base32Pad, "base32pad", ""},
	{Base32PadUpper, "base32padupper", ""},
	{Base32Z, "base32z", "ybndrfg8ejkmcpqxot1uwisza345h769"},
	{Base58Flickr, "base58flickr", "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"},
	{Base58BTC, "base58btc", "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"},
	{Base64, "base64", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"},
	{Base64Pad, "base64pad", ""},
	{Base64URL, "base64url", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"},
	{Base64URLPad, "base64urlpad", ""},
}

var byCode map[Base]*descriptor
var byName map[string]*descriptor

func init() {
	byCode = make(map[Base]*descriptor, len(table))
	byName = make(map[string]*descriptor, len(table))
	for i := range table {
		d := &table[i]
		byCode[d.base] = d
		byName[d.name] = d
	}
}

// Code returns the one-byte code of the base.
func (b Base) Code() byte {
	return byte(b)
}

// Name returns the canonical name of the base, e.g. "base58btc".
func (b Base) Name() string {
	if d, ok := byCode[b]; ok {
		return d.name
	}
	return "unknown"
}

func (b Base) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

// Alphabet returns the ordered symbol set of the base. The position of a
// symbol is its digit value; the symbol at position zero doubles as the
// leader character for leading zero bytes. Reserved padded variants fail with
// ErrUnsupportedBase, unregistered values with ErrUnknownBase.
func (b Base) Alphabet() ([]byte, error) {
	d, ok := byCode[b]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBase, "no base registered for code %q", string(b.Code()))
	}
	if d.alphabet == "" {
		return nil, errors.Wrapf(ErrUnsupportedBase, "%v is reserved but not implemented", b)
	}
	return []byte(d.alphabet), nil
}

// Supported reports whether the base has an implemented alphabet.
func (b Base) Supported() bool {
	d, ok := byCode[b]
	return ok && d.alphabet != ""
}

// FromCode resolves a code byte to its base.
func FromCode(code byte) (Base, error) {
	if _, ok := byCode[Base(code)]; !ok {
		return 0, errors.Wrapf(ErrUnknownBase, "no base registered for code %q", string(code))
	}
	return Base(code), nil
}

// FromName resolves a canonical base name to its base.
func FromName(name string) (Base, error) {
	d, ok := byName[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownBase, "no base registered under name %q", name)
	}
	return d.base, nil
}

// Bases returns all registered bases in table order, including the reserved
// variants without an implemented alphabet.
func Bases() []Base {
	bases := make([]Base, len(table))
	for i := range table {
		bases[i] = table[i].base
	}
	return bases
}

// VerifyTable checks the structural invariants of the base table: every code
// and name is unique, every implemented alphabet is unique across variants and
// contains no duplicate symbols. A failure here is a programming error in the
// table, not a runtime condition, which is why it is not part of the regular
// error taxonomy.
func VerifyTable() error {
	var errs error

	codes := make(map[Base]string, len(table))
	names := make(map[string]Base, len(table))
	alphabets := make(map[string]Base, len(table))

	for _, d := range table {
		if prev, ok := codes[d.base]; ok {
			errs = multierror.Append(errs, errors.Errorf("code %q is claimed by both %v and %v", string(d.base.Code()), prev, d.name))
		}
		codes[d.base] = d.name

		if prev, ok := names[d.name]; ok {
			errs = multierror.Append(errs, errors.Errorf("name %v is claimed by both %v and %v", d.name, prev, d.base))
		}
		names[d.name] = d.base

		if d.alphabet == "" {
			continue
		}

		if prev, ok := alphabets[d.alphabet]; ok {
			errs = multierror.Append(errs, errors.Errorf("%v and %v share the same alphabet", prev, d.base))
		}
		alphabets[d.alphabet] = d.base

		seen := make(map[byte]bool, len(d.alphabet))
		for _, c := range []byte(d.alphabet) {
			if seen[c] {
				errs = multierror.Append(errs, errors.Errorf("alphabet of %v contains symbol %q more than once", d.base, string(c)))
			}
			seen[c] = true
		}
	}

	return errs
}
