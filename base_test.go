package multibase

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_Base_Codes(t *testing.T) {
	require.Equal(t, byte('0'), Base2.Code())
	require.Equal(t, byte('V'), Base32HexUpper.Code())
	require.Equal(t, byte('z'), Base58BTC.Code())
}

func Test_Base_FromCode(t *testing.T) {
	base, err := FromCode('0')
	require.NoError(t, err)
	require.Equal(t, Base2, base)

	base, err = FromCode('V')
	require.NoError(t, err)
	require.Equal(t, Base32HexUpper, base)

	_, err = FromCode('L')
	require.Error(t, err)
	require.Equal(t, ErrUnknownBase, errors.Cause(err))
}

func Test_Base_FromName(t *testing.T) {
	base, err := FromName("base58btc")
	require.NoError(t, err)
	require.Equal(t, Base58BTC, base)

	_, err = FromName("base91")
	require.Error(t, err)
	require.Equal(t, ErrUnknownBase, errors.Cause(err))
}

func Test_Base_Alphabet(t *testing.T) {
	alphabet, err := Base16.Alphabet()
	require.NoError(t, err)
	require.Equal(t, "0123456789abcdef", string(alphabet))

	for _, base := range []Base{Base32HexPad, Base32HexPadUpper, Base32Pad, Base32PadUpper, Base64Pad, Base64URLPad} {
		_, err := base.Alphabet()
		require.Error(t, err)
		require.Equal(t, ErrUnsupportedBase, errors.Cause(err))
		require.False(t, base.Supported())
	}
}

func Test_Base_String(t *testing.T) {
	require.Equal(t, "base58btc(z)", Base58BTC.String())
	require.Equal(t, "base64urlpad(U)", Base64URLPad.String())
}

func Test_Bases(t *testing.T) {
	bases := Bases()
	require.Len(t, bases, 21)

	supported := 0
	for _, base := range bases {
		if base.Supported() {
			supported++
		}
	}
	require.Equal(t, 15, supported)
}

func Test_VerifyTable(t *testing.T) {
	require.NoError(t, VerifyTable())
}
