package encode

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/radixform/multibase"
)

func Test_ResolveBase_ByName(t *testing.T) {
	base, err := ResolveBase("base58btc")
	require.NoError(t, err)
	require.Equal(t, multibase.Base58BTC, base)
}

func Test_ResolveBase_ByCode(t *testing.T) {
	base, err := ResolveBase("z")
	require.NoError(t, err)
	require.Equal(t, multibase.Base58BTC, base)

	base, err = ResolveBase("F")
	require.NoError(t, err)
	require.Equal(t, multibase.Base16Upper, base)
}

func Test_ResolveBase_Unknown(t *testing.T) {
	_, err := ResolveBase("base91")
	require.Error(t, err)
	require.Equal(t, multibase.ErrUnknownBase, errors.Cause(err))

	_, err = ResolveBase("L")
	require.Error(t, err)
	require.Equal(t, multibase.ErrUnknownBase, errors.Cause(err))
}
