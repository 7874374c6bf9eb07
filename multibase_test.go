package multibase

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func requireEncode(t *testing.T, base Base, data []byte, expect string) {
	encoded, err := EncodeToString(base, data)
	require.NoError(t, err)
	require.Equal(t, expect, encoded)

	decodedBase, decoded, err := DecodeString(expect)
	require.NoError(t, err)
	require.Equal(t, base, decodedBase)
	require.Equal(t, data, decoded)
}

func Test_Encode(t *testing.T) {
	requireEncode(t, Base16, []byte("Decentralize everything!!"),
		"f446563656e7472616c697a652065766572797468696e672121")
	requireEncode(t, Base58BTC, []byte("Decentralize everything!!"),
		"zUXE7GvtEk8XTXs1GF8HSGbVA9FCX9SEBPe")
	requireEncode(t, Base58BTC, []byte("hello"), "zCn8eVZg")
}

func Test_Encode_YesMani(t *testing.T) {
	data := []byte("yes mani !")

	requireEncode(t, Base2, data,
		"01111001011001010111001100100000011011010110000101101110011010010010000000100001")
	requireEncode(t, Base8, data, "7171312714403326055632220041")
	requireEncode(t, Base10, data, "9573277761329450583662625")
	requireEncode(t, Base16, data, "f796573206d616e692021")
	requireEncode(t, Base32Hex, data, "vf5in683dc5n6i811")
	requireEncode(t, Base32, data, "bpfsxgidnmfxgsibb")
	requireEncode(t, Base32Z, data, "hxf1zgedpcfzg1ebb")
	requireEncode(t, Base58Flickr, data, "Z7Pznk19XTTzBtx")
	requireEncode(t, Base58BTC, data, "z7paNL19xttacUY")
}

func Test_Encode_LeadingZeroBytes(t *testing.T) {
	requireEncode(t, Base2, []byte{0x00, 0x0f}, "001111")
	requireEncode(t, Base2, []byte{0x00, 0xff}, "0011111111")
	requireEncode(t, Base58BTC, []byte{0x00, 0x00, 0x13}, "z11L")
}

func Test_Encode_Empty(t *testing.T) {
	for _, base := range Bases() {
		if !base.Supported() {
			continue
		}

		encoded, err := Encode(base, []byte{})
		require.NoError(t, err)
		require.Equal(t, []byte{base.Code()}, encoded)

		decodedBase, decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, base, decodedBase)
		require.Empty(t, decoded)
	}
}

func Test_Encode_UnsupportedBase(t *testing.T) {
	for _, base := range []Base{Base32HexPad, Base32HexPadUpper, Base32Pad, Base32PadUpper, Base64Pad, Base64URLPad} {
		_, err := Encode(base, []byte("hello"))
		require.Error(t, err)
		require.Equal(t, ErrUnsupportedBase, errors.Cause(err))
	}
}

func Test_RoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("helloworld"),
		[]byte("we all want decentralization"),
		[]byte("zdj7WfBb6j58iSJuAzDcSZgy2SxFhdpJ4H87uvMpfyN6hRGyH"),
		{1, 2, 3, 98, 255, 255, 255},
		{0x00},
		{0x00, 0x00, 0x00},
		{0x00, 0x00, 0x01, 0x00},
	}

	for _, base := range Bases() {
		if !base.Supported() || base == Base1 {
			continue
		}

		for _, payload := range payloads {
			encoded, err := Encode(base, payload)
			require.NoErrorf(t, err, "Could not encode %q with %v", payload, base)

			decodedBase, decoded, err := Decode(encoded)
			require.NoErrorf(t, err, "Could not decode %q with %v", encoded, base)
			require.Equal(t, base, decodedBase)
			require.Equal(t, payload, decoded)
		}
	}
}

// Unary can only represent runs of zero bytes; those still round-trip.
func Test_RoundTrip_Base1(t *testing.T) {
	requireEncode(t, Base1, []byte{0x00, 0x00, 0x00}, "1111")

	_, err := Encode(Base1, []byte("hello"))
	require.Error(t, err)
}

func Test_Decode_Failures(t *testing.T) {
	_, _, err := DecodeString("Lllll")
	require.Error(t, err)
	require.Equal(t, ErrUnknownBase, errors.Cause(err))

	// 'U' resolves to the reserved base64urlpad variant
	_, _, err = DecodeString("Ullll")
	require.Error(t, err)
	require.Equal(t, ErrUnsupportedBase, errors.Cause(err))

	_, _, err = DecodeString("z7pa_L19xttacUY")
	require.Error(t, err)
	require.Equal(t, ErrInvalidBaseString, errors.Cause(err))

	// no code byte at all
	_, _, err = Decode([]byte{})
	require.Error(t, err)
	require.Equal(t, ErrUnknownBase, errors.Cause(err))
}
