package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecsRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated; "+
		"the quick brown fox jumps over the lazy dog")

	for _, c := range []Codec{GzipCodec{}, ZlibCodec{}, NoOpCodec{}} {
		compressed, err := c.Compress(data)
		require.NoError(t, err)

		decompressed, err := c.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, data, decompressed)
	}
}

func TestCodecFor(t *testing.T) {
	for _, s := range []Scheme{SchemeGZip, SchemeZlib, SchemeUncompressed} {
		_, err := CodecFor(s)
		require.NoError(t, err)
	}

	_, err := CodecFor(Scheme(99))
	require.Error(t, err)
}
