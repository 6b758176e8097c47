package compress

// NoOpCodec passes data through unchanged. It implements the region
// format's "uncompressed" chunk scheme (descriptor byte 3, spec §4.4).
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
