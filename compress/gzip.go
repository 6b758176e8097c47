package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec wraps github.com/klauspost/compress/gzip, a drop-in
// replacement for the standard library's compress/gzip carried over
// directly from the teacher's compression stack. It backs the binary
// codec's stream-boundary transparency (spec §4.2) and the region
// format's legacy gzip chunk scheme (spec §4.4).
//
// Besides the one-shot Compress/Decompress pair required by Codec, it
// exposes streaming readers/writers (spec §6: "A gzip codec providing
// streaming decompress and compress over such streams"), used by
// wire.ReadStream/WriteStream so a large NBT file is never fully
// buffered in memory before decoding.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// Compress gzip-compresses data at the default compression level.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress gunzips data.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// NewReader wraps r in a streaming gzip decompressor.
func (GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// NewWriter wraps w in a streaming gzip compressor. The caller must
// Close it to flush the trailing gzip footer.
func (GzipCodec) NewWriter(w io.Writer) io.WriteCloser {
	return gzip.NewWriter(w)
}
