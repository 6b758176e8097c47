package compress

import "fmt"

// Compressor compresses a byte payload.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management: the returned slice is newly allocated and owned
	// by the caller; the input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload previously produced by the
// matching Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// Memory management: the returned slice is newly allocated and owned
	// by the caller; the input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of a single algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Scheme identifies a region chunk's compression scheme, matching the low
// 7 bits of the chunk payload's compression descriptor byte (spec §4.4).
type Scheme uint8

const (
	SchemeGZip         Scheme = 1 // legacy/unused on write, but must decode
	SchemeZlib         Scheme = 2
	SchemeUncompressed Scheme = 3
)

func (s Scheme) String() string {
	switch s {
	case SchemeGZip:
		return "gzip"
	case SchemeZlib:
		return "zlib"
	case SchemeUncompressed:
		return "uncompressed"
	default:
		return "unknown"
	}
}

// CodecFor returns the Codec implementing scheme, or an error if the
// scheme is not one of the three the region format defines.
func CodecFor(scheme Scheme) (Codec, error) {
	switch scheme {
	case SchemeGZip:
		return GzipCodec{}, nil
	case SchemeZlib:
		return ZlibCodec{}, nil
	case SchemeUncompressed:
		return NoOpCodec{}, nil
	default:
		return nil, fmt.Errorf("compress: unsupported chunk compression scheme %d", scheme)
	}
}
