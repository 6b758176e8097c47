// Package wire implements the big-endian NBT binary codec (spec §4.2):
// reading and writing a rooted NBT stream, with transparent gzip framing
// at the file boundary.
package wire

import (
	"bufio"
	"io"
	"os"

	"github.com/aetherworks/anvil/compress"
	"github.com/aetherworks/anvil/tag"
)

// gzipMagic is the two leading bytes of a gzip member, used to detect
// transparent compression at a stream boundary (spec §4.2).
var gzipMagic = [2]byte{0x1f, 0x8b}

// Decode reads one rooted NBT stream from r: a kind byte, a name, and
// that kind's payload. It does not attempt gzip detection; callers that
// need it should use ReadFile or wrap r themselves.
func Decode(r io.Reader) (tag.Tag, string, error) {
	d := newDecoder(r)
	return d.readRoot()
}

// Encode writes root as a rooted NBT stream: its kind byte, rootName,
// and its payload.
func Encode(w io.Writer, root tag.Tag, rootName string) error {
	e := newEncoder(w)
	return e.writeRoot(root, rootName)
}

// ReadFile reads path and decodes it as a rooted NBT stream, transparently
// un-gzipping when the file begins with the gzip magic bytes (spec §4.2).
func ReadFile(path string) (tag.Tag, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return ReadStream(f)
}

// ReadStream is the gzip-transparent counterpart of Decode: it peeks two
// bytes to detect a gzip member and, if found, decodes through a gzip
// reader; otherwise it decodes the raw bytes.
func ReadStream(r io.Reader) (tag.Tag, string, error) {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(2)
	if err != nil && err != io.EOF {
		return nil, "", err
	}

	if len(peeked) == 2 && peeked[0] == gzipMagic[0] && peeked[1] == gzipMagic[1] {
		gz, err := compress.GzipCodec{}.NewReader(br)
		if err != nil {
			return nil, "", err
		}
		defer gz.Close()
		return Decode(gz)
	}

	return Decode(br)
}

// WriteFile writes root to path as a rooted NBT stream named rootName,
// gzip-compressing the output when gzipCompress is true.
func WriteFile(path string, root tag.Tag, rootName string, gzipCompress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteStream(f, root, rootName, gzipCompress)
}

// WriteStream is the gzip-transparent counterpart of Encode.
func WriteStream(w io.Writer, root tag.Tag, rootName string, gzipCompress bool) error {
	if !gzipCompress {
		return Encode(w, root, rootName)
	}

	gz := compress.GzipCodec{}.NewWriter(w)
	if err := Encode(gz, root, rootName); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
