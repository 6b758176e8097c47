// Package region reads Anvil/Region chunk container files (spec §4.4):
// a 4KiB header of chunk locations followed by variably-compressed,
// sector-aligned chunk payloads.
package region

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/aetherworks/anvil/compress"
	"github.com/aetherworks/anvil/endian"
	"github.com/aetherworks/anvil/errs"
	"github.com/aetherworks/anvil/internal/options"
	"github.com/aetherworks/anvil/internal/pool"
	"github.com/aetherworks/anvil/wire"
)

const (
	// ChunksWidth is the number of chunks along each axis of a region.
	ChunksWidth = 32
	sectorSize  = 4096
	headerSize  = ChunksWidth * ChunksWidth * 4
)

var regionFileName = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.mc[ar]$`)

// chunkState is the per-slot bookkeeping for one of the 1024 chunk
// positions: whether a chunk is present at all, its raw (still
// compressed, for compressed schemes) payload bytes read during Open,
// and the cached decode result computed lazily on first access (spec
// §4.4: "decompression and decoding happen on first access and the
// result is cached").
type chunkState struct {
	present bool
	scheme  compress.Scheme
	payload []byte

	decoded bool
	chunk   *Chunk
	err     error
}

// Region is an in-memory view of one region file's chunk table. All
// chunk bytes are read during Open and the file is closed before Open
// returns (spec §5: "opens the region file once, reads all chunk bytes,
// and closes it before returning; on-demand decompression operates on
// in-memory buffers").
type Region struct {
	chunks [ChunksWidth][ChunksWidth]chunkState
	logger *log.Logger

	rx, rz     int
	haveCoords bool
}

// Option configures Region construction.
type Option = options.Option[*Region]

// WithLogger overrides the *log.Logger used to report skipped chunks
// (unsupported compression, missing external .mcc file, malformed
// payload). The default is log.Default(), matching the teacher's own
// ambient choice of stdlib logging with no injected dependency.
func WithLogger(l *log.Logger) Option {
	return options.NoError(func(r *Region) {
		r.logger = l
	})
}

func newRegion(opts ...Option) (*Region, error) {
	r := &Region{logger: log.Default()}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Open reads path and parses its header and chunk bytes. A region file
// whose header is truncated yields an empty Region rather than an error
// (spec §4.4).
func Open(path string, opts ...Option) (*Region, error) {
	r, err := newRegion(opts...)
	if err != nil {
		return nil, err
	}
	if rx, rz, ok := parseRegionFileName(filepath.Base(path)); ok {
		r.rx, r.rz, r.haveCoords = rx, rz, true
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, headerSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if n < headerSize {
		return r, nil
	}

	type location struct {
		entry locationEntry
		x, z  int
	}
	var locations []location
	for z := 0; z < ChunksWidth; z++ {
		for x := 0; x < ChunksWidth; x++ {
			idx := z*ChunksWidth + x
			raw := endian.BigEndian.Uint32(header[idx*4 : idx*4+4])
			entry := parseLocationEntry(raw)
			if entry.empty() {
				continue
			}
			locations = append(locations, location{entry: entry, x: x, z: z})
		}
	}

	// Sort ascending by offset so reads proceed in file order; a
	// performance hint only, per spec §4.4.
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].entry.byteOffset() < locations[j].entry.byteOffset()
	})

	dir := filepath.Dir(path)
	for _, loc := range locations {
		if err := r.readChunkBytes(f, dir, loc.entry, loc.x, loc.z); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Region) readChunkBytes(f *os.File, dir string, entry locationEntry, x, z int) error {
	if _, err := f.Seek(entry.byteOffset(), io.SeekStart); err != nil {
		return err
	}

	var head [5]byte
	if _, err := io.ReadFull(f, head[:]); err != nil {
		r.logger.Printf("region: chunk (%d,%d): truncated payload header, skipping", x, z)
		return nil
	}
	declaredLen := endian.BigEndian.Uint32(head[0:4])
	descriptor := head[4]

	external := descriptor&0x80 != 0
	scheme := compress.Scheme(descriptor &^ 0x80)
	if scheme != compress.SchemeGZip && scheme != compress.SchemeZlib && scheme != compress.SchemeUncompressed {
		r.logger.Printf("region: chunk (%d,%d): unsupported compression scheme %d, skipping", x, z, scheme)
		return nil
	}

	var payload []byte
	if external {
		if !r.haveCoords {
			r.logger.Printf("region: chunk (%d,%d): external .mcc payload but region coordinates are unknown, skipping", x, z)
			return nil
		}
		cx, cz := r.rx*ChunksWidth+x, r.rz*ChunksWidth+z
		extPath := filepath.Join(dir, fmt.Sprintf("c.%d.%d.mcc", cx, cz))
		data, err := os.ReadFile(extPath)
		if err != nil {
			r.logger.Printf("region: chunk (%d,%d): external payload %s: %v, skipping", x, z, extPath, err)
			return nil
		}
		payload = data
	} else {
		if declaredLen == 0 {
			r.logger.Printf("region: chunk (%d,%d): zero-length payload, skipping", x, z)
			return nil
		}

		buf := pool.GetChunkBuffer()
		defer pool.PutChunkBuffer(buf)
		buf.ExtendOrGrow(int(declaredLen - 1))
		if _, err := io.ReadFull(f, buf.Bytes()); err != nil {
			r.logger.Printf("region: chunk (%d,%d): truncated payload, skipping", x, z)
			return nil
		}
		// chunkState.payload outlives this call and the pooled buffer, so
		// it gets its own backing array rather than the pool's.
		payload = append([]byte(nil), buf.Bytes()...)
	}

	r.chunks[z][x] = chunkState{present: true, scheme: scheme, payload: payload}
	return nil
}

// Chunk returns the decoded chunk at (x, z), x and z in 0..31.
// The second return value reports whether a chunk is present at all;
// decode failures on a present chunk are reported as the third value.
func (r *Region) Chunk(x, z int) (*Chunk, bool, error) {
	if x < 0 || x >= ChunksWidth || z < 0 || z >= ChunksWidth {
		return nil, false, errs.ErrIndexOutOfRange
	}

	cs := &r.chunks[z][x]
	if !cs.present {
		return nil, false, nil
	}
	if !cs.decoded {
		r.decode(cs, x, z)
	}
	return cs.chunk, true, cs.err
}

func (r *Region) decode(cs *chunkState, x, z int) {
	cs.decoded = true

	data := cs.payload
	if cs.scheme != compress.SchemeUncompressed {
		codec, err := compress.CodecFor(cs.scheme)
		if err != nil {
			cs.err = err
			return
		}
		data, err = codec.Decompress(cs.payload)
		if err != nil {
			cs.err = fmt.Errorf("region: chunk (%d,%d): decompress: %w", x, z, err)
			return
		}
	}

	root, name, err := wire.Decode(bytes.NewReader(data))
	if err != nil {
		cs.err = fmt.Errorf("region: chunk (%d,%d): decode: %w", x, z, err)
		return
	}
	cs.chunk = &Chunk{Root: root, RootName: name, x: x, z: z}
}

// All yields every present chunk in row-major order (z outer, x inner),
// regardless of on-disk sector order (spec §5). Chunks that fail to
// decode are logged and skipped rather than aborting the iteration.
func (r *Region) All() iter.Seq[*Chunk] {
	return func(yield func(*Chunk) bool) {
		for z := 0; z < ChunksWidth; z++ {
			for x := 0; x < ChunksWidth; x++ {
				if !r.chunks[z][x].present {
					continue
				}
				c, _, err := r.Chunk(x, z)
				if err != nil {
					r.logger.Printf("region: %v", err)
					continue
				}
				if c == nil {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

func parseRegionFileName(name string) (rx, rz int, ok bool) {
	m := regionFileName.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	rx, errX := strconv.Atoi(m[1])
	rz, errZ := strconv.Atoi(m[2])
	if errX != nil || errZ != nil {
		return 0, 0, false
	}
	return rx, rz, true
}
