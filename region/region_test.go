package region

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aetherworks/anvil/compress"
	"github.com/aetherworks/anvil/tag"
	"github.com/aetherworks/anvil/wire"
)

// buildRegionFile assembles a minimal region file on disk with the given
// chunks placed sequentially on 4KiB sector boundaries, and returns its
// path. entries maps (x,z) to a root tag that gets wire-encoded then
// zlib-compressed, matching the common on-disk case.
func buildRegionFile(t *testing.T, dir, name string, entries map[[2]int]tag.Tag) string {
	t.Helper()

	header := make([]byte, headerSize)
	var body bytes.Buffer
	nextSector := uint32(1) // sector 0 is the header

	type placed struct {
		x, z   int
		sector uint32
		length uint32 // sectors
	}
	var order []placed
	for xz := range entries {
		order = append(order, placed{x: xz[0], z: xz[1]})
	}

	for i := range order {
		x, z := order[i].x, order[i].z
		root := entries[[2]int{x, z}]

		var nbtBuf bytes.Buffer
		require.NoError(t, wire.Encode(&nbtBuf, root, ""))

		compressed, err := compress.ZlibCodec{}.Compress(nbtBuf.Bytes())
		require.NoError(t, err)

		var payload bytes.Buffer
		payload.WriteByte(byte(compress.SchemeZlib))
		payload.Write(compressed)

		var lenPrefix [4]byte
		binary.BigEndian.PutUint32(lenPrefix[:], uint32(payload.Len()))

		sectorStart := nextSector
		body.Write(lenPrefix[:])
		body.Write(payload.Bytes())

		totalLen := 4 + payload.Len()
		sectors := (totalLen + sectorSize - 1) / sectorSize
		padding := sectors*sectorSize - totalLen
		body.Write(make([]byte, padding))

		order[i].sector = sectorStart
		order[i].length = uint32(sectors)
		nextSector += uint32(sectors)

		idx := z*ChunksWidth + x
		loc := (sectorStart << 8) | (order[i].length & 0xFF)
		binary.BigEndian.PutUint32(header[idx*4:idx*4+4], loc)
	}

	path := filepath.Join(dir, name)
	var full bytes.Buffer
	full.Write(header)
	full.Write(body.Bytes())
	require.NoError(t, os.WriteFile(path, full.Bytes(), 0o644))
	return path
}

func sampleCompound(t *testing.T, greeting string) tag.Tag {
	t.Helper()
	c := tag.NewCompound()
	s, err := tag.NewString(greeting)
	require.NoError(t, err)
	require.NoError(t, c.Set("greeting", s))
	return c
}

func TestRegion_OpenAndChunk(t *testing.T) {
	dir := t.TempDir()
	path := buildRegionFile(t, dir, "r.0.0.mca", map[[2]int]tag.Tag{
		{3, 5}: sampleCompound(t, "hello"),
	})

	r, err := Open(path)
	require.NoError(t, err)

	c, present, err := r.Chunk(3, 5)
	require.NoError(t, err)
	require.True(t, present)
	require.NotNil(t, c)
	x, z := c.Coords()
	require.Equal(t, 3, x)
	require.Equal(t, 5, z)

	_, present, err = r.Chunk(0, 0)
	require.NoError(t, err)
	require.False(t, present)
}

func TestRegion_All(t *testing.T) {
	dir := t.TempDir()
	path := buildRegionFile(t, dir, "r.1.-1.mca", map[[2]int]tag.Tag{
		{0, 0}:  sampleCompound(t, "a"),
		{31, 0}: sampleCompound(t, "b"),
		{0, 31}: sampleCompound(t, "c"),
	})

	r, err := Open(path)
	require.NoError(t, err)

	var coords [][2]int
	for c := range r.All() {
		x, z := c.Coords()
		coords = append(coords, [2]int{x, z})
	}
	require.Equal(t, [][2]int{{0, 0}, {31, 0}, {0, 31}}, coords)
}

func TestRegion_TruncatedHeaderYieldsEmptyRegion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.0.0.mca")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0o644))

	r, err := Open(path)
	require.NoError(t, err)

	_, present, err := r.Chunk(0, 0)
	require.NoError(t, err)
	require.False(t, present)
}

func TestRegion_UnsupportedCompressionIsSkipped(t *testing.T) {
	dir := t.TempDir()
	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[0:4], (1<<8)|1) // sector 1, length 1

	var body bytes.Buffer
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], 5)
	body.Write(lenPrefix[:])
	body.WriteByte(99) // unsupported scheme
	body.Write([]byte{0, 0, 0, 0})
	body.Write(make([]byte, sectorSize-body.Len()))

	var full bytes.Buffer
	full.Write(header)
	full.Write(body.Bytes())

	path := filepath.Join(dir, "r.0.0.mca")
	require.NoError(t, os.WriteFile(path, full.Bytes(), 0o644))

	r, err := Open(path)
	require.NoError(t, err)

	_, present, err := r.Chunk(0, 0)
	require.NoError(t, err)
	require.False(t, present)
}

func TestRegion_IndexOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := buildRegionFile(t, dir, "r.0.0.mca", map[[2]int]tag.Tag{})

	r, err := Open(path)
	require.NoError(t, err)

	_, _, err = r.Chunk(32, 0)
	require.Error(t, err)
}
