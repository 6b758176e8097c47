package region

import "github.com/aetherworks/anvil/tag"

// Chunk is a decoded chunk's root NBT tag together with its position
// within the region (spec §4.4: Region::get_chunk returns "the parsed
// chunk NBT ... via §4.2 decoding of the decompressed bytes, which is
// itself a root NBT stream"). Coords is a supplemented convenience: the
// reference implementation's Chunk wraps only the tag, but All's
// row-major iteration needs coordinates alongside each yielded value.
type Chunk struct {
	Root     tag.Tag
	RootName string

	x, z int
}

// Coords returns the chunk's position within its region, 0..31 on each axis.
func (c *Chunk) Coords() (x, z int) {
	return c.x, c.z
}
