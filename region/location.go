package region

// locationEntry is the fixed-size, packed record stored in a region
// file's 4KiB header table (spec §4.4): 1024 such entries, one per
// chunk, each a single big-endian uint32 split into a 24-bit sector
// offset and an 8-bit sector length. Modeled as its own packed-record
// type rather than raw arithmetic inline, following the teacher's
// NumericIndexEntry idiom for fixed-size on-disk records.
type locationEntry struct {
	offsetSectors uint32
	lengthSectors uint8
}

// parseLocationEntry unpacks a raw big-endian uint32 header entry.
func parseLocationEntry(raw uint32) locationEntry {
	return locationEntry{
		offsetSectors: raw >> 8,
		lengthSectors: uint8(raw),
	}
}

func (e locationEntry) empty() bool {
	return e.offsetSectors == 0 && e.lengthSectors == 0
}

func (e locationEntry) byteOffset() int64 {
	return int64(e.offsetSectors) * sectorSize
}
