// Package endian provides the byte-order engine used by the wire and
// region codecs.
//
// NBT's wire format is big-endian only (spec §4.2), so unlike a general
// byte-order package this one does not branch on host endianness: every
// multi-byte value is read and written through an explicit big-endian
// codec, which is both simpler and removes a class of silent mistakes on
// little-endian hosts (see Design Notes §9).
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from the standard
// library's encoding/binary into one interface, matching the shape
// binary.BigEndian already satisfies.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// BigEndian is the single engine this package exposes; it is always
// binary.BigEndian, the only byte order the NBT/Anvil formats define.
var BigEndian Engine = binary.BigEndian
