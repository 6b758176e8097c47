package tag

import (
	"fmt"
	"math"
)

// Byte is a signed 8-bit integer tag.
type Byte struct{ Value int8 }

// Short is a signed 16-bit integer tag.
type Short struct{ Value int16 }

// Int is a signed 32-bit integer tag.
type Int struct{ Value int32 }

// Long is a signed 64-bit integer tag.
type Long struct{ Value int64 }

// Float is an IEEE-754 binary32 tag.
type Float struct{ Value float32 }

// Double is an IEEE-754 binary64 tag.
type Double struct{ Value float64 }

// NewByte wraps v modulo 2^8 into the signed Byte range, per spec §3's
// two's-complement truncation rule.
func NewByte[I Integer](v I) Byte { return Byte{Value: int8(int64(v))} }

// NewShort wraps v modulo 2^16 into the signed Short range.
func NewShort[I Integer](v I) Short { return Short{Value: int16(int64(v))} }

// NewInt wraps v modulo 2^32 into the signed Int range.
func NewInt[I Integer](v I) Int { return Int{Value: int32(int64(v))} }

// NewLong wraps v modulo 2^64 into the signed Long range.
func NewLong[I Integer](v I) Long { return Long{Value: int64(v)} }

// NewFloat rounds v through a binary32 round-trip.
func NewFloat[F Floating](v F) Float { return Float{Value: float32(v)} }

// NewDouble stores v with no further normalization.
func NewDouble[F Floating](v F) Double { return Double{Value: float64(v)} }

// Integer constrains the accepted inputs to integer-typed constructors.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating constrains the accepted inputs to float-typed constructors.
type Floating interface {
	~float32 | ~float64
}

func (Byte) Kind() Kind   { return KindByte }
func (Short) Kind() Kind  { return KindShort }
func (Int) Kind() Kind    { return KindInt }
func (Long) Kind() Kind   { return KindLong }
func (Float) Kind() Kind  { return KindFloat }
func (Double) Kind() Kind { return KindDouble }

func (t Byte) Copy() Tag   { return t }
func (t Short) Copy() Tag  { return t }
func (t Int) Copy() Tag    { return t }
func (t Long) Copy() Tag   { return t }
func (t Float) Copy() Tag  { return t }
func (t Double) Copy() Tag { return t }

func (t Byte) Equal(other Tag) bool {
	o, ok := other.(Byte)
	return ok && o.Value == t.Value
}

func (t Short) Equal(other Tag) bool {
	o, ok := other.(Short)
	return ok && o.Value == t.Value
}

func (t Int) Equal(other Tag) bool {
	o, ok := other.(Int)
	return ok && o.Value == t.Value
}

func (t Long) Equal(other Tag) bool {
	o, ok := other.(Long)
	return ok && o.Value == t.Value
}

// Equal performs exact bit-for-bit comparison of the stored binary32,
// not an epsilon test, per spec §4.1. NaN bit patterns compare equal to
// themselves when the bits match, matching Go's math.Float32bits identity.
func (t Float) Equal(other Tag) bool {
	o, ok := other.(Float)
	return ok && math.Float32bits(o.Value) == math.Float32bits(t.Value)
}

// Equal performs exact bit-for-bit comparison of the stored binary64.
func (t Double) Equal(other Tag) bool {
	o, ok := other.(Double)
	return ok && math.Float64bits(o.Value) == math.Float64bits(t.Value)
}

func (t Byte) String() string   { return fmt.Sprintf("Byte(%d)", t.Value) }
func (t Short) String() string  { return fmt.Sprintf("Short(%d)", t.Value) }
func (t Int) String() string    { return fmt.Sprintf("Int(%d)", t.Value) }
func (t Long) String() string   { return fmt.Sprintf("Long(%d)", t.Value) }
func (t Float) String() string  { return fmt.Sprintf("Float(%v)", t.Value) }
func (t Double) String() string { return fmt.Sprintf("Double(%v)", t.Value) }

// Int64 widens the stored value to int64.
func (t Byte) Int64() int64 { return int64(t.Value) }
func (t Short) Int64() int64 { return int64(t.Value) }
func (t Int) Int64() int64  { return int64(t.Value) }
func (t Long) Int64() int64 { return t.Value }

// Float64 widens the stored value to float64.
func (t Float) Float64() float64  { return float64(t.Value) }
func (t Double) Float64() float64 { return t.Value }
