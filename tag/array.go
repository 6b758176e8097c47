package tag

import (
	"fmt"

	"github.com/aetherworks/anvil/errs"
)

// ByteArray is an ordered, mutable sequence of signed 8-bit integers.
type ByteArray struct{ values []int8 }

// IntArray is an ordered, mutable sequence of signed 32-bit integers.
type IntArray struct{ values []int32 }

// LongArray is an ordered, mutable sequence of signed 64-bit integers.
type LongArray struct{ values []int64 }

// NewByteArray copies vs into a new ByteArray.
func NewByteArray(vs []int8) *ByteArray {
	cp := make([]int8, len(vs))
	copy(cp, vs)
	return &ByteArray{values: cp}
}

// NewIntArray copies vs into a new IntArray.
func NewIntArray(vs []int32) *IntArray {
	cp := make([]int32, len(vs))
	copy(cp, vs)
	return &IntArray{values: cp}
}

// NewLongArray copies vs into a new LongArray.
func NewLongArray(vs []int64) *LongArray {
	cp := make([]int64, len(vs))
	copy(cp, vs)
	return &LongArray{values: cp}
}

func (*ByteArray) Kind() Kind { return KindByteArray }
func (*IntArray) Kind() Kind  { return KindIntArray }
func (*LongArray) Kind() Kind { return KindLongArray }

func (a *ByteArray) ElemKind() Kind { return KindByte }
func (a *IntArray) ElemKind() Kind  { return KindInt }
func (a *LongArray) ElemKind() Kind { return KindLong }

func (a *ByteArray) Len() int { return len(a.values) }
func (a *IntArray) Len() int  { return len(a.values) }
func (a *LongArray) Len() int { return len(a.values) }

// Values returns a copy of the backing slice; the caller may not observe
// or mutate the array's owned buffer directly.
func (a *ByteArray) Values() []int8 {
	cp := make([]int8, len(a.values))
	copy(cp, a.values)
	return cp
}

func (a *IntArray) Values() []int32 {
	cp := make([]int32, len(a.values))
	copy(cp, a.values)
	return cp
}

func (a *LongArray) Values() []int64 {
	cp := make([]int64, len(a.values))
	copy(cp, a.values)
	return cp
}

// Get returns the element at i.
func (a *ByteArray) Get(i int) int8 { return a.values[i] }
func (a *IntArray) Get(i int) int32 { return a.values[i] }
func (a *LongArray) Get(i int) int64 { return a.values[i] }

// Set assigns v, modulo-wrapped to the element width, at index i.
func (a *ByteArray) Set(i int, v int64) { a.values[i] = int8(v) }
func (a *IntArray) Set(i int, v int64)  { a.values[i] = int32(v) }
func (a *LongArray) Set(i int, v int64) { a.values[i] = v }

// Insert inserts v, modulo-wrapped to the element width, before index i.
func (a *ByteArray) Insert(i int, v int64) error {
	if i < 0 || i > len(a.values) {
		return fmt.Errorf("%w: byte array index %d out of range [0,%d]", errs.ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values, 0)
	copy(a.values[i+1:], a.values[i:])
	a.values[i] = int8(v)
	return nil
}

func (a *IntArray) Insert(i int, v int64) error {
	if i < 0 || i > len(a.values) {
		return fmt.Errorf("%w: int array index %d out of range [0,%d]", errs.ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values, 0)
	copy(a.values[i+1:], a.values[i:])
	a.values[i] = int32(v)
	return nil
}

func (a *LongArray) Insert(i int, v int64) error {
	if i < 0 || i > len(a.values) {
		return fmt.Errorf("%w: long array index %d out of range [0,%d]", errs.ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values, 0)
	copy(a.values[i+1:], a.values[i:])
	a.values[i] = v
	return nil
}

// Delete removes the element at index i.
func (a *ByteArray) Delete(i int) error {
	if i < 0 || i >= len(a.values) {
		return fmt.Errorf("%w: byte array index %d out of range [0,%d)", errs.ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
	return nil
}

func (a *IntArray) Delete(i int) error {
	if i < 0 || i >= len(a.values) {
		return fmt.Errorf("%w: int array index %d out of range [0,%d)", errs.ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
	return nil
}

func (a *LongArray) Delete(i int) error {
	if i < 0 || i >= len(a.values) {
		return fmt.Errorf("%w: long array index %d out of range [0,%d)", errs.ErrIndexOutOfRange, i, len(a.values))
	}
	a.values = append(a.values[:i], a.values[i+1:]...)
	return nil
}

func (a *ByteArray) Copy() Tag { return NewByteArray(a.values) }
func (a *IntArray) Copy() Tag  { return NewIntArray(a.values) }
func (a *LongArray) Copy() Tag { return NewLongArray(a.values) }

func (a *ByteArray) Equal(other Tag) bool {
	o, ok := other.(*ByteArray)
	if !ok || len(o.values) != len(a.values) {
		return false
	}
	for i, v := range a.values {
		if o.values[i] != v {
			return false
		}
	}
	return true
}

func (a *IntArray) Equal(other Tag) bool {
	o, ok := other.(*IntArray)
	if !ok || len(o.values) != len(a.values) {
		return false
	}
	for i, v := range a.values {
		if o.values[i] != v {
			return false
		}
	}
	return true
}

func (a *LongArray) Equal(other Tag) bool {
	o, ok := other.(*LongArray)
	if !ok || len(o.values) != len(a.values) {
		return false
	}
	for i, v := range a.values {
		if o.values[i] != v {
			return false
		}
	}
	return true
}

func (a *ByteArray) String() string { return fmt.Sprintf("ByteArray(len=%d)", len(a.values)) }
func (a *IntArray) String() string  { return fmt.Sprintf("IntArray(len=%d)", len(a.values)) }
func (a *LongArray) String() string { return fmt.Sprintf("LongArray(len=%d)", len(a.values)) }

var (
	_ Sequence = (*ByteArray)(nil)
	_ Sequence = (*IntArray)(nil)
	_ Sequence = (*LongArray)(nil)
)
