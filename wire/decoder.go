package wire

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/aetherworks/anvil/endian"
	"github.com/aetherworks/anvil/errs"
	"github.com/aetherworks/anvil/tag"
)

// decoder reads tags from a byte stream using an explicit big-endian
// codec (spec §4.2), never backtracking (Design Notes §9).
type decoder struct {
	r       io.Reader
	engine  endian.Engine
	scratch [8]byte
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{r: r, engine: endian.BigEndian}
}

func (d *decoder) readFull(n int) ([]byte, error) {
	buf := d.scratch[:n]
	if _, err := io.ReadFull(d.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errs.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

func (d *decoder) readKindByte() (tag.Kind, error) {
	b, err := d.readFull(1)
	if err != nil {
		return 0, err
	}
	return tag.Kind(b[0]), nil
}

func (d *decoder) readInt32() (int32, error) {
	b, err := d.readFull(4)
	if err != nil {
		return 0, err
	}
	return int32(d.engine.Uint32(b)), nil
}

func (d *decoder) readUint16() (uint16, error) {
	b, err := d.readFull(2)
	if err != nil {
		return 0, err
	}
	return d.engine.Uint16(b), nil
}

// readName reads an NBT name: a uint16 big-endian byte length, then that
// many UTF-8 bytes.
func (d *decoder) readName() (string, error) {
	n, err := d.readUint16()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", errs.ErrUnexpectedEOF
	}
	if !utf8.Valid(buf) {
		return "", errs.ErrInvalidUTF8
	}
	return string(buf), nil
}

// readRoot decodes one rooted NBT stream: kind byte, name, payload.
func (d *decoder) readRoot() (tag.Tag, string, error) {
	kind, err := d.readKindByte()
	if err != nil {
		return nil, "", err
	}
	if kind == tag.KindEnd {
		return nil, "", errs.ErrInvalidRootTag
	}
	name, err := d.readName()
	if err != nil {
		return nil, "", err
	}
	root, err := d.readPayload(kind)
	if err != nil {
		return nil, "", err
	}
	return root, name, nil
}

// readPayload decodes the payload for a tag of the given kind, excluding
// any preceding kind byte or name.
func (d *decoder) readPayload(kind tag.Kind) (tag.Tag, error) {
	switch kind {
	case tag.KindByte:
		b, err := d.readFull(1)
		if err != nil {
			return nil, err
		}
		return tag.NewByte(int8(b[0])), nil

	case tag.KindShort:
		b, err := d.readFull(2)
		if err != nil {
			return nil, err
		}
		return tag.NewShort(int16(d.engine.Uint16(b))), nil

	case tag.KindInt:
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		return tag.NewInt(v), nil

	case tag.KindLong:
		b, err := d.readFull(8)
		if err != nil {
			return nil, err
		}
		return tag.NewLong(int64(d.engine.Uint64(b))), nil

	case tag.KindFloat:
		b, err := d.readFull(4)
		if err != nil {
			return nil, err
		}
		return tag.NewFloat(math.Float32frombits(d.engine.Uint32(b))), nil

	case tag.KindDouble:
		b, err := d.readFull(8)
		if err != nil {
			return nil, err
		}
		return tag.NewDouble(math.Float64frombits(d.engine.Uint64(b))), nil

	case tag.KindString:
		s, err := d.readName()
		if err != nil {
			return nil, err
		}
		st, err := tag.NewString(s)
		if err != nil {
			return nil, err
		}
		return st, nil

	case tag.KindByteArray:
		return d.readByteArray()

	case tag.KindIntArray:
		return d.readIntArray()

	case tag.KindLongArray:
		return d.readLongArray()

	case tag.KindList:
		return d.readList()

	case tag.KindCompound:
		return d.readCompound()

	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagID, kind)
	}
}

func (d *decoder) readByteArray() (tag.Tag, error) {
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errs.ErrNegativeLength
	}
	vs := make([]int8, count)
	for i := range vs {
		b, err := d.readFull(1)
		if err != nil {
			return nil, err
		}
		vs[i] = int8(b[0])
	}
	return tag.NewByteArray(vs), nil
}

func (d *decoder) readIntArray() (tag.Tag, error) {
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errs.ErrNegativeLength
	}
	vs := make([]int32, count)
	for i := range vs {
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return tag.NewIntArray(vs), nil
}

func (d *decoder) readLongArray() (tag.Tag, error) {
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errs.ErrNegativeLength
	}
	vs := make([]int64, count)
	for i := range vs {
		b, err := d.readFull(8)
		if err != nil {
			return nil, err
		}
		vs[i] = int64(d.engine.Uint64(b))
	}
	return tag.NewLongArray(vs), nil
}

// readList decodes a List: one element-kind byte, a big-endian int32
// count, then count payloads of that kind. A count <=0 with element
// kind End decodes to an empty List with element kind End (spec §4.2).
func (d *decoder) readList() (tag.Tag, error) {
	elemKind, err := d.readKindByte()
	if err != nil {
		return nil, err
	}
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}

	if elemKind == tag.KindEnd {
		if count <= 0 {
			l, _ := tag.NewList(tag.KindEnd)
			return l, nil
		}
		return nil, fmt.Errorf("%w: list declares End element kind with positive count %d", errs.ErrUnknownTagID, count)
	}
	if count < 0 {
		return nil, errs.ErrNegativeLength
	}
	if !elemKind.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagID, elemKind)
	}

	elements := make([]tag.Tag, count)
	for i := range elements {
		e, err := d.readPayload(elemKind)
		if err != nil {
			return nil, err
		}
		elements[i] = e
	}
	return tag.NewList(elemKind, elements...)
}

// readCompound decodes a Compound: a stream of (kind, name, payload)
// triples terminated by a kind byte of 0 (End).
func (d *decoder) readCompound() (tag.Tag, error) {
	c := tag.NewCompound()
	for {
		kind, err := d.readKindByte()
		if err != nil {
			return nil, err
		}
		if kind == tag.KindEnd {
			return c, nil
		}
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagID, kind)
		}
		name, err := d.readName()
		if err != nil {
			return nil, err
		}
		value, err := d.readPayload(kind)
		if err != nil {
			return nil, err
		}
		if err := c.Set(name, value); err != nil {
			return nil, err
		}
	}
}
