package wire

import (
	"fmt"
	"io"
	"math"

	"github.com/aetherworks/anvil/endian"
	"github.com/aetherworks/anvil/errs"
	"github.com/aetherworks/anvil/internal/pool"
	"github.com/aetherworks/anvil/tag"
)

// encoder writes tags to a byte stream using an explicit big-endian
// codec, buffering each Compound payload through a pooled ByteBuffer
// before a single Write call; List payloads are written straight to the
// current writer (grounded on the teacher's
// internal/pool usage in its own encoders).
type encoder struct {
	w      io.Writer
	engine endian.Engine
}

func newEncoder(w io.Writer) *encoder {
	return &encoder{w: w, engine: endian.BigEndian}
}

func (e *encoder) writeBytes(b []byte) error {
	_, err := e.w.Write(b)
	return err
}

func (e *encoder) writeKindByte(k tag.Kind) error {
	return e.writeBytes([]byte{byte(k)})
}

func (e *encoder) writeInt32(v int32) error {
	var buf [4]byte
	e.engine.PutUint32(buf[:], uint32(v))
	return e.writeBytes(buf[:])
}

func (e *encoder) writeUint16(v uint16) error {
	var buf [2]byte
	e.engine.PutUint16(buf[:], v)
	return e.writeBytes(buf[:])
}

// writeName writes an NBT name: a uint16 big-endian byte length, then the
// UTF-8 bytes (spec §4.2). Names are assumed already-validated, since
// they originate from tag.String/Compound keys which the tag package
// only lets through as valid UTF-8.
func (e *encoder) writeName(name string) error {
	if len(name) > tag.MaxStringBytes {
		return fmt.Errorf("wire: name %q exceeds %d encoded bytes", name, tag.MaxStringBytes)
	}
	if err := e.writeUint16(uint16(len(name))); err != nil {
		return err
	}
	return e.writeBytes([]byte(name))
}

// writeRoot writes a full rooted NBT stream: kind byte, rootName, payload.
func (e *encoder) writeRoot(root tag.Tag, rootName string) error {
	if root == nil || root.Kind() == tag.KindEnd {
		return fmt.Errorf("%w: cannot encode an End tag as the root", errs.ErrInvalidRootTag)
	}
	if err := e.writeKindByte(root.Kind()); err != nil {
		return err
	}
	if err := e.writeName(rootName); err != nil {
		return err
	}
	return e.writePayload(root)
}

func (e *encoder) writePayload(t tag.Tag) error {
	switch v := t.(type) {
	case tag.Byte:
		return e.writeBytes([]byte{byte(v.Value)})

	case tag.Short:
		var buf [2]byte
		e.engine.PutUint16(buf[:], uint16(v.Value))
		return e.writeBytes(buf[:])

	case tag.Int:
		return e.writeInt32(v.Value)

	case tag.Long:
		var buf [8]byte
		e.engine.PutUint64(buf[:], uint64(v.Value))
		return e.writeBytes(buf[:])

	case tag.Float:
		var buf [4]byte
		e.engine.PutUint32(buf[:], math.Float32bits(v.Value))
		return e.writeBytes(buf[:])

	case tag.Double:
		var buf [8]byte
		e.engine.PutUint64(buf[:], math.Float64bits(v.Value))
		return e.writeBytes(buf[:])

	case tag.String:
		return e.writeName(v.Value)

	case *tag.ByteArray:
		if err := e.writeInt32(int32(v.Len())); err != nil {
			return err
		}
		for _, x := range v.Values() {
			if err := e.writeBytes([]byte{byte(x)}); err != nil {
				return err
			}
		}
		return nil

	case *tag.IntArray:
		if err := e.writeInt32(int32(v.Len())); err != nil {
			return err
		}
		for _, x := range v.Values() {
			if err := e.writeInt32(x); err != nil {
				return err
			}
		}
		return nil

	case *tag.LongArray:
		if err := e.writeInt32(int32(v.Len())); err != nil {
			return err
		}
		for _, x := range v.Values() {
			var buf [8]byte
			e.engine.PutUint64(buf[:], uint64(x))
			if err := e.writeBytes(buf[:]); err != nil {
				return err
			}
		}
		return nil

	case *tag.List:
		return e.writeList(v)

	case *tag.Compound:
		return e.writeCompound(v)

	default:
		return fmt.Errorf("wire: unencodable tag kind %s", t.Kind())
	}
}

func (e *encoder) writeList(l *tag.List) error {
	if err := e.writeKindByte(l.ElemKind()); err != nil {
		return err
	}
	if err := e.writeInt32(int32(l.Len())); err != nil {
		return err
	}
	for _, el := range l.All() {
		if err := e.writePayload(el); err != nil {
			return err
		}
	}
	return nil
}

// writeCompound buffers the entries through a pooled ByteBuffer so the
// terminating End byte and the whole payload go out together; this
// mirrors the teacher's pattern of accumulating a payload before a
// single write rather than issuing one syscall/Write per field.
func (e *encoder) writeCompound(c *tag.Compound) error {
	buf := pool.GetWireBuffer()
	defer pool.PutWireBuffer(buf)

	sub := newEncoder(buf)
	for _, key := range c.Keys() {
		value, _ := c.Get(key)
		if err := sub.writeKindByte(value.Kind()); err != nil {
			return err
		}
		if err := sub.writeName(key); err != nil {
			return err
		}
		if err := sub.writePayload(value); err != nil {
			return err
		}
	}
	buf.MustWrite([]byte{byte(tag.KindEnd)})

	return e.writeBytes(buf.Bytes())
}
