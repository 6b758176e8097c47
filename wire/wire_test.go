package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aetherworks/anvil/errs"
	"github.com/aetherworks/anvil/tag"
)

func TestEncodeDecodeRoundTrip_Primitives(t *testing.T) {
	cases := []struct {
		name string
		root tag.Tag
	}{
		{"byte", tag.NewByte[int8](127)},
		{"short", tag.NewShort[int16](32767)},
		{"int", tag.NewInt[int32](2147483647)},
		{"long", tag.NewLong[int64](9223372036854775807)},
		{"float", tag.NewFloat(0.4982314705848694)},
		{"double", tag.NewDouble(0.4931287132182315)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tc.root, "test"))

			got, name, err := Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, "test", name)
			require.True(t, tc.root.Equal(got))
		})
	}
}

func TestEncodeDecodeRoundTrip_String(t *testing.T) {
	s, err := tag.NewString("HELLO WORLD THIS IS A TEST STRING ÅÄÖ!")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s, "stringTest"))

	got, name, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "stringTest", name)
	require.True(t, s.Equal(got))
}

func TestEncodeDecodeRoundTrip_ByteArray(t *testing.T) {
	vs := make([]int8, 1000)
	for n := range vs {
		vs[n] = int8((n*n*255 + n*7) % 100)
	}
	arr := tag.NewByteArray(vs)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, arr, "byteArrayTest"))

	got, _, err := Decode(&buf)
	require.NoError(t, err)
	require.True(t, arr.Equal(got))
}

func TestEncodeDecodeRoundTrip_Compound(t *testing.T) {
	nested := tag.NewCompound()
	require.NoError(t, nested.Set("name", mustString(t, "Bananrama")))
	require.NoError(t, nested.Set("value", tag.NewFloat[float32](1.0)))

	listOfCompounds, err := tag.NewList(tag.KindCompound, nested, nested.Copy())
	require.NoError(t, err)

	root := tag.NewCompound()
	require.NoError(t, root.Set("longTest", tag.NewLong[int64](9223372036854775807)))
	require.NoError(t, root.Set("shortTest", tag.NewShort[int16](32767)))
	require.NoError(t, root.Set("byteTest", tag.NewByte[int8](127)))
	require.NoError(t, root.Set("listTest (compound)", listOfCompounds))
	require.NoError(t, root.Set("nested", nested))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, root, "Level"))

	got, name, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "Level", name)
	require.True(t, root.Equal(got))

	// Byte-identical on a second encode of the decoded value.
	var buf2 bytes.Buffer
	require.NoError(t, Encode(&buf2, got, name))
	require.Equal(t, buf.Bytes(), buf2.Bytes())
}

func TestEncodeDecodeRoundTrip_EmptyList(t *testing.T) {
	l, err := tag.NewList(tag.KindEnd)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, l, "empty"))

	got, _, err := Decode(&buf)
	require.NoError(t, err)
	require.True(t, l.Equal(got))
}

func TestDecode_RejectsEndRoot(t *testing.T) {
	_, _, err := Decode(bytes.NewReader([]byte{0x00}))
	require.ErrorIs(t, err, errs.ErrInvalidRootTag)
}

func TestEncode_RejectsEndRoot(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, endTag{}, "x")
	require.ErrorIs(t, err, errs.ErrInvalidRootTag)
}

func TestDecode_TruncatedStreamIsUnexpectedEOF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tag.NewInt[int32](42), "n"))

	truncated := buf.Bytes()[:len(buf.Bytes())-2]
	_, _, err := Decode(bytes.NewReader(truncated))
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}

func TestWriteStreamReadStream_GzipTransparent(t *testing.T) {
	root := tag.NewCompound()
	require.NoError(t, root.Set("greeting", mustString(t, "hi")))

	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, root, "Level", true))

	// The stream must actually be gzip-framed.
	require.True(t, buf.Len() >= 2)
	require.Equal(t, byte(0x1f), buf.Bytes()[0])
	require.Equal(t, byte(0x8b), buf.Bytes()[1])

	got, name, err := ReadStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "Level", name)
	require.True(t, root.Equal(got))
}

func TestWriteStreamReadStream_UncompressedTransparent(t *testing.T) {
	root := tag.NewCompound()
	require.NoError(t, root.Set("greeting", mustString(t, "hi")))

	var buf bytes.Buffer
	require.NoError(t, WriteStream(&buf, root, "Level", false))

	got, name, err := ReadStream(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "Level", name)
	require.True(t, root.Equal(got))
}

func mustString(t *testing.T, v string) tag.Tag {
	t.Helper()
	s, err := tag.NewString(v)
	require.NoError(t, err)
	return s
}

// endTag is a minimal stand-in Tag of kind End, used only to exercise the
// "End is not a valid root" rejection path on the encode side.
type endTag struct{}

func (endTag) Kind() tag.Kind       { return tag.KindEnd }
func (endTag) Equal(o tag.Tag) bool { _, ok := o.(endTag); return ok }
func (endTag) Copy() tag.Tag        { return endTag{} }
func (endTag) String() string       { return "TAG_End" }
