package snbt

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aetherworks/anvil/internal/options"
	"github.com/aetherworks/anvil/tag"
)

// printerConfig holds the Print behavior configured via PrintOption.
type printerConfig struct {
	sortKeys bool
}

// PrintOption configures Print, following the same functional-option
// shape as the rest of this module.
type PrintOption = options.Option[*printerConfig]

// WithSortedKeys emits Compound keys in ascending lexicographic order
// instead of the Compound's own insertion order.
func WithSortedKeys() PrintOption {
	return options.NoError(func(c *printerConfig) {
		c.sortKeys = true
	})
}

// isUnquotedByte matches the UnquotedString charset: letters, digits, '.',
// '+', '_', '-'. A compound key printed unquoted must match this in full.
func isUnquotedByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b == '.' || b == '+' || b == '_' || b == '-':
		return true
	}
	return false
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUnquotedByte(s[i]) {
			return false
		}
	}
	return true
}

// Print renders t as canonical SNBT text (spec §4.3). Compound keys are
// emitted unquoted when they fit the unquoted charset, otherwise
// double-quoted; Double is always suffixed with 'd' for unambiguous
// round-tripping (an explicit departure from vanilla NBT printers, which
// drop the suffix when unambiguous).
func Print(t tag.Tag, opts ...PrintOption) string {
	cfg := &printerConfig{}
	_ = options.Apply(cfg, opts...)

	var b strings.Builder
	writeValue(&b, t, cfg)
	return b.String()
}

func writeValue(b *strings.Builder, t tag.Tag, cfg *printerConfig) {
	switch v := t.(type) {
	case tag.Byte:
		b.WriteString(strconv.FormatInt(int64(v.Value), 10))
		b.WriteByte('b')

	case tag.Short:
		b.WriteString(strconv.FormatInt(int64(v.Value), 10))
		b.WriteByte('s')

	case tag.Int:
		b.WriteString(strconv.FormatInt(int64(v.Value), 10))

	case tag.Long:
		b.WriteString(strconv.FormatInt(v.Value, 10))
		b.WriteByte('l')

	case tag.Float:
		b.WriteString(strconv.FormatFloat(float64(v.Value), 'g', -1, 32))
		b.WriteByte('f')

	case tag.Double:
		b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
		b.WriteByte('d')

	case tag.String:
		writeQuotedString(b, v.Value)

	case *tag.ByteArray:
		b.WriteString("[B;")
		for i, x := range v.Values() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(x), 10))
			b.WriteByte('b')
		}
		b.WriteByte(']')

	case *tag.IntArray:
		b.WriteString("[I;")
		for i, x := range v.Values() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(x), 10))
		}
		b.WriteByte(']')

	case *tag.LongArray:
		b.WriteString("[L;")
		for i, x := range v.Values() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(x, 10))
			b.WriteByte('l')
		}
		b.WriteByte(']')

	case *tag.List:
		b.WriteByte('[')
		for i, el := range v.All() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValue(b, el, cfg)
		}
		b.WriteByte(']')

	case *tag.Compound:
		writeCompound(b, v, cfg)

	default:
		// Unreachable for tags produced by this module's own decoders, but
		// keep Print total rather than panicking on a foreign Tag impl.
		b.WriteString(t.String())
	}
}

func writeCompound(b *strings.Builder, c *tag.Compound, cfg *printerConfig) {
	keys := c.Keys()
	if cfg.sortKeys {
		keys = append([]string(nil), keys...)
		sort.Strings(keys)
	}

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCompoundKey(b, k)
		b.WriteByte(':')
		value, _ := c.Get(k)
		writeValue(b, value, cfg)
	}
	b.WriteByte('}')
}

func writeCompoundKey(b *strings.Builder, key string) {
	if isBareIdentifier(key) {
		b.WriteString(key)
		return
	}
	writeQuotedString(b, key)
}

func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
