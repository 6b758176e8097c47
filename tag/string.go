package tag

import (
	"fmt"
	"unicode/utf8"

	"github.com/aetherworks/anvil/errs"
)

// MaxStringBytes is the largest UTF-8 payload a String tag can encode:
// its wire length prefix is an unsigned 16-bit big-endian byte count.
const MaxStringBytes = 65535

// String holds validated UTF-8 text.
type String struct{ Value string }

// NewString validates that v is UTF-8 and that its encoded length fits
// the 16-bit wire length prefix.
func NewString(v string) (String, error) {
	if !utf8.ValidString(v) {
		return String{}, fmt.Errorf("%w: string tag value is not valid UTF-8", errs.ErrInvalidUTF8)
	}
	if len(v) > MaxStringBytes {
		return String{}, fmt.Errorf("%w: string tag encoded length %d exceeds %d bytes", errs.ErrElementOverflow, len(v), MaxStringBytes)
	}
	return String{Value: v}, nil
}

func (String) Kind() Kind { return KindString }

func (t String) Copy() Tag { return t }

func (t String) Equal(other Tag) bool {
	o, ok := other.(String)
	return ok && o.Value == t.Value
}

func (t String) String() string { return fmt.Sprintf("String(%q)", t.Value) }
