// Package errs defines the sentinel errors surfaced at NBT API boundaries.
//
// Spec §7 distinguishes three error kinds: Unpack (malformed binary or
// SNBT input), InvalidOperation (illegal mutation or construction), and
// host I/O (propagated unwrapped from the underlying stream, so it has no
// sentinels here). Callers compare with errors.Is; internal code attaches
// context with fmt.Errorf("...: %w", errs.ErrXxx), the same shape the
// teacher's blob decoders use for their own errs.ErrXxx sentinels.
package errs

import "errors"

// Unpack errors: malformed binary or SNBT input.
var (
	ErrUnexpectedEOF     = errors.New("nbt: unexpected end of input")
	ErrUnknownTagID      = errors.New("nbt: unknown tag id")
	ErrInvalidRootTag    = errors.New("nbt: root tag must not be TAG_End")
	ErrInvalidUTF8       = errors.New("nbt: string payload is not valid UTF-8")
	ErrNegativeLength    = errors.New("nbt: negative array or string length")
	ErrHeterogeneousList = errors.New("snbt: list elements must share one tag kind")
	ErrMismatchedArray   = errors.New("snbt: array element does not match the array's declared suffix")
	ErrSyntax            = errors.New("snbt: syntax error")
)

// InvalidOperation errors: illegal mutation or construction.
var (
	ErrWrongKind        = errors.New("nbt: value has the wrong tag kind")
	ErrNotATag          = errors.New("nbt: compound value must be a Tag")
	ErrElementOverflow  = errors.New("nbt: element value overflows the array's width")
	ErrUnknownRegionFmt = errors.New("region: unknown region file format")
	ErrIndexOutOfRange  = errors.New("nbt: index out of range")
)
