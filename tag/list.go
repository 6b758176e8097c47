package tag

import (
	"fmt"

	"github.com/aetherworks/anvil/errs"
)

// List is a homogeneous ordered sequence of tags with a declared element
// kind, fixed at construction (or at the first element ever held). An
// empty List may carry any declared element kind, including KindEnd.
type List struct {
	elemKind Kind
	elements []Tag
}

// NewList builds a List of the given element kind. Every element's
// concrete kind must equal elemKind, or the invalid-operation error
// errs.ErrWrongKind is returned.
func NewList(elemKind Kind, elements ...Tag) (*List, error) {
	for _, e := range elements {
		if e.Kind() != elemKind {
			return nil, fmt.Errorf("%w: list declared %s, got %s", errs.ErrWrongKind, elemKind, e.Kind())
		}
	}
	cp := make([]Tag, len(elements))
	copy(cp, elements)
	return &List{elemKind: elemKind, elements: cp}, nil
}

func (*List) Kind() Kind        { return KindList }
func (l *List) ElemKind() Kind  { return l.elemKind }
func (l *List) Len() int        { return len(l.elements) }

// At returns the element at index i.
func (l *List) At(i int) Tag { return l.elements[i] }

// All returns the elements in order. The returned slice is a copy.
func (l *List) All() []Tag {
	cp := make([]Tag, len(l.elements))
	copy(cp, l.elements)
	return cp
}

// Set replaces the element at index i. v's kind must equal ElemKind().
func (l *List) Set(i int, v Tag) error {
	if i < 0 || i >= len(l.elements) {
		return fmt.Errorf("%w: list index %d", errs.ErrIndexOutOfRange, i)
	}
	if v.Kind() != l.elemKind {
		return fmt.Errorf("%w: list declared %s, got %s", errs.ErrWrongKind, l.elemKind, v.Kind())
	}
	l.elements[i] = v
	return nil
}

// Append adds v to the end of the list. v's kind must equal ElemKind(),
// unless the list is still empty and carries the sentinel KindEnd, in
// which case the first append fixes the list's element kind.
func (l *List) Append(v Tag) error {
	return l.Insert(len(l.elements), v)
}

// Insert adds v before index i. See Append for the element-kind rule.
func (l *List) Insert(i int, v Tag) error {
	if i < 0 || i > len(l.elements) {
		return fmt.Errorf("%w: list index %d", errs.ErrIndexOutOfRange, i)
	}
	if len(l.elements) == 0 && l.elemKind == KindEnd {
		l.elemKind = v.Kind()
	} else if v.Kind() != l.elemKind {
		return fmt.Errorf("%w: list declared %s, got %s", errs.ErrWrongKind, l.elemKind, v.Kind())
	}
	l.elements = append(l.elements, nil)
	copy(l.elements[i+1:], l.elements[i:])
	l.elements[i] = v
	return nil
}

// Delete removes the element at index i.
func (l *List) Delete(i int) error {
	if i < 0 || i >= len(l.elements) {
		return fmt.Errorf("%w: list index %d", errs.ErrIndexOutOfRange, i)
	}
	l.elements = append(l.elements[:i], l.elements[i+1:]...)
	return nil
}

func (l *List) Copy() Tag {
	cp := make([]Tag, len(l.elements))
	for i, e := range l.elements {
		cp[i] = e.Copy()
	}
	return &List{elemKind: l.elemKind, elements: cp}
}

// Equal requires equal element kind AND an equal element sequence,
// per spec §4.1.
func (l *List) Equal(other Tag) bool {
	o, ok := other.(*List)
	if !ok || o.elemKind != l.elemKind || len(o.elements) != len(l.elements) {
		return false
	}
	for i, e := range l.elements {
		if !e.Equal(o.elements[i]) {
			return false
		}
	}
	return true
}

func (l *List) String() string {
	return fmt.Sprintf("List<%s>(len=%d)", l.elemKind, len(l.elements))
}

var _ Sequence = (*List)(nil)
