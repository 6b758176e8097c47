package tag

import (
	"fmt"

	"github.com/aetherworks/anvil/errs"
)

// Compound is an ordered mapping from string key to Tag value. Iteration
// order equals insertion order and is preserved across decode, in-memory
// mutation, and encode (spec §3), so a read→write cycle with no
// intervening mutation is byte-exact.
type Compound struct {
	order  []string
	values map[string]Tag
}

// NewCompound returns an empty Compound.
func NewCompound() *Compound {
	return &Compound{values: make(map[string]Tag)}
}

func (*Compound) Kind() Kind { return KindCompound }
func (c *Compound) Len() int { return len(c.order) }

// Get returns the value for key and whether it was present.
func (c *Compound) Get(key string) (Tag, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set inserts or replaces the value for key, appending key to the
// insertion order only the first time it is set.
func (c *Compound) Set(key string, value Tag) error {
	if value == nil {
		return fmt.Errorf("%w: compound value must be a Tag, got nil", errs.ErrNotATag)
	}
	if _, exists := c.values[key]; !exists {
		c.order = append(c.order, key)
	}
	c.values[key] = value
	return nil
}

// Delete removes key, reporting whether it was present.
func (c *Compound) Delete(key string) bool {
	if _, ok := c.values[key]; !ok {
		return false
	}
	delete(c.values, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (c *Compound) Keys() []string {
	cp := make([]string, len(c.order))
	copy(cp, c.order)
	return cp
}

func (c *Compound) Copy() Tag {
	cp := &Compound{
		order:  make([]string, len(c.order)),
		values: make(map[string]Tag, len(c.values)),
	}
	copy(cp.order, c.order)
	for k, v := range c.values {
		cp.values[k] = v.Copy()
	}
	return cp
}

// Equal requires an equal key set and equal value per key; insertion
// order is not part of equality, per spec §4.1.
func (c *Compound) Equal(other Tag) bool {
	o, ok := other.(*Compound)
	if !ok || len(o.values) != len(c.values) {
		return false
	}
	for k, v := range c.values {
		ov, exists := o.values[k]
		if !exists || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (c *Compound) String() string {
	return fmt.Sprintf("Compound(len=%d)", len(c.order))
}

var _ Mapping = (*Compound)(nil)
