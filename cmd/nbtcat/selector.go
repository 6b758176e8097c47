package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aetherworks/anvil/tag"
)

// selectPath traverses root through a dotted selector, descending into
// Compound keys and List indices at each segment (spec §6: "optional
// dotted selectors traverse Compound keys and List indices").
func selectPath(root tag.Tag, selector string) (tag.Tag, error) {
	current := root
	for _, segment := range strings.Split(selector, ".") {
		if segment == "" {
			return nil, fmt.Errorf("selector: empty path segment in %q", selector)
		}

		switch t := current.(type) {
		case tag.Mapping:
			v, ok := t.Get(segment)
			if !ok {
				return nil, fmt.Errorf("selector: no key %q in compound", segment)
			}
			current = v

		case tag.Sequence:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("selector: %q is not a valid list index", segment)
			}
			if idx < 0 || idx >= t.Len() {
				return nil, fmt.Errorf("selector: index %d out of range (len %d)", idx, t.Len())
			}
			list, ok := t.(*tag.List)
			if !ok {
				return nil, fmt.Errorf("selector: cannot index into %s", t.Kind())
			}
			current = list.At(idx)

		default:
			return nil, fmt.Errorf("selector: cannot descend into %s with %q", current.Kind(), segment)
		}
	}
	return current, nil
}
