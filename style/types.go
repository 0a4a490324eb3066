// Package style resolves presentation values for front-matter rendering from
// a small CSS subset. Resolution is read-only and must be consulted
// identically by the measurement and committed passes, so resolved styles are
// computed once per section and reused.
package style

import (
	"strconv"
	"strings"
)

// Value is a parsed CSS property value.
type Value struct {
	Raw     string  // original value text
	Value   float64 // numeric part of dimensions, percentages and numbers
	Unit    string
	Keyword string // identifier, unquoted string or color
}

// Ints interprets a multi-value property as a list of integers.
func (v Value) Ints() []int {
	var out []int
	for _, f := range strings.Fields(v.Raw) {
		if n, err := strconv.Atoi(f); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// Rule is a single ruleset: selectors sharing one declaration block.
type Rule struct {
	Selectors []string
	Props     map[string]Value
}

// Stylesheet holds parsed rules in source order. Later rules win.
type Stylesheet struct {
	Rules []Rule
}

// Resolve returns the value of property prop for the given selector,
// scanning rules in reverse source order.
func (s *Stylesheet) Resolve(selector, prop string) (Value, bool) {
	for i := len(s.Rules) - 1; i >= 0; i-- {
		r := s.Rules[i]
		for _, sel := range r.Selectors {
			if sel != selector {
				continue
			}
			if v, ok := r.Props[prop]; ok {
				return v, true
			}
		}
	}
	return Value{}, false
}

// ResolveScoped resolves prop for "scope selector" falling back to the bare
// selector. Scope is typically a section kind name.
func (s *Stylesheet) ResolveScoped(scope, selector, prop string) (Value, bool) {
	if scope != "" {
		if v, ok := s.Resolve(scope+" "+selector, prop); ok {
			return v, true
		}
	}
	return s.Resolve(selector, prop)
}

// Append merges another stylesheet after this one so its rules take
// precedence.
func (s *Stylesheet) Append(o *Stylesheet) {
	if o != nil {
		s.Rules = append(s.Rules, o.Rules...)
	}
}
