// Package slot provides name tables for the closed affix enums used by the
// conjugators. Every enum has its "none" variant at index zero.
package slot

import "fmt"

// Names lists the canonical surface name of each value of an enum T,
// indexed by the value itself.
type Names[T ~int] []string

// Name returns the canonical name of v, or a diagnostic string for values
// outside the table.
func (n Names[T]) Name(v T) string {
	if !n.Valid(v) {
		return fmt.Sprintf("%T(%d)", v, int(v))
	}
	return n[v]
}

// Valid reports whether v is one of the enum values.
func (n Names[T]) Valid(v T) bool {
	return v >= 0 && int(v) < len(n)
}

// Lookup returns the value whose canonical name is s.
func (n Names[T]) Lookup(s string) (T, bool) {
	for i, name := range n {
		if name == s {
			return T(i), true
		}
	}
	return 0, false
}
