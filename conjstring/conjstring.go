// Package conjstring interprets the compact notation the conjugators use to
// describe a set of surface forms.
//
// Distinct forms are separated by semicolons. Within a form, dashes separate
// morphemes and are dropped from the output. Slashes separate alternatives
// for a single morpheme, and parentheses mark optional letters.
//
//	"ay-oenge-y(ä);-awnge-y(ä)"  →  ayoengeyä, ayoengey, awngeyä, awngey
//	"k-ìyev/iyev-am--e"          →  kìyevame, kiyevame
package conjstring

import (
	"slices"
	"strings"
)

// Expand returns every literal form denoted by pattern, without duplicates,
// in a stable order. An empty pattern denotes no forms at all.
func Expand(pattern string) []string {
	if pattern == "" {
		return nil
	}
	var forms []string
	for _, alternative := range strings.Split(pattern, ";") {
		forms = append(forms, expandForm(alternative)...)
	}
	return unique(forms)
}

// Admits reports whether target is one of the forms denoted by pattern.
func Admits(pattern, target string) bool {
	return slices.Contains(Expand(pattern), target)
}

// expandForm expands a single semicolon-free form. The leftmost optional
// group is resolved first, then the first part that has alternatives.
func expandForm(form string) []string {
	if open := strings.IndexByte(form, '('); open >= 0 {
		if width := strings.IndexByte(form[open:], ')'); width >= 0 {
			before, inner, after := form[:open], form[open+1:open+width], form[open+width+1:]
			with := expandForm(before + inner + after)
			return append(with, expandForm(before+after)...)
		}
	}

	parts := strings.Split(form, "-")
	for i, part := range parts {
		options := strings.Split(part, "/")
		if len(options) < 2 {
			continue
		}
		var forms []string
		for _, option := range options {
			chosen := slices.Clone(parts)
			chosen[i] = option
			forms = append(forms, expandForm(strings.Join(chosen, "-"))...)
		}
		return forms
	}

	return []string{strings.Join(parts, "")}
}

// unique returns ss without repeated elements, keeping first occurrences.
func unique(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
