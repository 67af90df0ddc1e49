package reykunyu

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/nouns"
)

// NounTable returns the conjugation table of a noun entry: one row per
// number, one column per case, each cell a conjugation string.
func NounTable(e Entry, d dialect.Dialect) [][]string {
	return nouns.Table(e.WordRaw.In(d), d, e.Type == TypeProperNoun, e.IsLoanword())
}

// AdjectiveTable holds the attributive forms of an adjective as conjugation
// strings. Prefixed is empty if the adjective has no postnoun form.
type AdjectiveTable struct {
	Prefixed string `json:"prefixed"`
	Suffixed string `json:"suffixed"`
}

// AdjectiveForms returns the attributive forms of an adjective entry.
func AdjectiveForms(e Entry, d dialect.Dialect) AdjectiveTable {
	opts := adjectives.Options{LeAdjective: e.IsLeAdjective(), Dialect: d}
	root := e.WordRaw.In(d)
	prefixed, _ := adjectives.Conjugate(root, adjectives.Postnoun, opts)
	suffixed, _ := adjectives.Conjugate(root, adjectives.Prenoun, opts)
	return AdjectiveTable{Prefixed: prefixed, Suffixed: suffixed}
}

// Table is the conjugation table of one entry. Noun is set for nouns and
// Adjective for adjectives.
type Table struct {
	Entry     Entry           `json:"entry"`
	Noun      [][]string      `json:"noun,omitempty"`
	Adjective *AdjectiveTable `json:"adjective,omitempty"`
}

// Tables returns the conjugation tables of the nouns and adjectives spelled
// word.
func (r *Reykunyu) Tables(word string, d dialect.Dialect) ([]Table, error) {
	word = strings.ToLower(Preprocess(word, d))
	entries := r.Dictionary().GetOfTypes(word, slices.Concat(nounTypes, []WordType{TypeAdjective}), d)
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no noun or adjective %q", ErrEntryNotFound, word)
	}
	tables := make([]Table, 0, len(entries))
	for _, e := range entries {
		t := Table{Entry: e}
		if e.Type.IsNoun() {
			t.Noun = NounTable(e, d)
		} else {
			adj := AdjectiveForms(e, d)
			t.Adjective = &adj
		}
		tables = append(tables, t)
	}
	return tables, nil
}
