package reykunyu

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

// ErrEntryNotFound is returned when no entry has the requested word and type.
var ErrEntryNotFound = errors.New("entry not found")

// Entry is a dictionary headword.
type Entry struct {
	// ID is the position of the entry in the dictionary file.
	ID int `json:"id"`
	// Navi is the raw FN form once the entry is in a Dictionary. In the
	// dictionary file it holds the syllabified combined notation. It is
	// read and written under the "na'vi" key by the JSON methods below.
	Navi string   `json:"-"`
	Type WordType `json:"type"`
	// Word and WordRaw are filled in when the entry is indexed.
	Word    dialect.Forms `json:"word"`
	WordRaw dialect.Forms `json:"word_raw"`
	// Infixes is the verb template with two dots, like "t.ìr.an".
	Infixes      string              `json:"infixes,omitempty"`
	Etymology    string              `json:"etymology,omitempty"`
	Status       string              `json:"status,omitempty"`
	Translations []map[string]string `json:"translations"`
}

// naviKey is the JSON key of Entry.Navi. encoding/json rejects struct tags
// containing an apostrophe, so the key is handled by hand.
const naviKey = "na'vi"

// entryFields has the fields of Entry without its JSON methods.
type entryFields Entry

func (e Entry) MarshalJSON() ([]byte, error) {
	fields, err := json.Marshal(entryFields(e))
	if err != nil {
		return nil, err
	}
	navi, err := json.Marshal(map[string]string{naviKey: e.Navi})
	if err != nil {
		return nil, err
	}
	return joinObjects(navi, fields), nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*entryFields)(e)); err != nil {
		return err
	}
	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	if raw, ok := keyed[naviKey]; ok {
		if err := json.Unmarshal(raw, &e.Navi); err != nil {
			return fmt.Errorf("%s: %w", naviKey, err)
		}
	}
	return nil
}

// joinObjects merges the members of two encoded JSON objects.
func joinObjects(a, b []byte) []byte {
	a = bytes.TrimSuffix(bytes.TrimSpace(a), []byte("}"))
	b = bytes.TrimPrefix(bytes.TrimSpace(b), []byte("{"))
	if len(bytes.TrimSpace(b)) == 1 || len(bytes.TrimSpace(a)) == 1 {
		return append(a, b...)
	}
	out := append(a, ',')
	return append(out, b...)
}

// Key returns the "word:type" key that identifies the entry.
func (e Entry) Key() string {
	return e.Navi + ":" + string(e.Type)
}

// IsLoanword reports whether the entry is marked as a loanword.
func (e Entry) IsLoanword() bool {
	return e.Status == "loan"
}

// IsLeAdjective reports whether the entry is an adjective derived with le-.
func (e Entry) IsLeAdjective() bool {
	return adjectives.IsLeAdjective(e.Etymology)
}

// Translation returns the meanings of the entry in lang joined by "; ",
// falling back to English for meanings that have no translation in lang.
func (e Entry) Translation(lang string) string {
	parts := make([]string, 0, len(e.Translations))
	for _, t := range e.Translations {
		if s, ok := t[lang]; ok {
			parts = append(parts, s)
		} else {
			parts = append(parts, t["en"])
		}
	}
	return strings.Join(parts, "; ")
}

// Dictionary is an immutable snapshot of the dictionary entries, indexed per
// dialect by lowercase raw form.
type Dictionary struct {
	entries     []Entry
	searchables map[dialect.Dialect]map[string][]int
	keys        map[string]int
	// problems lists data errors found while indexing.
	problems []string
}

// NewDictionary indexes entries. Each entry's Navi must be in syllabified
// combined notation; its dialect forms are derived from it. Duplicate
// word:type keys are kept but reported by Problems.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{
		entries: make([]Entry, len(entries)),
		searchables: map[dialect.Dialect]map[string][]int{
			dialect.Combined: make(map[string][]int),
			dialect.FN:       make(map[string][]int),
			dialect.RN:       make(map[string][]int),
		},
		keys: make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		e.ID = i
		e.Word = dialect.NewForms(e.Navi)
		e.WordRaw = e.Word.Raw()
		e.Navi = e.WordRaw.FN
		d.entries[i] = e

		for _, dd := range []dialect.Dialect{dialect.FN, dialect.RN} {
			searchable := strings.ToLower(e.WordRaw.In(dd))
			d.searchables[dd][searchable] = append(d.searchables[dd][searchable], i)
			if !slices.Contains(d.searchables[dialect.Combined][searchable], i) {
				d.searchables[dialect.Combined][searchable] = append(d.searchables[dialect.Combined][searchable], i)
			}
		}

		key := e.Key()
		if _, ok := d.keys[key]; ok {
			d.problems = append(d.problems, fmt.Sprintf("duplicate word/type [%s]", key))
		}
		d.keys[key] = i
	}
	return d
}

// Get returns the entry spelled word (lowercase raw form) in dialect dd with
// type t.
func (d *Dictionary) Get(word string, t WordType, dd dialect.Dialect) (Entry, bool) {
	for _, id := range d.searchables[dd][word] {
		if d.entries[id].Type == t {
			return d.entries[id], true
		}
	}
	return Entry{}, false
}

// GetOfTypes returns the entries spelled word with one of the types, in the
// order of types.
func (d *Dictionary) GetOfTypes(word string, types []WordType, dd dialect.Dialect) []Entry {
	var result []Entry
	for _, t := range types {
		if e, ok := d.Get(word, t, dd); ok {
			result = append(result, e)
		}
	}
	return result
}

// GetNotOfTypes returns the entries spelled word whose type is not listed.
func (d *Dictionary) GetNotOfTypes(word string, types []WordType, dd dialect.Dialect) []Entry {
	var result []Entry
	for _, id := range d.searchables[dd][word] {
		if !slices.Contains(types, d.entries[id].Type) {
			result = append(result, d.entries[id])
		}
	}
	return result
}

// ByKey returns the entry with the given "word:type" key, where word is the
// raw FN form.
func (d *Dictionary) ByKey(key string) (Entry, error) {
	id, ok := d.keys[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, key)
	}
	return d.entries[id], nil
}

// ByID returns the entry at position id.
func (d *Dictionary) ByID(id int) (Entry, error) {
	if id < 0 || id >= len(d.entries) {
		return Entry{}, fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
	}
	return d.entries[id], nil
}

// All returns every entry. The slice must not be modified.
func (d *Dictionary) All() []Entry {
	return d.entries
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Problems returns the data errors found while indexing.
func (d *Dictionary) Problems() []string {
	return d.problems
}
