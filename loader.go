package reykunyu

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// LoadDictionary reads and indexes the dictionary file at path.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewDictionary(entries), nil
}

// ReadEntries decodes dictionary entries from r. The data is either a JSON
// array of entries or a JSON object mapping "word:type" keys to entries;
// in the latter case entries are ordered by key.
func ReadEntries(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, nil
	}

	var keyed map[string]Entry
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("parse dictionary as array or object: %w", err)
	}
	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	entries = make([]Entry, 0, len(keyed))
	for _, k := range keys {
		e := keyed[k]
		if e.Type == "" {
			// keys like "kxetse:n" or "kaltxì:n:si"
			if word, typ, ok := strings.Cut(k, ":"); ok && word != "" {
				e.Type = WordType(typ)
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}
