// Package adjectives conjugates and parses Na'vi adjectives.
//
// An adjective has three forms: the predicative (dictionary) form, the
// prenoun form with the suffix -a and the postnoun form with the prefix a-.
package adjectives

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

// Form is the attributive form of an adjective.
type Form int

const (
	Predicative Form = iota
	Prenoun
	Postnoun
)

var formNames = [...]string{
	Predicative: "predicative",
	Prenoun:     "prenoun",
	Postnoun:    "postnoun",
}

func (f Form) String() string {
	if f < 0 || int(f) >= len(formNames) {
		return fmt.Sprintf("Form(%d)", int(f))
	}
	return formNames[f]
}

// ParseForm returns the form named s.
func ParseForm(s string) (Form, error) {
	for i, name := range formNames {
		if strings.EqualFold(s, name) {
			return Form(i), nil
		}
	}
	return Predicative, fmt.Errorf("unknown adjective form %q", s)
}

func (f Form) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Form) UnmarshalText(text []byte) error {
	parsed, err := ParseForm(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// kea has its -a built in and no postnoun form.
const kea = "kea"

// Options tunes Conjugate.
type Options struct {
	// LeAdjective marks adjectives derived with le-, whose postnoun a- is
	// optional. See IsLeAdjective.
	LeAdjective bool
	Dialect     dialect.Dialect
}

// Conjugate returns the conjugation string of adj in form, like "a-txantsan"
// or "(a-)lefpom". The predicative has both affix slots empty, as in
// "-txantsan-". ok is false if the form does not exist.
func Conjugate(adj string, form Form, opts Options) (s string, ok bool) {
	switch form {
	case Postnoun:
		switch {
		case adj == kea:
			return "", false
		case strings.HasPrefix(adj, "a") && opts.Dialect != dialect.RN:
			return "a-" + adj[1:], true
		case opts.LeAdjective || (strings.HasPrefix(adj, "le") && utf8.RuneCountInString(adj) >= 4):
			return "(a-)" + adj, true
		}
		return "a-" + adj, true
	case Prenoun:
		switch {
		case adj == kea:
			return "ke-a", true
		case strings.HasSuffix(adj, "a") && opts.Dialect != dialect.RN:
			return adj[:len(adj)-1] + "-a", true
		}
		return adj + "-a", true
	case Predicative:
		return "-" + adj + "-", true
	}
	return "", false
}

// IsLeAdjective reports whether an etymology string derives the adjective
// with the le- prefix.
func IsLeAdjective(etymology string) bool {
	return strings.Contains(etymology, "[le:aff:pre]")
}

// Candidate is one way of reading a word as a conjugated adjective.
type Candidate struct {
	Root string `json:"root"`
	Form Form   `json:"form"`
}

// Parse returns every reading of word as an adjective form. The word itself
// as a predicative is always the first candidate. Callers should check the
// roots against a dictionary and conjugate them back.
func Parse(word string) []Candidate {
	word = strings.ToLower(word)
	candidates := []Candidate{{Root: word, Form: Predicative}}

	switch {
	case strings.HasPrefix(word, "a"):
		candidates = append(candidates,
			Candidate{Root: word[1:], Form: Postnoun},
			Candidate{Root: word, Form: Postnoun})
	case strings.HasPrefix(word, "le"):
		candidates = append(candidates, Candidate{Root: word, Form: Postnoun})
	}

	if strings.HasSuffix(word, "a") {
		candidates = append(candidates,
			Candidate{Root: word[:len(word)-1], Form: Prenoun},
			Candidate{Root: word, Form: Prenoun})
	}

	out := candidates[:0]
	for _, c := range candidates {
		if c.Root == "" || (c.Root == kea && c.Form == Postnoun) {
			continue
		}
		out = append(out, c)
	}
	return out
}
