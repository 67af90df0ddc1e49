// Package verbs conjugates and parses Na'vi verbs.
//
// Verbs are stored as templates in which two dots mark the infix positions,
// like "t.ìr.an" or "p.(ll)tx.e". The prefirst and first infixes go at the
// first dot, the second infix at the second.
package verbs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Willem3141/navi-reykunyu-sub001/conjstring"
)

// ErrMalformedTemplate is returned for templates without exactly two dots.
var ErrMalformedTemplate = errors.New("malformed verb template")

// Template is a verb with its infix positions marked.
type Template struct {
	BeforeFirst string
	Between     string
	AfterSecond string
}

// ParseTemplate splits s at its two infix position markers.
func ParseTemplate(s string) (Template, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Template{}, fmt.Errorf("%w: %q has %d dots", ErrMalformedTemplate, s, len(parts)-1)
	}
	return Template{BeforeFirst: parts[0], Between: parts[1], AfterSecond: parts[2]}, nil
}

func (t Template) String() string {
	return t.BeforeFirst + "." + t.Between + "." + t.AfterSecond
}

// Conjugate inserts infixes into t and returns a conjugation string with six
// dash-separated parts: the part before the first position, the prefirst
// infix, the first infix, the part between the positions, the second infix
// and the part after the second position.
func Conjugate(t Template, infixes Infixes) (string, error) {
	if err := infixes.Validate(); err != nil {
		return "", err
	}

	prefirst := infixes.Prefirst.String()
	first := infixes.First.String()
	second := infixes.Second.String()
	between, afterSecond := t.Between, t.AfterSecond

	if infixes.First == FirstIyev {
		first = "ìyev/iyev"
	}

	switch infixes.Second {
	case SecondEi:
		if startsWithAny(afterSecond, "i", "ì", "ll", "rr", "(ll)", "(rr)") {
			second = "eiy"
		}
	case SecondAng:
		if strings.HasPrefix(afterSecond, "i") {
			second = "äng/eng"
		}
	case SecondUy:
		if strings.HasSuffix(between, "u") {
			second = "y"
		}
	}

	// z.en.(e)ke: the e only surfaces after <uy> and <ats>
	if rest, ok := strings.CutPrefix(afterSecond, "(e)"); ok {
		if infixes.Second == SecondUy || infixes.Second == SecondAts {
			afterSecond = "e" + rest
		} else {
			afterSecond = rest
		}
	}

	// f.rr.fen + <er> → frrfen, p.(ll)tx.e + <ol> → poltxe
	contract := func(pseudovowel, infix string) {
		optional := "(" + pseudovowel + ")"
		switch {
		case strings.HasPrefix(between, optional):
			if first == infix {
				between = between[len(optional):]
			} else {
				between = pseudovowel + between[len(optional):]
			}
		case strings.HasPrefix(between, pseudovowel):
			if first == infix {
				first = ""
			}
		case between == "":
			switch {
			case strings.HasPrefix(afterSecond, optional):
				if first == infix && second == "" {
					afterSecond = afterSecond[len(optional):]
				} else {
					afterSecond = pseudovowel + afterSecond[len(optional):]
				}
			case strings.HasPrefix(afterSecond, pseudovowel):
				if first == infix && second == "" {
					first = ""
				}
			}
		}
	}
	contract("ll", FirstOl.String())
	contract("rr", FirstEr.String())

	return strings.Join([]string{t.BeforeFirst, prefirst, first, between, second, afterSecond}, "-"), nil
}

// Forms returns every surface form of t with the given infixes.
func Forms(t Template, infixes Infixes) ([]string, error) {
	s, err := Conjugate(t, infixes)
	if err != nil {
		return nil, err
	}
	return conjstring.Expand(s), nil
}

func startsWithAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
