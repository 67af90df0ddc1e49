// Package dialect converts between the spelling conventions of Forest Na'vi
// (FN), Reef Na'vi (RN) and the combined notation the dictionary is written
// in.
//
// Words in combined notation carry syllable separators and a stressed
// syllable in brackets, like "txùm/[tsä']/wll". Single-syllable words have no
// brackets.
package dialect

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Dialect selects a spelling and the dialect-specific affix tables.
type Dialect int

const (
	Combined Dialect = iota
	FN
	RN
)

// ErrUnknownDialect is returned when parsing an unrecognized dialect name.
var ErrUnknownDialect = errors.New("unknown dialect")

var names = [...]string{
	Combined: "combined",
	FN:       "FN",
	RN:       "RN",
}

func (d Dialect) String() string {
	if d < 0 || int(d) >= len(names) {
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
	return names[d]
}

// Parse returns the dialect named s. The empty string means Combined.
func Parse(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "", "combined":
		return Combined, nil
	case "fn":
		return FN, nil
	case "rn":
		return RN, nil
	}
	return Combined, fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var rawMarks = strings.NewReplacer("-", "", "[", "", "]", "", "/", "")

// MakeRaw removes syllable separators and stress marks.
func MakeRaw(word string) string {
	return rawMarks.Replace(word)
}

// CombinedToFN converts combined notation to FN, which does not write ù.
func CombinedToFN(combined string) string {
	return strings.ReplaceAll(combined, "ù", "u")
}

// Convert converts combined notation to dialect d.
func Convert(combined string, d Dialect) string {
	switch d {
	case FN:
		return CombinedToFN(combined)
	case RN:
		return CombinedToRN(combined)
	default:
		return combined
	}
}

// Forms holds a word in each notation.
type Forms struct {
	FN       string `json:"FN"`
	Combined string `json:"combined"`
	RN       string `json:"RN"`
}

// NewForms converts a word in combined notation to every dialect.
func NewForms(combined string) Forms {
	return Forms{
		FN:       CombinedToFN(combined),
		Combined: combined,
		RN:       CombinedToRN(combined),
	}
}

// In returns the form for dialect d.
func (f Forms) In(d Dialect) string {
	switch d {
	case FN:
		return f.FN
	case RN:
		return f.RN
	default:
		return f.Combined
	}
}

// Raw returns the forms with syllable and stress marks removed.
func (f Forms) Raw() Forms {
	return Forms{FN: MakeRaw(f.FN), Combined: MakeRaw(f.Combined), RN: MakeRaw(f.RN)}
}

const vowelClass = "aäeiìouù"

var (
	// tìftang between two syllables, the vowel before it first
	tiftangAfterBreak = regexp.MustCompile(`(([` + vowelClass + `]|[ae][wy])\]?/\[?)'([` + vowelClass + `])`)
	// tìftang at the end of a syllable, before the break
	tiftangBeforeBreak = regexp.MustCompile(`([` + vowelClass + `]|[ae][wy])'(\]?/\[?([` + vowelClass + `]))`)
)

// CombinedToRN converts combined notation to RN:
//   - syllable-initial ejectives become voiced stops, except after f and s
//   - a syllable-final ejective followed by a voiced stop is voiced as well
//   - a tìftang between two different vowels is dropped
//   - ä becomes e outside the stressed syllable
//   - an interpunct separates n/g so that it is not read as ng
func CombinedToRN(combined string) string {
	rn := voiceInitialEjectives(combined)
	rn = voiceFinalEjectives(rn)

	rn = replaceSubmatches(tiftangAfterBreak, rn, func(m []string) string {
		before, beforeVowel, afterVowel := m[1], m[2], m[3]
		if beforeVowel == afterVowel {
			return m[0]
		}
		return before + afterVowel
	})
	rn = replaceSubmatches(tiftangBeforeBreak, rn, func(m []string) string {
		beforeVowel, after, afterVowel := m[1], m[2], m[3]
		if beforeVowel == afterVowel {
			return m[0]
		}
		return beforeVowel + after
	})

	rn = unstressedAToE(rn)
	return interpunctNG(rn)
}

var ejectiveVoicing = map[string]string{"px": "b", "tx": "d", "kx": "g"}

func voiceInitialEjectives(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if i+2 < len(s) {
			if voiced, ok := ejectiveVoicing[s[i:i+2]]; ok {
				prevOK := i == 0 || (s[i-1] != 'f' && s[i-1] != 's')
				if prevOK && strings.ContainsRune(vowelClass, firstRune(s[i+2:])) {
					b.WriteString(voiced)
					i += 2
					continue
				}
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func voiceFinalEjectives(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if i+2 <= len(s) {
			if voiced, ok := ejectiveVoicing[s[i:i+2]]; ok && followedByVoicedStop(s[i+2:]) {
				b.WriteString(voiced)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// followedByVoicedStop reports whether rest starts with a syllable break
// and then b, d or g, possibly with a stress bracket in between.
func followedByVoicedStop(rest string) bool {
	rest, ok := strings.CutPrefix(rest, "/")
	if !ok {
		return false
	}
	rest = strings.TrimPrefix(rest, "[")
	return rest != "" && strings.ContainsRune("bdg", rune(rest[0]))
}

// unstressedAToE replaces every ä that is not inside the stressed syllable.
// An ä is unstressed if a stress bracket opens after it or closed before it.
func unstressedAToE(s string) string {
	lastOpen := strings.LastIndex(s, "[")
	firstClose := strings.Index(s, "]")
	var b strings.Builder
	for i, r := range s {
		if r == 'ä' && (i < lastOpen || (firstClose >= 0 && i > firstClose)) {
			b.WriteRune('e')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func interpunctNG(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			before := strings.TrimSuffix(s[:i], "]")
			after := strings.TrimPrefix(s[i+1:], "[")
			if strings.HasSuffix(before, "n") && strings.HasPrefix(after, "g") {
				b.WriteString("·")
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// replaceSubmatches replaces every match of re in s by the result of repl,
// which receives the match and its groups.
func replaceSubmatches(re *regexp.Regexp, s string, repl func([]string) string) string {
	var b strings.Builder
	last := 0
	for _, idx := range re.FindAllStringSubmatchIndex(s, -1) {
		groups := make([]string, len(idx)/2)
		for g := range groups {
			if idx[2*g] >= 0 {
				groups[g] = s[idx[2*g]:idx[2*g+1]]
			}
		}
		b.WriteString(s[last:idx[0]])
		b.WriteString(repl(groups))
		last = idx[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
