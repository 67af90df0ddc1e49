package phonology

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ending classifies the last letter of a word. Case suffixes choose their
// allomorph based on it.
type Ending int

const (
	EndsInVowel Ending = iota
	EndsInConsonant
	EndsInTiftang
	EndsInAw
	EndsInAy
	EndsInEw
	EndsInEy
)

var endingNames = [...]string{
	EndsInVowel:     "vowel",
	EndsInConsonant: "consonant",
	EndsInTiftang:   "tìftang",
	EndsInAw:        "aw",
	EndsInAy:        "ay",
	EndsInEw:        "ew",
	EndsInEy:        "ey",
}

func (e Ending) String() string {
	if e < 0 || int(e) >= len(endingNames) {
		return "unknown"
	}
	return endingNames[e]
}

var syllableMarks = strings.NewReplacer("[", "", "]", "", "/", "", "-", "")

// Word is an immutable Na'vi word or stem. Syllable separators and stress
// brackets are removed on construction.
type Word struct {
	raw string
}

// NewWord creates a Word from s, which may be written with syllable marks
// like "[ta]/ron".
func NewWord(s string) Word {
	return Word{raw: syllableMarks.Replace(s)}
}

func (w Word) String() string {
	return w.raw
}

// Letters returns the letters of w.
func (w Word) Letters() []string {
	return Letters(w.raw)
}

// FirstLetter returns the first letter of w, or "" for the empty word.
func (w Word) FirstLetter() string {
	letters := w.Letters()
	if len(letters) == 0 {
		return ""
	}
	return letters[0]
}

// LastLetter returns the last letter of w, or "" for the empty word.
func (w Word) LastLetter() string {
	letters := w.Letters()
	if len(letters) == 0 {
		return ""
	}
	return letters[len(letters)-1]
}

func (w Word) StartsWithVowel() bool {
	return IsVowel(w.FirstLetter())
}

func (w Word) StartsWithDiphthong() bool {
	return IsDiphthong(w.FirstLetter())
}

func (w Word) EndsWithVowel() bool {
	return IsVowel(w.LastLetter())
}

// EndsWithConsonant reports whether w ends in a consonant. A word ending in
// a diphthong ends in neither a vowel nor a consonant.
func (w Word) EndsWithConsonant() bool {
	return IsConsonant(w.LastLetter())
}

// Ending classifies the last letter of w. The empty word counts as
// vowel-final.
func (w Word) Ending() Ending {
	last := strings.ToLower(w.LastLetter())
	switch {
	case last == "" || IsVowel(last):
		return EndsInVowel
	case last == "'":
		return EndsInTiftang
	case last == "aw":
		return EndsInAw
	case last == "ay":
		return EndsInAy
	case last == "ew":
		return EndsInEw
	case last == "ey":
		return EndsInEy
	default:
		return EndsInConsonant
	}
}

func (w Word) EndsWith(s string) bool {
	return strings.HasSuffix(w.raw, s)
}

// AddPrefix returns prefix+w. If merge is set, the prefix is shortened by
// MergedPrefix first.
func (w Word) AddPrefix(prefix string, merge bool) Word {
	if merge {
		prefix = w.MergedPrefix(prefix)
	}
	return Word{raw: prefix + w.raw}
}

// MergedPrefix returns prefix without its final vowel if w starts with the
// same vowel, so that it is written only once: tsa + atan gives tsatan, fne
// + ekxan gives fnekxan.
func (w Word) MergedPrefix(prefix string) string {
	last, size := utf8.DecodeLastRuneInString(prefix)
	if size == 0 || !IsVowel(string(unicode.ToLower(last))) {
		return prefix
	}
	first, _ := utf8.DecodeRuneInString(w.raw)
	if unicode.ToLower(first) != unicode.ToLower(last) {
		return prefix
	}
	return prefix[:len(prefix)-size]
}

func (w Word) AddSuffix(suffix string) Word {
	return Word{raw: w.raw + suffix}
}

// RemoveLastLetter returns w without its last letter.
func (w Word) RemoveLastLetter() Word {
	return Word{raw: strings.TrimSuffix(w.raw, w.LastLetter())}
}

// Lenite returns the lenited form of w.
func (w Word) Lenite() Word {
	consonant, rest := Lenite(w.raw)
	return Word{raw: consonant + rest}
}

// IsCapitalized reports whether w starts with an uppercase letter, as proper
// nouns do.
func (w Word) IsCapitalized() bool {
	return isUpper(w.raw)
}

// Lower returns w in lowercase.
func (w Word) Lower() Word {
	return Word{raw: strings.ToLower(w.raw)}
}
