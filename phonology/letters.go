// Package phonology knows the Na'vi letter inventory: which letters are
// vowels, diphthongs or consonants, how words lenite, and how stem-final
// ejectives voice in Reef Na'vi.
//
// Several Na'vi letters are written with two characters (ts, ng, tx, px, kx,
// ll, rr and the diphthongs aw, ay, ew, ey). Functions in this package
// always operate on whole letters, never on single characters.
package phonology

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Interpunct separates an n and a g that do not form the letter ng.
const Interpunct = "·"

var digraphs = map[string]bool{
	"ts": true, "ng": true, "tx": true, "px": true, "kx": true,
	"ll": true, "rr": true,
	"aw": true, "ay": true, "ew": true, "ey": true,
}

var vowels = map[string]bool{
	"a": true, "ä": true, "e": true, "é": true, "i": true,
	"ì": true, "o": true, "u": true, "ù": true,
}

var diphthongs = map[string]bool{
	"aw": true, "ay": true, "ew": true, "ey": true,
}

// Letters splits s into Na'vi letters. Two-character letters are matched
// greedily from the left, case-insensitively; the original spelling is kept.
// An interpunct prevents n and g from joining and is itself dropped.
func Letters(s string) []string {
	var letters []string
	for len(s) > 0 {
		if strings.HasPrefix(s, Interpunct) {
			s = s[len(Interpunct):]
			continue
		}
		_, w1 := utf8.DecodeRuneInString(s)
		if w1 < len(s) {
			_, w2 := utf8.DecodeRuneInString(s[w1:])
			if pair := s[:w1+w2]; digraphs[strings.ToLower(pair)] {
				letters = append(letters, pair)
				s = s[w1+w2:]
				continue
			}
		}
		letters = append(letters, s[:w1])
		s = s[w1:]
	}
	return letters
}

// IsVowel reports whether letter is one of the nine vowels.
func IsVowel(letter string) bool {
	return vowels[strings.ToLower(letter)]
}

// IsDiphthong reports whether letter is aw, ay, ew or ey.
func IsDiphthong(letter string) bool {
	return diphthongs[strings.ToLower(letter)]
}

// IsConsonant reports whether letter is neither a vowel nor a diphthong.
// The pseudovowels ll and rr and the tìftang count as consonants.
func IsConsonant(letter string) bool {
	return letter != "" && !IsVowel(letter) && !IsDiphthong(letter)
}

// StartsWithVowel reports whether the first letter of s is a plain vowel.
func StartsWithVowel(s string) bool {
	letters := Letters(s)
	return len(letters) > 0 && IsVowel(letters[0])
}

func isUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// upperFirst uppercases the first rune of s.
func upperFirst(s string) string {
	r, w := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[w:]
}
