package phonology

import "strings"

// compressions maps each two-character letter to a single stand-in rune.
var compressions = map[string]rune{
	"ts": 'c',
	"ng": 'G',
	"tx": 'T',
	"px": 'P',
	"kx": 'K',
	"ll": 'L',
	"rr": 'R',
	"aw": '1',
	"ay": '2',
	"ew": '3',
	"ey": '4',
}

var decompressions = func() map[rune]string {
	m := make(map[rune]string, len(compressions))
	for letter, r := range compressions {
		m[r] = letter
	}
	return m
}()

// Compress lowercases word and writes it with exactly one rune per letter,
// so that edit distances count letters rather than characters.
func Compress(word string) string {
	var b strings.Builder
	for _, letter := range Letters(strings.ToLower(word)) {
		if r, ok := compressions[letter]; ok {
			b.WriteRune(r)
		} else {
			b.WriteString(letter)
		}
	}
	return b.String()
}

// Decompress is the inverse of Compress. An n directly followed by a g is
// written with an interpunct in between.
func Decompress(compressed string) string {
	var b strings.Builder
	var prev rune
	for _, r := range compressed {
		if r == 'g' && prev == 'n' {
			b.WriteString(Interpunct)
		}
		if letter, ok := decompressions[r]; ok {
			b.WriteString(letter)
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
