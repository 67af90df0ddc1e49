package phonology

import "strings"

var lenitions = map[string]string{
	"ts": "s",
	"t":  "s",
	"p":  "f",
	"k":  "h",
	"tx": "t",
	"px": "p",
	"kx": "k",
	"d":  "t",
	"b":  "p",
	"g":  "k",
	"'":  "",
}

// unlenitions lists, per letter, the letters that lenite to it (besides
// the letter itself).
var unlenitions = map[string][]string{
	"s": {"ts", "t"},
	"f": {"p"},
	"h": {"k"},
	"t": {"tx", "d"},
	"p": {"px", "b"},
	"k": {"kx", "g"},
}

var voicings = map[string]string{
	"px": "b",
	"tx": "d",
	"kx": "g",
}

// Lenite splits word into its lenited initial consonant and the rest. If
// the first letter does not lenite, the consonant is empty and rest is word.
// A tìftang lenites away completely, so 'awkx gives ("", "awkx"). 'll and
// 'rr never lenite. An uppercase initial stays uppercase.
func Lenite(word string) (consonant, rest string) {
	letters := Letters(word)
	if len(letters) == 0 {
		return "", word
	}
	first := letters[0]
	lower := strings.ToLower(first)
	if lower == "'" && len(letters) > 1 {
		if next := strings.ToLower(letters[1]); next == "ll" || next == "rr" {
			return "", word
		}
	}
	to, ok := lenitions[lower]
	if !ok {
		return "", word
	}
	rest = strings.TrimPrefix(word, first)
	if isUpper(first) {
		if to != "" {
			to = upperFirst(to)
		} else {
			rest = upperFirst(rest)
		}
	}
	return to, rest
}

// Unlenite returns every word that could have lenited to word: the word
// itself, the word with a tìftang in front, and one word per consonant that
// lenites to the initial letter. The result is a superset; most entries are
// not real words.
func Unlenite(word string) []string {
	result := []string{word, "'" + word}
	letters := Letters(word)
	if len(letters) == 0 {
		return result
	}
	for _, initial := range unlenitions[letters[0]] {
		result = append(result, initial+strings.TrimPrefix(word, letters[0]))
	}
	return result
}

// Voice splits off a final ejective of word and returns the rest and the
// voiced stop it becomes in Reef Na'vi before a vowel. If word does not end
// in an ejective, voiced is empty.
func Voice(word string) (rest, voiced string) {
	letters := Letters(word)
	if len(letters) == 0 {
		return word, ""
	}
	last := letters[len(letters)-1]
	v, ok := voicings[strings.ToLower(last)]
	if !ok {
		return word, ""
	}
	return strings.TrimSuffix(word, last), v
}

// Unvoice maps a final voiced stop of word back to the ejective it may have
// come from. ok is false if word does not end in b, d or g.
func Unvoice(word string) (ejective string, ok bool) {
	for from, to := range voicings {
		if strings.HasSuffix(word, to) {
			return strings.TrimSuffix(word, to) + from, true
		}
	}
	return word, false
}
