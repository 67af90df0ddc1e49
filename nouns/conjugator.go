// Package nouns conjugates and parses Na'vi nouns.
//
// A conjugated noun consists of the following parts, all optional except
// the stem:
//
//	determiner prefix   fì-, tsa-, pe-, fra-
//	plural prefix       me-, pxe-, ay-
//	stem prefix         fne-, munsna-
//	stem
//	stem suffix         -tsyìp, -fkeyk
//	determiner suffix   -pe, -o
//	case suffix         -l, -t, -r, -ä, -ri, or an adposition
//	final suffix        -sì, -to
//
// so that, for example, utral with pe-, pxe-, fne-, -tsyìp, -ftu and -sì gives
// pepefneutraltsyìpftusì.
package nouns

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Willem3141/navi-reykunyu-sub001/conjstring"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/phonology"
)

// conjugation holds the parts of one conjugated alternative.
type conjugation struct {
	determinerPrefix string
	pluralPrefix     string
	stemPrefix       string
	lenited          string
	stem             string
	voiced           string
	stemSuffix       string
	determinerSuffix string
	caseSuffix       string
	finalSuffix      string
}

// full renders the ten-part conjugation string.
func (c conjugation) full() string {
	return strings.Join([]string{
		c.determinerPrefix, c.pluralPrefix, c.stemPrefix,
		c.lenited, c.stem, c.voiced,
		c.stemSuffix, c.determinerSuffix, c.caseSuffix, c.finalSuffix,
	}, "-")
}

// simple renders the three-part display form, with the lenited and voiced
// consonants marked by braces.
func (c conjugation) simple() string {
	stem := c.stem
	if c.lenited != "" {
		stem = "{" + c.lenited + "}" + stem
	}
	if c.voiced != "" {
		stem += "{" + c.voiced + "}"
	}
	return strings.Join([]string{c.pluralPrefix, stem, c.caseSuffix}, "-")
}

// Conjugate conjugates noun with the given affixes and returns a
// conjugation string with ten dash-separated parts: determiner prefix,
// plural prefix, stem prefix, lenited consonant, rest of the stem, voiced
// consonant (RN), stem suffix, determiner suffix, case suffix and final
// suffix. Alternatives are separated by semicolons.
//
// If loanword is set, nouns ending in ì drop it before a case suffix.
func Conjugate(noun string, affixes Affixes, d dialect.Dialect, loanword bool) (string, error) {
	options, err := conjugate(noun, affixes, d, loanword)
	if err != nil {
		return "", err
	}
	rendered := make([]string, len(options))
	for i, o := range options {
		rendered[i] = o.full()
	}
	return strings.Join(rendered, ";"), nil
}

// Forms returns every surface form of noun with the given affixes.
func Forms(noun string, affixes Affixes, d dialect.Dialect, loanword bool) ([]string, error) {
	s, err := Conjugate(noun, affixes, d, loanword)
	if err != nil {
		return nil, err
	}
	return conjstring.Expand(s), nil
}

// ConjugateSimple conjugates noun for number and case only, and returns a
// three-part conjugation string meant for display, such as "(ay)-{s}ute-l".
func ConjugateSimple(noun string, plural PluralPrefix, c Case, d dialect.Dialect, loanword bool) (string, error) {
	options, err := conjugate(noun, Affixes{PluralPrefix: plural, CaseSuffix: CaseOf(c)}, d, loanword)
	if err != nil {
		return "", err
	}
	rendered := make([]string, len(options))
	for i, o := range options {
		rendered[i] = o.simple()
	}
	return strings.Join(rendered, ";"), nil
}

func conjugate(noun string, a Affixes, d dialect.Dialect, loanword bool) ([]conjugation, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	word := phonology.NewWord(noun)
	upperCase := word.IsCapitalized()
	noun = word.Lower().String()

	stemPrefix := a.StemPrefix.String()
	stemSuffix := a.StemSuffix.String()
	determinerSuffix := a.DeterminerSuffix.String()

	determinerPrefix := a.DeterminerPrefix.String()
	if determinerPrefix != "" {
		switch {
		case a.PluralPrefix == Plural:
			// fì- + ay- → f(ì)ay-, tsa- + ay- → tsay-, and so on
			if a.DeterminerPrefix == DeterminerFi {
				determinerPrefix = "f(ì)"
			} else {
				determinerPrefix = dropLastRune(determinerPrefix)
			}
		case a.PluralPrefix == Singular && a.StemPrefix == NoStemPrefix:
			// tsa- + atan → tsatan; pe- + 'eylan → peylan
			determinerPrefix = phonology.NewWord(strings.TrimPrefix(noun, "'")).MergedPrefix(determinerPrefix)
		}
	}

	pluralPrefix := pluralPrefixFor(a.PluralPrefix, stemPrefix+noun, determinerPrefix, d)
	switch {
	case determinerPrefix == "pe" && (pluralPrefix == "pxe" || pluralPrefix == "be"):
		pluralPrefix = "pe"
	case determinerPrefix == "pe" && (pluralPrefix == "px" || pluralPrefix == "b"):
		pluralPrefix = "p"
	}

	// fne- + ekxan → fnekxan
	if d != dialect.RN {
		stemPrefix = phonology.NewWord(noun).MergedPrefix(stemPrefix)
	}

	var cs caseSuffix
	if adp := a.CaseSuffix.Adposition; adp != "" {
		cs = caseSuffix{suffix: adp}
	} else {
		cs = suffixFor(a.CaseSuffix.Case, noun+stemSuffix+determinerSuffix, d, loanword)
	}
	if cs.dropLast {
		noun = phonology.NewWord(noun).RemoveLastLetter().String()
	}

	// Plurals lenite, and so does pe- without a plural. A stem prefix blocks
	// lenition; this only works because fne- and munsna- cannot lenite
	// themselves.
	needsLenition := (a.PluralPrefix != Singular || determinerPrefix == "pe" || determinerPrefix == "p") &&
		stemPrefix == ""

	lenited, stem := "", noun
	if needsLenition {
		lenited, stem = phonology.Lenite(noun)
	}

	base := conjugation{
		determinerPrefix: determinerPrefix,
		pluralPrefix:     pluralPrefix,
		stemPrefix:       stemPrefix,
		lenited:          lenited,
		stem:             stem,
		stemSuffix:       stemSuffix,
		determinerSuffix: determinerSuffix,
		caseSuffix:       cs.suffix,
		finalSuffix:      a.FinalSuffix.String(),
	}
	options := []conjugation{base}
	if d == dialect.RN {
		options = voiceFinalEjective(base)
	}

	if upperCase {
		for i := range options {
			if options[i].lenited != "" {
				options[i].lenited = capitalize(options[i].lenited)
			} else {
				options[i].stem = capitalize(options[i].stem)
			}
		}
	}
	return options, nil
}

func pluralPrefixFor(p PluralPrefix, noun, determinerPrefix string, d dialect.Dialect) string {
	consonant, rest := phonology.Lenite(noun)
	lenited := consonant + rest
	switch p {
	case Singular:
		return ""
	case Dual:
		if strings.HasPrefix(lenited, "e") {
			return "m"
		}
		return "me"
	case Trial:
		short, long := "px", "pxe"
		if d == dialect.RN {
			short, long = "b", "be"
		}
		if strings.HasPrefix(lenited, "e") {
			return short
		}
		return long
	case Plural:
		// the short plural drops ay- if lenition already marks the plural,
		// except for 'u and after a determiner
		if lenited != noun && noun != "'u" && determinerPrefix == "" {
			return "(ay)"
		}
		return "ay"
	}
	panic("nouns: unhandled plural prefix " + p.String())
}

// voiceFinalEjective handles the RN rule that a stem-final ejective becomes
// voiced before a vowel-initial suffix. If the case suffix has both vowel-
// and consonant-initial allomorphs, both a voiced and an unvoiced
// alternative are returned.
func voiceFinalEjective(c conjugation) []conjugation {
	without, voiced := phonology.Voice(c.stem)
	if voiced == "" {
		return []conjugation{c}
	}
	if inner := c.stemSuffix + c.determinerSuffix; inner != "" {
		if phonology.StartsWithVowel(inner) {
			c.stem, c.voiced = without, voiced
		}
		return []conjugation{c}
	}
	if c.caseSuffix == "" {
		return []conjugation{c}
	}

	var vowelInitial, consonantInitial []string
	for _, suffix := range strings.Split(c.caseSuffix, "/") {
		if phonology.StartsWithVowel(suffix) {
			vowelInitial = append(vowelInitial, suffix)
		} else {
			consonantInitial = append(consonantInitial, suffix)
		}
	}
	var options []conjugation
	if len(consonantInitial) > 0 {
		o := c
		o.caseSuffix = strings.Join(consonantInitial, "/")
		options = append(options, o)
	}
	if len(vowelInitial) > 0 {
		o := c
		o.stem, o.voiced = without, voiced
		o.caseSuffix = strings.Join(vowelInitial, "/")
		options = append(options, o)
	}
	return options
}

// capitalize uppercases the first letter of s, skipping a leading tìftang
// or brace.
func capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+utf8.RuneLen(r):]
		}
	}
	return s
}

func dropLastRune(s string) string {
	_, w := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-w]
}
