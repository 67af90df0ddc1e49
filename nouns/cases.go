package nouns

import (
	"strings"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/phonology"
)

// caseSuffix is the suffix chosen for a case, in conjugation-string
// notation. If dropLast is set, the last letter of the noun (a loanword's
// final ì) is removed before the suffix is attached.
type caseSuffix struct {
	suffix   string
	dropLast bool
}

// suffixFor selects the allomorph of case c for stem, the noun together
// with any stem and determiner suffixes.
func suffixFor(c Case, stem string, d dialect.Dialect, loanword bool) caseSuffix {
	w := phonology.NewWord(stem)
	loan := loanword && w.LastLetter() == "ì"
	switch c {
	case Subjective:
		return caseSuffix{}
	case Agentive:
		return agentiveSuffix(w, loan)
	case Patientive:
		return patientiveSuffix(w, loan)
	case Dative:
		return dativeSuffix(w, loan)
	case Genitive:
		return genitiveSuffix(w, d, loan)
	case Topical:
		return topicalSuffix(w, loan)
	}
	panic("nouns: unhandled case " + c.String())
}

func agentiveSuffix(w phonology.Word, loan bool) caseSuffix {
	if loan {
		return caseSuffix{"ìl", true}
	}
	if w.EndsWithVowel() {
		return caseSuffix{suffix: "l"}
	}
	return caseSuffix{suffix: "ìl"}
}

func patientiveSuffix(w phonology.Word, loan bool) caseSuffix {
	if loan {
		// -fì, -sì and -tsì can take -ti in place of the ì
		switch w.RemoveLastLetter().LastLetter() {
		case "f", "s", "ts":
			return caseSuffix{"it/ti", true}
		}
		return caseSuffix{"it", true}
	}
	switch w.Ending() {
	case phonology.EndsInVowel, phonology.EndsInEy:
		return caseSuffix{suffix: "t(i)"}
	case phonology.EndsInAy:
		return caseSuffix{suffix: "it/t(i)"}
	case phonology.EndsInConsonant, phonology.EndsInTiftang, phonology.EndsInAw, phonology.EndsInEw:
		return caseSuffix{suffix: "it/ti"}
	}
	panic("nouns: unhandled ending " + w.Ending().String())
}

func dativeSuffix(w phonology.Word, loan bool) caseSuffix {
	if loan {
		return caseSuffix{"ur", true}
	}
	switch w.Ending() {
	case phonology.EndsInVowel, phonology.EndsInEw:
		return caseSuffix{suffix: "r(u)"}
	case phonology.EndsInConsonant:
		return caseSuffix{suffix: "ur"}
	case phonology.EndsInAw:
		return caseSuffix{suffix: "ur/r(u)"}
	case phonology.EndsInTiftang, phonology.EndsInAy, phonology.EndsInEy:
		return caseSuffix{suffix: "ur/ru"}
	}
	panic("nouns: unhandled ending " + w.Ending().String())
}

// genitiveException is the one noun ending in a that takes -ä instead of
// -yä.
const genitiveException = "omatikaya"

func genitiveSuffix(w phonology.Word, d dialect.Dialect, loan bool) caseSuffix {
	a, ya := "ä", "yä"
	if d == dialect.RN {
		a, ya = "ä/e", "yä/ye"
	}
	if loan {
		return caseSuffix{a, true}
	}
	if !w.EndsWithVowel() {
		return caseSuffix{suffix: a}
	}
	switch {
	case w.EndsWith("o"), w.EndsWith("u"):
		return caseSuffix{suffix: a}
	case w.EndsWith("ia"):
		return caseSuffix{a, true}
	case strings.EqualFold(w.String(), genitiveException):
		return caseSuffix{suffix: a}
	}
	return caseSuffix{suffix: ya}
}

func topicalSuffix(w phonology.Word, loan bool) caseSuffix {
	if loan {
		return caseSuffix{"ìri", true}
	}
	// a final tìftang counts as a consonant
	if w.EndsWithConsonant() {
		return caseSuffix{suffix: "ìri"}
	}
	return caseSuffix{suffix: "ri"}
}
