package reykunyu

import "slices"

// WordType is the word class of a dictionary entry, written the way the
// dictionary data writes it ("n", "v:tr", "adp:len", ...).
type WordType string

const (
	TypeNoun              WordType = "n"
	TypeProperNoun        WordType = "n:pr"
	TypePronoun           WordType = "pn"
	TypeAdjective         WordType = "adj"
	TypeNumber            WordType = "num"
	TypeAdverb            WordType = "adv"
	TypeAdposition        WordType = "adp"
	TypeLenitingAdpos     WordType = "adp:len"
	TypeInterjection      WordType = "intj"
	TypeConjunction       WordType = "conj"
	TypeParticle          WordType = "part"
	TypeSiNoun            WordType = "n:si"
	TypeSiVerb            WordType = "nv:si"
	TypePhrase            WordType = "phr"
	TypeVerbIntransitive  WordType = "v:in"
	TypeVerbTransitive    WordType = "v:tr"
	TypeVerbCopula        WordType = "v:cp"
	TypeVerbModal         WordType = "v:m"
	TypeVerbSi            WordType = "v:si"
	TypeVerbUnknown       WordType = "v:?"
	TypeAffixPrefix       WordType = "aff:pre"
	TypeAffixInfix        WordType = "aff:in"
	TypeAffixSuffix       WordType = "aff:suf"
	TypeInterrogative     WordType = "inter"
	TypeConjunctionLenite WordType = "conj:len"
)

var (
	nounTypes      = []WordType{TypeNoun, TypeProperNoun}
	verbTypes      = []WordType{TypeVerbIntransitive, TypeVerbTransitive, TypeVerbCopula, TypeVerbModal, TypeVerbSi, TypeVerbUnknown}
	adjectiveTypes = []WordType{TypeAdjective, TypeNumber}

	// conjugatedTypes are looked up through the parsers only.
	conjugatedTypes = slices.Concat(nounTypes, []WordType{TypeAdjective}, verbTypes)
)

// IsVerb reports whether t is one of the verb classes.
func (t WordType) IsVerb() bool {
	return slices.Contains(verbTypes, t)
}

// IsNoun reports whether t is a common or proper noun.
func (t WordType) IsNoun() bool {
	return slices.Contains(nounTypes, t)
}

// Name returns the English name of t.
func (t WordType) Name() string {
	switch t {
	case TypeNoun:
		return "noun"
	case TypeProperNoun:
		return "proper noun"
	case TypePronoun:
		return "pronoun"
	case TypeAdjective:
		return "adjective"
	case TypeNumber:
		return "number"
	case TypeAdverb:
		return "adverb"
	case TypeAdposition, TypeLenitingAdpos:
		return "adposition"
	case TypeInterjection:
		return "interjection"
	case TypeConjunction, TypeConjunctionLenite:
		return "conjunction"
	case TypeParticle:
		return "particle"
	case TypeSiNoun, TypeSiVerb, TypeVerbSi:
		return "si-verb"
	case TypePhrase:
		return "phrase"
	case TypeVerbIntransitive:
		return "intransitive verb"
	case TypeVerbTransitive:
		return "transitive verb"
	case TypeVerbCopula:
		return "copula"
	case TypeVerbModal:
		return "modal verb"
	case TypeVerbUnknown:
		return "verb"
	case TypeAffixPrefix:
		return "prefix"
	case TypeAffixInfix:
		return "infix"
	case TypeAffixSuffix:
		return "suffix"
	case TypeInterrogative:
		return "interrogative"
	default:
		return "unknown"
	}
}
