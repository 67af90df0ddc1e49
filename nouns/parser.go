package nouns

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/internal/expand"
	"github.com/Willem3141/navi-reykunyu-sub001/phonology"
)

// Result is one way a word can be read as a conjugated noun.
type Result struct {
	Root    string  `json:"root"`
	Affixes Affixes `json:"affixes"`
	// Result lists the surface forms the root and affixes conjugate to.
	Result []string `json:"result"`
	// Correction is set to the query if it is not among Result, which can
	// only happen when parsing with WithCorrections.
	Correction string `json:"correction,omitempty"`
}

type parseOptions struct {
	maxDistance int
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

// WithCorrections makes Parse keep candidates whose conjugation misses the
// query by at most maxDistance letters. Such results have Correction set.
func WithCorrections(maxDistance int) ParseOption {
	return func(o *parseOptions) {
		o.maxDistance = maxDistance
	}
}

// candidate is an unvalidated decomposition. Slots hold affix names.
type candidate struct {
	root    string
	affixes [7]string
	// shortPlural marks a plural recognized only from lenition, without ay-.
	shortPlural bool
}

func (c candidate) with(root string, slot int, name string) candidate {
	c.root = root
	c.affixes[slot] = name
	return c
}

// Parse returns every decomposition of word into a noun root and affixes
// that conjugates back to word. The root is not checked against a
// dictionary, so most results name roots that do not exist.
func Parse(word string, d dialect.Dialect, loanword bool, opts ...ParseOption) []Result {
	o := parseOptions{maxDistance: -1}
	for _, opt := range opts {
		opt(&o)
	}
	word = strings.ToLower(word)

	candidates := expand.Run(candidate{root: word},
		tryDeterminerPrefixes,
		tryPluralPrefixes,
		tryStemPrefixes,
		tryFinalSuffixes,
		func(c candidate) []candidate { return tryCaseSuffixes(c, d) },
		tryDeterminerSuffixes,
		tryStemSuffixes,
		func(c candidate) []candidate { return tryUnvoicing(c, d) },
	)

	var results []Result
	for _, c := range candidates {
		if !c.possible() {
			continue
		}
		affixes, err := ParseAffixes(c.affixes)
		if err != nil {
			continue
		}
		if slices.ContainsFunc(results, func(r Result) bool {
			return r.Root == c.root && r.Affixes == affixes
		}) {
			continue
		}
		forms, err := Forms(c.root, affixes, d, loanword)
		if err != nil {
			// incompatible affixes
			continue
		}
		r := Result{Root: c.root, Affixes: affixes, Result: forms}
		if !slices.Contains(forms, word) {
			if o.maxDistance < 0 || distance(word, forms) > o.maxDistance {
				continue
			}
			r.Correction = word
		}
		results = append(results, r)
	}
	return results
}

func (c candidate) possible() bool {
	if c.root == "" {
		return false
	}
	// fì-, tsa- and the like block the short plural
	return !(c.affixes[0] != "" && c.shortPlural)
}

// distance returns the smallest letter-level edit distance between word and
// any of forms.
func distance(word string, forms []string) int {
	best := -1
	w := phonology.Compress(word)
	for _, f := range forms {
		if d := levenshtein.ComputeDistance(w, phonology.Compress(f)); best < 0 || d < best {
			best = d
		}
	}
	return best
}

type affix struct {
	surface, name string
}

// prefixStage strips each matching prefix and unlenites what remains.
func prefixStage(slot int, prefixes []affix) expand.Stage[candidate] {
	return func(c candidate) []candidate {
		out := []candidate{c}
		for _, p := range prefixes {
			rest, ok := strings.CutPrefix(c.root, p.surface)
			if !ok {
				continue
			}
			for _, stem := range phonology.Unlenite(rest) {
				out = append(out, c.with(stem, slot, p.name))
			}
		}
		return out
	}
}

type suffix struct {
	surface, name, replacement string
}

// suffixStage strips each matching suffix, putting back replacement.
func suffixStage(slot int, suffixes []suffix) expand.Stage[candidate] {
	return func(c candidate) []candidate {
		out := []candidate{c}
		for _, s := range suffixes {
			if rest, ok := strings.CutSuffix(c.root, s.surface); ok {
				out = append(out, c.with(rest+s.replacement, slot, s.name))
			}
		}
		return out
	}
}

var tryDeterminerPrefixes = prefixStage(0, []affix{
	{"fì", "fì"},
	{"f", "fì"}, // fay-
	{"tsa", "tsa"},
	{"ts", "tsa"}, // tsay-
	{"pe", "pe"},
	{"p", "pe"}, // pay-
	{"fra", "fra"},
	{"fr", "fra"}, // fray-
})

var pluralPrefixStage = prefixStage(1, []affix{
	{"me", "me"},
	{"m", "me"},
	{"pxe", "pxe"},
	{"px", "pxe"},
	{"pe", "pxe"}, // pxe- lenited by pe-
	{"p", "pxe"},
	{"be", "pxe"},
	{"b", "pxe"},
	{"ay", "ay"},
})

func tryPluralPrefixes(c candidate) []candidate {
	out := pluralPrefixStage(c)
	// the short plural leaves only lenition behind
	for _, stem := range phonology.Unlenite(c.root) {
		short := c.with(stem, 1, "ay")
		short.shortPlural = true
		out = append(out, short)
	}
	return out
}

var tryStemPrefixes = prefixStage(2, []affix{
	{"fne", "fne"},
	{"fn", "fne"},
	{"munsna", "munsna"},
})

var tryFinalSuffixes = suffixStage(6, []suffix{
	{"sì", "sì", ""},
	{"to", "to", ""},
})

var caseSuffixes = []suffix{
	{"l", "l", ""},
	{"ìl", "l", ""},
	{"t", "t", ""},
	{"it", "t", ""},
	{"it", "t", "ì"},
	{"ti", "t", ""},
	{"ti", "t", "ì"},
	{"r", "r", ""},
	{"ur", "r", ""},
	{"ur", "r", "ì"},
	{"ru", "r", ""},
	{"ä", "ä", ""},
	{"ä", "ä", "ì"},
	{"yä", "ä", ""},
	{"iä", "ä", "ia"},
	{"e", "ä", ""},
	{"e", "ä", "ì"},
	{"ye", "ä", ""},
	{"ie", "ä", "ia"},
	{"ri", "ri", ""},
	{"ìri", "ri", ""},
}

var caseStages = func() map[dialect.Dialect]expand.Stage[candidate] {
	stages := make(map[dialect.Dialect]expand.Stage[candidate])
	for _, d := range []dialect.Dialect{dialect.Combined, dialect.FN, dialect.RN} {
		all := slices.Clone(caseSuffixes)
		for _, adp := range Adpositions(d) {
			all = append(all, suffix{adp, adp, ""})
		}
		stages[d] = suffixStage(5, all)
	}
	return stages
}()

func tryCaseSuffixes(c candidate, d dialect.Dialect) []candidate {
	stage, ok := caseStages[d]
	if !ok {
		stage = caseStages[dialect.FN]
	}
	return stage(c)
}

var tryDeterminerSuffixes = suffixStage(4, []suffix{
	{"pe", "pe", ""},
	{"o", "o", ""},
})

var tryStemSuffixes = suffixStage(3, []suffix{
	{"tsyìp", "tsyìp", ""},
	{"fkeyk", "fkeyk", ""},
})

// tryUnvoicing undoes the RN voicing of a stem-final ejective.
func tryUnvoicing(c candidate, d dialect.Dialect) []candidate {
	if d != dialect.RN {
		return []candidate{c}
	}
	out := []candidate{c}
	if root, ok := phonology.Unvoice(c.root); ok {
		c.root = root
		out = append(out, c)
	}
	return out
}
