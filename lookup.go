package reykunyu

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/conjstring"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/nouns"
	"github.com/Willem3141/navi-reykunyu-sub001/numbers"
	"github.com/Willem3141/navi-reykunyu-sub001/phonology"
	"github.com/Willem3141/navi-reykunyu-sub001/verbs"
)

// maxPhraseLength is the longest phrase, in words, matched as a whole.
const maxPhraseLength = 8

// LookUp splits query into words and returns the dictionary entries each
// word can be a form of. Consecutive words that form a phrase in the
// dictionary are returned as one result.
func (r *Reykunyu) LookUp(query string, d dialect.Dialect) []WordResults {
	l := lookup{dict: r.Dictionary(), dialect: d, maxCorrection: r.maxCorrection}
	return l.run(query)
}

type lookup struct {
	dict          *Dictionary
	dialect       dialect.Dialect
	maxCorrection int
}

func (l lookup) run(query string) []WordResults {
	original := strings.Fields(Preprocess(query, l.dialect))
	words := make([]string, len(original))
	for i, w := range original {
		words[i] = normalizeWord(w)
	}

	var results []WordResults
	externalLenition := false
	for i := 0; i < len(words); {
		word := words[i]
		if word == "" {
			results = append(results, WordResults{Query: original[i], Results: []WordResult{}})
			i++
			continue
		}

		found := []WordResult{}
		count := 1
		if !externalLenition {
			count, found = l.wordOrPhrase(words[i:])
		} else {
			// the previous word lenites this one, so look up everything it
			// could have been lenited from
			for _, from := range unleniteExternal(word) {
				for _, res := range l.word(from) {
					if forbiddenByExternalLenition(res, from) {
						continue
					}
					res.ExternalLenition = &ExternalLenition{From: from, To: word, By: words[i-1]}
					found = append(found, res)
				}
			}
		}

		l.sort(found, word)
		found = deduplicate(found)

		// no adp:len has several meanings, so the first result decides
		externalLenition = len(found) > 0 && found[0].Type == TypeLenitingAdpos

		var suggestions []string
		if len(found) == 0 {
			suggestions = l.suggest(word)
		}
		results = append(results, WordResults{
			Query:       strings.Join(original[i:i+count], " "),
			Results:     found,
			Suggestions: suggestions,
		})
		i += count
	}
	return mergeSiVerbs(results)
}

// wordOrPhrase returns the number of words matched from the start of words
// and the results for them.
func (l lookup) wordOrPhrase(words []string) (int, []WordResult) {
	for length := min(maxPhraseLength, len(words)); length > 1; length-- {
		phrase := strings.Join(words[:length], " ")
		if e, ok := l.dict.Get(phrase, TypePhrase, l.dialect); ok {
			return length, []WordResult{{Entry: e}}
		}
	}
	return 1, l.word(words[0])
}

func (l lookup) word(word string) []WordResult {
	results := []WordResult{}
	results = append(results, l.nouns(word)...)
	results = append(results, l.verbs(word, false)...)
	results = append(results, l.adjectives(word)...)
	results = append(results, l.adverbs(word)...)
	results = append(results, l.others(word)...)
	results = append(results, l.numbers(word)...)
	return results
}

func (l lookup) nounOptions() []nouns.ParseOption {
	if l.maxCorrection <= 0 {
		return nil
	}
	return []nouns.ParseOption{nouns.WithCorrections(l.maxCorrection)}
}

func nounStep(n nouns.Result) ConjugationStep {
	return ConjugationStep{Type: StepNoun, Noun: &n}
}

func (l lookup) nouns(word string) []WordResult {
	var results []WordResult
	for _, parsed := range nouns.Parse(word, l.dialect, false, l.nounOptions()...) {
		for _, e := range l.dict.GetOfTypes(parsed.Root, nounTypes, l.dialect) {
			// loanwords are parsed separately below
			if !e.IsLoanword() {
				results = append(results, WordResult{Entry: e, Conjugated: []ConjugationStep{nounStep(parsed)}})
			}
		}
		results = append(results, l.nominalizations(parsed)...)
		results = append(results, l.siNominalizations(parsed)...)
		results = append(results, l.gerunds(parsed)...)
	}

	for _, parsed := range nouns.Parse(word, l.dialect, true, l.nounOptions()...) {
		for _, e := range l.dict.GetOfTypes(parsed.Root, nounTypes, l.dialect) {
			if e.IsLoanword() {
				results = append(results, WordResult{Entry: e, Conjugated: []ConjugationStep{nounStep(parsed)}})
			}
		}
	}
	return results
}

// nominalizations finds verb + -yu and verb + -tswo nouns. The verb may not
// carry infixes.
func (l lookup) nominalizations(parsed nouns.Result) []WordResult {
	var results []WordResult
	for _, suffix := range []string{"yu", "tswo"} {
		verb, ok := strings.CutSuffix(parsed.Root, suffix)
		if !ok {
			continue
		}
		for _, res := range l.verbs(verb, false) {
			step, _ := res.lastStep()
			if res.Type == TypeVerbSi || !step.Verb.Infixes.IsEmpty() {
				continue
			}
			res.Conjugated = append(res.Conjugated,
				ConjugationStep{Type: StepVerbToNoun, Derivation: &Derivation{
					Root:    verb,
					Affixes: []string{suffix},
					Result:  []string{phonology.NewWord(verb).AddSuffix(suffix).String()},
				}},
				nounStep(parsed))
			results = append(results, res)
		}
	}
	return results
}

// siNominalizations finds nominalized si-verbs, like kaltxìsiyu.
func (l lookup) siNominalizations(parsed nouns.Result) []WordResult {
	var results []WordResult
	for _, suffix := range []struct{ surface, affix string }{{"siyu", "yu"}, {"tswo", "tswo"}} {
		root, ok := strings.CutSuffix(parsed.Root, suffix.surface)
		if !ok {
			continue
		}
		e, ok := l.dict.Get(root, TypeSiNoun, l.dialect)
		if !ok {
			continue
		}
		results = append(results, WordResult{Entry: e, Conjugated: []ConjugationStep{
			{Type: StepVerbToNoun, Derivation: &Derivation{
				Root:    root + " si",
				Affixes: []string{suffix.affix},
				Result:  []string{parsed.Root},
			}},
			nounStep(parsed),
		}})
	}
	return results
}

// gerunds finds tì- + verb with <us>. Other tì- words are in the dictionary
// on their own.
func (l lookup) gerunds(parsed nouns.Result) []WordResult {
	verb, ok := strings.CutPrefix(parsed.Root, "tì")
	if !ok {
		return nil
	}
	var results []WordResult
	for _, res := range l.verbs(verb, true) {
		step := res.Conjugated[0].Verb
		if res.Type == TypeVerbSi || step.Infixes != (verbs.Infixes{First: verbs.FirstUs}) {
			continue
		}
		plain, err := l.verbForms(res.Entry, verbs.Infixes{})
		if err != nil || len(plain) == 0 {
			continue
		}
		step.Infixes = verbs.Infixes{}
		step.Result = plain
		res.Conjugated = append(res.Conjugated,
			ConjugationStep{Type: StepGerund, Derivation: &Derivation{
				Root:   plain[0],
				Result: []string{parsed.Root},
			}},
			nounStep(parsed))
		results = append(results, res)
	}
	return results
}

func (l lookup) verbForms(e Entry, infixes verbs.Infixes) ([]string, error) {
	t, err := verbs.ParseTemplate(e.Infixes)
	if err != nil {
		return nil, err
	}
	return verbs.Forms(t, infixes)
}

// verbs finds conjugated verbs. Participles are adjectives and only returned
// if allowParticiples is set.
func (l lookup) verbs(word string, allowParticiples bool) []WordResult {
	var results []WordResult
	for _, c := range verbs.Parse(word) {
		if !allowParticiples && c.Infixes.First.IsParticiple() {
			continue
		}
		for _, e := range l.dict.GetOfTypes(c.Root, verbTypes, l.dialect) {
			forms, err := l.verbForms(e, c.Infixes)
			if err != nil {
				continue
			}
			conj := &VerbConjugation{Root: c.Root, Infixes: c.Infixes, Result: forms}
			if !slices.Contains(forms, word) {
				if l.maxCorrection <= 0 || correctionDistance(word, forms) > l.maxCorrection {
					continue
				}
				conj.Correction = word
			}
			results = append(results, WordResult{Entry: e, Conjugated: []ConjugationStep{{Type: StepVerb, Verb: conj}}})
		}
	}
	return results
}

func (l lookup) adjectiveForms(root string, form adjectives.Form, le bool) ([]string, bool) {
	s, ok := adjectives.Conjugate(root, form, adjectives.Options{LeAdjective: le, Dialect: l.dialect})
	if !ok {
		return nil, false
	}
	return conjstring.Expand(s), true
}

func (l lookup) adjectives(word string) []WordResult {
	var results []WordResult
	for _, c := range adjectives.Parse(word) {
		for _, e := range l.dict.GetOfTypes(c.Root, adjectiveTypes, l.dialect) {
			forms, ok := l.adjectiveForms(c.Root, c.Form, e.IsLeAdjective())
			if !ok || !slices.Contains(forms, word) {
				continue
			}
			results = append(results, WordResult{Entry: e, Conjugated: []ConjugationStep{{
				Type:      StepAdjective,
				Adjective: &AdjectiveConjugation{Root: c.Root, Form: c.Form, Result: forms},
			}}})
		}
		results = append(results, l.participles(word, c)...)
		results = append(results, l.tsukVerbs(word, c)...)
	}
	return results
}

// participles finds verbs with <us> or <awn> used as adjectives.
func (l lookup) participles(word string, c adjectives.Candidate) []WordResult {
	adjForms, ok := l.adjectiveForms(c.Root, c.Form, false)
	if !ok || !slices.Contains(adjForms, word) {
		return nil
	}
	adj := ConjugationStep{Type: StepAdjective, Adjective: &AdjectiveConjugation{Root: c.Root, Form: c.Form, Result: adjForms}}

	var results []WordResult
	for _, res := range l.verbs(c.Root, true) {
		verb := res.Conjugated[0].Verb
		infixes := verb.Infixes
		switch {
		case !infixes.First.IsParticiple(), infixes.Second != verbs.NoSecond:
			continue
		case infixes.First == verbs.FirstAwn && (infixes.Prefirst == verbs.PrefirstAp || infixes.Prefirst == verbs.PrefirstApeyk):
			continue
		}
		withoutFirst := verbs.Infixes{Prefirst: infixes.Prefirst, Second: infixes.Second}
		plain, err := l.verbForms(res.Entry, withoutFirst)
		if err != nil || len(plain) == 0 {
			continue
		}
		res.Conjugated = []ConjugationStep{
			{Type: StepVerb, Verb: &VerbConjugation{Root: verb.Root, Infixes: withoutFirst, Result: plain}},
			{Type: StepVerbToParticiple, Derivation: &Derivation{
				Root:       plain[0],
				Affixes:    []string{infixes.First.String()},
				Result:     verb.Result,
				Correction: verb.Correction,
			}},
			adj,
		}
		results = append(results, res)
	}
	return results
}

// tsukVerbs finds tsuk- and ketsuk- + verb adjectives.
func (l lookup) tsukVerbs(word string, c adjectives.Candidate) []WordResult {
	var results []WordResult
	for _, prefix := range []string{"tsuk", "ketsuk"} {
		verb, ok := strings.CutPrefix(c.Root, prefix)
		if !ok {
			continue
		}
		adjForms, ok := l.adjectiveForms(c.Root, c.Form, false)
		if !ok || !slices.Contains(adjForms, word) {
			continue
		}
		for _, res := range l.verbs(verb, false) {
			res.Conjugated = append(res.Conjugated,
				ConjugationStep{Type: StepVerbToAdjective, Derivation: &Derivation{
					Root:    verb,
					Affixes: []string{prefix},
					Result:  []string{phonology.NewWord(verb).AddPrefix(prefix, false).String()},
				}},
				ConjugationStep{Type: StepAdjective, Adjective: &AdjectiveConjugation{Root: c.Root, Form: c.Form, Result: adjForms}})
			results = append(results, res)
		}
	}
	return results
}

// adverbs finds nì- + adjective adverbs.
func (l lookup) adverbs(word string) []WordResult {
	adj, ok := strings.CutPrefix(word, "nì")
	if !ok {
		return nil
	}
	e, ok := l.dict.Get(adj, TypeAdjective, l.dialect)
	if !ok {
		return nil
	}
	return []WordResult{{Entry: e, Conjugated: []ConjugationStep{{
		Type: StepAdjectiveToAdverb,
		Derivation: &Derivation{
			Root:    adj,
			Affixes: []string{"nì"},
			Result:  []string{phonology.NewWord(adj).AddPrefix("nì", false).String()},
		},
	}}}}
}

// others finds entries of the word classes that do not conjugate.
func (l lookup) others(word string) []WordResult {
	var results []WordResult
	for _, e := range l.dict.GetNotOfTypes(word, conjugatedTypes, l.dialect) {
		results = append(results, WordResult{Entry: e})
	}
	return results
}

// numbers recognizes number words that have no entry of their own.
func (l lookup) numbers(word string) []WordResult {
	n, ok := numbers.Parse(word, l.dialect)
	if !ok {
		return nil
	}
	if _, ok := l.dict.Get(word, TypeNumber, l.dialect); ok {
		return nil
	}
	num, err := numbers.Conjugate(n)
	if err != nil {
		return nil
	}
	return []WordResult{{Entry: Entry{
		ID:           -1,
		Navi:         num.Raw.FN,
		Type:         TypeNumber,
		Word:         num.Word,
		WordRaw:      num.Raw,
		Translations: []map[string]string{{"en": strconv.Itoa(n) + " (octal " + strconv.FormatInt(int64(n), 8) + ")"}},
	}}}
}

// unleniteExternal returns the words that can lenite to word after a
// leniting adposition.
func unleniteExternal(word string) []string {
	w := phonology.NewWord(word)
	switch first := w.FirstLetter(); {
	case first == "":
		return nil
	case w.StartsWithVowel(), w.StartsWithDiphthong():
		return []string{word, "'" + word}
	case slices.Contains([]string{"px", "tx", "kx", "ts", "b", "d", "g"}, first):
		// these are never the result of lenition
		return nil
	}
	// t, p and k lenite to s, f and h, so only tx, px and kx (or d, b and
	// g) survive this filter for them
	var result []string
	for _, candidate := range phonology.Unlenite(word) {
		if strings.HasPrefix(candidate, "'") || phonology.NewWord(candidate).Lenite().String() != word {
			continue
		}
		result = append(result, candidate)
	}
	return result
}

// forbiddenByExternalLenition reports whether res reads word as a short
// plural without determiner: "mì hilvan" cannot be mì + (ay)hilvan.
func forbiddenByExternalLenition(res WordResult, word string) bool {
	step, ok := res.lastStep()
	if !ok || step.Noun == nil {
		return false
	}
	a := step.Noun.Affixes
	if a.PluralPrefix != nouns.Plural || a.DeterminerPrefix != nouns.NoDeterminer {
		return false
	}
	return !strings.HasPrefix(word, "ay")
}

// correctionDistance is the smallest letter edit distance between query and
// one of forms.
func correctionDistance(query string, forms []string) int {
	q := phonology.Compress(query)
	distance := -1
	for _, f := range forms {
		d := levenshtein.ComputeDistance(q, phonology.Compress(f))
		if distance < 0 || d < distance {
			distance = d
		}
	}
	return distance
}

// score ranks a result; lower scores come first. Corrections are pushed
// down, and longer roots come before shorter ones because they tend to be
// more specific (utraltsyìp before utral).
func (l lookup) score(res WordResult, query string) int {
	raw := strings.ToLower(res.WordRaw.In(l.dialect))
	if raw == query {
		return 0
	}
	score := 0
	for _, step := range res.Conjugated {
		correction, forms := step.correction()
		if correction == "" {
			continue
		}
		score += 10
		distance := 10
		if d := correctionDistance(correction, forms); d >= 0 {
			distance = min(distance, d)
		}
		score += distance
	}
	return score + 100 - utf8.RuneCountInString(raw)
}

func (l lookup) sort(results []WordResult, query string) {
	type scored struct {
		res   WordResult
		score int
	}
	s := make([]scored, len(results))
	for i, res := range results {
		s[i] = scored{res, l.score(res, query)}
	}
	slices.SortStableFunc(s, func(a, b scored) int {
		return cmp.Compare(a.score, b.score)
	})
	for i := range s {
		results[i] = s[i].res
	}
}

// deduplicate keeps the first result per word:type key.
func deduplicate(results []WordResult) []WordResult {
	seen := make(map[string]bool, len(results))
	out := results[:0]
	for _, res := range results {
		key := res.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, res)
	}
	return out
}

// suggest returns the dictionary words closest to word, for queries without
// results. Longer queries allow larger distances.
func (l lookup) suggest(word string) []string {
	maxDistance := utf8.RuneCountInString(word)/3 + 1
	best := maxDistance + 1
	var suggestions []string
	for _, e := range l.dict.All() {
		raw := strings.ToLower(e.WordRaw.In(l.dialect))
		d := levenshtein.ComputeDistance(raw, word)
		if d > maxDistance || d > best {
			continue
		}
		if d < best {
			best = d
			suggestions = suggestions[:0]
		}
		if e.Type == TypeSiNoun {
			raw += " si"
		}
		suggestions = append(suggestions, raw)
	}
	slices.Sort(suggestions)
	return slices.Compact(suggestions)
}

// mergeSiVerbs joins an n:si result followed by the verb si into a single
// nv:si result, so that "kaltxì si" is one word.
func mergeSiVerbs(results []WordResults) []WordResults {
	for i := 0; i < len(results)-1; i++ {
		second := results[i+1]
		if len(second.Results) != 1 || second.Results[0].Type != TypeVerbSi {
			continue
		}
		first := results[i]
		merged := WordResults{Query: first.Query + " " + second.Query, Results: []WordResult{}}
		for _, res := range first.Results {
			if res.Type == TypeSiNoun {
				res.Type = TypeSiVerb
				res.Conjugated = second.Results[0].Conjugated
				merged.Results = append(merged.Results, res)
			}
		}
		if len(merged.Results) > 0 {
			results[i+1] = merged
			results = slices.Delete(results, i, i+1)
		}
	}
	return results
}

// Complete returns the entries whose raw form in dialect d starts with
// prefix, for autocompletion. Prefixes shorter than three letters return
// nothing.
func (r *Reykunyu) Complete(prefix string, d dialect.Dialect) []Entry {
	if utf8.RuneCountInString(prefix) < 3 {
		return nil
	}
	prefix = strings.ToLower(Preprocess(prefix, d))
	var result []Entry
	for _, e := range r.Dictionary().All() {
		key := strings.ToLower(e.WordRaw.In(d))
		if d == dialect.Combined {
			key = strings.ReplaceAll(key, "ù", "u")
		}
		if strings.HasPrefix(key, prefix) {
			result = append(result, e)
		}
	}
	return result
}
