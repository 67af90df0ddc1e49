package reykunyu

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/nouns"
	"github.com/Willem3141/navi-reykunyu-sub001/verbs"
)

const dictionaryFile = "testdata/dictionary.json"

func open(t *testing.T) *Reykunyu {
	t.Helper()
	r, err := Open(dictionaryFile)
	require.NoError(t, err)
	return r
}

// lookUpOne looks up a single-word query and returns its results.
func lookUpOne(t *testing.T, r *Reykunyu, query string, d dialect.Dialect) []WordResult {
	t.Helper()
	results := r.LookUp(query, d)
	require.Len(t, results, 1, "LookUp(%q)", query)
	return results[0].Results
}

func keys(results []WordResult) []string {
	out := make([]string, len(results))
	for i, res := range results {
		out[i] = res.Key()
	}
	return out
}

func stepTypes(res WordResult) []StepType {
	out := make([]StepType, len(res.Conjugated))
	for i, s := range res.Conjugated {
		out[i] = s.Type
	}
	return out
}

func TestOpen(t *testing.T) {
	r := open(t)
	dict := r.Dictionary()
	assert.Equal(t, 17, dict.Len())
	assert.Empty(t, dict.Problems())
	t.Logf("loaded %d entries", dict.Len())
}

func TestEntryForms(t *testing.T) {
	dict := open(t).Dictionary()
	e, err := dict.ByKey("txantsan:adj")
	require.NoError(t, err)
	assert.Equal(t, "txantsan", e.Navi)
	assert.Equal(t, dialect.Forms{FN: "txan/[tsan]", Combined: "txan/[tsan]", RN: "dan/[tsan]"}, e.Word)
	assert.Equal(t, "dantsan", e.WordRaw.RN)

	_, err = dict.ByKey("txantsan:n")
	assert.ErrorIs(t, err, ErrEntryNotFound)
	_, err = dict.ByID(1000)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDictionaryGet(t *testing.T) {
	dict := open(t).Dictionary()

	e, ok := dict.Get("dantsan", TypeAdjective, dialect.RN)
	require.True(t, ok)
	assert.Equal(t, "txantsan", e.Navi)

	_, ok = dict.Get("dantsan", TypeAdjective, dialect.FN)
	assert.False(t, ok)

	// combined notation finds both spellings
	_, ok = dict.Get("dantsan", TypeAdjective, dialect.Combined)
	assert.True(t, ok)
	_, ok = dict.Get("txantsan", TypeAdjective, dialect.Combined)
	assert.True(t, ok)

	assert.Len(t, dict.GetOfTypes("kelku", []WordType{TypeAdjective, TypeNoun}, dialect.FN), 1)
	assert.Empty(t, dict.GetNotOfTypes("kelku", []WordType{TypeNoun}, dialect.FN))
}

func TestEntryTranslation(t *testing.T) {
	e, err := open(t).Dictionary().ByKey("kelku:n")
	require.NoError(t, err)
	assert.Equal(t, "Heim, Haus", e.Translation("de"))
	assert.Equal(t, "home, house", e.Translation("fr"))
}

func TestDuplicateKeys(t *testing.T) {
	dict := NewDictionary([]Entry{
		{Navi: "[kel]/ku", Type: TypeNoun},
		{Navi: "kel/[ku]", Type: TypeNoun},
	})
	assert.Equal(t, []string{"duplicate word/type [kelku:n]"}, dict.Problems())
}

func TestReadEntriesObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	data := `{"kelku:n": {"na'vi": "[kel]/ku"}, "kaltxì:n:si": {"na'vi": "kal/[txì]"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	dict, err := LoadDictionary(path)
	require.NoError(t, err)
	require.Equal(t, 2, dict.Len())
	_, err = dict.ByKey("kaltxì:n:si")
	assert.NoError(t, err)
	_, err = dict.ByKey("kelku:n")
	assert.NoError(t, err)
}

func TestReadEntries(t *testing.T) {
	data := `[
		{"na'vi": "[kel]/ku", "type": "n", "translations": [{"en": "home"}]},
		{"na'vi": "txan/[tsan]", "type": "adj"}
	]`
	entries, err := ReadEntries(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "[kel]/ku", entries[0].Navi)
	assert.Equal(t, TypeNoun, entries[0].Type)
	assert.Equal(t, "home", entries[0].Translation("en"))
	assert.Equal(t, "txan/[tsan]", entries[1].Navi)

	dict := NewDictionary(entries)
	e, err := dict.ByID(1)
	require.NoError(t, err)
	assert.Equal(t, "txantsan", e.Navi)
	assert.Equal(t, "txantsan:adj", e.Key())
	assert.Equal(t, dialect.Forms{FN: "txantsan", Combined: "txantsan", RN: "dantsan"}, e.WordRaw)
}

func TestReadEntriesKeyed(t *testing.T) {
	data := `{"kelku:n": {"na'vi": "[kel]/ku"}, "kaltxì:n:si": {"na'vi": "kal/[txì]"}}`
	entries, err := ReadEntries(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// ordered by key
	assert.Equal(t, "kal/[txì]", entries[0].Navi)
	assert.Equal(t, TypeSiNoun, entries[0].Type)
	assert.Equal(t, "[kel]/ku", entries[1].Navi)
	assert.Equal(t, TypeNoun, entries[1].Type)

	dict := NewDictionary(entries)
	e, ok := dict.Get("kelku", TypeNoun, dialect.FN)
	require.True(t, ok)
	assert.Equal(t, "kelku:n", e.Key())
	assert.Equal(t, "kelku", e.WordRaw.Combined)
}

func TestReadEntriesBadWord(t *testing.T) {
	_, err := ReadEntries(strings.NewReader(`[{"na'vi": 12, "type": "n"}]`))
	assert.Error(t, err)
}

func TestOpenDecodesWords(t *testing.T) {
	dict := open(t).Dictionary()
	for _, e := range dict.All() {
		assert.NotEmpty(t, e.Navi, "entry %d", e.ID)
		assert.NotEmpty(t, e.WordRaw.FN, "entry %d", e.ID)
	}
	e, err := dict.ByKey("kelku:n")
	require.NoError(t, err)
	assert.Equal(t, dialect.Forms{FN: "[kel]/ku", Combined: "[kel]/ku", RN: "[kel]/ku"}, e.Word)
}

func TestEntryJSON(t *testing.T) {
	e, err := open(t).Dictionary().ByKey("kelku:n")
	require.NoError(t, err)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "kelku", fields["na'vi"])
	assert.Equal(t, "n", fields["type"])
	assert.NotContains(t, fields, "Navi")

	var back Entry
	require.NoError(t, json.Unmarshal(data, &back))
	if diff := cmp.Diff(e, back); diff != "" {
		t.Errorf("entry changed in JSON (-want +got):\n%s", diff)
	}
}

func TestWordResultJSON(t *testing.T) {
	res := lookUpOne(t, open(t), "kelkuri", dialect.FN)
	require.NotEmpty(t, res)

	data, err := json.Marshal(res[0])
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "kelku", fields["na'vi"])
	assert.Contains(t, fields, "conjugated")

	var back WordResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "kelku:n", back.Key())
	require.Len(t, back.Conjugated, 1)
	assert.Equal(t, StepNoun, back.Conjugated[0].Type)
	require.NotNil(t, back.Conjugated[0].Noun)
	assert.Equal(t, res[0].Conjugated[0].Noun.Result, back.Conjugated[0].Noun.Result)
	assert.Equal(t, res[0].Conjugated[0].Noun.Affixes.Slots(), back.Conjugated[0].Noun.Affixes.Slots())
}

func TestWordResultsJSON(t *testing.T) {
	results := open(t).LookUp("kelku kelkk", dialect.FN)
	require.Len(t, results, 2)

	data, err := json.Marshal(results)
	require.NoError(t, err)
	var fields []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Len(t, fields, 2)
	assert.Contains(t, fields[0], "tìpawm")
	assert.Contains(t, fields[0], "sì'eyng")
	assert.Contains(t, fields[1], "aysämok")

	var back []WordResults
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 2)
	assert.Equal(t, []string{"kelku:n"}, keys(back[0].Results))
	assert.Empty(t, back[1].Results)
	assert.Equal(t, []string{"kelku"}, back[1].Suggestions)
}

func TestLoadKeepsSnapshotOnError(t *testing.T) {
	r := open(t)
	before := r.Dictionary()

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	assert.Error(t, r.Load(path))
	assert.Same(t, before, r.Dictionary())

	err := r.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		query string
		d     dialect.Dialect
		want  string
	}{
		{"  oel ngati kameie ", dialect.FN, "oel ngati kameie"},
		{"ngati’", dialect.FN, "ngati'"},
		{"‘awa", dialect.FN, "'awa"},
		{"shaw", dialect.FN, "syaw"},
		{"Chey", dialect.FN, "Tsyey"},
		{"dantsan", dialect.FN, "txantsan"},
		{"bevol", dialect.Combined, "pxevol"},
		{"gamlä", dialect.FN, "kxamlä"},
		{"ngal", dialect.FN, "ngal"},
		{"mùngwrr", dialect.FN, "mungwrr"},
		{"dantsan", dialect.RN, "dantsan"},
		{"mùngwrr", dialect.RN, "mùngwrr"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Preprocess(tt.query, tt.d), "Preprocess(%q, %v)", tt.query, tt.d)
	}
}

func TestLookUpNoun(t *testing.T) {
	r := open(t)

	results := lookUpOne(t, r, "kelkuri", dialect.FN)
	require.Len(t, results, 1)
	assert.Equal(t, "kelku:n", results[0].Key())
	require.Len(t, results[0].Conjugated, 1)
	noun := results[0].Conjugated[0].Noun
	require.NotNil(t, noun)
	assert.Equal(t, nouns.CaseOf(nouns.Topical), noun.Affixes.CaseSuffix)
	assert.Empty(t, noun.Correction)
}

func TestLookUpPrefersLongerRoots(t *testing.T) {
	results := lookUpOne(t, open(t), "utraltsyìp", dialect.FN)
	assert.Equal(t, []string{"utraltsyìp:n", "utral:n"}, keys(results))
	assert.Empty(t, results[0].Conjugated[0].Noun.Affixes.Slots()[3])
	assert.Equal(t, "tsyìp", results[1].Conjugated[0].Noun.Affixes.Slots()[3])
}

func TestLookUpCorrection(t *testing.T) {
	r := open(t)
	results := lookUpOne(t, r, "kelkuit", dialect.FN)
	require.Len(t, results, 1)
	assert.Equal(t, "kelkuit", results[0].Conjugated[0].Noun.Correction)

	strict := New(r.Dictionary(), WithMaxCorrection(0))
	assert.Empty(t, lookUpOne(t, strict, "kelkuit", dialect.FN))
}

func TestLookUpLoanword(t *testing.T) {
	results := lookUpOne(t, open(t), "kofi", dialect.FN)
	require.Len(t, results, 1)
	assert.Equal(t, "kofi:n", results[0].Key())
	assert.True(t, results[0].IsLoanword())
}

func TestLookUpVerb(t *testing.T) {
	results := lookUpOne(t, open(t), "tolaron", dialect.FN)
	require.Len(t, results, 1)
	assert.Equal(t, "taron:v:tr", results[0].Key())
	verb := results[0].Conjugated[0].Verb
	require.NotNil(t, verb)
	assert.Equal(t, verbs.Infixes{First: verbs.FirstOl}, verb.Infixes)
	assert.Equal(t, []string{"tolaron"}, verb.Result)
}

func TestLookUpParticiple(t *testing.T) {
	results := lookUpOne(t, open(t), "atusaron", dialect.FN)
	require.Len(t, results, 1)
	res := results[0]
	assert.Equal(t, "taron:v:tr", res.Key())
	assert.Equal(t, []StepType{StepVerb, StepVerbToParticiple, StepAdjective}, stepTypes(res))
	assert.Equal(t, []string{"us"}, res.Conjugated[1].Derivation.Affixes)
	assert.Equal(t, "taron", res.Conjugated[1].Derivation.Root)
	assert.Equal(t, adjectives.Postnoun, res.Conjugated[2].Adjective.Form)
}

func TestLookUpDerivations(t *testing.T) {
	r := open(t)
	tests := []struct {
		query string
		key   string
		steps []StepType
	}{
		{"tìtusaron", "taron:v:tr", []StepType{StepVerb, StepGerund, StepNoun}},
		{"taronyu", "taron:v:tr", []StepType{StepVerb, StepVerbToNoun, StepNoun}},
		{"taronyuti", "taron:v:tr", []StepType{StepVerb, StepVerbToNoun, StepNoun}},
		{"tsuktaron", "taron:v:tr", []StepType{StepVerb, StepVerbToAdjective, StepAdjective}},
		{"kaltxìsiyu", "kaltxì:n:si", []StepType{StepVerbToNoun, StepNoun}},
		{"nìtxantsan", "txantsan:adj", []StepType{StepAdjectiveToAdverb}},
		{"txantsana", "txantsan:adj", []StepType{StepAdjective}},
		{"alefpom", "lefpom:adj", []StepType{StepAdjective}},
		{"lefpom", "lefpom:adj", []StepType{StepAdjective}},
	}
	for _, tt := range tests {
		results := lookUpOne(t, r, tt.query, dialect.FN)
		require.NotEmpty(t, results, "LookUp(%q)", tt.query)
		assert.Equal(t, tt.key, results[0].Key(), "LookUp(%q)", tt.query)
		if diff := cmp.Diff(tt.steps, stepTypes(results[0])); diff != "" {
			t.Errorf("LookUp(%q) steps mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestLookUpGerundPlainVerb(t *testing.T) {
	results := lookUpOne(t, open(t), "tìtusaron", dialect.FN)
	require.NotEmpty(t, results)
	verb := results[0].Conjugated[0].Verb
	assert.True(t, verb.Infixes.IsEmpty())
	assert.Equal(t, []string{"taron"}, verb.Result)
}

func TestLookUpOtherTypes(t *testing.T) {
	r := open(t)
	assert.Equal(t, []string{"ma:part"}, keys(lookUpOne(t, r, "ma", dialect.FN)))
	assert.Equal(t, []string{"mune:num"}, keys(lookUpOne(t, r, "mune", dialect.FN)))
	assert.Equal(t, []string{"Eywa:n:pr"}, keys(lookUpOne(t, r, "Eywa", dialect.FN)))
}

func TestLookUpNumber(t *testing.T) {
	r := open(t)
	results := lookUpOne(t, r, "volaw", dialect.FN)
	require.Len(t, results, 1)
	assert.Equal(t, TypeNumber, results[0].Type)
	assert.Equal(t, "9 (octal 11)", results[0].Translation("en"))

	results = lookUpOne(t, r, "bevol", dialect.RN)
	require.Len(t, results, 1)
	assert.Equal(t, "pxevol", results[0].Navi)
}

func TestLookUpPhrase(t *testing.T) {
	results := open(t).LookUp("Oel ngati kameie, ma kelku", dialect.FN)
	require.Len(t, results, 3)
	assert.Equal(t, "Oel ngati kameie,", results[0].Query)
	assert.Equal(t, []string{"oel ngati kameie:phr"}, keys(results[0].Results))
	assert.Equal(t, []string{"ma:part"}, keys(results[1].Results))
	assert.Equal(t, []string{"kelku:n"}, keys(results[2].Results))
}

func TestLookUpExternalLenition(t *testing.T) {
	r := open(t)

	results := r.LookUp("mì hilvan", dialect.FN)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"mì:adp:len"}, keys(results[0].Results))
	require.Equal(t, []string{"kilvan:n"}, keys(results[1].Results))
	res := results[1].Results[0]
	assert.Equal(t, &ExternalLenition{From: "kilvan", To: "hilvan", By: "mì"}, res.ExternalLenition)
	assert.Equal(t, nouns.Singular, res.Conjugated[0].Noun.Affixes.PluralPrefix)

	// without the adposition, hilvan is the short plural of kilvan
	alone := lookUpOne(t, r, "hilvan", dialect.FN)
	require.Len(t, alone, 1)
	assert.Equal(t, nouns.Plural, alone[0].Conjugated[0].Noun.Affixes.PluralPrefix)
	assert.Nil(t, alone[0].ExternalLenition)

	// ejectives are never lenited
	results = r.LookUp("mì txep", dialect.FN)
	require.Len(t, results, 2)
	assert.Empty(t, results[1].Results)

	// k after mì would have lenited to h
	results = r.LookUp("mì kelku", dialect.FN)
	require.Len(t, results, 2)
	assert.Empty(t, results[1].Results)
}

func TestUnleniteExternal(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"kelku", []string{"kxelku", "gelku"}},
		{"tìran", []string{"txìran", "dìran"}},
		{"pey", []string{"pxey", "bey"}},
		{"hilvan", []string{"hilvan", "kilvan"}},
		{"sute", []string{"sute", "tsute", "tute"}},
		{"utral", []string{"utral", "'utral"}},
		{"mune", []string{"mune"}},
		{"txep", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, unleniteExternal(tt.word), "unleniteExternal(%q)", tt.word)
	}
}

func TestLookUpSiVerb(t *testing.T) {
	results := open(t).LookUp("kaltxì si", dialect.FN)
	require.Len(t, results, 1)
	assert.Equal(t, "kaltxì si", results[0].Query)
	require.Len(t, results[0].Results, 1)
	res := results[0].Results[0]
	assert.Equal(t, TypeSiVerb, res.Type)
	require.Len(t, res.Conjugated, 1)
	assert.Equal(t, StepVerb, res.Conjugated[0].Type)
}

func TestLookUpSuggestions(t *testing.T) {
	results := open(t).LookUp("kelkk", dialect.FN)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Results)
	assert.Equal(t, []string{"kelku"}, results[0].Suggestions)
}

func TestLookUpPunctuationOnly(t *testing.T) {
	results := open(t).LookUp("kelku ?", dialect.FN)
	require.Len(t, results, 2)
	assert.Equal(t, "?", results[1].Query)
	assert.Empty(t, results[1].Results)
	assert.Empty(t, results[1].Suggestions)
}

func TestComplete(t *testing.T) {
	r := open(t)
	assert.Nil(t, r.Complete("ut", dialect.FN))
	var got []string
	for _, e := range r.Complete("utr", dialect.FN) {
		got = append(got, e.Key())
	}
	assert.ElementsMatch(t, []string{"utral:n", "utraltsyìp:n"}, got)
}

func TestTables(t *testing.T) {
	r := open(t)
	tables, err := r.Tables("kelku", dialect.FN)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Noun, 4)
	assert.Equal(t, tables[0].Noun, NounTable(tables[0].Entry, dialect.FN))
	assert.Nil(t, tables[0].Adjective)

	tables, err = r.Tables("Eywa", dialect.FN)
	require.NoError(t, err)
	assert.Len(t, tables[0].Noun, 1)

	tables, err = r.Tables("lefpom", dialect.FN)
	require.NoError(t, err)
	require.NotNil(t, tables[0].Adjective)
	assert.Equal(t, AdjectiveTable{Prefixed: "(a-)lefpom", Suffixed: "lefpom-a"}, *tables[0].Adjective)

	_, err = r.Tables("taron", dialect.FN)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSwapIsSafeDuringLookups(t *testing.T) {
	r := open(t)
	dict := r.Dictionary()
	empty := NewDictionary(nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				if i%2 == 0 {
					r.Swap(empty)
					r.Swap(dict)
				}
				r.LookUp("kelku", dialect.FN)
			}
		}()
	}
	wg.Wait()
	assert.Same(t, dict, r.Dictionary())
}

func TestWordTypeNames(t *testing.T) {
	assert.Equal(t, "noun", TypeNoun.Name())
	assert.Equal(t, "adposition", TypeLenitingAdpos.Name())
	assert.Equal(t, "unknown", WordType("xyz").Name())
	assert.True(t, TypeVerbSi.IsVerb())
	assert.False(t, TypeSiNoun.IsVerb())
	assert.True(t, TypeProperNoun.IsNoun())
}
