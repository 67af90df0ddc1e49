package reykunyu

import (
	"encoding/json"
	"fmt"

	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/nouns"
	"github.com/Willem3141/navi-reykunyu-sub001/verbs"
)

// StepType names one step in the derivation of a looked-up word from its
// dictionary entry.
type StepType string

const (
	StepNoun              StepType = "n"
	StepVerb              StepType = "v"
	StepAdjective         StepType = "adj"
	StepVerbToNoun        StepType = "v_to_n"
	StepGerund            StepType = "gerund"
	StepVerbToParticiple  StepType = "v_to_part"
	StepVerbToAdjective   StepType = "v_to_adj"
	StepAdjectiveToAdverb StepType = "adj_to_adv"
)

// VerbConjugation is a verb with infixes.
type VerbConjugation struct {
	Root       string        `json:"root"`
	Infixes    verbs.Infixes `json:"infixes"`
	Result     []string      `json:"result"`
	Correction string        `json:"correction,omitempty"`
}

// AdjectiveConjugation is an adjective in one of its attributive forms.
type AdjectiveConjugation struct {
	Root   string          `json:"root"`
	Form   adjectives.Form `json:"form"`
	Result []string        `json:"result"`
}

// Derivation turns a word of one class into another with a fixed affix,
// like the -yu that makes a noun out of a verb.
type Derivation struct {
	Root       string   `json:"root"`
	Affixes    []string `json:"affixes,omitempty"`
	Result     []string `json:"result"`
	Correction string   `json:"correction,omitempty"`
}

// ConjugationStep is one step of a derivation. Exactly one of the
// conjugation fields is set, depending on Type.
type ConjugationStep struct {
	Type       StepType
	Noun       *nouns.Result
	Verb       *VerbConjugation
	Adjective  *AdjectiveConjugation
	Derivation *Derivation
}

func (s ConjugationStep) MarshalJSON() ([]byte, error) {
	var conjugation any
	switch {
	case s.Noun != nil:
		conjugation = s.Noun
	case s.Verb != nil:
		conjugation = s.Verb
	case s.Adjective != nil:
		conjugation = s.Adjective
	case s.Derivation != nil:
		conjugation = s.Derivation
	}
	return json.Marshal(struct {
		Type        StepType `json:"type"`
		Conjugation any      `json:"conjugation"`
	}{s.Type, conjugation})
}

func (s *ConjugationStep) UnmarshalJSON(data []byte) error {
	var step struct {
		Type        StepType        `json:"type"`
		Conjugation json.RawMessage `json:"conjugation"`
	}
	if err := json.Unmarshal(data, &step); err != nil {
		return err
	}
	*s = ConjugationStep{Type: step.Type}
	if len(step.Conjugation) == 0 || string(step.Conjugation) == "null" {
		return nil
	}
	var target any
	switch step.Type {
	case StepNoun:
		s.Noun = new(nouns.Result)
		target = s.Noun
	case StepVerb:
		s.Verb = new(VerbConjugation)
		target = s.Verb
	case StepAdjective:
		s.Adjective = new(AdjectiveConjugation)
		target = s.Adjective
	default:
		s.Derivation = new(Derivation)
		target = s.Derivation
	}
	return json.Unmarshal(step.Conjugation, target)
}

// correction returns the correction recorded in the step, if any.
func (s ConjugationStep) correction() (query string, result []string) {
	switch {
	case s.Noun != nil:
		return s.Noun.Correction, s.Noun.Result
	case s.Verb != nil:
		return s.Verb.Correction, s.Verb.Result
	case s.Derivation != nil:
		return s.Derivation.Correction, s.Derivation.Result
	}
	return "", nil
}

// ExternalLenition records that a word was lenited by the adposition before
// it.
type ExternalLenition struct {
	From string `json:"from"`
	To   string `json:"to"`
	By   string `json:"by"`
}

// WordResult is a dictionary entry matched by a query word, with the steps
// that lead from the entry to the word.
type WordResult struct {
	Entry
	Conjugated       []ConjugationStep `json:"conjugated,omitempty"`
	ExternalLenition *ExternalLenition `json:"externalLenition,omitempty"`
}

// wordResultSteps holds the fields WordResult adds to its entry.
type wordResultSteps struct {
	Conjugated       []ConjugationStep `json:"conjugated,omitempty"`
	ExternalLenition *ExternalLenition `json:"externalLenition,omitempty"`
}

// MarshalJSON writes the entry fields and the steps as one object. Without
// it the embedded Entry's method would hide the steps.
func (r WordResult) MarshalJSON() ([]byte, error) {
	entry, err := json.Marshal(r.Entry)
	if err != nil {
		return nil, err
	}
	steps, err := json.Marshal(wordResultSteps{r.Conjugated, r.ExternalLenition})
	if err != nil {
		return nil, err
	}
	return joinObjects(entry, steps), nil
}

func (r *WordResult) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Entry); err != nil {
		return err
	}
	var steps wordResultSteps
	if err := json.Unmarshal(data, &steps); err != nil {
		return err
	}
	r.Conjugated, r.ExternalLenition = steps.Conjugated, steps.ExternalLenition
	return nil
}

// lastStep returns the outermost conjugation step.
func (r WordResult) lastStep() (ConjugationStep, bool) {
	if len(r.Conjugated) == 0 {
		return ConjugationStep{}, false
	}
	return r.Conjugated[len(r.Conjugated)-1], true
}

// WordResults holds the results for one word (or phrase) of a query. The
// JSON keys are the ones the Reykunyu API has always used.
type WordResults struct {
	Query string `json:"tìpawm"`
	// Results is read and written under the "sì'eyng" key by the JSON
	// methods below.
	Results     []WordResult `json:"-"`
	Suggestions []string     `json:"aysämok"`
}

const resultsKey = "sì'eyng"

type wordResultsFields WordResults

func (w WordResults) MarshalJSON() ([]byte, error) {
	fields, err := json.Marshal(wordResultsFields(w))
	if err != nil {
		return nil, err
	}
	results, err := json.Marshal(map[string][]WordResult{resultsKey: w.Results})
	if err != nil {
		return nil, err
	}
	return joinObjects(results, fields), nil
}

func (w *WordResults) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*wordResultsFields)(w)); err != nil {
		return err
	}
	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(data, &keyed); err != nil {
		return err
	}
	if raw, ok := keyed[resultsKey]; ok {
		if err := json.Unmarshal(raw, &w.Results); err != nil {
			return fmt.Errorf("%s: %w", resultsKey, err)
		}
	}
	return nil
}
