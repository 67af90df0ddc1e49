package nouns

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/internal/slot"
)

var (
	// ErrInvalidAffix is returned for affix values outside the fixed tables.
	ErrInvalidAffix = errors.New("invalid noun affix")

	// ErrIncompatibleAffixes is returned for affix combinations that cannot
	// occur together, such as pe- with -pe.
	ErrIncompatibleAffixes = errors.New("incompatible noun affixes")
)

// DeterminerPrefix is slot 0: fì-, tsa-, pe-, fra-.
type DeterminerPrefix int

const (
	NoDeterminer DeterminerPrefix = iota
	DeterminerFi
	DeterminerTsa
	DeterminerPe
	DeterminerFra
)

var determinerPrefixes = slot.Names[DeterminerPrefix]{"", "fì", "tsa", "pe", "fra"}

func (p DeterminerPrefix) String() string { return determinerPrefixes.Name(p) }

// PluralPrefix is slot 1: me- (dual), pxe- (trial), ay- (plural).
type PluralPrefix int

const (
	Singular PluralPrefix = iota
	Dual
	Trial
	Plural
)

var pluralPrefixes = slot.Names[PluralPrefix]{"", "me", "pxe", "ay"}

func (p PluralPrefix) String() string { return pluralPrefixes.Name(p) }

// StemPrefix is slot 2: fne-, munsna-.
type StemPrefix int

const (
	NoStemPrefix StemPrefix = iota
	StemPrefixFne
	StemPrefixMunsna
)

var stemPrefixes = slot.Names[StemPrefix]{"", "fne", "munsna"}

func (p StemPrefix) String() string { return stemPrefixes.Name(p) }

// StemSuffix is slot 3: -tsyìp, -fkeyk.
type StemSuffix int

const (
	NoStemSuffix StemSuffix = iota
	StemSuffixTsyip
	StemSuffixFkeyk
)

var stemSuffixes = slot.Names[StemSuffix]{"", "tsyìp", "fkeyk"}

func (s StemSuffix) String() string { return stemSuffixes.Name(s) }

// DeterminerSuffix is slot 4: -pe, -o.
type DeterminerSuffix int

const (
	NoDeterminerSuffix DeterminerSuffix = iota
	DeterminerSuffixPe
	DeterminerSuffixO
)

var determinerSuffixes = slot.Names[DeterminerSuffix]{"", "pe", "o"}

func (s DeterminerSuffix) String() string { return determinerSuffixes.Name(s) }

// Case is a grammatical case marked in slot 5.
type Case int

const (
	Subjective Case = iota
	Agentive
	Patientive
	Dative
	Genitive
	Topical
)

var cases = slot.Names[Case]{"", "l", "t", "r", "ä", "ri"}

func (c Case) String() string { return cases.Name(c) }

// FinalSuffix is slot 6: -sì, -to.
type FinalSuffix int

const (
	NoFinalSuffix FinalSuffix = iota
	FinalSi
	FinalTo
)

var finalSuffixes = slot.Names[FinalSuffix]{"", "sì", "to"}

func (s FinalSuffix) String() string { return finalSuffixes.Name(s) }

var adpositions = map[dialect.Dialect][]string{
	dialect.FN: {
		"äo", "eo", "fa", "few", "fkip", "fpi", "ftu", "ftumfa", "ftuopa", "hu",
		"ìlä", "io", "ka", "kam", "kay", "kip", "krrka", "kxamlä", "lisre", "lok",
		"luke", "maw", "mì", "mìkam", "mungwrr", "na", "ne", "nemfa", "nuä",
		"pxaw", "pxel", "pximaw", "pxisre", "raw", "ro", "rofa", "sìn", "sko",
		"sre", "ta", "tafkip", "takip", "talun", "teri", "uo", "vay", "wä", "yoa",
	},
	dialect.RN: {
		"äo", "eo", "fa", "few", "fkip", "fpi", "ftu", "ftumfa", "ftuopa", "hu",
		"ìlä", "ile", "io", "ka", "kam", "kay", "kip", "krrka", "gamlä", "gamle", "lisre", "lok",
		"luke", "maw", "mì", "mìkam", "mùngwrr", "na", "ne", "nemfa", "nuä",
		"baw", "bel", "bimaw", "bisre", "raw", "ro", "rofa", "sìn", "sko",
		"sre", "ta", "tafkip", "takip", "talun", "teri", "uo", "vay", "wä", "yoa",
	},
}

// Adpositions returns the adpositions that can fill the case slot in
// dialect d. Combined notation uses the FN list.
func Adpositions(d dialect.Dialect) []string {
	if d == dialect.RN {
		return adpositions[dialect.RN]
	}
	return adpositions[dialect.FN]
}

func isAdposition(s string) bool {
	return slices.Contains(adpositions[dialect.FN], s) || slices.Contains(adpositions[dialect.RN], s)
}

// CaseSuffix fills slot 5. It is either a case or, when Adposition is set,
// an adposition attached to the noun. Case must be Subjective in the latter
// form.
type CaseSuffix struct {
	Case       Case
	Adposition string
}

// CaseOf returns the case suffix marking c.
func CaseOf(c Case) CaseSuffix {
	return CaseSuffix{Case: c}
}

// AdpositionOf returns the case suffix for adposition a.
func AdpositionOf(a string) CaseSuffix {
	return CaseSuffix{Adposition: a}
}

func (s CaseSuffix) String() string {
	if s.Adposition != "" {
		return s.Adposition
	}
	return s.Case.String()
}

func parseCaseSuffix(name string) (CaseSuffix, bool) {
	if c, ok := cases.Lookup(name); ok {
		return CaseOf(c), true
	}
	if isAdposition(name) {
		return AdpositionOf(name), true
	}
	return CaseSuffix{}, false
}

// Affixes is the seven-slot affix vector of a conjugated noun, in the order
// the slots appear in the word.
type Affixes struct {
	DeterminerPrefix DeterminerPrefix
	PluralPrefix     PluralPrefix
	StemPrefix       StemPrefix
	StemSuffix       StemSuffix
	DeterminerSuffix DeterminerSuffix
	CaseSuffix       CaseSuffix
	FinalSuffix      FinalSuffix
}

// Slots returns the canonical names of the seven slots; empty slots are "".
func (a Affixes) Slots() [7]string {
	return [7]string{
		a.DeterminerPrefix.String(),
		a.PluralPrefix.String(),
		a.StemPrefix.String(),
		a.StemSuffix.String(),
		a.DeterminerSuffix.String(),
		a.CaseSuffix.String(),
		a.FinalSuffix.String(),
	}
}

// ParseAffixes builds an Affixes value from slot names. The plural slot
// also accepts "(ay)", the short plural marker, as a synonym of "ay".
func ParseAffixes(slots [7]string) (Affixes, error) {
	var a Affixes
	var ok bool
	if a.DeterminerPrefix, ok = determinerPrefixes.Lookup(slots[0]); !ok {
		return Affixes{}, fmt.Errorf("%w: determiner prefix %q", ErrInvalidAffix, slots[0])
	}
	plural := slots[1]
	if plural == "(ay)" {
		plural = "ay"
	}
	if a.PluralPrefix, ok = pluralPrefixes.Lookup(plural); !ok {
		return Affixes{}, fmt.Errorf("%w: plural prefix %q", ErrInvalidAffix, slots[1])
	}
	if a.StemPrefix, ok = stemPrefixes.Lookup(slots[2]); !ok {
		return Affixes{}, fmt.Errorf("%w: stem prefix %q", ErrInvalidAffix, slots[2])
	}
	if a.StemSuffix, ok = stemSuffixes.Lookup(slots[3]); !ok {
		return Affixes{}, fmt.Errorf("%w: stem suffix %q", ErrInvalidAffix, slots[3])
	}
	if a.DeterminerSuffix, ok = determinerSuffixes.Lookup(slots[4]); !ok {
		return Affixes{}, fmt.Errorf("%w: determiner suffix %q", ErrInvalidAffix, slots[4])
	}
	if a.CaseSuffix, ok = parseCaseSuffix(slots[5]); !ok {
		return Affixes{}, fmt.Errorf("%w: case suffix %q", ErrInvalidAffix, slots[5])
	}
	if a.FinalSuffix, ok = finalSuffixes.Lookup(slots[6]); !ok {
		return Affixes{}, fmt.Errorf("%w: final suffix %q", ErrInvalidAffix, slots[6])
	}
	return a, nil
}

// Validate checks that every slot holds a known value and that the slots
// can be combined.
func (a Affixes) Validate() error {
	switch {
	case !determinerPrefixes.Valid(a.DeterminerPrefix):
		return fmt.Errorf("%w: determiner prefix %d", ErrInvalidAffix, a.DeterminerPrefix)
	case !pluralPrefixes.Valid(a.PluralPrefix):
		return fmt.Errorf("%w: plural prefix %d", ErrInvalidAffix, a.PluralPrefix)
	case !stemPrefixes.Valid(a.StemPrefix):
		return fmt.Errorf("%w: stem prefix %d", ErrInvalidAffix, a.StemPrefix)
	case !stemSuffixes.Valid(a.StemSuffix):
		return fmt.Errorf("%w: stem suffix %d", ErrInvalidAffix, a.StemSuffix)
	case !determinerSuffixes.Valid(a.DeterminerSuffix):
		return fmt.Errorf("%w: determiner suffix %d", ErrInvalidAffix, a.DeterminerSuffix)
	case !cases.Valid(a.CaseSuffix.Case):
		return fmt.Errorf("%w: case %d", ErrInvalidAffix, a.CaseSuffix.Case)
	case a.CaseSuffix.Adposition != "" && (a.CaseSuffix.Case != Subjective || !isAdposition(a.CaseSuffix.Adposition)):
		return fmt.Errorf("%w: adposition %q", ErrInvalidAffix, a.CaseSuffix.Adposition)
	case !finalSuffixes.Valid(a.FinalSuffix):
		return fmt.Errorf("%w: final suffix %d", ErrInvalidAffix, a.FinalSuffix)
	}
	if a.DeterminerPrefix == DeterminerPe && a.DeterminerSuffix == DeterminerSuffixPe {
		return fmt.Errorf("%w: pe- with -pe", ErrIncompatibleAffixes)
	}
	return nil
}

// IsEmpty reports whether no slot is filled.
func (a Affixes) IsEmpty() bool {
	return a == Affixes{}
}

func (a Affixes) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Slots())
}

func (a *Affixes) UnmarshalJSON(data []byte) error {
	var slots [7]string
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	parsed, err := ParseAffixes(slots)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
