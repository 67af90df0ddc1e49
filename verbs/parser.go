package verbs

import (
	"strings"

	"github.com/Willem3141/navi-reykunyu-sub001/internal/expand"
)

// Candidate is one way of reading a word as a verb with infixes. Root is the
// word with the infixes taken out; it still has to be matched against a
// dictionary and conjugated back before it can be trusted.
type Candidate struct {
	Root    string  `json:"root"`
	Infixes Infixes `json:"infixes"`
}

// infix is a surface string that can be taken out of a word. If replacement
// is set, it is left behind in its place.
type infix[T any] struct {
	surface     string
	value       T
	replacement string
}

var prefirstInfixes = []infix[Prefirst]{
	{"äp", PrefirstAp, ""},
	{"eyk", PrefirstEyk, ""},
	{"äpeyk", PrefirstApeyk, ""},
}

var firstInfixes = []infix[First]{
	{"us", FirstUs, ""},
	{"awn", FirstAwn, ""},

	{"am", FirstAm, ""},
	{"ìm", FirstIm, ""},
	{"ìy", FirstIy, ""},
	{"ìsy", FirstIsy, ""},
	{"ay", FirstAy, ""},
	{"asy", FirstAsy, ""},

	{"ol", FirstOl, ""},
	{"ol", FirstOl, "ll"}, // poltxe → plltxe
	{"ll", FirstOl, "ll"},
	{"alm", FirstAlm, ""},
	{"ìlm", FirstIlm, ""},
	{"ìly", FirstIly, ""},
	{"aly", FirstAly, ""},

	{"er", FirstEr, ""},
	{"er", FirstEr, "rr"},
	{"rr", FirstEr, "rr"}, // frrfen
	{"arm", FirstArm, ""},
	{"ìrm", FirstIrm, ""},
	{"ìry", FirstIry, ""},
	{"ary", FirstAry, ""},

	{"iv", FirstIv, ""},
	{"imv", FirstImv, ""},
	{"ìyev", FirstIyev, ""},
	{"iyev", FirstIyev, ""},
	{"ilv", FirstIlv, ""},
	{"irv", FirstIrv, ""},
}

var secondInfixes = []infix[Second]{
	{"ei", SecondEi, ""},
	{"eiy", SecondEi, ""},
	{"äng", SecondAng, ""},
	{"eng", SecondAng, ""},
	{"uy", SecondUy, ""},
	{"uye", SecondUy, ""}, // zenuyeke
	{"y", SecondUy, ""},   // verbs ending in u, like nui
	{"ats", SecondAts, ""},
	{"atse", SecondAts, ""},
}

// Parse returns every reading of word as a verb root with infixes. The
// unmodified word with no infixes is always the first candidate. Each infix
// is tried at every position it occurs, overlapping occurrences included.
func Parse(word string) []Candidate {
	return expand.Run(Candidate{Root: strings.ToLower(word)},
		stage(prefirstInfixes, func(c *Candidate, v Prefirst) { c.Infixes.Prefirst = v }),
		stage(firstInfixes, func(c *Candidate, v First) { c.Infixes.First = v }),
		stage(secondInfixes, func(c *Candidate, v Second) { c.Infixes.Second = v }),
	)
}

func stage[T any](infixes []infix[T], set func(*Candidate, T)) expand.Stage[Candidate] {
	return func(c Candidate) []Candidate {
		out := []Candidate{c}
		for _, in := range infixes {
			for _, i := range occurrences(c.Root, in.surface) {
				next := c
				next.Root = c.Root[:i] + in.replacement + c.Root[i+len(in.surface):]
				set(&next, in.value)
				out = append(out, next)
			}
		}
		return out
	}
}

// occurrences returns the byte offsets of every occurrence of sub in s,
// including overlapping ones.
func occurrences(s, sub string) []int {
	var offsets []int
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.HasPrefix(s[i:], sub) {
			offsets = append(offsets, i)
		}
	}
	return offsets
}
