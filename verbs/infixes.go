package verbs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Willem3141/navi-reykunyu-sub001/internal/slot"
)

// ErrInvalidInfix is returned for infix values outside the fixed tables.
var ErrInvalidInfix = errors.New("invalid verb infix")

// Prefirst is an infix of the prefirst position (causative, reflexive).
type Prefirst int

const (
	NoPrefirst Prefirst = iota
	PrefirstAp
	PrefirstEyk
	PrefirstApeyk
)

var prefirsts = slot.Names[Prefirst]{"", "äp", "eyk", "äpeyk"}

func (p Prefirst) String() string { return prefirsts.Name(p) }

// First is an infix of the first position (tense, aspect, mood and the
// participles).
type First int

const (
	NoFirst First = iota
	FirstUs
	FirstAwn
	FirstAm
	FirstIm
	FirstIy
	FirstIsy
	FirstAy
	FirstAsy
	FirstOl
	FirstAlm
	FirstIlm
	FirstIly
	FirstAly
	FirstEr
	FirstArm
	FirstIrm
	FirstIry
	FirstAry
	FirstIv
	FirstImv
	FirstIyev
	FirstIlv
	FirstIrv
)

var firsts = slot.Names[First]{
	"", "us", "awn",
	"am", "ìm", "ìy", "ìsy", "ay", "asy",
	"ol", "alm", "ìlm", "ìly", "aly",
	"er", "arm", "ìrm", "ìry", "ary",
	"iv", "imv", "ìyev", "ilv", "irv",
}

func (f First) String() string { return firsts.Name(f) }

// IsParticiple reports whether f forms an active (<us>) or passive (<awn>)
// participle.
func (f First) IsParticiple() bool {
	return f == FirstUs || f == FirstAwn
}

// Second is an infix of the second position (affect and evidentiality).
type Second int

const (
	NoSecond Second = iota
	SecondEi
	SecondAng
	SecondUy
	SecondAts
)

var seconds = slot.Names[Second]{"", "ei", "äng", "uy", "ats"}

func (s Second) String() string { return seconds.Name(s) }

// Infixes holds one infix per position.
type Infixes struct {
	Prefirst Prefirst
	First    First
	Second   Second
}

// Slots returns the canonical infix names; empty positions are "".
func (in Infixes) Slots() [3]string {
	return [3]string{in.Prefirst.String(), in.First.String(), in.Second.String()}
}

// ParseInfixes builds an Infixes value from infix names.
func ParseInfixes(slots [3]string) (Infixes, error) {
	var in Infixes
	var ok bool
	if in.Prefirst, ok = prefirsts.Lookup(slots[0]); !ok {
		return Infixes{}, fmt.Errorf("%w: prefirst %q", ErrInvalidInfix, slots[0])
	}
	if in.First, ok = firsts.Lookup(slots[1]); !ok {
		return Infixes{}, fmt.Errorf("%w: first %q", ErrInvalidInfix, slots[1])
	}
	if in.Second, ok = seconds.Lookup(slots[2]); !ok {
		return Infixes{}, fmt.Errorf("%w: second %q", ErrInvalidInfix, slots[2])
	}
	return in, nil
}

// Validate checks that every position holds a known infix.
func (in Infixes) Validate() error {
	switch {
	case !prefirsts.Valid(in.Prefirst):
		return fmt.Errorf("%w: prefirst %d", ErrInvalidInfix, in.Prefirst)
	case !firsts.Valid(in.First):
		return fmt.Errorf("%w: first %d", ErrInvalidInfix, in.First)
	case !seconds.Valid(in.Second):
		return fmt.Errorf("%w: second %d", ErrInvalidInfix, in.Second)
	}
	return nil
}

// IsEmpty reports whether no infix is set.
func (in Infixes) IsEmpty() bool {
	return in == Infixes{}
}

func (in Infixes) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.Slots())
}

func (in *Infixes) UnmarshalJSON(data []byte) error {
	var slots [3]string
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	parsed, err := ParseInfixes(slots)
	if err != nil {
		return err
	}
	*in = parsed
	return nil
}
