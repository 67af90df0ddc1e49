// Package numbers writes numbers as Na'vi number words and reads them back.
//
// Na'vi counts in octal. Number words are built from unit words and powers
// of eight, so 9 (octal 11) is vol + aw = volaw.
package numbers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

// Max is one more than the largest number that has a number word.
const Max = 8 * 8 * 8 * 8 * 8

// ErrOutOfRange is returned for numbers without a number word.
var ErrOutOfRange = errors.New("number out of range")

var (
	units           = []string{"", "'aw", "mune", "pxey", "tsìng", "mrr", "pukap", "kinä"}
	unitSuffixes    = []string{"", "aw", "mun", "pey", "sìng", "mrr", "fu", "hin"}
	unitPrefixes    = []string{"", "", "me/", "pxe/", "tsì/", "mrr/", "pu/", "ki/"}
	powers          = []string{"", "vo/l", "za/m", "vo/za/m", "za/za/m"}
	powersShortened = []string{"", "vo/", "za/", "vo/za/", "za/za/"}
)

// Number is a number word.
type Number struct {
	Value int `json:"value"`
	// Word is syllabified, like "vo/law".
	Word dialect.Forms `json:"word"`
	Raw  dialect.Forms `json:"word_raw"`
}

// Conjugate returns the number word for n, for 0 <= n < Max.
func Conjugate(n int) (Number, error) {
	if n < 0 || n >= Max {
		return Number{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	return newNumber(n, spell(n)), nil
}

func spell(n int) string {
	if n == 0 {
		return "kew"
	}
	octal := strconv.FormatInt(int64(n), 8)
	var result string
	for i := range len(octal) {
		d := int(octal[len(octal)-1-i] - '0')
		if d == 0 {
			continue
		}
		if i == 0 {
			if len(octal) == 1 {
				result = units[d]
			} else {
				result = unitSuffixes[d]
			}
			continue
		}
		power := powers[i]
		if result != "" && !strings.HasPrefix(result, "a") {
			power = powersShortened[i]
		}
		result = unitPrefixes[d] + power + result
	}
	return result
}

func newNumber(n int, combined string) Number {
	forms := dialect.NewForms(combined)
	return Number{Value: n, Word: forms, Raw: forms.Raw()}
}

var (
	parseOnce  sync.Once
	parseTable map[dialect.Dialect]map[string]int
)

// Parse returns the number that word denotes in dialect d.
func Parse(word string, d dialect.Dialect) (int, bool) {
	parseOnce.Do(func() {
		parseTable = map[dialect.Dialect]map[string]int{
			dialect.Combined: make(map[string]int, Max),
			dialect.FN:       make(map[string]int, Max),
			dialect.RN:       make(map[string]int, Max),
		}
		for n := range Max {
			raw := newNumber(n, spell(n)).Raw
			for dd, table := range parseTable {
				table[raw.In(dd)] = n
			}
		}
	})
	table, ok := parseTable[d]
	if !ok {
		return 0, false
	}
	n, ok := table[strings.ToLower(word)]
	return n, ok
}
