package nouns

import "github.com/Willem3141/navi-reykunyu-sub001/dialect"

// TablePlurals and TableCases are the rows and columns of Table.
var (
	TablePlurals = []PluralPrefix{Singular, Dual, Trial, Plural}
	TableCases   = []Case{Subjective, Agentive, Patientive, Dative, Genitive, Topical}
)

// Table returns the simple conjugations of noun for every number (rows) and
// case (columns). Proper nouns get the singular row only.
func Table(noun string, d dialect.Dialect, properNoun, loanword bool) [][]string {
	plurals := TablePlurals
	if properNoun {
		plurals = plurals[:1]
	}
	table := make([][]string, len(plurals))
	for i, p := range plurals {
		row := make([]string, len(TableCases))
		for j, c := range TableCases {
			// the fixed number and case values always validate
			row[j], _ = ConjugateSimple(noun, p, c, d, loanword)
		}
		table[i] = row
	}
	return table
}
