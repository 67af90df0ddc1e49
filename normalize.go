package reykunyu

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

// apostrophes maps typographic tìftang variants to ASCII ', removes soft
// hyphens and rewrites the sh/ch spellings.
var apostrophes = strings.NewReplacer(
	"\u2019", "'",
	"\u2018", "'",
	"\u02bc", "'",
	"\u00ad", "",
	"sh", "sy",
	"Sh", "Sy",
	"ch", "tsy",
	"Ch", "Tsy",
)

// forestStops maps the RN voiced stops back to FN ejectives. g is handled
// separately because of ng.
var forestStops = strings.NewReplacer(
	"b", "px",
	"B", "Px",
	"d", "tx",
	"D", "Tx",
	"-g", "kx",
	"-G", "Kx",
	"·g", "kx",
	"·G", "Kx",
	"·", "",
	"ù", "u",
	"Ù", "U",
)

var (
	lowerCaser = cases.Lower(language.Und)

	punctuation = regexp.MustCompile(`[ .,!?:;]+`)
)

// Preprocess normalizes a query typed in dialect d: NFC composition,
// tìftang variants to ', sh to sy and ch to tsy. Outside RN, voiced stops
// are read as ejectives and ù as u.
func Preprocess(query string, d dialect.Dialect) string {
	query = norm.NFC.String(strings.TrimSpace(query))
	query = apostrophes.Replace(query)
	if d != dialect.RN {
		query = forestStops.Replace(query)
		query = unvoiceG(query)
	}
	return query
}

// unvoiceG replaces g by kx except in ng.
func unvoiceG(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		switch {
		case r == 'g' && prev != 'n' && prev != 'N':
			b.WriteString("kx")
		case r == 'G' && prev != 'n' && prev != 'N':
			b.WriteString("Kx")
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// normalizeWord strips punctuation from one query word and lowercases it.
func normalizeWord(word string) string {
	return lowerCaser.String(punctuation.ReplaceAllString(word, ""))
}
