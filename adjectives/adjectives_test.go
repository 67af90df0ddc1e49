package adjectives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Willem3141/navi-reykunyu-sub001/conjstring"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
)

func TestConjugate(t *testing.T) {
	tests := []struct {
		adj  string
		form Form
		opts Options
		want string
	}{
		{"txantsan", Predicative, Options{}, "-txantsan-"},
		{"kea", Predicative, Options{}, "-kea-"},
		{"txantsan", Postnoun, Options{}, "a-txantsan"},
		{"txantsan", Prenoun, Options{}, "txantsan-a"},
		{"lor", Postnoun, Options{LeAdjective: true}, "(a-)lor"},
		{"lor", Postnoun, Options{}, "a-lor"},
		{"lefpom", Postnoun, Options{}, "(a-)lefpom"},
		{"let", Postnoun, Options{}, "a-let"},
		{"apxa", Postnoun, Options{}, "a-pxa"},
		{"apxa", Postnoun, Options{Dialect: dialect.RN}, "a-apxa"},
		{"apxa", Prenoun, Options{}, "apx-a"},
		{"apxa", Prenoun, Options{Dialect: dialect.RN}, "apxa-a"},
		{"kea", Prenoun, Options{}, "ke-a"},
	}
	for _, tt := range tests {
		got, ok := Conjugate(tt.adj, tt.form, tt.opts)
		require.True(t, ok, "Conjugate(%q, %v)", tt.adj, tt.form)
		assert.Equal(t, tt.want, got, "Conjugate(%q, %v, %+v)", tt.adj, tt.form, tt.opts)
	}

	_, ok := Conjugate("kea", Postnoun, Options{})
	assert.False(t, ok)
}

func TestLeAdjectiveAdmitsBothForms(t *testing.T) {
	s, ok := Conjugate("lor", Postnoun, Options{LeAdjective: true})
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"alor", "lor"}, conjstring.Expand(s))
}

func TestPredicativeExpandsToTheRoot(t *testing.T) {
	s, ok := Conjugate("ngim", Predicative, Options{Dialect: dialect.RN})
	require.True(t, ok)
	assert.Equal(t, []string{"ngim"}, conjstring.Expand(s))
}

func TestIsLeAdjective(t *testing.T) {
	assert.True(t, IsLeAdjective("From [le:aff:pre] + [fpom:n]"))
	assert.False(t, IsLeAdjective("From [fpom:n]"))
	assert.False(t, IsLeAdjective(""))
}

func TestParse(t *testing.T) {
	assert.Equal(t, []Candidate{{"ngim", Predicative}}, Parse("ngim"))

	assert.Equal(t, []Candidate{
		{"atxantsan", Predicative},
		{"txantsan", Postnoun},
		{"atxantsan", Postnoun},
	}, Parse("atxantsan"))

	assert.Equal(t, []Candidate{
		{"lefpom", Predicative},
		{"lefpom", Postnoun},
	}, Parse("lefpom"))

	assert.Equal(t, []Candidate{
		{"txantsana", Predicative},
		{"txantsan", Prenoun},
		{"txantsana", Prenoun},
	}, Parse("txantsana"))

	// kea never appears as a postnoun
	for _, c := range Parse("kea") {
		assert.False(t, c.Root == "kea" && c.Form == Postnoun)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, adj := range []string{"txantsan", "lefpom", "apxa", "ngim"} {
		for _, form := range []Form{Predicative, Prenoun, Postnoun} {
			s, ok := Conjugate(adj, form, Options{})
			require.True(t, ok)
			for _, word := range conjstring.Expand(s) {
				assert.Contains(t, Parse(word), Candidate{adj, form}, "Parse(%q)", word)
			}
		}
	}
}

func TestFormText(t *testing.T) {
	var f Form
	require.NoError(t, f.UnmarshalText([]byte("postnoun")))
	assert.Equal(t, Postnoun, f)
	out, err := Prenoun.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "prenoun", string(out))
	assert.Error(t, f.UnmarshalText([]byte("attributive")))
}
