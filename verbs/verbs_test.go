package verbs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTemplate(t *testing.T, s string) Template {
	t.Helper()
	tmpl, err := ParseTemplate(s)
	require.NoError(t, err)
	return tmpl
}

func TestParseTemplate(t *testing.T) {
	tmpl := mustTemplate(t, "p.(ll)tx.e")
	assert.Equal(t, Template{BeforeFirst: "p", Between: "(ll)tx", AfterSecond: "e"}, tmpl)
	assert.Equal(t, "p.(ll)tx.e", tmpl.String())

	for _, bad := range []string{"tìran", "t.ìran", "a.b.c.d", ""} {
		_, err := ParseTemplate(bad)
		assert.ErrorIs(t, err, ErrMalformedTemplate, "ParseTemplate(%q)", bad)
	}
}

func TestConjugate(t *testing.T) {
	tests := []struct {
		template string
		infixes  Infixes
		want     []string
	}{
		{"t.ìr.an", Infixes{}, []string{"tìran"}},
		{"t.ìr.an", Infixes{First: FirstOl}, []string{"tolìran"}},
		{"t.ìr.an", Infixes{Prefirst: PrefirstEyk, First: FirstOl, Second: SecondEi}, []string{"teykolìreian"}},
		{"k.ä.", Infixes{First: FirstIyev}, []string{"kìyevä", "kiyevä"}},

		// second position special cases
		{"s..i", Infixes{Second: SecondEi}, []string{"seiyi"}},
		{"s..i", Infixes{Second: SecondAng}, []string{"sängi", "sengi"}},
		{"n.u.i", Infixes{Second: SecondUy}, []string{"nuyi"}},
		{"t.ar.on", Infixes{Second: SecondUy}, []string{"taruyon"}},

		// z.en.(e)ke
		{"z.en.(e)ke", Infixes{}, []string{"zenke"}},
		{"z.en.(e)ke", Infixes{Second: SecondUy}, []string{"zenuyeke"}},
		{"z.en.(e)ke", Infixes{Second: SecondAts}, []string{"zenatseke"}},
		{"z.en.(e)ke", Infixes{Second: SecondEi}, []string{"zeneike"}},

		// pseudovowel contraction
		{"f.rr.fen", Infixes{First: FirstEr}, []string{"frrfen"}},
		{"f.rr.fen", Infixes{First: FirstAm}, []string{"famrrfen"}},
		{"p.(ll)tx.e", Infixes{}, []string{"plltxe"}},
		{"p.(ll)tx.e", Infixes{First: FirstOl}, []string{"poltxe"}},
		{"p.(ll)tx.e", Infixes{First: FirstAm}, []string{"pamlltxe"}},
		{"h..(rr)n", Infixes{First: FirstEr}, []string{"hern"}},
		{"h..(rr)n", Infixes{First: FirstEr, Second: SecondAng}, []string{"herängrrn"}},
		{"h..rrn", Infixes{First: FirstEr}, []string{"hrrn"}},
		{"h..rrn", Infixes{First: FirstEr, Second: SecondAts}, []string{"heratsrrn"}},
	}
	for _, tt := range tests {
		t.Run(tt.template+"/"+tt.infixes.First.String()+tt.infixes.Second.String(), func(t *testing.T) {
			got, err := Forms(mustTemplate(t, tt.template), tt.infixes)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestConjugateString(t *testing.T) {
	got, err := Conjugate(mustTemplate(t, "t.ìr.an"), Infixes{First: FirstOl})
	require.NoError(t, err)
	assert.Equal(t, "t--ol-ìr--an", got)

	got, err = Conjugate(mustTemplate(t, "k.ä."), Infixes{Prefirst: PrefirstAp, First: FirstIyev})
	require.NoError(t, err)
	assert.Equal(t, "k-äp-ìyev/iyev-ä--", got)
}

func TestConjugateInvalidInfix(t *testing.T) {
	_, err := Conjugate(mustTemplate(t, "t.ìr.an"), Infixes{First: First(99)})
	assert.ErrorIs(t, err, ErrInvalidInfix)

	_, err = ParseInfixes([3]string{"", "ul", ""})
	assert.ErrorIs(t, err, ErrInvalidInfix)
}

func TestParse(t *testing.T) {
	tests := []struct {
		word string
		want Candidate
	}{
		{"tolìran", Candidate{"tìran", Infixes{First: FirstOl}}},
		{"teykolìreian", Candidate{"tìran", Infixes{Prefirst: PrefirstEyk, First: FirstOl, Second: SecondEi}}},
		{"poltxe", Candidate{"plltxe", Infixes{First: FirstOl}}},
		{"frrfen", Candidate{"frrfen", Infixes{First: FirstEr}}},
		{"kiyevä", Candidate{"kä", Infixes{First: FirstIyev}}},
		{"seiyi", Candidate{"si", Infixes{Second: SecondEi}}},
		{"sengi", Candidate{"si", Infixes{Second: SecondAng}}},
		{"nuyi", Candidate{"nui", Infixes{Second: SecondUy}}},
		{"zenuyeke", Candidate{"zenke", Infixes{Second: SecondUy}}},
		{"zenatseke", Candidate{"zenke", Infixes{Second: SecondAts}}},
		{"tìran", Candidate{"tìran", Infixes{}}},
	}
	for _, tt := range tests {
		got := Parse(tt.word)
		require.NotEmpty(t, got)
		assert.Equal(t, Candidate{Root: tt.word}, got[0], "identity first for %q", tt.word)
		assert.Contains(t, got, tt.want, "Parse(%q)", tt.word)
		assert.Less(t, len(got), 200, "candidate count for %q", tt.word)
	}
}

func TestParseTriesEveryOccurrence(t *testing.T) {
	got := Parse("amkam")
	assert.Contains(t, got, Candidate{"kam", Infixes{First: FirstAm}})
	assert.Contains(t, got, Candidate{"amk", Infixes{First: FirstAm}})

	assert.Equal(t, []int{0, 1}, occurrences("aaa", "aa"))
	assert.Empty(t, occurrences("a", "aa"))
}

func TestParseHasNoDuplicates(t *testing.T) {
	got := Parse("tamam")
	seen := make(map[Candidate]bool)
	for _, c := range got {
		assert.False(t, seen[c], "duplicate %+v", c)
		seen[c] = true
	}
}

func TestInfixesJSON(t *testing.T) {
	out, err := json.Marshal(Infixes{Prefirst: PrefirstAp, First: FirstOl})
	require.NoError(t, err)
	assert.JSONEq(t, `["äp","ol",""]`, string(out))

	var in Infixes
	require.NoError(t, json.Unmarshal([]byte(`["","ìyev","äng"]`), &in))
	assert.Equal(t, Infixes{First: FirstIyev, Second: SecondAng}, in)
	assert.True(t, Infixes{}.IsEmpty())
	assert.True(t, FirstAwn.IsParticiple())
	assert.False(t, FirstOl.IsParticiple())
}

func TestRoundTripEveryInfix(t *testing.T) {
	templates := []string{"t.ar.on", "t.ìr.an", "k.ä.", "s..i", "n.u.i", "z.en.(e)ke"}
	for _, s := range templates {
		tmpl := mustTemplate(t, s)
		bare, err := Forms(tmpl, Infixes{})
		require.NoError(t, err)
		require.Len(t, bare, 1)

		for p := range prefirsts {
			for f := range firsts {
				for sc := range seconds {
					infixes := Infixes{Prefirst: Prefirst(p), First: First(f), Second: Second(sc)}
					forms, err := Forms(tmpl, infixes)
					require.NoError(t, err, "Forms(%q, %+v)", s, infixes)
					for _, form := range forms {
						assert.Contains(t, Parse(form), Candidate{bare[0], infixes}, "Parse(%q)", form)
					}
				}
			}
		}
	}
}
