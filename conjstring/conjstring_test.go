package conjstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"ay-oenge-y(ä);-awnge-y(ä)", []string{"ayoengeyä", "ayoengey", "awngeyä", "awngey"}},
		{"k-ìyev/iyev-am--e", []string{"kìyevame", "kiyevame"}},
		{"-tute-", []string{"tute"}},
		{"(ay)-{s}ute-", []string{"ay{s}ute", "{s}ute"}},
		{"fwampop-it/ti", []string{"fwampopit", "fwampopti"}},
		{"pay-it/t(i)", []string{"payit", "payti", "payt"}},
		{"a-(b)-c;a-b-c", []string{"abc", "ac"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, Expand(tt.pattern))
		})
	}
}

func TestExpandEmpty(t *testing.T) {
	assert.Empty(t, Expand(""))
}

func TestExpandIsDeterministic(t *testing.T) {
	const pattern = "f(ì)-ay-(p)e-t(i)/it;-ay-pe-ri"
	first := Expand(pattern)
	for range 5 {
		assert.Equal(t, first, Expand(pattern))
	}
}

func TestAdmits(t *testing.T) {
	assert.True(t, Admits("-ay-{s}ute-", "aysute"))
	assert.True(t, Admits("(ay)-{s}ute-", "sute"))
	assert.False(t, Admits("-tute-l", "tutel "))
	assert.False(t, Admits("", ""))
}
