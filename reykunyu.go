// Package reykunyu looks up Na'vi words in a dictionary. Words are taken
// apart by the noun, verb and adjective parsers and the roots are matched
// against the dictionary entries.
package reykunyu

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// DefaultMaxCorrection is the edit distance up to which misspelled
// conjugations are still returned, with a correction.
const DefaultMaxCorrection = 1

// Reykunyu holds the current dictionary snapshot and answers lookups. It is
// safe for concurrent use; Swap and Load replace the snapshot without
// blocking readers.
type Reykunyu struct {
	dict          atomic.Pointer[Dictionary]
	logger        zerolog.Logger
	maxCorrection int
}

// Option configures a Reykunyu.
type Option func(*Reykunyu)

// WithLogger sets the logger used for dictionary loads.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reykunyu) {
		r.logger = logger
	}
}

// WithMaxCorrection sets how far a conjugation may be from the query and
// still be returned. Zero disables corrections.
func WithMaxCorrection(distance int) Option {
	return func(r *Reykunyu) {
		r.maxCorrection = distance
	}
}

// New returns a Reykunyu serving dict.
func New(dict *Dictionary, opts ...Option) *Reykunyu {
	r := &Reykunyu{
		logger:        zerolog.Nop(),
		maxCorrection: DefaultMaxCorrection,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Swap(dict)
	return r
}

// Open loads the dictionary file at path and returns a Reykunyu serving it.
func Open(path string, opts ...Option) (*Reykunyu, error) {
	r := New(NewDictionary(nil), opts...)
	if err := r.Load(path); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads the dictionary file at path and swaps it in. On error the
// current snapshot stays in place.
func (r *Reykunyu) Load(path string) error {
	dict, err := LoadDictionary(path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("loading dictionary failed")
		return err
	}
	for _, p := range dict.Problems() {
		r.logger.Warn().Str("path", path).Msg(p)
	}
	r.Swap(dict)
	r.logger.Info().Str("path", path).Int("entries", dict.Len()).Msg("dictionary loaded")
	return nil
}

// Swap replaces the dictionary snapshot.
func (r *Reykunyu) Swap(dict *Dictionary) {
	if dict == nil {
		dict = NewDictionary(nil)
	}
	r.dict.Store(dict)
}

// Dictionary returns the current snapshot.
func (r *Reykunyu) Dictionary() *Dictionary {
	return r.dict.Load()
}
