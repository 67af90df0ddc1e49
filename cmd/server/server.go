package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	reykunyu "github.com/Willem3141/navi-reykunyu-sub001"
	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/conjstring"
	"github.com/Willem3141/navi-reykunyu-sub001/dialect"
	"github.com/Willem3141/navi-reykunyu-sub001/nouns"
	"github.com/Willem3141/navi-reykunyu-sub001/numbers"
	"github.com/Willem3141/navi-reykunyu-sub001/verbs"
)

type server struct {
	r              *reykunyu.Reykunyu
	logger         zerolog.Logger
	metrics        *metrics
	defaultDialect dialect.Dialect
}

// ---- JSON response types ------------------------------------------------

type conjugationResponse struct {
	Root        string   `json:"root"`
	Conjugation string   `json:"conjugation"`
	Forms       []string `json:"forms"`
}

type nounConjugationResponse struct {
	conjugationResponse
	Affixes nouns.Affixes `json:"affixes"`
}

type verbConjugationResponse struct {
	conjugationResponse
	Infixes verbs.Infixes `json:"infixes"`
}

type adjectiveConjugationResponse struct {
	conjugationResponse
	Form adjectives.Form `json:"form"`
}

type completionJSON struct {
	Word        string `json:"word"`
	Type        string `json:"type"`
	Translation string `json:"translation"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode error")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// requireGET writes a 405 and returns false for anything but GET.
func requireGET(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "GET required")
		return false
	}
	return true
}

func (s *server) dialectParam(r *http.Request) (dialect.Dialect, error) {
	v := r.URL.Query().Get("dialect")
	if v == "" {
		return s.defaultDialect, nil
	}
	return dialect.Parse(v)
}

func boolParam(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}

// slotsParam splits a comma-separated slot list that must have exactly n
// entries.
func slotsParam(r *http.Request, name string, n int) ([]string, error) {
	slots := strings.Split(r.URL.Query().Get(name), ",")
	if len(slots) != n {
		return nil, fmt.Errorf("'%s' must have %d comma-separated slots, got %d", name, n, len(slots))
	}
	return slots, nil
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleLookup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		q := r.URL.Query().Get("q")
		if q == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'q' query parameter")
			return
		}
		d, err := s.dialectParam(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		results := s.r.LookUp(q, d)
		s.metrics.observeLookup(results)
		if results == nil {
			results = []reykunyu.WordResults{}
		}
		writeJSON(w, r, http.StatusOK, results)
	}
}

func (s *server) handleComplete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		d, err := s.dialectParam(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		lang := r.URL.Query().Get("lang")
		if lang == "" {
			lang = "en"
		}
		entries := s.r.Complete(r.URL.Query().Get("q"), d)
		out := make([]completionJSON, 0, len(entries))
		for _, e := range entries {
			word := e.WordRaw.In(d)
			if e.Type == reykunyu.TypeSiNoun {
				word += " si"
			}
			out = append(out, completionJSON{
				Word:        word,
				Type:        e.Type.Name(),
				Translation: e.Translation(lang),
			})
		}
		writeJSON(w, r, http.StatusOK, out)
	}
}

func (s *server) handleTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		d, err := s.dialectParam(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		tables, err := s.r.Tables(word, d)
		if errors.Is(err, reykunyu.ErrEntryNotFound) {
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, tables)
	}
}

func (s *server) handleConjugateNoun() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		root := r.URL.Query().Get("root")
		if root == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'root' query parameter")
			return
		}
		d, err := s.dialectParam(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		slots, err := slotsParam(r, "affixes", 7)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		affixes, err := nouns.ParseAffixes([7]string(slots))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		conjugation, err := nouns.Conjugate(root, affixes, d, boolParam(r, "loan"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, nounConjugationResponse{
			conjugationResponse: conjugationResponse{
				Root:        root,
				Conjugation: conjugation,
				Forms:       conjstring.Expand(conjugation),
			},
			Affixes: affixes,
		})
	}
}

func (s *server) handleConjugateVerb() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		template, err := verbs.ParseTemplate(r.URL.Query().Get("template"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		slots, err := slotsParam(r, "infixes", 3)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		infixes, err := verbs.ParseInfixes([3]string(slots))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		conjugation, err := verbs.Conjugate(template, infixes)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, verbConjugationResponse{
			conjugationResponse: conjugationResponse{
				Root:        template.String(),
				Conjugation: conjugation,
				Forms:       conjstring.Expand(conjugation),
			},
			Infixes: infixes,
		})
	}
}

func (s *server) handleConjugateAdjective() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		root := r.URL.Query().Get("root")
		if root == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'root' query parameter")
			return
		}
		form, err := adjectives.ParseForm(r.URL.Query().Get("form"))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		d, err := s.dialectParam(r)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		conjugation, ok := adjectives.Conjugate(root, form, adjectives.Options{LeAdjective: boolParam(r, "le"), Dialect: d})
		if !ok {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("%q has no %s form", root, form))
			return
		}
		writeJSON(w, r, http.StatusOK, adjectiveConjugationResponse{
			conjugationResponse: conjugationResponse{
				Root:        root,
				Conjugation: conjugation,
				Forms:       conjstring.Expand(conjugation),
			},
			Form: form,
		})
	}
}

func (s *server) handleParse(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, r, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		switch kind {
		case "noun":
			d, err := s.dialectParam(r)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			results := nouns.Parse(word, d, boolParam(r, "loan"))
			if results == nil {
				results = []nouns.Result{}
			}
			writeJSON(w, r, http.StatusOK, results)
		case "verb":
			writeJSON(w, r, http.StatusOK, verbs.Parse(word))
		case "adjective":
			writeJSON(w, r, http.StatusOK, adjectives.Parse(word))
		}
	}
}

func (s *server) handleNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGET(w, r) {
			return
		}
		q := r.URL.Query()
		var n int
		switch {
		case q.Get("n") != "":
			var err error
			if n, err = strconv.Atoi(q.Get("n")); err != nil {
				writeError(w, r, http.StatusBadRequest, "'n' must be an integer")
				return
			}
		case q.Get("word") != "":
			d, err := s.dialectParam(r)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, err.Error())
				return
			}
			var ok bool
			if n, ok = numbers.Parse(q.Get("word"), d); !ok {
				writeError(w, r, http.StatusNotFound, fmt.Sprintf("%q is not a number word", q.Get("word")))
				return
			}
		default:
			writeError(w, r, http.StatusBadRequest, "missing 'n' or 'word' query parameter")
			return
		}
		num, err := numbers.Conjugate(n)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, num)
	}
}

func (s *server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Entries: s.r.Dictionary().Len()})
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests tags each request with an id, puts a logger carrying it into
// the request context, and logs and measures the request when it is done.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		logger := s.logger.With().Str("request_id", id).Logger()
		r = r.WithContext(logger.WithContext(r.Context()))
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", elapsed).
			Msg("request")
	})
}

// recoverPanics turns a panicking handler into a 500.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				zerolog.Ctx(r.Context()).Error().Interface("panic", p).Msg("handler panicked")
				writeError(w, r, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *server) routes(corsOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lookup", s.handleLookup())
	mux.HandleFunc("/api/complete", s.handleComplete())
	mux.HandleFunc("/api/table", s.handleTable())
	mux.HandleFunc("/api/conjugate/noun", s.handleConjugateNoun())
	mux.HandleFunc("/api/conjugate/verb", s.handleConjugateVerb())
	mux.HandleFunc("/api/conjugate/adjective", s.handleConjugateAdjective())
	mux.HandleFunc("/api/parse/noun", s.handleParse("noun"))
	mux.HandleFunc("/api/parse/verb", s.handleParse("verb"))
	mux.HandleFunc("/api/parse/adjective", s.handleParse("adjective"))
	mux.HandleFunc("/api/number", s.handleNumber())
	mux.HandleFunc("/healthz", s.handleHealth())
	mux.Handle("/metrics", s.metrics.handler())

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet},
	})
	return c.Handler(s.logRequests(recoverPanics(mux)))
}
