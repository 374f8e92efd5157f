// Package himotoki is a lightweight Japanese morphological analyzer: it
// segments a sentence into tokens carrying surface, reading, part of
// speech, dictionary form, and byte offsets, backed by a memory-mapped
// lexicon artifact that is loaded lazily on first use and shared by every
// concurrent call.
package himotoki

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/himotoki/himotoki/internal/charclass"
	"github.com/himotoki/himotoki/internal/lattice"
	"github.com/himotoki/himotoki/internal/lexicon"
	"github.com/himotoki/himotoki/internal/model"
	"github.com/himotoki/himotoki/internal/pathselect"
	"github.com/himotoki/himotoki/internal/rewriter"
	"github.com/himotoki/himotoki/internal/scoring"
)

// ErrInvalidInput is returned for empty or whitespace-only text, and for a
// non-positive analysis limit.
var ErrInvalidInput = errors.New("himotoki: invalid input")

// Token is one analyzed unit of the input. Offsets are byte positions
// into the NFC-normalized text.
type Token struct {
	Surface    string
	Reading    string // hiragana-normalized
	POS        string
	BaseForm   string
	BaseFormID uint32 // 0 for unknown spans
	Start      int
	End        int
}

// Result is one candidate segmentation returned by Analyze.
type Result struct {
	Tokens []Token
	Score  float64
}

// WarmUpReport describes a WarmUp call.
type WarmUpReport struct {
	Path          string
	LoadTime      time.Duration
	AlreadyLoaded bool
}

// DefaultDictPath is where the lexicon artifact is looked for when
// SetDictPath was never called.
const DefaultDictPath = "himotoki.dict"

var (
	pathMu   sync.Mutex
	dictPath = DefaultDictPath
)

// SetDictPath overrides the artifact path used by the next lexicon load.
// It has no effect on an already-loaded lexicon; Unload first to reload
// from a different path.
func SetDictPath(path string) {
	pathMu.Lock()
	dictPath = path
	pathMu.Unlock()
}

func currentDictPath() string {
	pathMu.Lock()
	defer pathMu.Unlock()
	return dictPath
}

// Tokenize segments text into tokens. The text is NFC-normalized first;
// offsets in the result are relative to the normalized text.
func Tokenize(text string) ([]Token, error) {
	results, err := analyze(text, 1)
	if err != nil {
		return nil, err
	}
	return results[0].Tokens, nil
}

// Analyze returns up to limit candidate segmentations, best first, with
// non-increasing scores. The first result's tokens equal Tokenize's.
func Analyze(text string, limit int) ([]Result, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit %d", ErrInvalidInput, limit)
	}
	return analyze(text, limit)
}

// WarmUp loads the lexicon if it is not loaded yet and reports the time
// spent, so callers can pay the page-fault cost ahead of the first
// request.
func WarmUp() (WarmUpReport, error) {
	path := currentDictPath()
	already := lexicon.IsLoaded()
	start := time.Now()
	if _, err := lexicon.Load(path); err != nil {
		return WarmUpReport{Path: path}, err
	}
	return WarmUpReport{
		Path:          path,
		LoadTime:      time.Since(start),
		AlreadyLoaded: already,
	}, nil
}

// Unload releases the lexicon mapping. Not safe to call concurrently with
// in-flight Tokenize/Analyze calls; quiesce requests first.
func Unload() error { return lexicon.Unload() }

func analyze(text string, limit int) ([]Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	lex, err := lexicon.Load(currentDictPath())
	if err != nil {
		return nil, err
	}

	normalized := norm.NFC.String(text)
	pieces := splitRuns(normalized)

	// Combine per-run k-best lists into whole-text candidates, keeping
	// the best `limit` at every step. Separators contribute a fixed token
	// and no score.
	combos := []Result{{}}
	for _, p := range pieces {
		if p.separator {
			tok := Token{
				Surface:  p.text,
				Reading:  p.text,
				POS:      model.Name(model.POSPunctuation),
				BaseForm: p.text,
				Start:    p.start,
				End:      p.start + len(p.text),
			}
			for i := range combos {
				combos[i].Tokens = append(combos[i].Tokens, tok)
			}
			continue
		}
		runResults := analyzeRun(lex, p.text, p.start, limit)
		next := make([]Result, 0, len(combos)*len(runResults))
		for _, c := range combos {
			for _, r := range runResults {
				tokens := make([]Token, 0, len(c.Tokens)+len(r.Tokens))
				tokens = append(tokens, c.Tokens...)
				tokens = append(tokens, r.Tokens...)
				next = append(next, Result{Tokens: tokens, Score: c.Score + r.Score})
			}
		}
		sort.SliceStable(next, func(i, j int) bool { return next[i].Score > next[j].Score })
		if len(next) > limit {
			next = next[:limit]
		}
		combos = next
	}
	return combos, nil
}

// analyzeRun tokenizes one separator-free run: lattice, k-best path
// selection, then the rewriter over each candidate cover.
func analyzeRun(lex *lexicon.Lexicon, run string, base, k int) []Result {
	scorer := scoring.Model{
		HasKey: func(s string) bool { return len(lex.Lookup(s)) > 0 },
	}
	lat := lattice.Build(run, lex, scorer.Score)
	paths := pathselect.Select(lat, k)

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		toks := rewriter.TokensFromSegments(lex, p.Segments)
		toks = rewriter.Rewrite(lex, toks)
		out := make([]Token, 0, len(toks))
		for _, t := range toks {
			out = append(out, Token{
				Surface:    t.Surface,
				Reading:    t.Reading,
				POS:        t.POS,
				BaseForm:   t.BaseForm,
				BaseFormID: t.BaseFormID,
				Start:      t.Start + base,
				End:        t.End + base,
			})
		}
		results = append(results, Result{Tokens: out, Score: p.Score})
	}
	return results
}

// piece is one maximal run of non-separator text, or a single separator
// character.
type piece struct {
	text      string
	start     int
	separator bool
}

// splitRuns cuts the normalized text on the punctuation-separator class,
// emitting each separator as its own piece.
func splitRuns(s string) []piece {
	var pieces []piece
	runStart := -1
	for i, r := range s {
		if charclass.Of(r) == charclass.PunctSeparator {
			if runStart >= 0 {
				pieces = append(pieces, piece{text: s[runStart:i], start: runStart})
				runStart = -1
			}
			pieces = append(pieces, piece{text: string(r), start: i, separator: true})
			continue
		}
		if runStart < 0 {
			runStart = i
		}
	}
	if runStart >= 0 {
		pieces = append(pieces, piece{text: s[runStart:], start: runStart})
	}
	return pieces
}
