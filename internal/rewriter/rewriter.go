// Package rewriter reshapes the path selector's raw cover into the target
// segmentation convention: merging grammatical compounds, applying literal
// merge and substitution tables, splitting off particles, copula, and the
// explanatory ん, and recognizing number+counter runs. Passes repeat until
// the token list stops changing.
package rewriter

import (
	"log"

	"github.com/himotoki/himotoki/internal/charclass"
	"github.com/himotoki/himotoki/internal/model"
)

// Lexicon is the read-only slice of the dictionary the rewriter needs to
// rebuild readings and verify split bases.
type Lexicon interface {
	Lookup(surface string) []model.WordEntry
	DictFormText(seq uint32) string
	KanaReading(seq uint32) string
}

// maxPasses bounds the outer fixed point; the tables are small enough that
// a handful of iterations always converges, but a malformed rule pair must
// not spin forever.
const maxPasses = 8

// TokensFromSegments converts a selected cover into the external token
// shape, resolving readings and base forms through the lexicon.
func TokensFromSegments(lex Lexicon, segs []model.Segment) []model.Token {
	toks := make([]model.Token, 0, len(segs))
	for _, s := range segs {
		toks = append(toks, tokenFromSegment(lex, s))
	}
	return toks
}

func tokenFromSegment(lex Lexicon, s model.Segment) model.Token {
	if s.Entry.Seq == 0 {
		// Gap span from the selector.
		return model.Token{
			Surface:  s.Surface,
			Reading:  s.Surface,
			POS:      model.Name(model.POSUnknown),
			BaseForm: s.Surface,
			Start:    s.Start,
			End:      s.End,
		}
	}

	base := lex.DictFormText(s.Entry.BaseSeq)
	if base == "" || !model.Known(s.Entry.POSID) {
		// base_seq points nowhere, or the POS id is outside the
		// artifact contract: recoverable inconsistency; fall back to
		// the surface and tag unknown.
		log.Printf("rewriter: inconsistent record seq=%d base=%d pos=%d (%q)", s.Entry.Seq, s.Entry.BaseSeq, s.Entry.POSID, s.Surface)
		return model.Token{
			Surface:  s.Surface,
			Reading:  s.Surface,
			POS:      model.Name(model.POSUnknown),
			BaseForm: s.Surface,
			Start:    s.Start,
			End:      s.End,
		}
	}

	reading := charclass.ToHiragana(lex.KanaReading(s.Entry.Seq))
	if reading == "" {
		reading = charclass.ToHiragana(s.Surface)
	}
	return model.Token{
		Surface:    s.Surface,
		Reading:    reading,
		POS:        model.Name(s.Entry.POSID),
		BaseForm:   base,
		BaseFormID: s.Entry.BaseSeq,
		Start:      s.Start,
		End:        s.End,
	}
}

// Rewrite applies the merge, counter, split, and substitution passes until
// the token list reaches a fixed point.
func Rewrite(lex Lexicon, toks []model.Token) []model.Token {
	for i := 0; i < maxPasses; i++ {
		changed := false
		toks, changed = runOnce(lex, toks)
		if !changed {
			break
		}
	}
	return toks
}

func runOnce(lex Lexicon, toks []model.Token) ([]model.Token, bool) {
	changed := false
	var c bool
	if toks, c = mergeCompoundVerbs(lex, toks); c {
		changed = true
	}
	if toks, c = mergeLiterals(lex, toks); c {
		changed = true
	}
	// Counters run before the split/substitution layer so 分-style
	// suffixes take the deterministic counter path first.
	if toks, c = recognizeCounters(toks); c {
		changed = true
	}
	if toks, c = applySplits(lex, toks); c {
		changed = true
	}
	if toks, c = applySubstitutions(lex, toks); c {
		changed = true
	}
	return toks, changed
}

// tokenForSurface builds a fresh token for a surface created by a split,
// resolving POS/reading/base through the lexicon and falling back to an
// unknown-shaped token when the surface is not a key.
func tokenForSurface(lex Lexicon, surface string, start, end int) model.Token {
	entries := lex.Lookup(surface)
	if len(entries) == 0 {
		return model.Token{
			Surface:  surface,
			Reading:  charclass.ToHiragana(surface),
			POS:      model.Name(model.POSUnknown),
			BaseForm: surface,
			Start:    start,
			End:      end,
		}
	}
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Cost < best.Cost {
			best = e
		}
	}
	return tokenFromSegment(lex, model.Segment{
		Surface: surface,
		Start:   start,
		End:     end,
		Entry:   best,
	})
}

// mergedToken combines a run of adjacent tokens into one. POS and base
// form are inherited from the left survivor; the reading is rebuilt from
// the lexicon when the merged surface is a key, else by concatenating the
// parts' readings.
func mergedToken(lex Lexicon, parts []model.Token, surface string) model.Token {
	left := parts[0]
	out := model.Token{
		Surface:    surface,
		POS:        left.POS,
		BaseForm:   left.BaseForm,
		BaseFormID: left.BaseFormID,
		Start:      left.Start,
		End:        parts[len(parts)-1].End,
	}
	if entries := lex.Lookup(surface); len(entries) > 0 {
		best := entries[0]
		for _, e := range entries[1:] {
			if e.Cost < best.Cost {
				best = e
			}
		}
		if r := charclass.ToHiragana(lex.KanaReading(best.Seq)); r != "" {
			out.Reading = r
			return out
		}
	}
	reading := ""
	for _, p := range parts {
		reading += p.Reading
	}
	out.Reading = reading
	return out
}
