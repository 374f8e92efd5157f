package rewriter

import (
	"strings"

	"github.com/himotoki/himotoki/internal/charclass"
	"github.com/himotoki/himotoki/internal/model"
	"github.com/himotoki/himotoki/internal/rules"
)

// applySplits is Pass C: per-token, top-down splitting decisions. At most
// one rule fires per token per pass; the outer fixed point picks up any
// further splitting of the pieces.
func applySplits(lex Lexicon, toks []model.Token) ([]model.Token, bool) {
	changed := false
	out := make([]model.Token, 0, len(toks))
	for _, t := range toks {
		parts := splitToken(lex, t)
		if parts == nil {
			out = append(out, t)
			continue
		}
		out = append(out, parts...)
		changed = true
	}
	return out, changed
}

// splitToken returns the replacement tokens for t, or nil when no rule
// applies.
func splitToken(lex Lexicon, t model.Token) []model.Token {
	// (1) Explicit compound-verb splits.
	if parts, ok := rules.ExplicitCompoundSplits[t.Surface]; ok {
		return materialize(lex, t, parts)
	}

	// (2) Prefix-particle splits, suffix verified against the lexicon.
	if sp, ok := rules.PrefixParticleSplits[t.Surface]; ok {
		if len(lex.Lookup(sp.Suffix)) > 0 {
			return materialize(lex, t, []string{sp.Prefix, sp.Suffix})
		}
	}

	// (3) Internal-particle split: disabled, hook preserved.

	// (4) Peel a splittable particle rightmost-first.
	if !rules.NoSplitSet[t.Surface] {
		for _, p := range rules.SplittablePeelParticles {
			if !strings.HasSuffix(t.Surface, p) || t.Surface == p {
				continue
			}
			base := strings.TrimSuffix(t.Surface, p)
			br := []rune(base)
			longEnough := len(br) >= 2 || (len(br) == 1 && charclass.HasKanji(base))
			if longEnough && len(lex.Lookup(base)) > 0 {
				return materialize(lex, t, []string{base, p})
			}
		}
	}

	// (5) Peel copula だ/です from ようだ/はずだ/からだ endings.
	for _, suf := range rules.CopulaPeelSuffixes {
		if strings.HasSuffix(t.Surface, suf) {
			return materialize(lex, t, []string{strings.TrimSuffix(t.Surface, "だ"), "だ"})
		}
		polite := strings.TrimSuffix(suf, "だ") + "です"
		if strings.HasSuffix(t.Surface, polite) {
			return materialize(lex, t, []string{strings.TrimSuffix(t.Surface, "です"), "です"})
		}
	}

	// (6) Conditional ば splitting: disabled.

	// (7) Peel the explanatory ん.
	if !rules.NoSplitSet[t.Surface] && strings.HasSuffix(t.Surface, "ん") && t.Surface != "ん" {
		base := strings.TrimSuffix(t.Surface, "ん")
		if len(lex.Lookup(base)) > 0 {
			for _, end := range rules.ExplanatoryNEndings {
				if strings.HasSuffix(base, end) {
					return materialize(lex, t, []string{base, "ん"})
				}
			}
		}
	}

	return nil
}

// applySubstitutions runs the literal surface substitution table after the
// splits: each matching token is replaced by its replacement tuple.
func applySubstitutions(lex Lexicon, toks []model.Token) ([]model.Token, bool) {
	changed := false
	out := make([]model.Token, 0, len(toks))
	for _, t := range toks {
		parts, ok := rules.TokenSubstitutions[t.Surface]
		if !ok {
			out = append(out, t)
			continue
		}
		out = append(out, materialize(lex, t, parts)...)
		changed = true
	}
	return out, changed
}

// materialize turns a surface partition of t into tokens, distributing
// t's byte range across the parts and resolving each part through the
// lexicon.
func materialize(lex Lexicon, t model.Token, parts []string) []model.Token {
	out := make([]model.Token, 0, len(parts))
	start := t.Start
	for _, p := range parts {
		end := start + len(p)
		out = append(out, tokenForSurface(lex, p, start, end))
		start = end
	}
	return out
}
