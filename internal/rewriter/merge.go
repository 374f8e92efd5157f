package rewriter

import (
	"strings"

	"github.com/himotoki/himotoki/internal/model"
	"github.com/himotoki/himotoki/internal/rules"
)

// mergeCompoundVerbs is Pass A: walk adjacent pairs and merge te-form +
// auxiliary, passive/potential stem + ている-family, and suru-able noun +
// する-family continuations. Steps back one position after each merge so
// chains like 勉強 + して + いる collapse fully (して+いる gives している,
// which then merges with 勉強).
func mergeCompoundVerbs(lex Lexicon, toks []model.Token) ([]model.Token, bool) {
	changed := false
	for i := 0; i+1 < len(toks); {
		l, r := toks[i], toks[i+1]
		if shouldMergePair(l.Surface, r.Surface) {
			merged := mergedToken(lex, []model.Token{l, r}, l.Surface+r.Surface)
			toks = append(toks[:i], append([]model.Token{merged}, toks[i+2:]...)...)
			changed = true
			if i > 0 {
				i--
			}
			continue
		}
		i++
	}
	return toks, changed
}

func shouldMergePair(left, right string) bool {
	if (strings.HasSuffix(left, "て") || strings.HasSuffix(left, "で")) &&
		rules.AuxiliaryContinuations[right] {
		return true
	}
	if rules.TeiruFamily[right] {
		for stem := range rules.PassiveOrPotentialStems {
			if strings.HasSuffix(left, stem) {
				return true
			}
		}
	}
	if rules.SuruAbleNouns[left] && rules.SuruFamily[right] {
		return true
	}
	return false
}

// mergeLiterals is Pass B: the ordered literal merge table, longest
// sequence first, greedy left to right.
func mergeLiterals(lex Lexicon, toks []model.Token) ([]model.Token, bool) {
	sorted := rules.SortedLiteralMerges()
	changed := false
	for i := 0; i < len(toks); {
		matched := false
		for _, rule := range sorted {
			n := len(rule.From)
			if i+n > len(toks) {
				continue
			}
			ok := true
			for j, want := range rule.From {
				if toks[i+j].Surface != want {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			merged := mergedToken(lex, toks[i:i+n], rule.To)
			toks = append(toks[:i], append([]model.Token{merged}, toks[i+n:]...)...)
			changed = true
			matched = true
			break
		}
		if !matched {
			i++
		}
	}
	return toks, changed
}
