// Package scoring computes the additive per-segment score the path
// selector maximizes. The model is fully rule-driven: a floor plus
// commonness and composition bonuses, a mora-length multiplier chosen by
// character composition, and a handful of adjustments that push the
// selector toward long, kanji-bearing, conjugated-in-context words and
// away from stray single kana.
package scoring

import (
	"strings"

	"github.com/himotoki/himotoki/internal/charclass"
	"github.com/himotoki/himotoki/internal/model"
	"github.com/himotoki/himotoki/internal/rules"
)

// BaseFloor is the starting score of every non-particle segment.
const BaseFloor = 5.0

// Model scores lexicon entries. HasKey reports whether a surface is an
// exact lexicon key; the degenerate-ending penalty needs it.
type Model struct {
	HasKey func(surface string) bool
}

// Score computes the full score for one candidate entry.
func (m Model) Score(e model.WordEntry) float64 {
	if e.POSID == model.POSParticle {
		return particleScore(e)
	}

	base := BaseFloor
	if charclass.HasKanji(e.Surface) {
		base += 5
	}
	base += commonnessBonus(e.Cost)
	base += primaryReadingBonus(e.Cost)
	if e.POSID == model.POSPronoun || e.POSID == model.POSAdjPreNoun {
		base += rules.Synergies.PronounDemonstrative
	}

	moras := charclass.MoraLength(e.Surface)
	coeff := rules.CoeffAt(coeffSeq(e), moras)
	score := base * (1 + float64(coeff)*0.1)

	if e.ConjType != model.ConjDictionary {
		score += rules.Synergies.ConjugatedForm
		if e.ConjType == model.ConjConditional && strings.HasSuffix(e.Surface, "ば") {
			score += rules.Synergies.ConditionalBa
		}
	}
	if rules.Synergies.Compounds[e.Surface] {
		score += rules.Synergies.KnownCompound
	}
	if rules.Penalties.PreferSplitCompounds[e.Surface] {
		score += rules.Penalties.SplitDisincentive
	}

	runes := []rune(e.Surface)
	if len(runes) == 1 {
		score += rules.Penalties.SingleCharNonParticle
	}
	if len(runes) > 2 && !rules.Synergies.Compounds[e.Surface] {
		last := string(runes[len(runes)-1])
		if rules.Penalties.SingleCharParticles[last] && m.HasKey != nil && m.HasKey(string(runes[:len(runes)-1])) {
			score += rules.Penalties.DegenerateEnding
		}
	}
	return score
}

// particleScore is the micro-formula that replaces the general path for
// particles entirely.
func particleScore(e model.WordEntry) float64 {
	s := rules.Synergies.ParticleBaseConstant - float64(e.Cost)*rules.Synergies.ParticleCostFactor
	if n := len([]rune(e.Surface)); n > 1 {
		s += rules.Synergies.ParticleLenSquaredFactor * float64(n*n)
	}
	return s
}

func commonnessBonus(cost int16) float64 {
	switch {
	case cost <= 10:
		return 15
	case cost <= 30:
		return 10
	case cost <= 50:
		return 5
	default:
		return 2
	}
}

func primaryReadingBonus(cost int16) float64 {
	switch {
	case cost < 20:
		return 8
	case cost < 40:
		return 4
	default:
		return 0
	}
}

// coeffSeq picks the length-coefficient sequence by character composition.
func coeffSeq(e model.WordEntry) []int {
	if charclass.HasKanji(e.Surface) || isPureKatakana(e.Surface) {
		return rules.StrongCoeff
	}
	if isPureHiragana(e.Surface) {
		if e.POSID == model.POSParticle || e.ConjType != model.ConjDictionary {
			return rules.TailCoeff
		}
		return rules.WeakCoeff
	}
	return rules.WeakCoeff
}

func isPureKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !charclass.IsKatakana(r) {
			return false
		}
	}
	return true
}

func isPureHiragana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !charclass.IsHiragana(r) {
			return false
		}
	}
	return true
}
