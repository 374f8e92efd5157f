// Package lattice enumerates every dictionary-matching span over a
// normalized input string. The builder never chooses between alternatives:
// every record the lexicon returns for a span becomes a node, and the path
// selector decides later.
package lattice

import (
	"unicode/utf8"

	"github.com/himotoki/himotoki/internal/charclass"
	"github.com/himotoki/himotoki/internal/model"
)

// MaxWordLength bounds candidate growth, in code points.
const MaxWordLength = 30

// Dict is the slice of the lexicon the builder needs.
type Dict interface {
	Lookup(surface string) []model.WordEntry
	HasPrefix(prefix string) bool
}

// Span is a half-open byte range into the input.
type Span struct {
	Start, End int
}

// Lattice maps each matched span to its candidate segments, in lexicon
// record order.
type Lattice struct {
	Input string
	Spans map[Span][]model.Segment
}

// Build scans the input. The score function is applied to every record as
// its node is created; the caller supplies the scoring model so this
// package stays independent of it.
func Build(input string, d Dict, score func(model.WordEntry) float64) *Lattice {
	lat := &Lattice{Input: input, Spans: make(map[Span][]model.Segment)}
	if input == "" {
		return lat
	}

	runes := []rune(input)
	n := len(runes)

	// offs[i] is the byte offset of rune i; offs[n] == len(input).
	offs := make([]int, n+1)
	b := 0
	for i, r := range runes {
		offs[i] = b
		b += utf8.RuneLen(r)
	}
	offs[n] = len(input)

	// Sticky positions: a word may not start on a small kana or the long
	// vowel mark, and may not end immediately after a mid-string sokuon.
	noStart := make([]bool, n)
	noEnd := make([]bool, n+1)
	for i, r := range runes {
		switch charclass.Of(r) {
		case charclass.SmallKana, charclass.LongVowel:
			noStart[i] = true
		case charclass.Sokuon:
			if i+1 < n {
				noEnd[i+1] = true
			}
		}
	}

	for i := 0; i < n; i++ {
		if noStart[i] {
			continue
		}
		maxEnd := i + MaxWordLength
		if maxEnd > n {
			maxEnd = n
		}
		for j := i + 1; j <= maxEnd; j++ {
			surface := string(runes[i:j])
			if !d.HasPrefix(surface) {
				break
			}
			if noEnd[j] {
				continue
			}
			entries := d.Lookup(surface)
			if len(entries) == 0 {
				continue
			}
			span := Span{Start: offs[i], End: offs[j]}
			for _, e := range entries {
				lat.Spans[span] = append(lat.Spans[span], model.Segment{
					Surface: surface,
					Start:   span.Start,
					End:     span.End,
					Entry:   e,
					Score:   score(e),
				})
			}
		}
	}
	return lat
}
