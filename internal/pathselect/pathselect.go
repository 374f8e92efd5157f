// Package pathselect runs the forward dynamic program that picks the
// highest-scoring cover of the input out of the lattice. Each position
// keeps a small bounded list of top-k partial paths; unreachable positions
// are back-filled from the nearest reachable ancestor with a per-character
// gap penalty, so the selector always produces at least one full cover.
package pathselect

import (
	"sort"
	"unicode/utf8"

	"github.com/himotoki/himotoki/internal/lattice"
	"github.com/himotoki/himotoki/internal/model"
)

// UnknownCharPenalty is the per-character score of a gap transition.
const UnknownCharPenalty = -50.0

// Path is one reconstructed cover. Gap spans appear as segments whose
// entry has Seq 0 and POSUnknown.
type Path struct {
	Segments []model.Segment
	Score    float64
}

// cand is one partial path ending at a position: its accumulated score,
// the position it came from, the index of the predecessor cand at that
// position, and the segment that covered the last hop.
type cand struct {
	score   float64
	prevPos int
	prevIdx int
	seg     model.Segment
	hasSeg  bool
}

// Select returns up to k best covers of the lattice's input, best first.
// k must be >= 1.
func Select(lat *lattice.Lattice, k int) []Path {
	n := len(lat.Input)
	if n == 0 {
		return []Path{{}}
	}

	// Rune boundaries, ascending. Positions in the DP are byte offsets of
	// rune boundaries; the gap penalty counts runes, not bytes.
	bounds := runeBoundaries(lat.Input)

	spansByStart := make(map[int][]lattice.Span)
	for sp := range lat.Spans {
		spansByStart[sp.Start] = append(spansByStart[sp.Start], sp)
	}
	for _, sps := range spansByStart {
		sort.Slice(sps, func(i, j int) bool { return sps[i].End < sps[j].End })
	}

	keep := 2 * k
	reach := make(map[int][]cand, len(bounds))
	reach[0] = []cand{{prevPos: -1, prevIdx: -1}}

	for _, p := range bounds {
		needsEntry := p == n || len(spansByStart[p]) > 0
		if len(reach[p]) == 0 {
			if !needsEntry || p == 0 {
				continue
			}
			backfill(lat.Input, reach, bounds, p)
			if len(reach[p]) == 0 {
				continue
			}
		}
		if p == n {
			break
		}
		for _, sp := range spansByStart[p] {
			seg, ok := bestSegment(lat.Spans[sp])
			if !ok {
				continue
			}
			for ci, c := range reach[p] {
				reach[sp.End] = append(reach[sp.End], cand{
					score:   c.score + seg.Score,
					prevPos: p,
					prevIdx: ci,
					seg:     seg,
					hasSeg:  true,
				})
			}
			trim(reach, sp.End, keep)
		}
	}

	if len(reach[n]) == 0 {
		backfill(lat.Input, reach, bounds, n)
	}

	final := reach[n]
	if len(final) > k {
		final = final[:k]
	}
	paths := make([]Path, 0, len(final))
	for _, c := range final {
		paths = append(paths, reconstruct(reach, c))
	}
	return paths
}

// bestSegment picks the segment the relaxation uses for a span: highest
// score, then lowest cost, then record order.
func bestSegment(segs []model.Segment) (model.Segment, bool) {
	if len(segs) == 0 {
		return model.Segment{}, false
	}
	best := segs[0]
	for _, s := range segs[1:] {
		if s.Score > best.Score || (s.Score == best.Score && s.Entry.Cost < best.Entry.Cost) {
			best = s
		}
	}
	return best, true
}

// trim keeps the candidate list at position p sorted best-first and
// bounded. Ties favor the later start, i.e. shorter predecessors.
func trim(reach map[int][]cand, p, keep int) {
	cs := reach[p]
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].score != cs[j].score {
			return cs[i].score > cs[j].score
		}
		return cs[i].prevPos > cs[j].prevPos
	})
	if len(cs) > keep {
		cs = cs[:keep]
	}
	reach[p] = cs
}

// backfill connects an unreachable position from the nearest earlier
// reachable one via a single gap transition.
func backfill(input string, reach map[int][]cand, bounds []int, p int) {
	q := -1
	for _, b := range bounds {
		if b >= p {
			break
		}
		if len(reach[b]) > 0 {
			q = b
		}
	}
	if q < 0 {
		return
	}
	gap := input[q:p]
	penalty := UnknownCharPenalty * float64(utf8.RuneCountInString(gap))
	seg := model.Segment{
		Surface: gap,
		Start:   q,
		End:     p,
		Entry:   model.WordEntry{Surface: gap, POSID: model.POSUnknown},
		Score:   penalty,
	}
	best := reach[q][0]
	reach[p] = append(reach[p], cand{
		score:   best.score + penalty,
		prevPos: q,
		prevIdx: 0,
		seg:     seg,
		hasSeg:  true,
	})
}

func reconstruct(reach map[int][]cand, end cand) Path {
	var segs []model.Segment
	score := end.score
	c := end
	for c.hasSeg {
		segs = append(segs, c.seg)
		c = reach[c.prevPos][c.prevIdx]
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return Path{Segments: segs, Score: score}
}

func runeBoundaries(s string) []int {
	bounds := make([]int, 0, len(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}
	bounds = append(bounds, len(s))
	return bounds
}
