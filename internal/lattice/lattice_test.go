package lattice

import (
	"strings"
	"testing"

	"github.com/himotoki/himotoki/internal/model"
)

// fakeDict is a map-backed Dict for builder tests.
type fakeDict map[string][]model.WordEntry

func (d fakeDict) Lookup(s string) []model.WordEntry { return d[s] }

func (d fakeDict) HasPrefix(p string) bool {
	for k := range d {
		if strings.HasPrefix(k, p) {
			return true
		}
	}
	return false
}

func entry(surface string, seq uint32) model.WordEntry {
	return model.WordEntry{Surface: surface, Seq: seq, Cost: 10, POSID: model.POSNoun, BaseSeq: seq}
}

func flatScore(model.WordEntry) float64 { return 1 }

func TestBuildFindsAllSpans(t *testing.T) {
	d := fakeDict{
		"猫":  {entry("猫", 1)},
		"猫舌": {entry("猫舌", 2)},
		"舌":  {entry("舌", 3)},
	}
	lat := Build("猫舌", d, flatScore)

	if len(lat.Spans) != 3 {
		t.Fatalf("got %d spans, want 3: %+v", len(lat.Spans), lat.Spans)
	}
	if segs := lat.Spans[Span{0, 3}]; len(segs) != 1 || segs[0].Surface != "猫" {
		t.Errorf("span [0,3): %+v", segs)
	}
	if segs := lat.Spans[Span{0, 6}]; len(segs) != 1 || segs[0].Surface != "猫舌" {
		t.Errorf("span [0,6): %+v", segs)
	}
	if segs := lat.Spans[Span{3, 6}]; len(segs) != 1 || segs[0].Surface != "舌" {
		t.Errorf("span [3,6): %+v", segs)
	}
}

func TestBuildKeepsAllRecordsPerSpan(t *testing.T) {
	d := fakeDict{
		"かい": {entry("かい", 1), entry("かい", 2)},
	}
	lat := Build("かい", d, flatScore)
	segs := lat.Spans[Span{0, 6}]
	if len(segs) != 2 {
		t.Fatalf("both records should become nodes, got %d", len(segs))
	}
}

func TestBuildEarlyTermination(t *testing.T) {
	calls := 0
	d := countingDict{
		fakeDict: fakeDict{"あ": {entry("あ", 1)}},
		calls:    &calls,
	}
	Build("あいうえお", d, flatScore)
	// After HasPrefix("あい") fails, growth from 0 must stop; five start
	// positions give at most one prefix probe per extra position plus the
	// two probes from position 0.
	if calls > 6 {
		t.Errorf("expected early termination to bound prefix probes, got %d", calls)
	}
}

type countingDict struct {
	fakeDict
	calls *int
}

func (d countingDict) HasPrefix(p string) bool {
	*d.calls++
	return d.fakeDict.HasPrefix(p)
}

func TestStickyPositions(t *testing.T) {
	// A word may not start on a small kana: no span may begin at ょ.
	d := fakeDict{
		"きょう": {entry("きょう", 1)},
		"ょ":   {entry("ょ", 2)},
		"う":   {entry("う", 3)},
	}
	lat := Build("きょう", d, flatScore)
	for sp := range lat.Spans {
		if sp.Start == 3 {
			t.Errorf("span must not start on a small kana: %+v", sp)
		}
	}
	if _, ok := lat.Spans[Span{0, 9}]; !ok {
		t.Error("きょう itself should match")
	}
}

func TestSokuonNotWordFinalMidString(t *testing.T) {
	// End right after a mid-string sokuon is forbidden, but longer words
	// crossing it still match.
	d := fakeDict{
		"き":   {entry("き", 1)},
		"きっ":  {entry("きっ", 2)},
		"きって": {entry("きって", 3)},
	}
	lat := Build("きって", d, flatScore)
	if _, ok := lat.Spans[Span{0, 6}]; ok {
		t.Error("word ending right after mid-string sokuon must be rejected")
	}
	if _, ok := lat.Spans[Span{0, 9}]; !ok {
		t.Error("word crossing the sokuon should still match")
	}
	// String-final sokuon is allowed to end a span.
	lat = Build("きっ", d, flatScore)
	if _, ok := lat.Spans[Span{0, 6}]; !ok {
		t.Error("string-final sokuon may end a span")
	}
}

func TestEmptyLatticeForUnknownInput(t *testing.T) {
	lat := Build("xyz", fakeDict{}, flatScore)
	if len(lat.Spans) != 0 {
		t.Errorf("no dictionary hits should yield an empty lattice: %+v", lat.Spans)
	}
}
