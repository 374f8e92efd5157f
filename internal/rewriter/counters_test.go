package rewriter

import (
	"testing"

	"github.com/himotoki/himotoki/internal/model"
)

func TestNumberToKana(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "ぜろ"},
		{1, "いち"},
		{7, "なな"},
		{10, "じゅう"},
		{11, "じゅういち"},
		{21, "にじゅういち"},
		{100, "ひゃく"},
		{300, "さんびゃく"},
		{600, "ろっぴゃく"},
		{800, "はっぴゃく"},
		{1000, "せん"},
		{3000, "さんぜん"},
		{8000, "はっせん"},
		{2345, "にせんさんびゃくよんじゅうご"},
		{10000, "いちまん"},
		{20000, "にまん"},
		{99999999, "きゅうせんきゅうひゃくきゅうじゅうきゅうまんきゅうせんきゅうひゃくきゅうじゅうきゅう"},
	}
	for _, c := range cases {
		if got := NumberToKana(c.n); got != c.want {
			t.Errorf("NumberToKana(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestParseNumberArabic(t *testing.T) {
	cases := []struct {
		s     string
		value int
		runes int
	}{
		{"3", 3, 1},
		{"42匹", 42, 2},
		{"３００", 300, 3},
		{"2026年", 2026, 4},
	}
	for _, c := range cases {
		v, n, ok := ParseNumber(c.s)
		if !ok || v != c.value || n != c.runes {
			t.Errorf("ParseNumber(%q) = (%d, %d, %v), want (%d, %d, true)", c.s, v, n, ok, c.value, c.runes)
		}
	}
}

func TestParseNumberKanji(t *testing.T) {
	cases := []struct {
		s     string
		value int
		runes int
	}{
		{"三", 3, 1},
		{"十", 10, 1},
		{"十五", 15, 2},
		{"三十二", 32, 3},
		{"百", 100, 1},
		{"三百", 300, 2},
		{"千二百三十四", 1234, 6},
		{"一万", 10000, 2},
		{"二万三千", 23000, 4},
		{"一億", 100000000, 0}, // overflows MaxNumber
		{"二〇二五", 2025, 4},     // positional style
		{"三匹", 3, 1},
	}
	for _, c := range cases {
		v, n, ok := ParseNumber(c.s)
		if c.runes == 0 {
			if ok {
				t.Errorf("ParseNumber(%q) should fail, got (%d, %d)", c.s, v, n)
			}
			continue
		}
		if !ok || v != c.value || n != c.runes {
			t.Errorf("ParseNumber(%q) = (%d, %d, %v), want (%d, %d, true)", c.s, v, n, ok, c.value, c.runes)
		}
	}
}

func TestParseNumberNonNumeric(t *testing.T) {
	for _, s := range []string{"", "ねこ", "abc"} {
		if _, _, ok := ParseNumber(s); ok {
			t.Errorf("ParseNumber(%q) should fail", s)
		}
	}
}

func TestKanjiFormRoundTrip(t *testing.T) {
	samples := []int{0, 1, 7, 10, 11, 42, 99, 100, 101, 300, 999, 1000, 1234,
		8000, 9999, 10000, 10001, 23456, 99999, 100000, 5000000, 12345678, 99999999}
	for _, n := range samples {
		form := KanjiForm(n)
		v, runes, ok := ParseNumber(form)
		if !ok || v != n {
			t.Errorf("round trip failed for %d: %q -> (%d, %v)", n, form, v, ok)
		}
		if runes != len([]rune(form)) {
			t.Errorf("ParseNumber(%q) consumed %d runes, want all %d", form, runes, len([]rune(form)))
		}
	}
	// Dense sweep over a low range where the digit-omission rules vary most.
	for n := 0; n <= 12000; n++ {
		if v, _, ok := ParseNumber(KanjiForm(n)); !ok || v != n {
			t.Fatalf("round trip failed for %d (%q)", n, KanjiForm(n))
		}
	}
}

func TestCounterReading(t *testing.T) {
	cases := []struct {
		n       int
		counter string
		want    string
	}{
		{3, "匹", "さんびき"},
		{1, "匹", "いっぴき"},
		{2, "匹", "にひき"},
		{6, "匹", "ろっぴき"},
		{8, "匹", "はっぴき"},
		{10, "匹", "じゅっぴき"},
		{1, "本", "いっぽん"},
		{3, "本", "さんぼん"},
		{1, "分", "いっぷん"},
		{3, "分", "さんぷん"},
		{4, "分", "よんぷん"},
		{20, "分", "にじゅっぷん"},
		{4, "月", "しがつ"},
		{9, "月", "くがつ"},
		{2, "月", "にがつ"},
		{1, "人", "ひとり"},
		{2, "人", "ふたり"},
		{3, "人", "さんにん"},
		{4, "人", "よにん"},
		{1, "日", "ついたち"},
		{8, "日", "ようか"},
		{20, "日", "はつか"},
		{11, "日", "じゅういちにち"},
		{1, "つ", "ひとつ"},
		{3, "つ", "みっつ"},
		{10, "つ", "とお"},
		{2, "個", "にこ"},
		{100, "円", "ひゃくえん"},
		{3, "枚", "さんまい"},
	}
	for _, c := range cases {
		if got := CounterReading(c.n, c.counter); got != c.want {
			t.Errorf("CounterReading(%d, %q) = %q, want %q", c.n, c.counter, got, c.want)
		}
	}
}

func TestRecognizeCounters(t *testing.T) {
	toks := []model.Token{
		{Surface: "三匹", Reading: "三匹", POS: "unk", BaseForm: "三匹", Start: 0, End: 6},
	}
	out, changed := recognizeCounters(toks)
	if !changed || len(out) != 1 {
		t.Fatalf("expected one merged counter token, got %+v", out)
	}
	if out[0].Reading != "さんびき" || out[0].POS != "ctr" {
		t.Errorf("counter token: %+v", out[0])
	}

	// Numeral and counter arriving as separate tokens merge too.
	toks = []model.Token{
		{Surface: "１０", Reading: "１０", POS: "unk", BaseForm: "１０", Start: 0, End: 6},
		{Surface: "分", Reading: "ふん", POS: "n", BaseForm: "分", Start: 6, End: 9},
	}
	out, changed = recognizeCounters(toks)
	if !changed || len(out) != 1 {
		t.Fatalf("expected merge across token boundary, got %+v", out)
	}
	if out[0].Surface != "１０分" || out[0].Reading != "じゅっぷん" {
		t.Errorf("counter token: %+v", out[0])
	}

	// Idempotent: an already-recognized counter token is left alone.
	again, changed := recognizeCounters(out)
	if changed {
		t.Errorf("second pass should be a no-op, got %+v", again)
	}

	// Non-numeric tokens pass through.
	toks = []model.Token{{Surface: "ねこ", POS: "n"}}
	if _, changed := recognizeCounters(toks); changed {
		t.Error("no numeral, no change")
	}
}
