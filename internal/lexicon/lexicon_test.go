package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/himotoki/himotoki/internal/lexiconbuild"
	"github.com/himotoki/himotoki/internal/model"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	entries := []lexiconbuild.Entry{
		{Surface: "猫", Seq: 100, Cost: 5, POS: model.POSNoun, BaseSeq: 100},
		{Surface: "猫舌", Seq: 101, Cost: 40, POS: model.POSNoun, BaseSeq: 101},
		{Surface: "の", Seq: 200, Cost: 1, POS: model.POSParticle, BaseSeq: 200},
		{Surface: "食べる", Seq: 300, Cost: 8, POS: model.POSVerbIchidan, BaseSeq: 300},
		{Surface: "食べた", Seq: 301, Cost: 12, POS: model.POSVerbIchidan, ConjType: model.ConjPast, BaseSeq: 300},
		// Same surface, two records: reading as noun and as particle.
		{Surface: "かい", Seq: 400, Cost: 30, POS: model.POSNoun, BaseSeq: 400},
		{Surface: "かい", Seq: 401, Cost: 20, POS: model.POSParticle, BaseSeq: 401},
	}
	baseForms := map[uint32]string{
		100: "猫", 101: "猫舌", 200: "の", 300: "食べる", 400: "かい", 401: "かい",
	}
	kana := map[uint32]string{
		100: "ねこ", 101: "ねこじた", 200: "の", 300: "たべる", 301: "たべた",
		400: "かい", 401: "かい",
	}
	path := filepath.Join(t.TempDir(), "fixture.dict")
	if err := lexiconbuild.Write(path, entries, baseForms, kana); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func openFixture(t *testing.T) *Lexicon {
	t.Helper()
	if err := Unload(); err != nil {
		t.Fatalf("unloading previous singleton: %v", err)
	}
	lex, err := Load(writeFixture(t))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	t.Cleanup(func() { _ = Unload() })
	return lex
}

func TestLookup(t *testing.T) {
	lex := openFixture(t)

	entries := lex.Lookup("食べる")
	if len(entries) != 1 {
		t.Fatalf("Lookup(食べる) returned %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Seq != 300 || e.Cost != 8 || e.POSID != model.POSVerbIchidan || e.BaseSeq != 300 {
		t.Errorf("unexpected entry: %+v", e)
	}
	if !e.IsDictionaryForm() {
		t.Error("食べる should be a dictionary form")
	}

	conj := lex.Lookup("食べた")
	if len(conj) != 1 || conj[0].ConjType != model.ConjPast || conj[0].BaseSeq != 300 {
		t.Errorf("unexpected conjugated entry: %+v", conj)
	}

	multi := lex.Lookup("かい")
	if len(multi) != 2 {
		t.Fatalf("Lookup(かい) returned %d entries, want 2", len(multi))
	}
	// Record order is insertion order.
	if multi[0].Seq != 400 || multi[1].Seq != 401 {
		t.Errorf("record order not preserved: %+v", multi)
	}

	if got := lex.Lookup("いない"); len(got) != 0 {
		t.Errorf("missing key should return empty, got %+v", got)
	}
}

func TestHasPrefix(t *testing.T) {
	lex := openFixture(t)
	cases := []struct {
		prefix string
		want   bool
	}{
		{"猫", true},
		{"猫舌", true},
		{"食", true},
		{"食べ", true},
		{"犬", false},
		{"食べるら", false},
		{"", true},
	}
	for _, c := range cases {
		if got := lex.HasPrefix(c.prefix); got != c.want {
			t.Errorf("HasPrefix(%q) = %v, want %v", c.prefix, got, c.want)
		}
	}
}

func TestPrefixItems(t *testing.T) {
	lex := openFixture(t)
	items := lex.PrefixItems("猫")
	if len(items) != 2 {
		t.Fatalf("PrefixItems(猫) returned %d keys, want 2", len(items))
	}
	if items[0].Key != "猫" || items[1].Key != "猫舌" {
		t.Errorf("unexpected key order: %q, %q", items[0].Key, items[1].Key)
	}
	if len(items[0].Records) != 1 || items[0].Records[0].Seq != 100 {
		t.Errorf("unexpected records for 猫: %+v", items[0].Records)
	}

	all := lex.PrefixItems("")
	if len(all) != 6 {
		t.Errorf("PrefixItems(\"\") returned %d keys, want 6", len(all))
	}
}

func TestSideTables(t *testing.T) {
	lex := openFixture(t)
	if got := lex.DictFormText(300); got != "食べる" {
		t.Errorf("DictFormText(300) = %q", got)
	}
	if got := lex.KanaReading(101); got != "ねこじた" {
		t.Errorf("KanaReading(101) = %q", got)
	}
	if got := lex.DictFormText(999); got != "" {
		t.Errorf("missing seq should return empty, got %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	if err := Unload(); err != nil {
		t.Fatal(err)
	}
	_, err := Load(filepath.Join(t.TempDir(), "nope.dict"))
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
	if _, ok := err.(*MissingError); !ok {
		t.Fatalf("expected *MissingError, got %T: %v", err, err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	if err := Unload(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bad.dict")
	if err := os.WriteFile(path, []byte("not a lexicon artifact at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for corrupt artifact")
	}
	if _, ok := err.(*CorruptError); !ok {
		t.Fatalf("expected *CorruptError, got %T: %v", err, err)
	}
}

func TestSingletonSharing(t *testing.T) {
	lex := openFixture(t)
	again, err := Load("some-other-path-is-ignored.dict")
	if err != nil {
		t.Fatal(err)
	}
	if again != lex {
		t.Error("second Load should return the same singleton")
	}
}
