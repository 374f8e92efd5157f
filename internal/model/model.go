// Package model holds the plain data types shared across the tokenization
// pipeline: dictionary word entries, lattice segments, and the Token type
// returned to callers of the facade.
package model

// POS is an 8-bit part-of-speech tag id. The id<->name mapping is an
// artifact contract shared with the lexicon's on-disk format.
type POS uint8

// Part-of-speech ids. Unclassified is the zero value so a zeroed
// WordEntry never silently claims a known tag.
const (
	POSUnclassified POS = iota
	POSNoun
	POSNounAdverbial
	POSNounPrefix
	POSNounSuffix
	POSNounTemporal
	POSVerbIchidan
	POSVerbIchidanS
	POSVerbGodanK
	POSVerbGodanG
	POSVerbGodanS
	POSVerbGodanT
	POSVerbGodanN
	POSVerbGodanB
	POSVerbGodanM
	POSVerbGodanR
	POSVerbGodanRI
	POSVerbGodanU
	POSVerbGodanUS
	POSVerbGodanKS
	POSVerbGodanAru
	POSVerbGodanUru
	POSVerbKuru
	POSVerbSuru
	POSVerbSuruIrregular
	POSVerbSuruSpecial
	POSVerbZuru
	POSAdjI
	POSAdjIX
	POSAdjNa
	POSAdjNo
	POSAdjPreNoun
	POSAdjTaru
	POSAdjF
	POSAdverb
	POSAuxiliary
	POSConjunction
	POSCopula
	POSCounter
	POSExpression
	POSInterjection
	POSPronoun
	POSPrefix
	POSParticle
	POSSuffix
	POSUnknown
	POSPunctuation
)

// names is the artifact contract: id -> external tag string.
var names = map[POS]string{
	POSUnclassified:      "unclassified",
	POSNoun:              "n",
	POSNounAdverbial:     "n-adv",
	POSNounPrefix:        "n-pref",
	POSNounSuffix:        "n-suf",
	POSNounTemporal:      "n-t",
	POSVerbIchidan:       "v1",
	POSVerbIchidanS:      "v1-s",
	POSVerbGodanK:        "v5k",
	POSVerbGodanG:        "v5g",
	POSVerbGodanS:        "v5s",
	POSVerbGodanT:        "v5t",
	POSVerbGodanN:        "v5n",
	POSVerbGodanB:        "v5b",
	POSVerbGodanM:        "v5m",
	POSVerbGodanR:        "v5r",
	POSVerbGodanRI:       "v5r-i",
	POSVerbGodanU:        "v5u",
	POSVerbGodanUS:       "v5u-s",
	POSVerbGodanKS:       "v5k-s",
	POSVerbGodanAru:      "v5aru",
	POSVerbGodanUru:      "v5uru",
	POSVerbKuru:          "vk",
	POSVerbSuru:          "vs",
	POSVerbSuruIrregular: "vs-i",
	POSVerbSuruSpecial:   "vs-s",
	POSVerbZuru:          "vz",
	POSAdjI:              "adj-i",
	POSAdjIX:             "adj-ix",
	POSAdjNa:             "adj-na",
	POSAdjNo:             "adj-no",
	POSAdjPreNoun:        "adj-pn",
	POSAdjTaru:           "adj-t",
	POSAdjF:              "adj-f",
	POSAdverb:            "adv",
	POSAuxiliary:         "aux",
	POSConjunction:       "conj",
	POSCopula:            "cop",
	POSCounter:           "ctr",
	POSExpression:        "exp",
	POSInterjection:      "int",
	POSPronoun:           "pn",
	POSPrefix:            "pref",
	POSParticle:          "prt",
	POSSuffix:            "suf",
	POSUnknown:           "unk",
	POSPunctuation:       "punc",
}

// Name returns the artifact-contract string for a POS id, or "unclassified"
// for an id outside the known table.
func Name(p POS) string {
	if n, ok := names[p]; ok {
		return n
	}
	return "unclassified"
}

// Known reports whether p is inside the artifact-contract table. An
// unknown id in a lexicon record is an inconsistency the caller degrades
// from rather than crashes on.
func Known(p POS) bool {
	_, ok := names[p]
	return ok
}

// Conjugation class ids carried in WordEntry.ConjType. Zero is the
// dictionary form; the rest identify which conjugation layer derived the
// entry from its base form.
const (
	ConjDictionary   uint8 = 0
	ConjPolite       uint8 = 1
	ConjPast         uint8 = 2
	ConjPolitePast   uint8 = 3
	ConjTe           uint8 = 4
	ConjNegative     uint8 = 5
	ConjConditional  uint8 = 6
	ConjPassive      uint8 = 7
	ConjPotential    uint8 = 8
	ConjVolitional   uint8 = 9
	ConjImperative   uint8 = 10
	ConjContinuative uint8 = 11
)

// WordEntry is one dictionary record: a surface form plus the fields
// packed in the lexicon's 12-byte on-disk record.
type WordEntry struct {
	Surface  string
	Seq      uint32
	Cost     int16
	POSID    POS
	ConjType uint8 // 0 means dictionary (base) form
	BaseSeq  uint32
}

// IsDictionaryForm reports whether this entry is its own base form.
func (w WordEntry) IsDictionaryForm() bool { return w.ConjType == 0 }

// Segment is a lattice node: a candidate word spanning a byte range of the
// normalized input, together with its scored entry.
type Segment struct {
	Surface string
	Start   int // byte offset, inclusive
	End     int // byte offset, exclusive
	Entry   WordEntry
	Score   float64
}

// Token is the external, post-rewrite output unit.
type Token struct {
	Surface    string
	Reading    string // hiragana-normalized
	POS        string
	BaseForm   string
	BaseFormID uint32 // 0 for unknown spans
	Start      int
	End        int
}
