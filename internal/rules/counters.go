package rules

// DigitReadingOption models counter-specific per-digit reading rules as a
// tagged union: either an explicit Override string, or a set of sound-
// change flags applied to the digit's plain reading. Override, when
// non-empty, always wins.
type DigitReadingOption struct {
	Override   string
	Gemination bool // e.g. いっ
	Rendaku    bool // e.g. だ for た
	Handakuten bool // e.g. ぱ for は
}

// KanjiDigits maps kanji digit numerals to their value, 0-9 (both 零 and
// the positional 〇 read as zero). 十 and the other powers of ten live in
// KanjiPowers.
var KanjiDigits = map[rune]int{
	'零': 0, '〇': 0,
	'一': 1, '二': 2, '三': 3, '四': 4, '五': 5,
	'六': 6, '七': 7, '八': 8, '九': 9,
}

// KanjiPowers maps the kanji power-of-ten characters to their magnitude.
var KanjiPowers = map[rune]int{
	'十': 10, '百': 100, '千': 1000,
	'万': 10000, '億': 100000000,
}

// PlainDigitReadings are used to build generic number readings when no
// counter-specific irregularity table entry applies.
var PlainDigitReadings = [10]string{
	"ぜろ", "いち", "に", "さん", "よん", "ご", "ろく", "なな", "はち", "きゅう",
}

// PowerReadings gives the base reading for each power of ten, before
// irregular contractions are applied.
var PowerReadings = map[int]string{
	10:        "じゅう",
	100:       "ひゃく",
	1000:      "せん",
	10000:     "まん",
	100000000: "おく",
}

// IrregularPowerCompounds lists exact digit*power readings that override
// the generic digit+power concatenation (gemination/rendaku/handakuten
// baked directly into the literal, since these are a small closed set).
var IrregularPowerCompounds = map[int]string{
	300:  "さんびゃく",
	600:  "ろっぴゃく",
	800:  "はっぴゃく",
	3000: "さんぜん",
	8000: "はっせん",
}

// CounterSuffixes is the closed set of recognized counter suffixes.
var CounterSuffixes = map[string]bool{
	"匹": true, "冊": true, "杯": true, "本": true, "階": true,
	"軒": true, "回": true, "年": true, "月": true, "日": true,
	"人": true, "度": true, "台": true, "位": true, "枚": true,
	"個": true, "つ": true, "号": true, "週": true, "秒": true,
	"分": true, "時": true, "円": true, "ページ": true, "キロ": true,
}

// CounterDigitOptions gives per-counter, per-digit reading irregularities.
// Missing entries fall back to PlainDigitReadings + the counter's own
// base reading (handled by the number-to-kana logic in internal/rewriter).
var CounterDigitOptions = map[string]map[int]DigitReadingOption{
	"匹": {
		1: {Gemination: true, Handakuten: true}, 3: {Rendaku: true},
		6: {Gemination: true, Handakuten: true},
		8: {Gemination: true, Handakuten: true},
		10: {Gemination: true, Handakuten: true},
	},
	"本": {
		1: {Gemination: true, Handakuten: true}, 3: {Rendaku: true},
		6: {Gemination: true, Handakuten: true},
		8: {Gemination: true, Handakuten: true},
		10: {Gemination: true, Handakuten: true},
	},
	"杯": {
		1: {Gemination: true, Handakuten: true}, 3: {Rendaku: true},
		6: {Gemination: true, Handakuten: true},
		8: {Gemination: true, Handakuten: true},
		10: {Gemination: true, Handakuten: true},
	},
	"分": {
		1: {Gemination: true, Handakuten: true}, 3: {Handakuten: true},
		4: {Override: "よんぷん"},
		6: {Gemination: true, Handakuten: true},
		8: {Gemination: true, Handakuten: true},
		10: {Gemination: true, Handakuten: true},
	},
	"階": {
		1: {Gemination: true}, 3: {Rendaku: true}, 6: {Gemination: true},
		8: {Gemination: true}, 10: {Gemination: true},
	},
	"冊": {
		1: {Gemination: true}, 8: {Gemination: true}, 10: {Gemination: true},
	},
	"回": {
		1: {Gemination: true}, 6: {Gemination: true}, 8: {Gemination: true},
		10: {Gemination: true},
	},
	"軒": {3: {Rendaku: true}},
	"月": {
		4: {Override: "しがつ"}, 7: {Override: "しちがつ"}, 9: {Override: "くがつ"},
	},
	"人": {4: {Override: "よにん"}},
	"年": {4: {Override: "よねん"}},
	"時": {4: {Override: "よじ"}, 9: {Override: "くじ"}},
	"個": {
		1: {Gemination: true}, 6: {Gemination: true}, 8: {Gemination: true},
		10: {Gemination: true},
	},
	"枚": {},
	"台": {},
	"度": {},
	"週": {1: {Gemination: true}, 8: {Gemination: true}, 10: {Gemination: true}},
	"秒": {},
	"円": {4: {Override: "よえん"}},
	"ページ": {1: {Gemination: true}, 6: {Gemination: true}, 8: {Gemination: true}, 10: {Gemination: true}},
	"キロ": {6: {Gemination: true}, 10: {Gemination: true}},
	"位": {},
	"号": {},
	"日": {},
	"つ": {},
}

// CounterBaseReadings gives each counter suffix's plain kana reading before
// any per-digit sound change is applied.
var CounterBaseReadings = map[string]string{
	"匹": "ひき", "冊": "さつ", "杯": "はい", "本": "ほん", "階": "かい",
	"軒": "けん", "回": "かい", "年": "ねん", "月": "がつ", "日": "にち",
	"人": "にん", "度": "ど", "台": "だい", "位": "い", "枚": "まい",
	"個": "こ", "つ": "つ", "号": "ごう", "週": "しゅう", "秒": "びょう",
	"分": "ふん", "時": "じ", "円": "えん", "ページ": "ぺーじ", "キロ": "きろ",
}

// Rendaku voices the first kana of a counter reading; Handakuten
// half-voices it. Keys absent from a map mean the sound change does not
// apply to that kana and the reading is left as is.
var (
	RendakuKana = map[rune]rune{
		'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
		'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
		'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
		'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
	}
	HandakutenKana = map[rune]rune{
		'は': 'ぱ', 'ひ': 'ぴ', 'ふ': 'ぷ', 'へ': 'ぺ', 'ほ': 'ぽ',
	}
)

// DaysOfMonthReadings overrides the 1st-10th, 14th, 20th, 24th day names,
// which are irregular even by counter standards.
var DaysOfMonthReadings = map[int]string{
	1: "ついたち", 2: "ふつか", 3: "みっか", 4: "よっか", 5: "いつか",
	6: "むいか", 7: "なのか", 8: "ようか", 9: "ここのか", 10: "とおか",
	14: "じゅうよっか", 20: "はつか", 24: "にじゅうよっか",
}

// PeopleCounterReadings overrides the people counter (人) for 1 and 2.
var PeopleCounterReadings = map[int]string{1: "ひとり", 2: "ふたり"}

// NativeCounterReadings gives the native Japanese つ-counter readings for
// 1 through 10 (はたち is the irregular 20-years-old reading, handled
// separately by age-specific logic if ever needed; out of scope here).
var NativeCounterReadings = map[int]string{
	1: "ひとつ", 2: "ふたつ", 3: "みっつ", 4: "よっつ", 5: "いつつ",
	6: "むっつ", 7: "ななつ", 8: "やっつ", 9: "ここのつ", 10: "とお",
}
