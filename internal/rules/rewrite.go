package rules

// AuxiliaryContinuations is the closed set of auxiliary-verb continuations
// that trigger Pass A's compound-verb merge when preceded by a て/で-ending
// left segment.
var AuxiliaryContinuations = map[string]bool{
	"いる": true, "いた": true, "います": true, "いました": true,
	"いない": true, "いなかった": true, "いません": true,
	"しまう": true, "しまった": true, "しまいました": true,
	"おく": true, "おいた": true, "おきます": true,
	"ある": true, "あった": true, "あります": true,
	"くる": true, "きた": true, "きます": true, "きました": true,
	"いく": true, "いった": true, "いきます": true, "いきました": true,
	"ください": true, "くれ": true,
	"あげる": true, "あげます": true,
	"もらう": true, "もらいます": true,
	"みせる": true, "みせます": true,
	"くれる": true, "くれます": true, "くれない": true,
	"もらえない": true,
}

// PassiveOrPotentialStems is the closed set of passive/potential verb stems
// that, combined with a ている-family continuation, also trigger Pass A's
// compound-verb merge.
var PassiveOrPotentialStems = map[string]bool{
	"され": true, "られ": true, "かれ": true, "まれ": true,
	"たれ": true, "なれ": true, "ばれ": true, "がれ": true,
	"ぜれ": true,
}

// TeiruFamily is the continuation set checked against PassiveOrPotentialStems.
var TeiruFamily = map[string]bool{
	"ている": true, "ていた": true, "ています": true, "ていました": true,
	"ていない": true, "ていなかった": true,
}

// SuruFamily is the closed set of する-family continuations that merge with
// a preceding suru-able noun in Pass A.
var SuruFamily = map[string]bool{
	"する": true, "します": true, "した": true, "しました": true,
	"しない": true, "しません": true, "しなかった": true,
	"している": true, "しています": true, "していた": true,
	"していれば": true, "すれば": true, "できる": true, "できます": true,
	"させる": true, "させます": true, "させられる": true,
	"させていただきます": true, "させていただく": true,
	"される": true, "されます": true, "されている": true,
}

// LiteralMergeRule is one ordered entry of Pass B: a sequence of adjacent
// surfaces that merges into a single surface. Rules are matched
// longest-sequence-first, greedily, left to right.
type LiteralMergeRule struct {
	From []string
	To   string
}

// LiteralMerges is Pass B's rule table. Pass B orders it by sequence length
// through SortedLiteralMerges each time it runs, so matching is a single
// greedy pass.
var LiteralMerges = []LiteralMergeRule{
	{From: []string{"こんにち", "は"}, To: "こんにちは"},
	{From: []string{"こんばん", "は"}, To: "こんばんは"},
	{From: []string{"という", "こと", "です"}, To: "ということです"},
	{From: []string{"に", "ついて"}, To: "について"},
	{From: []string{"に", "対して"}, To: "に対して"},
	{From: []string{"に", "よって"}, To: "によって"},
	{From: []string{"と", "して"}, To: "として"},
}

// SortedLiteralMerges returns LiteralMerges ordered by descending sequence
// length, so Pass B's greedy scan always tries the longest match first.
func SortedLiteralMerges() []LiteralMergeRule {
	out := make([]LiteralMergeRule, len(LiteralMerges))
	copy(out, LiteralMerges)
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && len(out[j-1].From) < len(out[j].From) {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// TokenSubstitutions is the literal tuple->replacement tuple table applied
// after Pass C's splits, before the outer fixed point re-runs Pass A/B.
var TokenSubstitutions = map[string][]string{
	"今日は": {"今日", "は"},
}

// ExplicitCompoundSplits is Pass C step (1): a closed set of compounds that
// always split at a fixed point, independent of lexicon membership checks.
var ExplicitCompoundSplits = map[string][]string{
	"お願い申し上げます": {"お願い", "申し上げます"},
	"よろしくお願いいたします": {"よろしく", "お願いいたします"},
}

// PrefixParticleSplits is Pass C step (2): a compound known to split into a
// leading particle/connective plus a suffix, verified against the lexicon
// at runtime (the suffix must be a lexicon key).
var PrefixParticleSplits = map[string]struct {
	Prefix string
	Suffix string
}{
	"につきまして": {Prefix: "に", Suffix: "つきまして"},
	"んです":    {Prefix: "ん", Suffix: "です"},
	"んだ":     {Prefix: "ん", Suffix: "だ"},
}

// SplittablePeelParticles is Pass C step (4): particles that may be peeled
// rightmost-first from a longer surface, provided the surface is not in
// NoSplitSet and the remaining base is long enough / lexicon-present.
var SplittablePeelParticles = []string{"を", "に", "へ"}

// NoSplitSet lists surfaces that must never be particle-split even though
// they structurally qualify (e.g. fixed expressions swallowing a particle).
var NoSplitSet = map[string]bool{
	"なに":  true,
	"どこへ": true,
}

// CopulaPeelSuffixes is Pass C step (5): words ending in one of these
// strings have だ/です peeled off as a separate copula token.
var CopulaPeelSuffixes = []string{"ようだ", "はずだ", "からだ"}

// ExplanatoryNEndings is Pass C step (7): bases that, with a trailing ん
// peeled off, must end in one of these runes for the peel to apply.
var ExplanatoryNEndings = []string{"い", "る", "た", "て", "だ"}

// SuruAbleNouns is the closed set of nouns that merge with a following
// する-family continuation in Pass A.
var SuruAbleNouns = map[string]bool{
	"勉強": true, "電話": true, "料理": true, "練習": true, "運動": true,
	"掃除": true, "洗濯": true, "結婚": true, "旅行": true, "仕事": true,
	"説明": true, "質問": true, "連絡": true, "散歩": true, "買い物": true,
	"約束": true, "心配": true, "準備": true, "参加": true, "利用": true,
	"紹介": true, "案内": true, "確認": true, "注文": true, "予約": true,
}
