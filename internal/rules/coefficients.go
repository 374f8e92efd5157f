package rules

// Length coefficient sequences used by the scoring model's mora-length
// multiplier. Index is mora length; values beyond the end of a sequence
// are extrapolated by CoeffAt as 3*moras^2.
var (
	// StrongCoeff applies to kanji-bearing or pure-katakana segments.
	StrongCoeff = []int{0, 1, 8, 24, 40, 60, 84, 112, 144, 180}
	// TailCoeff applies to hiragana particles or any conjugated entry
	// (ConjType > 0).
	TailCoeff = []int{0, 4, 9, 16, 24, 34, 46, 60}
	// WeakCoeff applies to other hiragana segments.
	WeakCoeff = []int{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}
)

// CoeffAt returns seq[moras] if in range, else the quadratic extrapolation
// 3*moras^2 used past the end of every coefficient sequence.
func CoeffAt(seq []int, moras int) int {
	if moras < 0 {
		moras = 0
	}
	if moras < len(seq) {
		return seq[moras]
	}
	return 3 * moras * moras
}
