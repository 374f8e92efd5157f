package rewriter

import (
	"strings"

	"github.com/himotoki/himotoki/internal/model"
	"github.com/himotoki/himotoki/internal/rules"
)

// MaxNumber bounds the numbers the counter layer handles (eight digits,
// up to 億-scale minus one).
const MaxNumber = 99_999_999

// ParseNumber scans a maximal numeric prefix of s (a run of half or
// full-width digits, or a kanji numeral) and returns its value and
// the number of runes consumed. ok is false when s does not begin with a
// numeral or the value overflows MaxNumber.
func ParseNumber(s string) (value int, runes int, ok bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0, 0, false
	}
	if isArabicDigit(rs[0]) {
		return parseArabic(rs)
	}
	return parseKanji(rs)
}

func isArabicDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '０' && r <= '９')
}

func arabicValue(r rune) int {
	if r >= '０' && r <= '９' {
		return int(r - '０')
	}
	return int(r - '0')
}

func parseArabic(rs []rune) (int, int, bool) {
	v, n := 0, 0
	for n < len(rs) && isArabicDigit(rs[n]) {
		v = v*10 + arabicValue(rs[n])
		if v > MaxNumber {
			return 0, 0, false
		}
		n++
	}
	return v, n, true
}

// parseKanji handles both positional kanji numerals (二〇二五) and the
// power-of-ten style (三千二百). 万 and 億 close out a section; 十/百/千
// multiply the pending digit (an omitted digit before them means one).
func parseKanji(rs []rune) (int, int, bool) {
	total, section, digit := 0, 0, 0
	n := 0
	positional := true
	posValue := 0
	for n < len(rs) {
		r := rs[n]
		if d, ok := rules.KanjiDigits[r]; ok {
			digit = d
			posValue = posValue*10 + d
			n++
			continue
		}
		if p, ok := rules.KanjiPowers[r]; ok {
			positional = false
			switch {
			case p >= 10000:
				v := section + digit
				if v == 0 {
					v = 1
				}
				total += v * p
				section, digit = 0, 0
			default:
				v := digit
				if v == 0 {
					v = 1
				}
				section += v * p
				digit = 0
			}
			posValue = 0
			n++
			continue
		}
		break
	}
	if n == 0 {
		return 0, 0, false
	}
	var v int
	if positional {
		v = posValue
	} else {
		v = total + section + digit
	}
	if v > MaxNumber {
		return 0, 0, false
	}
	return v, n, true
}

// KanjiForm renders n as a conventional kanji numeral (digit-omitting 十/
// 百/千, sectioned by 万). ParseNumber round-trips it.
func KanjiForm(n int) string {
	if n == 0 {
		return "零"
	}
	var b strings.Builder
	if man := n / 10000; man > 0 {
		b.WriteString(kanjiSection(man))
		b.WriteRune('万')
	}
	if rest := n % 10000; rest > 0 {
		b.WriteString(kanjiSection(rest))
	}
	return b.String()
}

var kanjiDigitRunes = [10]rune{'零', '一', '二', '三', '四', '五', '六', '七', '八', '九'}

func kanjiSection(m int) string {
	var b strings.Builder
	writePart := func(d int, power rune) {
		if d == 0 {
			return
		}
		if d > 1 {
			b.WriteRune(kanjiDigitRunes[d])
		}
		b.WriteRune(power)
	}
	writePart(m/1000, '千')
	writePart(m/100%10, '百')
	writePart(m/10%10, '十')
	if u := m % 10; u > 0 {
		b.WriteRune(kanjiDigitRunes[u])
	}
	return b.String()
}

// NumberToKana renders n as its kana reading, applying the standard
// phonetic irregularities for hundreds and thousands.
func NumberToKana(n int) string {
	if n == 0 {
		return rules.PlainDigitReadings[0]
	}
	var b strings.Builder
	if man := n / 10000; man > 0 {
		b.WriteString(kanaSection(man))
		b.WriteString(rules.PowerReadings[10000])
	}
	if rest := n % 10000; rest > 0 {
		b.WriteString(kanaSection(rest))
	}
	return b.String()
}

// kanaSection reads a 1..9999 group. A leading one is dropped before 十/
// 百/千 (じゅう, ひゃく, せん) but a unit one always reads いち.
func kanaSection(m int) string {
	var b strings.Builder
	if th := m / 1000; th > 0 {
		if irr, ok := rules.IrregularPowerCompounds[th*1000]; ok {
			b.WriteString(irr)
		} else {
			if th > 1 {
				b.WriteString(rules.PlainDigitReadings[th])
			}
			b.WriteString(rules.PowerReadings[1000])
		}
	}
	if h := m / 100 % 10; h > 0 {
		if irr, ok := rules.IrregularPowerCompounds[h*100]; ok {
			b.WriteString(irr)
		} else {
			if h > 1 {
				b.WriteString(rules.PlainDigitReadings[h])
			}
			b.WriteString(rules.PowerReadings[100])
		}
	}
	if t := m / 10 % 10; t > 0 {
		if t > 1 {
			b.WriteString(rules.PlainDigitReadings[t])
		}
		b.WriteString(rules.PowerReadings[10])
	}
	if u := m % 10; u > 0 {
		b.WriteString(rules.PlainDigitReadings[u])
	}
	return b.String()
}

// CounterReading combines a numeral's reading with a counter suffix,
// applying the per-counter digit options and the special-case tables for
// days, people, and the native つ counter.
func CounterReading(n int, counter string) string {
	switch counter {
	case "日":
		if r, ok := rules.DaysOfMonthReadings[n]; ok {
			return r
		}
	case "人":
		if r, ok := rules.PeopleCounterReadings[n]; ok {
			return r
		}
	case "つ":
		if r, ok := rules.NativeCounterReadings[n]; ok {
			return r
		}
	}

	base := rules.CounterBaseReadings[counter]
	opts := rules.CounterDigitOptions[counter]

	unit := n % 10
	if unit != 0 {
		opt, has := opts[unit]
		head := ""
		if n > 9 {
			head = NumberToKana(n - unit)
		}
		if has && opt.Override != "" {
			return head + opt.Override
		}
		digit := rules.PlainDigitReadings[unit]
		if has {
			digit, base = applyOption(opt, digit, base)
		}
		return head + digit + base
	}

	// Multiple of ten ending in じゅう: the 10-entry options apply to the
	// trailing じゅう (e.g. じゅっぴき, にじゅっぷん).
	if n%100 != 0 {
		whole := NumberToKana(n)
		if opt, ok := opts[10]; ok && strings.HasSuffix(whole, rules.PowerReadings[10]) {
			if opt.Override != "" {
				return strings.TrimSuffix(whole, rules.PowerReadings[10]) + opt.Override
			}
			tail, counterRead := applyOption(opt, rules.PowerReadings[10], base)
			return strings.TrimSuffix(whole, rules.PowerReadings[10]) + tail + counterRead
		}
		return whole + base
	}

	return NumberToKana(n) + base
}

// applyOption applies gemination to the digit reading and rendaku or
// handakuten to the counter's first kana.
func applyOption(opt rules.DigitReadingOption, digit, counter string) (string, string) {
	if opt.Gemination {
		dr := []rune(digit)
		if len(dr) > 0 {
			digit = string(dr[:len(dr)-1]) + "っ"
		}
	}
	cr := []rune(counter)
	if len(cr) > 0 {
		if opt.Handakuten {
			if v, ok := rules.HandakutenKana[cr[0]]; ok {
				cr[0] = v
			}
		} else if opt.Rendaku {
			if v, ok := rules.RendakuKana[cr[0]]; ok {
				cr[0] = v
			}
		}
	}
	return digit, string(cr)
}

// recognizeCounters scans the token list for runs that spell a numeral
// followed by a counter suffix and collapses each into a single counter
// token with a computed reading. Already-recognized counter tokens are
// left alone, keeping the pass idempotent.
func recognizeCounters(toks []model.Token) ([]model.Token, bool) {
	ctrName := model.Name(model.POSCounter)
	changed := false
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.POS == ctrName {
			continue
		}
		if !isNumeralRune(firstRune(t.Surface)) {
			continue
		}
		// Grow a window of adjacent tokens and look for an exact
		// number+counter spelling ending on a token boundary.
		surface := ""
		for j := i; j < len(toks) && j < i+4; j++ {
			surface += toks[j].Surface
			value, numRunes, ok := ParseNumber(surface)
			if !ok || numRunes == 0 {
				break
			}
			rest := string([]rune(surface)[numRunes:])
			if rest == "" {
				continue
			}
			if !rules.CounterSuffixes[rest] {
				continue
			}
			merged := model.Token{
				Surface:  surface,
				Reading:  CounterReading(value, rest),
				POS:      ctrName,
				BaseForm: surface,
				Start:    toks[i].Start,
				End:      toks[j].End,
			}
			toks = append(toks[:i], append([]model.Token{merged}, toks[j+1:]...)...)
			changed = true
			break
		}
	}
	return toks, changed
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func isNumeralRune(r rune) bool {
	if isArabicDigit(r) {
		return true
	}
	if _, ok := rules.KanjiDigits[r]; ok {
		return true
	}
	_, ok := rules.KanjiPowers[r]
	return ok
}
