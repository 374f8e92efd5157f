package rules

// The scoring adjustments are kept as two literal tables, bonuses and
// penalties, so each side can be read and audited on its own.

// SynergyTable is the bonus side of the scoring adjustments.
type SynergyTable struct {
	// Particle is a flat particle bonus kept as table data. No scoring
	// path adds it: particles are scored by the micro-formula below
	// instead of the general path.
	Particle float64
	// PronounDemonstrative applies to pronouns and demonstratives.
	PronounDemonstrative float64
	// ConjugatedForm is added whenever an entry has ConjType > 0.
	ConjugatedForm float64
	// ConditionalBa additionally applies when a conjugated surface ends
	// in ば and the conjugation is the conditional form.
	ConditionalBa float64
	// KnownCompound applies to the Compounds set below, which the
	// lattice would otherwise under-score as shorter entries.
	KnownCompound float64

	// The particle micro-formula: score = ParticleBaseConstant -
	// cost*ParticleCostFactor, plus ParticleLenSquaredFactor*len^2 for
	// particles longer than one character.
	ParticleBaseConstant     float64
	ParticleCostFactor       float64
	ParticleLenSquaredFactor float64

	// Compounds is the closed set of greetings, demonstratives, and
	// fixed adverbs receiving KnownCompound.
	Compounds map[string]bool
}

// PenaltyTable is the penalty side of the scoring adjustments.
type PenaltyTable struct {
	// SplitDisincentive is a fixed negative adjustment applied to
	// entries in PreferSplitCompounds, discouraging the path selector
	// from keeping them merged when a split reading is also available.
	SplitDisincentive float64
	// SingleCharNonParticle penalizes a single-character segment that is
	// not itself a particle (the lattice otherwise overvalues stray
	// kana).
	SingleCharNonParticle float64
	// DegenerateEnding applies when a >2-char surface (not a known
	// compound) ends in a single-char particle and the particle-less
	// prefix is itself a lexicon key, a sign the lattice should have
	// split it.
	DegenerateEnding float64

	// PreferSplitCompounds is the closed set of compounds whose
	// decomposition the path selector is pushed toward; scoring
	// discourages it from locking them in as a single merged segment.
	// Pass B's literal merge table may join some of them back afterwards.
	PreferSplitCompounds map[string]bool
	// SingleCharParticles is the set of one-character particles checked
	// by the degenerate-ending rule.
	SingleCharParticles map[string]bool
}

// Synergies is the bonus table.
var Synergies = SynergyTable{
	Particle:             3,
	PronounDemonstrative: 5,
	ConjugatedForm:       15,
	ConditionalBa:        40,
	KnownCompound:        40,

	ParticleBaseConstant:     15,
	ParticleCostFactor:       0.1,
	ParticleLenSquaredFactor: 5,

	Compounds: map[string]bool{
		"おはようございます": true,
		"こんにちは":      true,
		"こんばんは":      true,
		"ありがとうございます": true,
		"よろしくお願いします": true,
		"これ":         true,
		"それ":         true,
		"あれ":         true,
		"どれ":         true,
		"これら":        true,
		"それら":        true,
		"いわゆる":       true,
		"あらゆる":       true,
		"とりあえず":      true,
		"いきなり":       true,
	},
}

// Penalties is the penalty table.
var Penalties = PenaltyTable{
	SplitDisincentive:     -25,
	SingleCharNonParticle: -30,
	DegenerateEnding:      -30,

	PreferSplitCompounds: map[string]bool{
		"について": true,
		"において": true,
		"に対して": true,
		"によって": true,
		"として":  true,
	},

	SingleCharParticles: map[string]bool{
		"は": true, "が": true, "を": true, "に": true, "で": true,
		"と": true, "も": true, "の": true, "へ": true, "や": true,
		"か": true, "な": true, "よ": true, "ね": true,
	},
}
