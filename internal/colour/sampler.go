package colour

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	mathrand "math/rand/v2"
)

// goldenRatio drives the hue cycle: stepping the hue by an irrational
// fraction of a turn per attempt gives low-discrepancy coverage of the hue
// circle without keeping a permutation.
const goldenRatio = 0.618033988749895

// Sampling defaults.
const (
	defaultMinContrast  = 1.5
	defaultMaxAttempts  = 10000
	defaultLightnessMin = 20
	defaultLightnessMax = 90
	defaultChromaMin    = 30
	defaultChromaMax    = 128
)

// midToneL is the lightness at which CIELAB carries the most chroma inside
// the sRGB gamut; usable chroma falls off towards both extremes.
const midToneL = 55

// Config controls distinct colour generation.
type Config struct {
	// Count is the number of colour pairs requested.
	Count int

	// MinDistance is the minimum pairwise CIELAB distance between accepted
	// backgrounds. Zero means derive it from Count.
	MinDistance float64

	// MinContrast is the minimum pairwise contrast ratio between accepted
	// backgrounds, enforced only for small palettes (Count <= 5).
	MinContrast float64

	// LightnessMin and LightnessMax bound the sampled CIELAB lightness.
	LightnessMin float64
	LightnessMax float64

	// ChromaMin and ChromaMax bound the sampled chroma magnitude.
	ChromaMin float64
	ChromaMax float64

	// MaxAttempts bounds the sampling loop. When the budget is exhausted
	// before Count colours are accepted, the partial palette is returned.
	MaxAttempts int
}

// DefaultConfig returns the generation config for the given colour count,
// with the distance threshold derived from the count tier.
func DefaultConfig(count int) Config {
	return Config{
		Count:        count,
		MinDistance:  deriveMinDistance(count),
		MinContrast:  defaultMinContrast,
		LightnessMin: defaultLightnessMin,
		LightnessMax: defaultLightnessMax,
		ChromaMin:    defaultChromaMin,
		ChromaMax:    defaultChromaMax,
		MaxAttempts:  defaultMaxAttempts,
	}
}

// deriveMinDistance picks the separation floor for a palette of n colours.
// Small palettes lean on pairwise contrast instead of distance; large
// palettes relax the floor as n grows, since CIELAB cannot pack unboundedly
// many points at a fixed minimum pairwise distance.
func deriveMinDistance(n int) float64 {
	switch {
	case n <= 5:
		return 30
	case n <= 10:
		return 20
	default:
		return math.Max(10, 30-float64(n-10))
	}
}

// withDefaults fills zero-valued fields so a partially specified config
// behaves like DefaultConfig for the unspecified parts.
func (cfg Config) withDefaults() Config {
	if cfg.MinDistance <= 0 {
		cfg.MinDistance = deriveMinDistance(cfg.Count)
	}
	if cfg.MinContrast <= 0 {
		cfg.MinContrast = defaultMinContrast
	}
	if cfg.LightnessMax <= cfg.LightnessMin {
		cfg.LightnessMin = defaultLightnessMin
		cfg.LightnessMax = defaultLightnessMax
	}
	if cfg.ChromaMax <= cfg.ChromaMin {
		cfg.ChromaMin = defaultChromaMin
		cfg.ChromaMax = defaultChromaMax
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	return cfg
}

// Generate produces up to cfg.Count visually distinct background colours,
// each paired with a legible white or black foreground. Candidates are
// sampled directly in CIELAB space, where Euclidean distance approximates
// perceived difference far better than in RGB.
//
// Generate is a pure function of (cfg, rng): a seeded generator reproduces
// the same palette. The result may hold fewer than cfg.Count entries when the
// attempt budget runs out; that is an expected outcome of a hard geometric
// packing problem, not an error. A non-positive count yields an empty palette.
func Generate(cfg Config, rng *mathrand.Rand) *Palette {
	if cfg.Count <= 0 {
		return NewPalette(nil)
	}
	cfg = cfg.withDefaults()

	accepted := make([]Entry, 0, cfg.Count)
	for attempts := 0; len(accepted) < cfg.Count && attempts < cfg.MaxAttempts; attempts++ {
		lab := proposeCandidate(cfg, attempts, rng)

		// Out-of-gamut Lab points are rejected outright, never clamped into
		// range; clamping only happens when quantising an in-gamut value.
		r, g, b := xyzToChannels(LabToXYZ(lab))
		if !inGamut(r, g, b) {
			continue
		}
		bg := RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}

		if !separated(accepted, lab, bg, cfg) {
			continue
		}

		fg, contrast := SelectForeground(bg)
		if contrast < foregroundFloor(cfg.Count) {
			// Spent attempt; the candidate is discarded rather than retried
			// with adjusted lightness.
			continue
		}

		accepted = append(accepted, Entry{Background: bg, Foreground: fg, Lab: lab})
	}

	return NewPalette(accepted)
}

// proposeCandidate samples one CIELAB point. The hue angle cycles by the
// golden ratio per attempt; lightness is biased 60/40 towards the extremes of
// the configured range, which raises the odds of strong foreground contrast;
// chroma magnitude shrinks as lightness approaches the mid-tone, since very
// light and very dark Lab points cannot carry large chroma in gamut.
func proposeCandidate(cfg Config, attempts int, rng *mathrand.Rand) Lab {
	hue := math.Mod(float64(attempts)*goldenRatio, 1.0)

	var l float64
	if rng.Float64() < 0.6 {
		if rng.IntN(2) == 0 {
			l = cfg.LightnessMin + rng.Float64()*20 // dark-biased
		} else {
			l = cfg.LightnessMax - rng.Float64()*20 // light-biased
		}
	} else {
		l = cfg.LightnessMin + (cfg.LightnessMax-cfg.LightnessMin)*rng.Float64()
	}

	angle := hue * 2 * math.Pi
	maxChroma := math.Min(128, cfg.ChromaMax*(1-math.Abs(l-midToneL)/45))
	chroma := cfg.ChromaMin + rng.Float64()*(maxChroma-cfg.ChromaMin)

	return Lab{
		L: l,
		A: chroma * math.Cos(angle),
		B: chroma * math.Sin(angle),
	}
}

// separated reports whether the candidate keeps the required separation from
// every accepted colour: at least MinDistance in CIELAB, and for small
// palettes at least MinContrast pairwise contrast as well.
func separated(accepted []Entry, lab Lab, bg RGB, cfg Config) bool {
	for _, e := range accepted {
		if Distance(lab, e.Lab) < cfg.MinDistance {
			return false
		}
		if cfg.Count <= 5 && ContrastRatio(bg, e.Background) < cfg.MinContrast {
			return false
		}
	}
	return true
}

// GenerateDistinctColours generates n distinct, accessible colour pairs as
// hex strings, using the process-local random source. A minDistance or
// minContrast of zero selects the tier defaults. The result may be shorter
// than n on exhaustion; n <= 0 yields an empty slice.
func GenerateDistinctColours(n int, minDistance, minContrast float64) []Pair {
	cfg := DefaultConfig(n)
	if minDistance > 0 {
		cfg.MinDistance = minDistance
	}
	if minContrast > 0 {
		cfg.MinContrast = minContrast
	}
	return Generate(cfg, defaultRNG).Pairs()
}

// defaultRNG is the process-local generator used when callers do not inject
// their own. Core operations are single-threaded; independent generations
// that must run in parallel should each inject a separate generator.
var defaultRNG = NewRand()

// NewRand creates a random source seeded from crypto/rand.
func NewRand() *mathrand.Rand {
	return mathrand.New(mathrand.NewChaCha8(cryptoSeed()))
}

func cryptoSeed() [32]byte {
	var seed [32]byte
	// crypto/rand.Read does not fail on supported platforms.
	_, _ = crand.Read(seed[:])
	return seed
}

// NewSeededRand creates a deterministic random source from a 64-bit seed,
// for reproducible generation.
func NewSeededRand(seed uint64) *mathrand.Rand {
	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	return mathrand.New(mathrand.NewChaCha8(seedArray))
}
