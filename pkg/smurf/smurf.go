// Package smurf replaces recognized words with smurf-style substitutes while
// keeping the original word's inflection: tense, plurality and casing all
// survive the swap. Unlisted words get substituted anyway with a small
// configurable probability.
package smurf

import (
	"math/rand"
	"time"
)

// DefaultChaosChance is the probability that an unlisted alphabetic word is
// substituted anyway.
const DefaultChaosChance = 0.05

const (
	stemPlain     = "smurf"
	stemAdjective = "smurfy"

	// ExclaimMarker replaces exclamations verbatim; it never inflects.
	ExclaimMarker = "Smurf!"
)

// Options configures a Smurfifier. The zero value disables the chaos
// fallback and uses a time-seeded random source.
type Options struct {
	// ChaosChance is the probability in [0,1) that an unlisted alphabetic
	// word gets substituted anyway.
	ChaosChance float64
	// Rand is the source for chaos draws. Nil means a time-seeded source.
	Rand *rand.Rand
	// Coin decides the 50/50 branches of the multi-word rules. Nil means a
	// fair flip drawn from Rand. Tests inject fixed sequences here.
	Coin func() bool
}

// Smurfifier transforms words and lines. It holds no state besides its
// configuration and random source, so every call is independent.
type Smurfifier struct {
	chaosChance float64
	rng         *rand.Rand
	coin        func() bool
}

func New(opts Options) *Smurfifier {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	coin := opts.Coin
	if coin == nil {
		coin = func() bool { return rng.Float64() < 0.5 }
	}
	return &Smurfifier{
		chaosChance: opts.ChaosChance,
		rng:         rng,
		coin:        coin,
	}
}
