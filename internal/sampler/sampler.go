// Package sampler provides random draws for the simulator.
//
// Samplers are not safe for concurrent use. Give each generation run its own.
package sampler

import (
	"math"
	"math/rand"
	"time"
)

// Sampler produces the two kinds of draws the simulator needs.
type Sampler interface {
	// StandardNormal returns a draw with mean 0 and standard deviation 1.
	StandardNormal() float64
	// Uniform returns a draw in [0, 1).
	Uniform() float64
}

// Source is the uniform stream a BoxMuller sampler consumes. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// BoxMuller turns uniform draws into standard-normal draws with the
// trigonometric Box–Muller transform.
type BoxMuller struct {
	src Source
}

// New wraps an arbitrary uniform source.
func New(src Source) *BoxMuller {
	return &BoxMuller{src: src}
}

// NewSeeded returns a deterministic sampler for the given seed.
func NewSeeded(seed int64) *BoxMuller {
	return New(rand.New(rand.NewSource(seed)))
}

// NewRandom returns a sampler seeded from the wall clock.
func NewRandom() *BoxMuller {
	return NewSeeded(time.Now().UnixNano())
}

func (b *BoxMuller) StandardNormal() float64 {
	u := b.open()
	v := b.open()
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
}

func (b *BoxMuller) Uniform() float64 {
	return b.src.Float64()
}

// open draws from (0,1), resampling exact zeros so log(u) stays finite.
func (b *BoxMuller) open() float64 {
	x := b.src.Float64()
	for x == 0 {
		x = b.src.Float64()
	}
	return x
}

// Fixed returns constant draws. It exists for deterministic tests and for
// "expected path" runs where every shock is switched off.
type Fixed struct {
	Normal float64
	Unif   float64
}

// Zero is a Fixed sampler with no Gaussian shock and a centred uniform draw,
// so salary hike jitter also evaluates to zero.
func Zero() Fixed { return Fixed{Normal: 0, Unif: 0.5} }

func (f Fixed) StandardNormal() float64 { return f.Normal }
func (f Fixed) Uniform() float64        { return f.Unif }
