package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays a fixed list of uniform values, then repeats the last one.
type scripted struct {
	vals []float64
	n    int
}

func (s *scripted) Float64() float64 {
	if s.n >= len(s.vals) {
		return s.vals[len(s.vals)-1]
	}
	v := s.vals[s.n]
	s.n++
	return v
}

func TestBoxMuller_Moments(t *testing.T) {
	s := NewSeeded(42)
	const n = 50000

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		x := s.StandardNormal()
		require.False(t, math.IsNaN(x) || math.IsInf(x, 0), "draw %d not finite", i)
		sum += x
		sumSq += x * x
	}
	mean := sum / n
	std := math.Sqrt(sumSq/n - mean*mean)

	assert.InDelta(t, 0.0, mean, 0.03)
	assert.InDelta(t, 1.0, std, 0.03)
}

func TestBoxMuller_ResamplesZero(t *testing.T) {
	// u=0 must be skipped; the transform then sees u=0.5, v=0.25.
	src := &scripted{vals: []float64{0, 0, 0.5, 0.25}}
	s := New(src)

	got := s.StandardNormal()
	want := math.Sqrt(-2*math.Log(0.5)) * math.Cos(2*math.Pi*0.25)
	assert.InDelta(t, want, got, 1e-12)
	assert.Equal(t, 4, src.n)
}

func TestBoxMuller_SeededIsReproducible(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.StandardNormal(), b.StandardNormal())
		require.Equal(t, a.Uniform(), b.Uniform())
	}
}

func TestBoxMuller_UniformRange(t *testing.T) {
	s := NewSeeded(3)
	for i := 0; i < 10000; i++ {
		u := s.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestFixed(t *testing.T) {
	var s Sampler = Zero()
	assert.Equal(t, 0.0, s.StandardNormal())
	assert.Equal(t, 0.5, s.Uniform())

	s = Fixed{Normal: 1.5, Unif: 0.1}
	assert.Equal(t, 1.5, s.StandardNormal())
	assert.Equal(t, 0.1, s.Uniform())
}
