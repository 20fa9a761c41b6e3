package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource is a rand.Source that replays a fixed list of uniforms.
// rand.Rand.Float64 computes float64(Int63()) / (1 << 63), so returning
// int64(u * (1 << 63)) reproduces u up to one ulp. Tests must therefore
// avoid scripting values that sit exactly on a distribution band edge.
type scriptedSource struct {
	values []float64
	pos    int
}

func (s *scriptedSource) Int63() int64 {
	if s.pos >= len(s.values) {
		panic("scriptedSource: uniforms exhausted")
	}
	u := s.values[s.pos]
	s.pos++
	return int64(u * (1 << 63))
}

func (s *scriptedSource) Seed(int64) {}

// newScriptedSampler returns a Sampler whose draws replay the given
// uniforms in order.
func newScriptedSampler(uniforms ...float64) *Sampler {
	return NewSamplerFromRand(rand.New(&scriptedSource{values: uniforms}))
}

// newTestSimulator builds a validated Simulator whose random draws replay
// the given uniforms.
func newTestSimulator(t *testing.T, cfg Config, uniforms ...float64) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	s.Sampler = newScriptedSampler(uniforms...)
	return s
}
