package sim

import (
	"math"
	"math/rand"
)

// Sampler owns the random source for one simulation run and produces every
// stochastic draw the engine needs. Each method also returns the raw uniform
// so the snapshot trace can record it.
//
// Thread-safety: NOT thread-safe. A Sampler belongs to exactly one run.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler seeded with the given value.
// The same seed and configuration produce bit-for-bit identical runs.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// NewSamplerFromRand wraps an existing random source. Tests use this to
// inject scripted uniforms.
func NewSamplerFromRand(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// SampleInterArrival draws an exponentially distributed inter-arrival time
// (in minutes) with the given mean, via the inverse CDF -mean*ln(1-u).
// Float64 draws from [0,1), so 1-u is always positive.
func (s *Sampler) SampleInterArrival(mean float64) (iat float64, u float64) {
	u = s.rng.Float64()
	return -mean * math.Log(1-u), u
}

// SampleDeviceType draws a device type from the categorical distribution
// given by p, partitioning [0,1) into USB-C, Lightning, MicroUSB bands
// in that fixed order.
func (s *Sampler) SampleDeviceType(p TypeProbabilities) (DeviceType, float64) {
	u := s.rng.Float64()
	switch {
	case u < p.USBC:
		return DeviceUSBC, u
	case u < p.USBC+p.Lightning:
		return DeviceLightning, u
	default:
		return DeviceMicroUSB, u
	}
}

// SampleChargeDuration draws a charging duration in minutes from the fixed
// discrete distribution P(1h)=0.50, P(2h)=0.30, P(3h)=0.15, P(4h)=0.05.
func (s *Sampler) SampleChargeDuration() (minutes int, u float64) {
	u = s.rng.Float64()
	switch {
	case u < 0.50:
		return 60, u
	case u < 0.80:
		return 120, u
	case u < 0.95:
		return 180, u
	default:
		return 240, u
	}
}
