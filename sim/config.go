package sim

import "fmt"

// probTolerance is the allowed deviation of the probability sum from 1.
const probTolerance = 1e-6

// Config holds every parameter of one simulation run. All durations are
// simulated minutes.
type Config struct {
	// Horizon is the time limit: an event scheduled past it is discarded
	// and the run stops. Must be non-negative.
	Horizon float64
	// MaxEvents caps the number of processed events. Must be non-negative.
	MaxEvents int
	// MeanInterArrival is the mean of the exponential inter-arrival
	// distribution. Must be positive.
	MeanInterArrival float64
	// Probabilities are the per-type arrival probabilities; non-negative
	// and summing to 1 within probTolerance.
	Probabilities TypeProbabilities
	// ValidationDuration is the fixed service time of the validation
	// stand. Must be non-negative.
	ValidationDuration float64
	// Stations is the charging slot count. Zero is allowed and rejects
	// every arrival; negative values are invalid.
	Stations int
	// Seed makes the run reproducible. Zero means reseed from the wall
	// clock, matching the live behavior of always-random runs.
	Seed int64
}

// DefaultConfig returns the festival's reference parameter set: a mean
// inter-arrival of 13 minutes, a 2-minute validation check, 8 stations,
// and the observed 45/25/30 device-type split.
func DefaultConfig() Config {
	return Config{
		Horizon:          480,
		MaxEvents:        1000,
		MeanInterArrival: 13,
		Probabilities: TypeProbabilities{
			USBC:      0.45,
			Lightning: 0.25,
			MicroUSB:  0.30,
		},
		ValidationDuration: 2,
		Stations:           8,
	}
}

// Validate rejects malformed configuration before any simulation state is
// created. The returned error names the offending field.
func (c Config) Validate() error {
	if c.Horizon < 0 {
		return fmt.Errorf("invalid config: horizon must be non-negative, got %v", c.Horizon)
	}
	if c.MaxEvents < 0 {
		return fmt.Errorf("invalid config: max events must be non-negative, got %d", c.MaxEvents)
	}
	if c.MeanInterArrival <= 0 {
		return fmt.Errorf("invalid config: mean inter-arrival must be positive, got %v", c.MeanInterArrival)
	}
	p := c.Probabilities
	if p.USBC < 0 || p.Lightning < 0 || p.MicroUSB < 0 {
		return fmt.Errorf("invalid config: device-type probabilities must be non-negative, got %+v", p)
	}
	if diff := p.Sum() - 1; diff > probTolerance || diff < -probTolerance {
		return fmt.Errorf("invalid config: device-type probabilities must sum to 1, got %v", p.Sum())
	}
	if c.ValidationDuration < 0 {
		return fmt.Errorf("invalid config: validation duration must be non-negative, got %v", c.ValidationDuration)
	}
	if c.Stations < 0 {
		return fmt.Errorf("invalid config: station count must be non-negative, got %d", c.Stations)
	}
	return nil
}
