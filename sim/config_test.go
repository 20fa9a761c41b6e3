package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_RejectsMalformedInput(t *testing.T) {
	base := DefaultConfig()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative horizon", func(c *Config) { c.Horizon = -1 }},
		{"negative max events", func(c *Config) { c.MaxEvents = -5 }},
		{"zero mean inter-arrival", func(c *Config) { c.MeanInterArrival = 0 }},
		{"negative mean inter-arrival", func(c *Config) { c.MeanInterArrival = -13 }},
		{"negative probability", func(c *Config) {
			c.Probabilities = TypeProbabilities{USBC: -0.1, Lightning: 0.6, MicroUSB: 0.5}
		}},
		{"probabilities below one", func(c *Config) {
			c.Probabilities = TypeProbabilities{USBC: 0.3, Lightning: 0.3, MicroUSB: 0.3}
		}},
		{"probabilities above one", func(c *Config) {
			c.Probabilities = TypeProbabilities{USBC: 0.5, Lightning: 0.4, MicroUSB: 0.3}
		}},
		{"negative validation duration", func(c *Config) { c.ValidationDuration = -2 }},
		{"negative station count", func(c *Config) { c.Stations = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidate_AcceptsEdgeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Horizon = 0
	cfg.MaxEvents = 0
	cfg.ValidationDuration = 0
	cfg.Stations = 0

	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate_ProbabilitySumTolerance(t *testing.T) {
	// a sum off by less than the tolerance passes
	cfg := DefaultConfig()
	cfg.Probabilities = TypeProbabilities{USBC: 0.45, Lightning: 0.25, MicroUSB: 0.3 + 5e-7}
	assert.NoError(t, cfg.Validate())

	// a sum off by more than the tolerance fails
	cfg.Probabilities.MicroUSB = 0.3 + 5e-6
	assert.Error(t, cfg.Validate())
}

func TestNewSimulator_InvalidConfigCreatesNoState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Stations = -1

	s, err := NewSimulator(cfg)

	assert.Error(t, err)
	assert.Nil(t, s)
}
