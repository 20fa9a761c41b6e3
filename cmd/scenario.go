package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fedegimenez/chargesim/sim"
)

// Scenario is a YAML description of a run's parameters. Omitted fields
// keep the engine defaults; explicitly set CLI flags override the file.
type Scenario struct {
	HorizonMinutes   *float64 `yaml:"horizon_minutes,omitempty"`
	MaxEvents        *int     `yaml:"max_events,omitempty"`
	MeanInterArrival *float64 `yaml:"mean_interarrival_minutes,omitempty"`
	Probabilities    *struct {
		USBC      float64 `yaml:"usb_c"`
		Lightning float64 `yaml:"lightning"`
		MicroUSB  float64 `yaml:"micro_usb"`
	} `yaml:"probabilities,omitempty"`
	ValidationMinutes *float64 `yaml:"validation_minutes,omitempty"`
	Stations          *int     `yaml:"stations,omitempty"`
	Seed              *int64   `yaml:"seed,omitempty"`
}

// LoadScenario reads and parses a scenario file. Unknown keys are an
// error so typos surface instead of silently keeping defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	return &scenario, nil
}

// Apply copies the scenario's set fields onto cfg.
func (s *Scenario) Apply(cfg *sim.Config) {
	if s.HorizonMinutes != nil {
		cfg.Horizon = *s.HorizonMinutes
	}
	if s.MaxEvents != nil {
		cfg.MaxEvents = *s.MaxEvents
	}
	if s.MeanInterArrival != nil {
		cfg.MeanInterArrival = *s.MeanInterArrival
	}
	if s.Probabilities != nil {
		cfg.Probabilities = sim.TypeProbabilities{
			USBC:      s.Probabilities.USBC,
			Lightning: s.Probabilities.Lightning,
			MicroUSB:  s.Probabilities.MicroUSB,
		}
	}
	if s.ValidationMinutes != nil {
		cfg.ValidationDuration = *s.ValidationMinutes
	}
	if s.Stations != nil {
		cfg.Stations = *s.Stations
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
}
