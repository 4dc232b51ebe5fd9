// Package config carries the input boundary: every temperature arrives
// in Fahrenheit, geometry in inches, additive volume as a percent of
// the cup, and is converted to core units exactly once in Inputs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kmoray/brewsim/internal/scenario"
	"github.com/kmoray/brewsim/internal/thermo"
	"github.com/kmoray/brewsim/internal/units"
)

// Defaults reproduce the reference pour: a 74°C pot into a 4×3 in
// ceramic cup in a 21°C room, 50 mL of fridge creamer at half a minute.
const (
	DefaultAmbientTempF     = 69.8
	DefaultCoffeeTempF      = 165.2
	DefaultTargetTempF      = 113.0
	DefaultPreheatedCupF    = 131.0
	DefaultAdditiveTempF    = 38.0
	DefaultDecayConstant    = 0.02
	DefaultMixTimeMin       = 0.5
	DefaultAdditivePercent  = 10.8
	DefaultWindowMin        = 60.0
	DefaultSamples          = 1000
	DefaultCupHeightIn      = 4.0
	DefaultCupDiameterIn    = 3.0
	DefaultCupWallIn        = 0.1825
	DefaultCeramicDensity   = 3000.0
	DefaultCeramicSpecHeat  = 900.0
	DefaultCoffeeDensity    = 1000.0
	DefaultCoffeeSpecHeat   = 4186.0
)

type Config struct {
	AmbientTempF          float64        `yaml:"ambient_temp_f"`
	CoffeeTempF           float64        `yaml:"initial_coffee_temp_f"`
	TargetTempF           float64        `yaml:"target_temp_f"`
	PreheatedCupTempF     float64        `yaml:"preheated_cup_temp_f"`
	DecayConstant         float64        `yaml:"decay_constant"`
	MixTimeMin            float64        `yaml:"mix_addition_time_min"`
	AdditiveTempF         float64        `yaml:"additive_temp_f"`
	AdditiveVolumePercent float64        `yaml:"additive_volume_percent"`
	WindowMin             float64        `yaml:"window_min"`
	Samples               int            `yaml:"samples"`
	DisplayScale          string         `yaml:"display_scale"`
	Cup                   CupConfig      `yaml:"cup"`
	Coffee                MaterialConfig `yaml:"coffee"`
}

type CupConfig struct {
	HeightIn        float64 `yaml:"height_in"`
	DiameterIn      float64 `yaml:"diameter_in"`
	WallThicknessIn float64 `yaml:"wall_thickness_in"`
	Density         float64 `yaml:"density"`       // kg/m³
	SpecificHeat    float64 `yaml:"specific_heat"` // J/(kg·°C)
}

type MaterialConfig struct {
	Density      float64 `yaml:"density"`
	SpecificHeat float64 `yaml:"specific_heat"`
}

func DefaultConfig() *Config {
	return &Config{
		AmbientTempF:          DefaultAmbientTempF,
		CoffeeTempF:           DefaultCoffeeTempF,
		TargetTempF:           DefaultTargetTempF,
		PreheatedCupTempF:     DefaultPreheatedCupF,
		DecayConstant:         DefaultDecayConstant,
		MixTimeMin:            DefaultMixTimeMin,
		AdditiveTempF:         DefaultAdditiveTempF,
		AdditiveVolumePercent: DefaultAdditivePercent,
		WindowMin:             DefaultWindowMin,
		Samples:               DefaultSamples,
		DisplayScale:          string(units.Celsius),
		Cup: CupConfig{
			HeightIn:        DefaultCupHeightIn,
			DiameterIn:      DefaultCupDiameterIn,
			WallThicknessIn: DefaultCupWallIn,
			Density:         DefaultCeramicDensity,
			SpecificHeat:    DefaultCeramicSpecHeat,
		},
		Coffee: MaterialConfig{
			Density:      DefaultCoffeeDensity,
			SpecificHeat: DefaultCoffeeSpecHeat,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scale returns the validated display scale for outputs.
func (c *Config) Scale() (units.TempScale, error) {
	s := units.TempScale(c.DisplayScale)
	if _, err := units.FromCelsius(0, s); err != nil {
		return "", err
	}
	return s, nil
}

// Inputs converts the boundary fields into the core-unit parameter set.
// This is the only place display units cross into the physics.
func (c *Config) Inputs() (scenario.Inputs, error) {
	var in scenario.Inputs

	temps := []struct {
		dst *float64
		val float64
	}{
		{&in.AmbientTemp, c.AmbientTempF},
		{&in.CoffeeTemp, c.CoffeeTempF},
		{&in.TargetTemp, c.TargetTempF},
		{&in.PreheatedCupTemp, c.PreheatedCupTempF},
		{&in.AdditiveTemp, c.AdditiveTempF},
	}
	for _, t := range temps {
		v, err := units.ToCelsius(t.val, units.Fahrenheit)
		if err != nil {
			return scenario.Inputs{}, err
		}
		*t.dst = v
	}

	if c.AdditiveVolumePercent < 0 {
		return scenario.Inputs{}, fmt.Errorf("additive volume %g%%: %w", c.AdditiveVolumePercent, thermo.ErrInvalidConfiguration)
	}

	in.Cup = thermo.Cup{
		Height:        units.InchesToMeters(c.Cup.HeightIn),
		Diameter:      units.InchesToMeters(c.Cup.DiameterIn),
		WallThickness: units.InchesToMeters(c.Cup.WallThicknessIn),
		Density:       c.Cup.Density,
		SpecificHeat:  c.Cup.SpecificHeat,
	}
	in.CoffeeDensity = c.Coffee.Density
	in.CoffeeSpecificHeat = c.Coffee.SpecificHeat

	in.DecayConst = c.DecayConstant
	in.MixTime = c.MixTimeMin
	in.AdditiveVolume = c.AdditiveVolumePercent / 100 * in.Cup.CavityLiters()
	in.WindowMin = c.WindowMin
	in.Samples = c.Samples

	return in, nil
}
