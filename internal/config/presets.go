package config

// Presets are named variations on the default pour.
var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	"winter": func() *Config {
		cfg := DefaultConfig()
		cfg.AmbientTempF = 62.6 // 17°C room
		cfg.PreheatedCupTempF = 140
		return cfg
	},
	"espresso": func() *Config {
		cfg := DefaultConfig()
		cfg.CoffeeTempF = 176 // 80°C shot
		cfg.DecayConstant = 0.05
		cfg.Cup.HeightIn = 2.2
		cfg.Cup.DiameterIn = 2.3
		cfg.Cup.WallThicknessIn = 0.25
		cfg.AdditiveVolumePercent = 0
		cfg.WindowMin = 30
		return cfg
	},
	"iced": func() *Config {
		cfg := DefaultConfig()
		cfg.AdditiveTempF = 33
		cfg.AdditiveVolumePercent = 35
		cfg.MixTimeMin = 0
		return cfg
	},
}

func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
