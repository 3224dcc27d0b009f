package config

var Presets = map[string]*Config{
	"full": {
		Margin: 1, Symbol: "*", Theme: "mono",
	},
	"compact": {
		Width: 60, Height: 16, Margin: 1, Symbol: "*", Theme: "mono",
	},
	"wide": {
		Width: 120, Height: 20, Margin: 1, Symbol: "#", Theme: "ocean",
	},
	"banner": {
		Height: 8, Margin: 1, Symbol: "=", Theme: "ember",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
