package config

// Presets are ready-made looks. Each is a complete config so a preset can
// run as-is; file and flag overrides still apply on top.
var Presets = map[string]*Config{
	"dense": {
		Title: DefaultTitle, Subtitle: DefaultSubtitle, Dataset: DefaultDataset,
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Points: 720, StdX: 95, StdY: 72, Layers: 30, Bins: DefaultBins,
		CenterYOffset: DefaultCenterYOffset,
		SwitchInterval: DefaultSwitchInterval, TransitionDuration: DefaultTransition,
		Theme: "classic", Smooth: true,
	},
	"sparse": {
		Title: DefaultTitle, Subtitle: DefaultSubtitle, Dataset: DefaultDataset,
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Points: 240, StdX: 70, StdY: 50, Layers: 12, Bins: DefaultBins,
		CenterYOffset: DefaultCenterYOffset,
		SwitchInterval: DefaultSwitchInterval, TransitionDuration: DefaultTransition,
		Theme: "mono", Smooth: true,
	},
	"slow": {
		Title: DefaultTitle, Subtitle: DefaultSubtitle, Dataset: DefaultDataset,
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Points: DefaultPoints, StdX: DefaultStdX, StdY: DefaultStdY,
		Layers: DefaultLayers, Bins: DefaultBins,
		CenterYOffset:  DefaultCenterYOffset,
		SwitchInterval: 6.0, TransitionDuration: 2.4,
		Theme: "classic", Smooth: true,
	},
	"storm": {
		Title: DefaultTitle, Subtitle: DefaultSubtitle, Dataset: DefaultDataset,
		Width: DefaultWidth, Height: DefaultHeight, FPS: DefaultFPS,
		Points: 600, StdX: 90, StdY: 66, Layers: 26, Bins: DefaultBins,
		CenterYOffset:  DefaultCenterYOffset,
		SwitchInterval: 1.6, TransitionDuration: 0.7,
		Theme: "midnight", Smooth: true,
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
