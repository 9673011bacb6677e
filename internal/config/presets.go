package config

var presets = map[string]map[string]*Config{
	"exchange": {
		"quick": {
			Algorithm: "exchange", Size: 12, Trials: 1,
			Playback: PlaybackConfig{IntervalMs: 250, Speed: 1.0},
		},
		"full": {
			Algorithm: "exchange", Size: 52, Trials: 1,
			Playback: PlaybackConfig{IntervalMs: 400, Speed: 1.0},
		},
		"survey": {
			Algorithm: "exchange", Size: 52, Trials: 100,
		},
	},
	"riffle": {
		"quick": {
			Algorithm: "riffle", Size: 12, Trials: 1,
			Playback: PlaybackConfig{IntervalMs: 250, Speed: 1.0},
		},
		"casino": {
			Algorithm: "riffle", Size: 52, Trials: 7,
			Playback: PlaybackConfig{IntervalMs: 300, Speed: 1.5},
		},
		"survey": {
			Algorithm: "riffle", Size: 52, Trials: 100,
		},
	},
	"overhand": {
		"quick": {
			Algorithm: "overhand", Size: 12, Trials: 1,
			Playback: PlaybackConfig{IntervalMs: 500, Speed: 1.0},
		},
		"survey": {
			Algorithm: "overhand", Size: 52, Trials: 100,
		},
	},
	"hindu": {
		"quick": {
			Algorithm: "hindu", Size: 12, Trials: 1,
			Playback: PlaybackConfig{IntervalMs: 500, Speed: 1.0},
		},
		"survey": {
			Algorithm: "hindu", Size: 52, Trials: 100,
		},
	},
}

func GetPreset(algorithm, name string) *Config {
	group, ok := presets[algorithm]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	cp := *cfg
	if cp.Playback.IntervalMs == 0 {
		cp.Playback.IntervalMs = DefaultIntervalMs
	}
	if cp.Playback.Speed == 0 {
		cp.Playback.Speed = DefaultSpeed
	}
	return &cp
}

func ListPresets(algorithm string) []string {
	group, ok := presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
