package timer

// Preset is a named work/break pairing selectable before a session starts.
type Preset struct {
	Name        string
	WorkMin     int
	BreakMin    int
	Description string
}

// Presets are the built-in Pomodoro pairings.
var Presets = []Preset{
	{Name: "classic", WorkMin: 25, BreakMin: 5, Description: "Traditional Pomodoro technique"},
	{Name: "extended", WorkMin: 50, BreakMin: 10, Description: "For longer sessions"},
	{Name: "short", WorkMin: 15, BreakMin: 3, Description: "For quick tasks"},
	{Name: "deep", WorkMin: 90, BreakMin: 20, Description: "Deep work"},
}

// PresetByName returns the preset with the given name, or the classic
// preset when the name is unknown.
func PresetByName(name string) Preset {
	for _, p := range Presets {
		if p.Name == name {
			return p
		}
	}
	return Presets[0]
}

// Config returns a machine configuration for the preset.
func (p Preset) Config() Config {
	return Config{WorkMin: p.WorkMin, BreakMin: p.BreakMin}
}
