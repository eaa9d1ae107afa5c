package profile

import (
	"sort"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
)

// DefaultName is the profile used when none is requested.
const DefaultName = "default"

// Profile defines panel layout and output parameters for a render.
// Level count and color ramp are fixed and not part of a profile.
type Profile struct {
	Name              string
	LegendFraction    float64 // legend width / image width
	HistogramFraction float64 // histogram height / image height
	BlendWeight       float64 // weight of the image under the histogram
	ClipPercentile    float64 // histogram clip percentile, 0-100
	Quality           int     // lossy encoding quality 1-100
}

// Built-in profiles.
var profiles = map[string]Profile{
	"default": {
		Name:              "default",
		LegendFraction:    0.20,
		HistogramFraction: 0.15,
		BlendWeight:       0.5,
		ClipPercentile:    98,
		Quality:           90,
	},
	"compact": {
		Name:              "compact",
		LegendFraction:    0.15,
		HistogramFraction: 0.10,
		BlendWeight:       0.5,
		ClipPercentile:    98,
		Quality:           85,
	},
	"print": {
		Name:              "print",
		LegendFraction:    0.25,
		HistogramFraction: 0.20,
		BlendWeight:       0.4,
		ClipPercentile:    99,
		Quality:           95,
	},
}

// Get returns a profile by name. Falls back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles[DefaultName]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names lists the built-in profiles in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply copies the profile's layout into render options.
func (p Profile) Apply(o *luminance.Options) {
	o.LegendFraction = p.LegendFraction
	o.HistogramFraction = p.HistogramFraction
	o.BlendWeight = p.BlendWeight
	o.ClipPercentile = p.ClipPercentile
}
