package profile

import (
	"testing"

	"github.com/HongchenNa/ImageLuminanceAnalyzer/internal/luminance"
)

func TestDefaultMatchesRenderDefaults(t *testing.T) {
	var o luminance.Options
	Get(DefaultName).Apply(&o)
	if o != luminance.DefaultOptions() {
		t.Errorf("default profile: got %+v, want %+v", o, luminance.DefaultOptions())
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	p := Get("nope")
	if p.Name != "nope" {
		t.Errorf("name: got %q, want requested name", p.Name)
	}
	if p.LegendFraction != profiles[DefaultName].LegendFraction {
		t.Errorf("legend fraction: got %v", p.LegendFraction)
	}
	if Known("nope") {
		t.Error("unknown profile reported as known")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(profiles) {
		t.Fatalf("names: got %d, want %d", len(names), len(profiles))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}
}

func TestProfilesAreValid(t *testing.T) {
	for name, p := range profiles {
		if p.Name != name {
			t.Errorf("%s: name field %q", name, p.Name)
		}
		if p.LegendFraction <= 0 || p.LegendFraction > 1 {
			t.Errorf("%s: legend fraction %v", name, p.LegendFraction)
		}
		if p.HistogramFraction <= 0 || p.HistogramFraction > 1 {
			t.Errorf("%s: histogram fraction %v", name, p.HistogramFraction)
		}
		if p.Quality < 1 || p.Quality > 100 {
			t.Errorf("%s: quality %d", name, p.Quality)
		}
	}
}
