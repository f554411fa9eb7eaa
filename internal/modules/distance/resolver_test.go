// README: Distance resolver tests (table hits, fallback, directionality).
package distance

import "testing"

func TestResolveKnownPairs(t *testing.T) {
	r := NewResolver()
	cases := []struct {
		origin, destination string
		want                float64
	}{
		{"main-gate", "library", 1.5},
		{"main-gate", "mbarara-town", 5.2},
		{"library", "dining-hall", 0.8},
		{"hostels", "sports-complex", 1.5},
		{"hostels", "hospital", 3.2},
	}
	for _, tc := range cases {
		if got := r.Resolve(tc.origin, tc.destination); got != tc.want {
			t.Errorf("Resolve(%s, %s) = %v, want %v", tc.origin, tc.destination, got, tc.want)
		}
	}
}

func TestResolveMissingPairsFallBack(t *testing.T) {
	r := NewResolver()
	cases := []struct {
		name                string
		origin, destination string
	}{
		{"unknown origin", "parking-lot", "library"},
		{"unknown destination", "main-gate", "parking-lot"},
		{"both unknown", "nowhere", "elsewhere"},
		// dining-hall is a surveyed destination but never an origin; the
		// reverse leg must not be inferred from the forward entry.
		{"unsurveyed reverse leg", "dining-hall", "main-gate"},
		{"empty keys", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Resolve(tc.origin, tc.destination); got != DefaultKm {
				t.Errorf("Resolve(%s, %s) = %v, want default %v", tc.origin, tc.destination, got, DefaultKm)
			}
		})
	}
}

func TestLocationsListsAllLandmarks(t *testing.T) {
	r := NewResolver()
	locs := r.Locations()
	if len(locs) != 8 {
		t.Fatalf("expected 8 landmarks, got %d", len(locs))
	}
	if locs[0].Key != "main-gate" {
		t.Errorf("expected main-gate first, got %s", locs[0].Key)
	}
	// The returned slice is a copy; mutating it must not corrupt the registry.
	locs[0].Key = "mutated"
	if r.Locations()[0].Key != "main-gate" {
		t.Error("Locations() exposed internal state")
	}
}
