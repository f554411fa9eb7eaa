// README: Fare calculator tests (tariff math, discount, night window, shared division).
package fare

import (
	"testing"
	"time"

	"campusride/internal/config"
	"campusride/internal/modules/distance"
)

// docTariff is the example tariff from the pricing documentation; the small
// numbers make the arithmetic checkable by hand.
func docTariff() config.FareConfig {
	return config.FareConfig{
		BaseFare:        20,
		PerKmRate:       8,
		PerMinuteRate:   2,
		StudentDiscount: 0.10,
		NightSurcharge:  0.25,
		Currency:        "UGX",
	}
}

func newDocService() *Service {
	return NewService(docTariff(), distance.NewResolver())
}

func at(hour, min int) *time.Time {
	t := time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
	return &t
}

func TestCalculateShortTrip(t *testing.T) {
	// library -> hostels is 1.2 km: inside the free distance band, so only
	// base and time components charge. ceil(1.2*3.2) = 4 min.
	got := newDocService().Calculate("library", "hostels", 1, nil)

	if got.Distance != 1.2 {
		t.Fatalf("distance = %v, want 1.2", got.Distance)
	}
	if got.EstimatedTime != 4 {
		t.Fatalf("estimatedTime = %d, want 4", got.EstimatedTime)
	}
	if got.DistanceFare != 0 {
		t.Errorf("distanceFare = %d, want 0 for distance <= 2km", got.DistanceFare)
	}
	// (20 + 0 + 8) * 0.9 = 25.2 -> 25
	if got.Total != 25 {
		t.Errorf("total = %d, want 25", got.Total)
	}
	if got.SharedTotal != 25 {
		t.Errorf("sharedTotal = %d, want 25 for a single passenger", got.SharedTotal)
	}
	// Display components are discounted and rounded independently.
	if got.BaseFare != 18 {
		t.Errorf("baseFare = %d, want 18", got.BaseFare)
	}
	if got.TimeFare != 7 {
		t.Errorf("timeFare = %d, want 7", got.TimeFare)
	}
}

func TestCalculateLongTrip(t *testing.T) {
	// main-gate -> mbarara-town is 5.2 km: 3.2 chargeable km, 17 min.
	// (20 + 25.6 + 34) * 0.9 = 71.64 -> 72
	got := newDocService().Calculate("main-gate", "mbarara-town", 3, nil)
	if got.EstimatedTime != 17 {
		t.Fatalf("estimatedTime = %d, want 17", got.EstimatedTime)
	}
	if got.Total != 72 {
		t.Errorf("total = %d, want 72", got.Total)
	}
	if got.SharedTotal != 24 {
		t.Errorf("sharedTotal = %d, want 24 across 3 passengers", got.SharedTotal)
	}
}

func TestCalculateUnknownRouteUsesDefaultDistance(t *testing.T) {
	got := newDocService().Calculate("parking-lot", "nowhere", 1, nil)
	if got.Distance != distance.DefaultKm {
		t.Fatalf("distance = %v, want default %v", got.Distance, distance.DefaultKm)
	}
	// ceil(3.2*3.2) = 11 min; (20 + 9.6 + 22) * 0.9 = 46.44 -> 46
	if got.Total != 46 {
		t.Errorf("total = %d, want 46", got.Total)
	}
}

func TestCalculateSharedDivision(t *testing.T) {
	svc := newDocService()
	cases := []struct {
		passengers int
		want       int64
	}{
		{1, 25},
		{2, 13}, // round(12.5) half-up
		{4, 6},  // round(6.25)
		{0, 25}, // clamped to 1
		{-3, 25},
	}
	for _, tc := range cases {
		got := svc.Calculate("library", "hostels", tc.passengers, nil)
		if got.SharedTotal != tc.want {
			t.Errorf("passengers=%d: sharedTotal = %d, want %d", tc.passengers, got.SharedTotal, tc.want)
		}
		if got.Total != 25 {
			t.Errorf("passengers=%d: total = %d, want 25 (passenger count must not change total)", tc.passengers, got.Total)
		}
	}
}

func TestCalculateNightSurcharge(t *testing.T) {
	svc := newDocService()
	cases := []struct {
		name        string
		scheduledAt *time.Time
		want        int64
	}{
		{"no schedule", nil, 25},
		{"daytime noon", at(12, 0), 25},
		{"last daytime minute", at(21, 59), 25},
		{"night starts at 22", at(22, 0), 32}, // 25.2 * 1.25 = 31.5 -> 32
		{"deep night", at(23, 0), 32},
		{"after midnight", at(2, 30), 32},
		{"last night minute", at(5, 59), 32},
		{"night ends at 6", at(6, 0), 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := svc.Calculate("library", "hostels", 1, tc.scheduledAt)
			if got.Total != tc.want {
				t.Errorf("total = %d, want %d", got.Total, tc.want)
			}
		})
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	svc := newDocService()
	when := at(23, 0)
	a := svc.Calculate("main-gate", "hospital", 2, when)
	b := svc.Calculate("main-gate", "hospital", 2, when)
	if a != b {
		t.Errorf("identical inputs produced different estimates: %+v vs %+v", a, b)
	}
}

func TestCalculateDeploymentTariff(t *testing.T) {
	// The production UGX tariff: main-gate -> library, 1.5 km, 5 min.
	// (2000 + 0 + 250) * 0.9 = 2025.
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	got := NewService(cfg.Fare, distance.NewResolver()).Calculate("main-gate", "library", 1, nil)
	if got.Total != 2025 {
		t.Errorf("total = %d, want 2025", got.Total)
	}
	if got.Currency != "UGX" {
		t.Errorf("currency = %s, want UGX", got.Currency)
	}
}
