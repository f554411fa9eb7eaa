// README: Ride lifecycle tests (transition table, flows, queries).
package ride

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestCanTransition verifies the state machine edge table without a store.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		// happy-path forward transitions
		{StatusRequested, StatusAccepted, true},
		{StatusAccepted, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		// cancellation is open before the trip starts
		{StatusRequested, StatusCancelled, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, false},
		// invalid: terminal states have no outgoing edges
		{StatusCompleted, StatusRequested, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCancelled, StatusRequested, false},
		{StatusCancelled, StatusAccepted, false},
		// invalid: skipping or reversing states
		{StatusRequested, StatusInProgress, false},
		{StatusRequested, StatusCompleted, false},
		{StatusAccepted, StatusRequested, false},
		{StatusInProgress, StatusAccepted, false},
		// self-loops are not transitions
		{StatusRequested, StatusRequested, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"requested", "accepted", "in-progress", "completed", "cancelled"} {
		if _, err := ParseStatus(raw); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", raw, err)
		}
	}
	for _, raw := range []string{"", "REQUESTED", "in_progress", "done", "driving"} {
		if _, err := ParseStatus(raw); !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("ParseStatus(%q): expected ErrUnknownStatus, got %v", raw, err)
		}
	}
}

func TestRideFlowHappyPath(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	r := mustCreateRide(t, svc, 2500)
	assertStatus(t, svc, r.ID, StatusRequested)
	if r.DriverID != nil {
		t.Fatal("new ride must have no driver assigned")
	}

	accepted, err := svc.Accept(ctx, r.ID, "drv-1")
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.DriverID == nil || *accepted.DriverID != "drv-1" {
		t.Fatalf("expected driver drv-1 assigned, got %v", accepted.DriverID)
	}

	if _, err := svc.SetStatus(ctx, r.ID, "in-progress"); err != nil {
		t.Fatalf("start: %v", err)
	}
	assertStatus(t, svc, r.ID, StatusInProgress)

	if _, err := svc.SetStatus(ctx, r.ID, "completed"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	assertStatus(t, svc, r.ID, StatusCompleted)
}

func TestRideFlowCancel(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	t.Run("cancel_while_requested", func(t *testing.T) {
		r := mustCreateRide(t, svc, 2000)
		if _, err := svc.SetStatus(ctx, r.ID, "cancelled"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		assertStatus(t, svc, r.ID, StatusCancelled)

		if _, err := svc.Accept(ctx, r.ID, "drv-1"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("accept after cancel: expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("cancel_while_accepted", func(t *testing.T) {
		r := mustCreateRide(t, svc, 2000)
		if _, err := svc.Accept(ctx, r.ID, "drv-1"); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if _, err := svc.SetStatus(ctx, r.ID, "cancelled"); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		assertStatus(t, svc, r.ID, StatusCancelled)
	})

	t.Run("cancel_after_start_rejected", func(t *testing.T) {
		r := mustCreateRide(t, svc, 2000)
		if _, err := svc.Accept(ctx, r.ID, "drv-1"); err != nil {
			t.Fatalf("accept: %v", err)
		}
		if _, err := svc.SetStatus(ctx, r.ID, "in-progress"); err != nil {
			t.Fatalf("start: %v", err)
		}
		if _, err := svc.SetStatus(ctx, r.ID, "cancelled"); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("cancel in progress: expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestRideInvalidTransitions(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	r := mustCreateRide(t, svc, 2000)
	if _, err := svc.SetStatus(ctx, r.ID, "in-progress"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("start before accept: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.SetStatus(ctx, r.ID, "completed"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("complete before accept: expected ErrInvalidTransition, got %v", err)
	}
	if _, err := svc.SetStatus(ctx, r.ID, "driving"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("unknown status: expected ErrUnknownStatus, got %v", err)
	}
	// A rejected write must leave the record untouched.
	assertStatus(t, svc, r.ID, StatusRequested)
}

func TestRideNotFound(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.SetStatus(ctx, "missing", "cancelled"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("set status: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Accept(ctx, "missing", "drv-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("accept: expected ErrNotFound, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	valid := CreateCommand{
		PickupLocation: "library",
		DropLocation:   "hostels",
		Passengers:     1,
		RideType:       RideTypeSingle,
		Fare:           2500,
	}

	cases := []struct {
		name   string
		mutate func(*CreateCommand)
	}{
		{"missing pickup", func(c *CreateCommand) { c.PickupLocation = "" }},
		{"missing drop", func(c *CreateCommand) { c.DropLocation = "" }},
		{"zero passengers", func(c *CreateCommand) { c.Passengers = 0 }},
		{"negative passengers", func(c *CreateCommand) { c.Passengers = -2 }},
		{"bad ride type", func(c *CreateCommand) { c.RideType = "pool" }},
		{"negative fare", func(c *CreateCommand) { c.Fare = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := valid
			tc.mutate(&cmd)
			if _, err := svc.Create(ctx, cmd); !errors.Is(err, ErrBadRequest) {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestCreateFreezesFare(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	r := mustCreateRide(t, svc, 3150)
	if r.Fare != 3150 {
		t.Fatalf("fare = %d, want caller-supplied 3150", r.Fare)
	}

	if _, err := svc.Accept(ctx, r.ID, "drv-1"); err != nil {
		t.Fatalf("accept: %v", err)
	}
	got, err := svc.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Fare != 3150 {
		t.Fatalf("fare changed after acceptance: %d", got.Fare)
	}
}

func TestCreateIsAppendOnly(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	first := mustCreateRide(t, svc, 2000)
	second := mustCreateRide(t, svc, 4600)
	if first.ID == second.ID {
		t.Fatal("expected distinct ride ids")
	}

	got, err := svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get first: %v", err)
	}
	if got.Fare != 2000 || got.Status != StatusRequested {
		t.Fatalf("creating a second ride mutated the first: %+v", got)
	}
}

func TestListFilters(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	user := "user-1"
	mine, err := svc.Create(ctx, CreateCommand{
		UserID:         &user,
		PickupLocation: "main-gate",
		DropLocation:   "library",
		Passengers:     1,
		RideType:       RideTypeSingle,
		Fare:           2025,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other := mustCreateRide(t, svc, 2000)
	if _, err := svc.Accept(ctx, other.ID, "drv-9"); err != nil {
		t.Fatalf("accept: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rides, got %d", len(all))
	}

	byUser, err := svc.ListByUser(ctx, user)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 1 || byUser[0].ID != mine.ID {
		t.Fatalf("unexpected rides for user: %+v", byUser)
	}

	byDriver, err := svc.ListByDriver(ctx, "drv-9")
	if err != nil {
		t.Fatalf("list by driver: %v", err)
	}
	if len(byDriver) != 1 || byDriver[0].ID != other.ID {
		t.Fatalf("unexpected rides for driver: %+v", byDriver)
	}

	if rides, _ := svc.ListByDriver(ctx, "drv-none"); len(rides) != 0 {
		t.Fatalf("expected no rides for unknown driver, got %d", len(rides))
	}
}

func mustCreateRide(t *testing.T, svc *Service, fare int64) *Ride {
	t.Helper()
	r, err := svc.Create(context.Background(), CreateCommand{
		PickupLocation: "library",
		DropLocation:   "hostels",
		Passengers:     2,
		RideType:       RideTypeShared,
		Fare:           fare,
		ScheduledAt:    nil,
	})
	if err != nil {
		t.Fatalf("create ride: %v", err)
	}
	if r.CreatedAt.IsZero() || !r.CreatedAt.Before(time.Now().Add(time.Minute)) {
		t.Fatalf("implausible createdAt: %v", r.CreatedAt)
	}
	return r
}

func assertStatus(t *testing.T, svc *Service, rideID string, want Status) {
	t.Helper()
	r, err := svc.Get(context.Background(), rideID)
	if err != nil {
		t.Fatalf("get ride: %v", err)
	}
	if r.Status != want {
		t.Fatalf("expected status %s, got %s", want, r.Status)
	}
}
