package statemachine

import (
	"testing"

	"laundry-delivery-api/models"
)

func TestProgression(t *testing.T) {
	p := Progression()
	if len(p) != 6 || p[0] != models.StatusPending || p[len(p)-1] != models.StatusDelivered {
		t.Fatalf("progression = %v", p)
	}
	p[0] = "CANCELLED"
	if Progression()[0] != models.StatusPending {
		t.Fatal("Progression shares its backing array")
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.StatusPending, models.StatusDriverAssigned, true},
		{models.StatusPending, models.StatusDelivered, true},
		{models.StatusInWash, models.StatusInWash, true},
		{models.StatusDelivered, models.StatusPending, false},
		{models.StatusOutForDelivery, models.StatusPickedUp, false},
		{models.StatusPending, "CANCELLED", false},
	}
	for _, tt := range tests {
		if got := CanAdvance(tt.from, tt.to); got != tt.want {
			t.Errorf("CanAdvance(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
		if err := CheckTransition(tt.from, tt.to); (err == nil) != tt.want {
			t.Errorf("CheckTransition(%s, %s) = %v", tt.from, tt.to, err)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	got := ValidTransitionsFrom(models.StatusDelivered)
	if len(got) != 1 || got[0] != models.StatusDelivered {
		t.Fatalf("from DELIVERED: %v", got)
	}
	if got := ValidTransitionsFrom(models.StatusInWash); len(got) != 3 || got[0] != models.StatusInWash {
		t.Fatalf("from IN_WASH: %v", got)
	}
	if got := ValidTransitionsFrom("CANCELLED"); got != nil {
		t.Fatalf("unknown status: %v", got)
	}

	// every listed status must pass CanAdvance, and nothing else may
	for _, from := range models.OrderStatuses {
		listed := map[models.OrderStatus]bool{}
		for _, to := range ValidTransitionsFrom(from) {
			listed[to] = true
		}
		for _, to := range models.OrderStatuses {
			if CanAdvance(from, to) != listed[to] {
				t.Errorf("%s -> %s: CanAdvance = %v, listed = %v", from, to, CanAdvance(from, to), listed[to])
			}
		}
	}
}

func TestGetAllTransitions(t *testing.T) {
	steps := GetAllTransitions()
	if len(steps) != len(models.OrderStatuses)-1 {
		t.Fatal("every status but the last needs a forward step")
	}
	steps[0].To = models.StatusDelivered
	if GetAllTransitions()[0].To != models.StatusDriverAssigned {
		t.Fatal("caller mutated the shared transition table")
	}
}
