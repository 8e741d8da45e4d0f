package statemachine

import (
	"fmt"
	"strings"

	"laundry-delivery-api/models"
)

// Transition is one forward step of the order lifecycle and who usually performs it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor string             `json:"actor"`
}

// forwardSteps is the nominal laundry order lifecycle
var forwardSteps = []Transition{
	{From: models.StatusPending, To: models.StatusDriverAssigned, Actor: "admin"},
	{From: models.StatusDriverAssigned, To: models.StatusPickedUp, Actor: "driver"},
	{From: models.StatusPickedUp, To: models.StatusInWash, Actor: "admin"},
	{From: models.StatusInWash, To: models.StatusOutForDelivery, Actor: "driver"},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: "driver"},
}

// rank gives each status its position in the progression
var rank = func() map[models.OrderStatus]int {
	m := make(map[models.OrderStatus]int, len(models.OrderStatuses))
	for i, s := range models.OrderStatuses {
		m[s] = i
	}
	return m
}()

// Progression returns every status in forward order
func Progression() []models.OrderStatus {
	out := make([]models.OrderStatus, len(models.OrderStatuses))
	copy(out, models.OrderStatuses)
	return out
}

// CanAdvance reports whether to is s itself or any later status.
// Skipping steps is allowed; moving backwards is not.
func CanAdvance(from, to models.OrderStatus) bool {
	fi, ok := rank[from]
	if !ok {
		return false
	}
	ti, ok := rank[to]
	return ok && ti >= fi
}

// CheckTransition explains why a strict-mode transition is refused
func CheckTransition(from, to models.OrderStatus) error {
	if CanAdvance(from, to) {
		return nil
	}
	return fmt.Errorf("invalid transition: %s → %s is not allowed. Valid next states from %s are: %s",
		from, to, from, describeValidFrom(from))
}

// ValidTransitionsFrom returns every status CanAdvance accepts from s,
// s itself included
func ValidTransitionsFrom(s models.OrderStatus) []models.OrderStatus {
	i, ok := rank[s]
	if !ok {
		return nil
	}
	return Progression()[i:]
}

func describeValidFrom(s models.OrderStatus) string {
	nexts := ValidTransitionsFrom(s)
	if len(nexts) == 0 {
		return "none"
	}
	names := make([]string, len(nexts))
	for i, n := range nexts {
		names[i] = string(n)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns a copy of the forward steps for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(forwardSteps))
	copy(out, forwardSteps)
	return out
}
