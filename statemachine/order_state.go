package statemachine

import "restaurant-orders-api/models"

// validStatuses is the authoritative status set. Build a lookup map for
// O(1) membership checks.
var validStatuses = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		m[s] = true
	}
	return m
}()

// cancellable holds the statuses an order may be cancelled from. Every
// other transition is left to the caller's judgement: status updates
// are an unconstrained jump between valid statuses.
var cancellable = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusConfirmed: true,
}

// IsValid reports whether s is one of the enumerated order statuses.
func IsValid(s models.OrderStatus) bool {
	return validStatuses[s]
}

// CanCancel reports whether an order in status s may be cancelled.
func CanCancel(s models.OrderStatus) bool {
	return cancellable[s]
}

// Flow describes the nominal order lifecycle for documentation purposes.
// It is advisory only: UpdateStatus does not enforce it.
type Flow struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
	Note string             `json:"note,omitempty"`
}

// Describe returns the nominal lifecycle of an order.
func Describe() []Flow {
	return []Flow{
		{From: models.StatusPending, To: models.StatusConfirmed},
		{From: models.StatusConfirmed, To: models.StatusPreparing},
		{From: models.StatusPreparing, To: models.StatusReady},
		{From: models.StatusReady, To: models.StatusDelivered},
		{From: models.StatusPending, To: models.StatusCancelled, Note: "customer cancellation"},
		{From: models.StatusConfirmed, To: models.StatusCancelled, Note: "customer cancellation"},
	}
}
