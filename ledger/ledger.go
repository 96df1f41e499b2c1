// Package ledger owns the in-memory order collection: creation,
// lookup, filtered listing, status changes, cancellation and the
// aggregate statistics derived from it. Orders are never deleted;
// cancellation is a status transition.
package ledger

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/validation"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotCancellable = errors.New("only pending or confirmed orders can be cancelled")
)

// ValidationError carries every field-level violation found in a
// create request. The ledger is not mutated when it is returned.
type ValidationError struct {
	Details []validation.FieldViolation `json:"details"`
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation error"
	}
	msgs := make([]string, len(e.Details))
	for i, d := range e.Details {
		msgs[i] = d.Field + ": " + d.Message
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// CreateOrderInput is the order schema as accepted from callers. Any
// status supplied by the caller is ignored; new orders always start
// out pending.
type CreateOrderInput struct {
	Items    []models.OrderItem  `json:"items" validate:"required,min=1,dive"`
	Customer models.CustomerInfo `json:"customer" validate:"required"`
	Total    float64             `json:"total" validate:"required,gt=0"`
	Notes    string              `json:"notes" validate:"omitempty,max=500"`
}

// Ledger is the single owner of all order state. All access goes
// through the mutex so concurrent creates get collision-free ids and
// status updates never race each other.
type Ledger struct {
	mu       sync.Mutex
	orders   []models.Order
	nextID   int
	validate *validator.Validate
}

func New() *Ledger {
	return &Ledger{nextID: 1, validate: validation.New()}
}

// Create validates the input against the order schema and, if it
// passes, appends a new pending order stamped with the current time.
func (l *Ledger) Create(input CreateOrderInput) (models.Order, error) {
	if err := l.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return models.Order{}, &ValidationError{Details: validation.Details(verrs)}
		}
		return models.Order{}, err
	}

	items := make([]models.OrderItem, len(input.Items))
	copy(items, input.Items)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	order := models.Order{
		ID:        l.nextID,
		Items:     items,
		Customer:  input.Customer,
		Total:     input.Total,
		Notes:     input.Notes,
		Status:    models.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.nextID++
	l.orders = append(l.orders, order)
	return order, nil
}

// List returns one page of orders plus the total size of the filtered
// set. The page window is cut from insertion order first and only then
// sorted by created_at descending, so recency ordering is local to the
// page. That matches the behavior the frontend was built against.
func (l *Ledger) List(status models.OrderStatus, limit, offset int) ([]models.Order, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	filtered := l.orders
	if status != "" {
		filtered = make([]models.Order, 0)
		for _, o := range l.orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
	}
	total := len(filtered)

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]models.Order, end-offset)
	copy(page, filtered[offset:end])
	sort.SliceStable(page, func(i, j int) bool {
		return page[i].CreatedAt.After(page[j].CreatedAt)
	})
	return page, total
}

// GetByID returns the order with the given id.
func (l *Ledger) GetByID(id int) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return l.orders[idx], nil
}

// UpdateStatus moves an order to any valid status. There is no
// transition table here: any status can jump to any other, including
// itself. Only enum membership is enforced.
func (l *Ledger) UpdateStatus(id int, status models.OrderStatus) (models.Order, error) {
	if !statemachine.IsValid(status) {
		return models.Order{}, ErrInvalidStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	l.orders[idx].Status = status
	l.orders[idx].UpdatedAt = time.Now().UTC()
	return l.orders[idx], nil
}

// Cancel marks an order cancelled. Unlike UpdateStatus this carries a
// guard: only pending or confirmed orders can be cancelled.
func (l *Ledger) Cancel(id int) (models.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	if !statemachine.CanCancel(l.orders[idx].Status) {
		return models.Order{}, ErrNotCancellable
	}
	l.orders[idx].Status = models.StatusCancelled
	l.orders[idx].UpdatedAt = time.Now().UTC()
	return l.orders[idx], nil
}

// Stats aggregates the whole ledger under one lock acquisition so the
// counts and revenue always describe a single consistent snapshot.
func (l *Ledger) Stats() models.OrderStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := models.OrderStats{Total: len(l.orders)}
	for _, o := range l.orders {
		switch o.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusPreparing:
			stats.Preparing++
		case models.StatusReady:
			stats.Ready++
		case models.StatusDelivered:
			stats.Delivered++
			stats.TotalRevenue += o.Total
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats
}

// indexOf must be called with the mutex held.
func (l *Ledger) indexOf(id int) int {
	for i := range l.orders {
		if l.orders[i].ID == id {
			return i
		}
	}
	return -1
}

