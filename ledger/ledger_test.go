package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders-api/models"
)

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []models.OrderItem{
			{ID: 17, Name: "Samosa", Price: 60, Quantity: 2},
		},
		Customer: models.CustomerInfo{Name: "Raj", Phone: "9999999999"},
		Total:    120,
	}
}

func TestCreateForcesPendingStatus(t *testing.T) {
	l := New()

	order, err := l.Create(validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateOrderInput)
		field  string
	}{
		{"no items", func(in *CreateOrderInput) { in.Items = nil }, "items"},
		{"empty items", func(in *CreateOrderInput) { in.Items = []models.OrderItem{} }, "items"},
		{"zero quantity", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"negative price", func(in *CreateOrderInput) { in.Items[0].Price = -5 }, "items[0].price"},
		{"missing item name", func(in *CreateOrderInput) { in.Items[0].Name = "" }, "items[0].name"},
		{"short customer name", func(in *CreateOrderInput) { in.Customer.Name = "R" }, "customer.name"},
		{"missing phone", func(in *CreateOrderInput) { in.Customer.Phone = "" }, "customer.phone"},
		{"bad email", func(in *CreateOrderInput) { in.Customer.Email = "not-an-email" }, "customer.email"},
		{"zero total", func(in *CreateOrderInput) { in.Total = 0 }, "total"},
		{"negative total", func(in *CreateOrderInput) { in.Total = -1 }, "total"},
		{"long notes", func(in *CreateOrderInput) {
			for i := 0; i < 501; i++ {
				in.Notes += "x"
			}
		}, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			in := validInput()
			tt.mutate(&in)

			_, err := l.Create(in)
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			fields := make([]string, 0, len(verr.Details))
			for _, d := range verr.Details {
				fields = append(fields, d.Field)
			}
			assert.Contains(t, fields, tt.field)

			// failed creates must not grow the ledger
			assert.Equal(t, 0, l.Stats().Total)
		})
	}
}

func TestIDsAreMonotonic(t *testing.T) {
	l := New()

	for i := 1; i <= 5; i++ {
		order, err := l.Create(validInput())
		require.NoError(t, err)
		assert.Equal(t, i, order.ID)
	}

	// cancellation never frees an id
	_, err := l.Cancel(3)
	require.NoError(t, err)
	order, err := l.Create(validInput())
	require.NoError(t, err)
	assert.Equal(t, 6, order.ID)
}

func TestGetByID(t *testing.T) {
	l := New()
	created, err := l.Create(validInput())
	require.NoError(t, err)

	got, err := l.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = l.GetByID(99)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	l := New()
	created, err := l.Create(validInput())
	require.NoError(t, err)

	order, err := l.UpdateStatus(created.ID, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.False(t, order.UpdatedAt.Before(order.CreatedAt))

	// any valid status may jump to any other, terminal ones included
	order, err = l.UpdateStatus(created.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, order.Status)

	order, err = l.UpdateStatus(created.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)

	// self-transition is a no-op but allowed
	_, err = l.UpdateStatus(created.ID, models.StatusPending)
	assert.NoError(t, err)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	l := New()
	created, err := l.Create(validInput())
	require.NoError(t, err)

	_, err = l.UpdateStatus(created.ID, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// order left untouched
	got, err := l.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestUpdateStatusNotFound(t *testing.T) {
	l := New()
	_, err := l.UpdateStatus(1, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancelGuard(t *testing.T) {
	cancellable := map[models.OrderStatus]bool{
		models.StatusPending:   true,
		models.StatusConfirmed: true,
	}

	for _, status := range models.AllStatuses {
		t.Run(string(status), func(t *testing.T) {
			l := New()
			created, err := l.Create(validInput())
			require.NoError(t, err)
			_, err = l.UpdateStatus(created.ID, status)
			require.NoError(t, err)

			order, err := l.Cancel(created.ID)
			if cancellable[status] {
				require.NoError(t, err)
				assert.Equal(t, models.StatusCancelled, order.Status)
			} else {
				assert.ErrorIs(t, err, ErrNotCancellable)
				got, gerr := l.GetByID(created.ID)
				require.NoError(t, gerr)
				assert.Equal(t, status, got.Status)
			}
		})
	}
}

func TestCancelTwiceFails(t *testing.T) {
	l := New()
	created, err := l.Create(validInput())
	require.NoError(t, err)

	_, err = l.UpdateStatus(created.ID, models.StatusConfirmed)
	require.NoError(t, err)

	order, err := l.Cancel(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, order.Status)

	_, err = l.Cancel(created.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestCancelNotFound(t *testing.T) {
	l := New()
	_, err := l.Cancel(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListFilterAndTotal(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		_, err := l.Create(validInput())
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		order, err := l.Create(validInput())
		require.NoError(t, err)
		_, err = l.UpdateStatus(order.ID, models.StatusDelivered)
		require.NoError(t, err)
	}

	page, total := l.List(models.StatusPending, 10, 0)
	assert.Equal(t, 3, total)
	require.Len(t, page, 3)
	for _, o := range page {
		assert.Equal(t, models.StatusPending, o.Status)
	}

	page, total = l.List("", 10, 0)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 5)
}

func TestListPagination(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		_, err := l.Create(validInput())
		require.NoError(t, err)
	}

	page, total := l.List("", 2, 0)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)

	page, total = l.List("", 2, 4)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 1)

	// out-of-range offset yields an empty page, never an error
	page, total = l.List("", 10, 100)
	assert.Equal(t, 5, total)
	assert.Empty(t, page)
}

func TestListSortsPageByRecency(t *testing.T) {
	l := New()
	for i := 0; i < 4; i++ {
		_, err := l.Create(validInput())
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	// the window is cut from insertion order first, then sorted, so
	// the first page holds the OLDEST two orders, newest of the two
	// first
	page, _ := l.List("", 2, 0)
	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].ID)
	assert.Equal(t, 1, page[1].ID)
}

func TestStats(t *testing.T) {
	l := New()
	assert.Equal(t, models.OrderStats{}, l.Stats())

	statuses := []models.OrderStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivered,
		models.StatusDelivered,
		models.StatusCancelled,
	}
	for _, s := range statuses {
		order, err := l.Create(validInput())
		require.NoError(t, err)
		_, err = l.UpdateStatus(order.ID, s)
		require.NoError(t, err)
	}

	stats := l.Stats()
	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Preparing)
	assert.Equal(t, 1, stats.Ready)
	assert.Equal(t, 2, stats.Delivered)
	assert.Equal(t, 1, stats.Cancelled)
	// revenue counts delivered orders only
	assert.Equal(t, 240.0, stats.TotalRevenue)
}

func TestConcurrentCreates(t *testing.T) {
	l := New()
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := l.Create(validInput())
			if err == nil {
				ids <- order.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, l.Stats().Total)
}
