//go:build unit

package order_test

import (
	"testing"
	"time"

	"petcare-backend/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nowish() time.Time { return time.Now() }

func validSpecs() []order.ItemSpec {
	return []order.ItemSpec{
		{ProductID: uuid.New(), Name: "Flea Shampoo", UnitPrice: 12.5, Quantity: 2},
		{ProductID: uuid.New(), Name: "Chew Toy", UnitPrice: 4.0, Quantity: 1},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("snapshots items and computes totals", func(t *testing.T) {
		specs := validSpecs()
		o, err := order.NewOrder("owner@example.com", nil, specs, order.ShippingInfo{Name: "Owner", Address: "1 Main St"})
		require.NoError(t, err)
		require.NotNil(t, o)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, order.StatusPending, o.Status())
		require.Len(t, o.Items(), 2)

		// total == Σ item.subtotal and subtotal == unit_price * quantity
		sum := 0.0
		for i, it := range o.Items() {
			assert.Equal(t, specs[i].UnitPrice*float64(specs[i].Quantity), it.Subtotal)
			sum += it.Subtotal
		}
		assert.Equal(t, sum, o.Total())
		assert.Equal(t, 29.0, o.Total())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			email  string
			mutate func([]order.ItemSpec) []order.ItemSpec
			errIs  error
		}{
			{
				name:   "empty email",
				email:  "",
				mutate: func(s []order.ItemSpec) []order.ItemSpec { return s },
				errIs:  order.ErrEmptyEmail,
			},
			{
				name:   "no items",
				email:  "owner@example.com",
				mutate: func(_ []order.ItemSpec) []order.ItemSpec { return nil },
				errIs:  order.ErrNoItems,
			},
			{
				name:  "zero quantity",
				email: "owner@example.com",
				mutate: func(s []order.ItemSpec) []order.ItemSpec {
					s[0].Quantity = 0
					return s
				},
				errIs: order.ErrInvalidQuantity,
			},
			{
				name:  "negative quantity",
				email: "owner@example.com",
				mutate: func(s []order.ItemSpec) []order.ItemSpec {
					s[1].Quantity = -3
					return s
				},
				errIs: order.ErrInvalidQuantity,
			},
			{
				name:  "non-positive unit price",
				email: "owner@example.com",
				mutate: func(s []order.ItemSpec) []order.ItemSpec {
					s[0].UnitPrice = 0
					return s
				},
				errIs: order.ErrInvalidPrice,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(tc.email, nil, tc.mutate(validSpecs()), order.ShippingInfo{})
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("only pending orders are self-cancellable", func(t *testing.T) {
		for _, tc := range []struct {
			status order.Status
			want   bool
		}{
			{order.StatusPending, true},
			{order.StatusConfirmed, false},
			{order.StatusShipped, false},
			{order.StatusCancelled, false},
		} {
			o := order.ReconstructOrder(uuid.New(), "a@b.c", nil, nil, order.ShippingInfo{}, 0, tc.status, nowish(), nowish())
			assert.Equal(t, tc.want, o.CanSelfCancel(), "status %s", tc.status)
		}
	})

	t.Run("terminal statuses", func(t *testing.T) {
		assert.True(t, order.StatusShipped.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
		assert.False(t, order.StatusPending.IsTerminal())
		assert.False(t, order.StatusConfirmed.IsTerminal())
	})

	t.Run("status validity", func(t *testing.T) {
		assert.True(t, order.Status("pending").IsValid())
		assert.False(t, order.Status("refunded").IsValid())
	})
}
