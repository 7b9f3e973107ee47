//go:build e2e

package order_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"petcare-backend/internal/handler/dto/request"
	"petcare-backend/internal/handler/dto/response"
	"petcare-backend/tests/common/dbtest"
	"petcare-backend/tests/common/helper"
	"petcare-backend/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	ordersURL = "/api/orders"
)

type orderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(orderSuite))
}

func (s *orderSuite) login(email string) string {
	t := s.T()
	w := helper.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
		Email:    email,
		Password: dbtest.TestPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed for %s", email)

	var resp response.LoginResponse
	helper.DecodeResponse(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func (s *orderSuite) createOrderRequest(productID uuid.UUID, qty int) request.CreateOrderRequest {
	return request.CreateOrderRequest{
		Items: []request.OrderItemRequest{
			{ProductID: productID, Quantity: qty},
		},
		Shipping: request.ShippingInfoRequest{
			Name:    "Jordan Baker",
			Address: "12 Harbor Lane",
		},
	}
}

func (s *orderSuite) TestCreateOrder() {
	s.Run("successful order reserves stock and snapshots prices", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		productID := dbtest.CreateTestProduct(t, s.DB, "Salmon Kibble", 25.5, 10)
		token := s.login("buyer@example.com")

		req := request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: productID, Quantity: 3},
			},
			Shipping: request.ShippingInfoRequest{
				Name:    "Jordan Baker",
				Address: "12 Harbor Lane",
			},
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp response.OrderResponse
		helper.DecodeResponse(t, w, &resp)
		require.Equal(t, "pending", resp.Status)
		require.InDelta(t, 76.5, resp.Total, 1e-9)
		require.Len(t, resp.Items, 1)
		require.InDelta(t, 25.5, resp.Items[0].UnitPrice, 1e-9)

		require.Equal(t, 7, dbtest.GetStockQuantity(t, s.DB, productID))
	})

	s.Run("insufficient stock rejects the order without side effects", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		productID := dbtest.CreateTestProduct(t, s.DB, "Cat Tower", 80, 2)
		token := s.login("buyer@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderRequest(productID, 5), token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		require.Equal(t, 2, dbtest.GetStockQuantity(t, s.DB, productID))
		s.requireOrderCount(0)
	})

	s.Run("failed reservation restores stock already taken for earlier items", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		okProduct := dbtest.CreateTestProduct(t, s.DB, "Chew Toy", 5, 10)
		scarceProduct := dbtest.CreateTestProduct(t, s.DB, "Rare Treats", 12, 3)
		token := s.login("buyer@example.com")

		req := request.CreateOrderRequest{
			Items: []request.OrderItemRequest{
				{ProductID: okProduct, Quantity: 2},
				{ProductID: scarceProduct, Quantity: 5},
			},
			Shipping: request.ShippingInfoRequest{
				Name:    "Jordan Baker",
				Address: "12 Harbor Lane",
			},
		}
		w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, req, token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		require.Equal(t, 10, dbtest.GetStockQuantity(t, s.DB, okProduct))
		require.Equal(t, 3, dbtest.GetStockQuantity(t, s.DB, scarceProduct))
		s.requireOrderCount(0)
	})

	s.Run("two concurrent orders for the last units produce exactly one winner", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		productID := dbtest.CreateTestProduct(t, s.DB, "Limited Bed", 40, 5)
		token := s.login("buyer@example.com")

		statuses := make([]int, 2)
		var wg sync.WaitGroup
		for i := range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderRequest(productID, 3), token)
				statuses[i] = w.Code
			}()
		}
		wg.Wait()

		created := 0
		rejected := 0
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
				rejected++
			}
		}
		require.Equal(t, 1, created, "exactly one order must win the last units")
		require.Equal(t, 1, rejected)
		require.Equal(t, 2, dbtest.GetStockQuantity(t, s.DB, productID))
	})
}

func (s *orderSuite) TestCancelOrder() {
	s.Run("self cancel restocks and a second attempt is rejected", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		productID := dbtest.CreateTestProduct(t, s.DB, "Aquarium Filter", 30, 10)
		token := s.login("buyer@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderRequest(productID, 3), token)
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.OrderResponse
		helper.DecodeResponse(t, w, &created)
		require.Equal(t, 7, dbtest.GetStockQuantity(t, s.DB, productID))

		cancelURL := ordersURL + "/" + created.ID.String() + "/cancel"
		w = helper.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled response.CancelOrderResponse
		helper.DecodeResponse(t, w, &cancelled)
		require.Equal(t, 3, cancelled.RestockedCount)
		require.Equal(t, 10, dbtest.GetStockQuantity(t, s.DB, productID))

		// Cancelled is terminal for self-service; no double restock.
		w = helper.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, 10, dbtest.GetStockQuantity(t, s.DB, productID))
	})

	s.Run("another customer's order reads as forbidden", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		dbtest.CreateTestUser(t, s.DB, "other@example.com", "Other", "customer")
		productID := dbtest.CreateTestProduct(t, s.DB, "Bird Seed", 8, 10)
		ownerToken := s.login("buyer@example.com")
		intruderToken := s.login("other@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderRequest(productID, 1), ownerToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.OrderResponse
		helper.DecodeResponse(t, w, &created)

		cancelURL := ordersURL + "/" + created.ID.String() + "/cancel"
		w = helper.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, intruderToken)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, 9, dbtest.GetStockQuantity(t, s.DB, productID))
	})
}

func (s *orderSuite) TestAdminCancelOrder() {
	s.Run("admin double cancel restocks exactly once", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		dbtest.CreateTestUser(t, s.DB, "admin@example.com", "Admin", "admin")
		productID := dbtest.CreateTestProduct(t, s.DB, "Dog Shampoo", 15, 10)
		buyerToken := s.login("buyer@example.com")
		adminToken := s.login("admin@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, ordersURL, s.createOrderRequest(productID, 4), buyerToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.OrderResponse
		helper.DecodeResponse(t, w, &created)
		require.Equal(t, 6, dbtest.GetStockQuantity(t, s.DB, productID))

		adminCancelURL := "/api/admin/orders/" + created.ID.String() + "/cancel"
		w = helper.PerformRequest(t, s.Router, http.MethodPost, adminCancelURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var first response.CancelOrderResponse
		helper.DecodeResponse(t, w, &first)
		require.False(t, first.AlreadyCancelled)
		require.Equal(t, 4, first.RestockedCount)
		require.Equal(t, 10, dbtest.GetStockQuantity(t, s.DB, productID))

		w = helper.PerformRequest(t, s.Router, http.MethodPost, adminCancelURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		var second response.CancelOrderResponse
		helper.DecodeResponse(t, w, &second)
		require.True(t, second.AlreadyCancelled)
		require.Zero(t, second.RestockedCount)
		require.Equal(t, 10, dbtest.GetStockQuantity(t, s.DB, productID))
	})

	s.Run("customers cannot reach the admin surface", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "Buyer", "customer")
		buyerToken := s.login("buyer@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/orders", nil, buyerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *orderSuite) requireOrderCount(want int) {
	t := s.T()
	var count int
	err := s.DB.QueryRow(context.Background(), "SELECT count(*) FROM orders").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, want, count)
}
