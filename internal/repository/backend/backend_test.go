package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkpay/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestMe_Success(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"id":        "u-1",
			"name":      "Jane",
			"last_name": "Doe",
			"businesses": []map[string]string{
				{"id": "b-1", "name": "Acme"},
			},
		})
	})

	me, err := client.Me(context.Background(), "token-1")
	require.NoError(t, err)

	assert.Equal(t, "u-1", me.ID)
	require.NotNil(t, me.Name)
	assert.Equal(t, "Jane", *me.Name)
	require.Len(t, me.Businesses, 1)
	assert.Equal(t, "b-1", me.Businesses[0].ID)
}

func TestMe_NonSuccessStatus(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Me(context.Background(), "token-1")
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusForbidden, backendErr.Status)
	assert.Equal(t, "backend error 403", backendErr.Error())
}

func TestCreateAccount_Success(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body model.RegisterDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body.Email)
		assert.Equal(t, "Doe", body.LastName)

		w.WriteHeader(http.StatusCreated)
	})

	err := client.CreateAccount(context.Background(), model.RegisterDTO{
		Email:    "a@b.com",
		Password: "pass123",
		Name:     "Jane",
		LastName: "Doe",
	})
	require.NoError(t, err)
}

func TestCreateAccount_SurfacesBodyText(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("email already in use"))
	})

	err := client.CreateAccount(context.Background(), model.RegisterDTO{Email: "a@b.com"})
	require.Error(t, err)
	assert.Equal(t, "email already in use", err.Error())
}

func TestOrders_Success(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "b-1", r.URL.Query().Get("business_id"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "o-1", "status": "paid", "amount": 10.5, "currency": "USD"},
			{"id": "o-2", "status": "pending", "amount": 3, "currency": "EUR"},
		})
	})

	orders, err := client.Orders(context.Background(), "token-1", "b-1")
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, "o-1", orders[0].ID)
	assert.Equal(t, 10.5, orders[0].Amount)
}

func TestCreateOrder_Success(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var body model.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 25.5, body.Amount)
		assert.Equal(t, "b-1", body.BusinessID)

		json.NewEncoder(w).Encode(map[string]any{
			"id": "o-3", "status": "pending", "amount": body.Amount, "currency": body.Currency,
		})
	})

	order, err := client.CreateOrder(context.Background(), "token-1", model.CreateOrderRequest{
		Amount:      25.5,
		Description: "Invoice #1",
		Email:       "a@b.com",
		Currency:    "EUR",
		BusinessID:  "b-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "o-3", order.ID)
	assert.Equal(t, "pending", order.Status)
}

func TestCreateOrder_NonSuccessStatus(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	_, err := client.CreateOrder(context.Background(), "token-1", model.CreateOrderRequest{})
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusUnprocessableEntity, backendErr.Status)
}
