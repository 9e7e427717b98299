package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderApprovalURL(t *testing.T) {
	order := &Order{
		Links: []Link{
			{Rel: "self", Href: "https://api.example.com/orders/1"},
			{Rel: "approve", Href: "https://www.example.com/checkoutnow?token=1"},
		},
	}

	assert.Equal(t, "https://www.example.com/checkoutnow?token=1", order.ApprovalURL())
	assert.Empty(t, (&Order{}).ApprovalURL())
}

func TestOrderFirstCapture(t *testing.T) {
	order := &Order{
		PurchaseUnits: []PurchaseUnit{
			{Payments: &Payments{Captures: []Capture{
				{Id: "CAP-1", Status: "COMPLETED", Amount: Amount{CurrencyCode: "USD", Value: "14.99"}},
			}}},
		},
	}

	capture := order.FirstCapture()
	require.NotNil(t, capture)
	assert.Equal(t, "CAP-1", capture.Id)

	assert.Nil(t, (&Order{}).FirstCapture())
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, IntentCapture, req.Intent)
		require.Len(t, req.PurchaseUnits, 1)
		assert.Equal(t, "14.99", req.PurchaseUnits[0].Amount.Value)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Order{
			Id:     "ORDER-1",
			Status: "CREATED",
			Links:  []Link{{Rel: "approve", Href: "https://approve.example.com"}},
		})
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), server.URL)

	order, err := client.CreateOrder(context.Background(), &OrderRequest{
		Intent: IntentCapture,
		PurchaseUnits: []PurchaseUnitRequest{
			{Amount: Amount{CurrencyCode: "USD", Value: "14.99"}, Description: "Visionary - DreamLife Subscription"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ORDER-1", order.Id)
	assert.Equal(t, "https://approve.example.com", order.ApprovalURL())
}

func TestCaptureOrderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY"}`))
	}))
	defer server.Close()

	client := NewClientWithHTTP(server.Client(), server.URL)

	_, err := client.CaptureOrder(context.Background(), "ORDER-1")
	assert.Error(t, err)
}
