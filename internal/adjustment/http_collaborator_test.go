package adjustment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-waterbook/internal/adjustment"

	"github.com/stretchr/testify/assert"
)

func TestHTTPCollaborator_Adjust(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/adjust", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req adjustment.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2500.0, req.TotalSale)

		json.NewEncoder(w).Encode(map[string]any{
			"adjusted_expected_amount": 2300.0,
			"reasoning":                "Due of 100 was verified against the ledger, token deduction accepted.",
		})
	}))
	defer server.Close()

	collab := adjustment.NewHTTPCollaborator(server.URL, "test-key")

	res, err := collab.Adjust(context.Background(), adjustment.Request{
		EntryDate:       "2025-06-01",
		RiderName:       "Mas Joko",
		TotalSale:       2500,
		ActualReceived:  2300,
		InitialExpected: 2320,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2300.0, res.AdjustedExpectedAmount)
	assert.NotEmpty(t, res.Reasoning)
}

func TestHTTPCollaborator_Adjust_IncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// reasoning hilang: harus dianggap gagal, bukan di-default-kan
		json.NewEncoder(w).Encode(map[string]any{
			"adjusted_expected_amount": 2300.0,
		})
	}))
	defer server.Close()

	collab := adjustment.NewHTTPCollaborator(server.URL, "")

	_, err := collab.Adjust(context.Background(), adjustment.Request{})
	assert.Error(t, err)
}

func TestHTTPCollaborator_Adjust_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	collab := adjustment.NewHTTPCollaborator(server.URL, "")

	_, err := collab.Adjust(context.Background(), adjustment.Request{})
	assert.Error(t, err)
}

func TestHTTPCollaborator_Adjust_ZeroAdjustmentIsValid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"adjusted_expected_amount": 0.0,
			"reasoning":                "No sales recorded for the day.",
		})
	}))
	defer server.Close()

	collab := adjustment.NewHTTPCollaborator(server.URL, "")

	res, err := collab.Adjust(context.Background(), adjustment.Request{})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, res.AdjustedExpectedAmount)
}
