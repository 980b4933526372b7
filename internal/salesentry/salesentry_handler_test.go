package salesentry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-waterbook/internal/salesentry"
	salesentryerrors "go-waterbook/internal/salesentry/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSalesEntryService struct {
	submitFn  func(ctx context.Context, req salesentry.CreateSalesEntryRequest) (salesentry.SalesEntryResponse, error)
	getAllFn  func(ctx context.Context, filter salesentry.SalesEntryFilter) ([]salesentry.SalesEntryResponse, error)
	getByIDFn func(ctx context.Context, id string) (salesentry.SalesEntryResponse, error)
}

func (f *fakeSalesEntryService) Submit(ctx context.Context, req salesentry.CreateSalesEntryRequest) (salesentry.SalesEntryResponse, error) {
	return f.submitFn(ctx, req)
}

func (f *fakeSalesEntryService) GetAll(ctx context.Context, filter salesentry.SalesEntryFilter) ([]salesentry.SalesEntryResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakeSalesEntryService) GetByID(ctx context.Context, id string) (salesentry.SalesEntryResponse, error) {
	return f.getByIDFn(ctx, id)
}

func setupSalesEntryRouter(svc salesentry.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := salesentry.NewHandler(svc, nil)
	r.POST("/sales-entries", handler.Create)
	r.GET("/sales-entries", handler.GetAll)
	r.GET("/sales-entries/:id", handler.GetById)
	return r
}

const validEntryBody = `{
	"entry_date": "2025-06-01",
	"rider_name": "Mas Joko",
	"vehicle_name": "Truk 01",
	"previous_reading": 4000,
	"current_reading": 5000,
	"rate_per_liter": 2.5,
	"cash_received": 2000,
	"online_received": 300,
	"due_collected": 100,
	"token_money": 50,
	"staff_expense": 20,
	"extra_amount": 10,
	"hours_worked": 9
}`

func TestSalesEntryHandler_Create(t *testing.T) {
	svc := &fakeSalesEntryService{
		submitFn: func(ctx context.Context, req salesentry.CreateSalesEntryRequest) (salesentry.SalesEntryResponse, error) {
			return salesentry.SalesEntryResponse{
				RiderName:   req.RiderName,
				Status:      salesentry.StatusMatch,
				Discrepancy: 0,
			}, nil
		},
	}
	r := setupSalesEntryRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/sales-entries", strings.NewReader(validEntryBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var env struct {
		Ok   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Contains(t, string(env.Data), salesentry.StatusMatch)
}

func TestSalesEntryHandler_Create_NegativeAmountRejected(t *testing.T) {
	r := setupSalesEntryRouter(&fakeSalesEntryService{})

	body := strings.Replace(validEntryBody, `"cash_received": 2000`, `"cash_received": -5`, 1)
	req := httptest.NewRequest(http.MethodPost, "/sales-entries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesEntryHandler_Create_HoursWorkedOver24Rejected(t *testing.T) {
	r := setupSalesEntryRouter(&fakeSalesEntryService{})

	body := strings.Replace(validEntryBody, `"hours_worked": 9`, `"hours_worked": 25`, 1)
	req := httptest.NewRequest(http.MethodPost, "/sales-entries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalesEntryHandler_Create_AdjustmentFailure(t *testing.T) {
	svc := &fakeSalesEntryService{
		submitFn: func(ctx context.Context, req salesentry.CreateSalesEntryRequest) (salesentry.SalesEntryResponse, error) {
			return salesentry.SalesEntryResponse{}, salesentryerrors.ErrAdjustmentFailed
		},
	}
	r := setupSalesEntryRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/sales-entries", strings.NewReader(validEntryBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var env struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "ADJUSTMENT_FAILED", env.Error.Code)
}

func TestSalesEntryHandler_GetAll_FilterByRider(t *testing.T) {
	var gotFilter salesentry.SalesEntryFilter
	svc := &fakeSalesEntryService{
		getAllFn: func(ctx context.Context, filter salesentry.SalesEntryFilter) ([]salesentry.SalesEntryResponse, error) {
			gotFilter = filter
			return []salesentry.SalesEntryResponse{}, nil
		},
	}
	r := setupSalesEntryRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/sales-entries?rider_name=Mas+Joko&year=2025&month=6", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mas Joko", gotFilter.RiderName)
	assert.Equal(t, 2025, gotFilter.Year)
	assert.Equal(t, 6, gotFilter.Month)
}
