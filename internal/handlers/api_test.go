package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/core/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/SscSPs/car_insurance_app/internal/handlers"
	"github.com/SscSPs/car_insurance_app/internal/middleware"
	"github.com/SscSPs/car_insurance_app/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t        *testing.T
	router   *gin.Engine
	services *portssvc.ServiceContainer
}

// newAPI wires the real services over the in-memory store with one seeded car.
func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.SaveOwner(ctx, domain.Owner{OwnerID: "o1", OwnerName: "Ana Pop"}))
	require.NoError(t, store.SaveCar(ctx, domain.Car{CarID: "car-1", VIN: "UU1SDAAH0000001", Make: "Dacia", Model: "Logan", OwnerID: "o1"}))

	container := services.NewServiceContainer(nil, memory.NewRepositoryProvider(store))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	handlers.RegisterRoutes(r, nil, container)
	return &api{t: t, router: r, services: container}
}

func (a *api) call(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestAPI_PolicyOverlapRules(t *testing.T) {
	a := newAPI(t)

	w := a.call(http.MethodPost, "/api/v1/cars/car-1/policies", `{"provider":"Allianz","start_date":"2025-01-01","end_date":"2025-12-31"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var first dto.PolicyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = a.call(http.MethodPost, "/api/v1/cars/car-1/policies", `{"start_date":"2025-12-31","end_date":"2026-06-30"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","fields":{"non_field_errors":["Policy interval overlaps an existing policy for this car."]}}`, w.Body.String())

	w = a.call(http.MethodPost, "/api/v1/cars/car-1/policies", `{"start_date":"2026-01-01","end_date":"2026-06-30"}`)
	assert.Equal(t, http.StatusCreated, w.Code, "adjacent intervals do not overlap")

	w = a.call(http.MethodPut, "/api/v1/policies/"+first.ID, `{"provider":"Allianz","start_date":"2025-01-01","end_date":"2026-01-15"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "extending into the next policy is rejected")

	w = a.call(http.MethodPut, "/api/v1/policies/"+first.ID, `{"provider":"Groupama","start_date":"2025-02-01","end_date":"2025-12-31"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.PolicyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Groupama", updated.Provider)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	w = a.call(http.MethodGet, "/api/v1/cars/car-1/policies", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed []dto.PolicyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, "2026-01-01", listed[1].StartDate)

	w = a.call(http.MethodPost, "/api/v1/cars/car-1/policies", `{"start_date":"2025-02-01","end_date":"2025-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","fields":{"end_date":["end_date must be >= start_date"]}}`, w.Body.String())
}

func TestAPI_ValidityHistoryAndExpiry(t *testing.T) {
	a := newAPI(t)

	require.Equal(t, http.StatusCreated, a.call(http.MethodPost, "/api/v1/cars/car-1/policies",
		`{"provider":"Allianz","start_date":"2025-01-01","end_date":"2025-05-31"}`).Code)
	w := a.call(http.MethodPost, "/api/v1/cars/car-1/claims", `{"claim_date":"2025-05-31","description":"  Hail  ","amount":250}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Location"), "/api/v1/claims/")

	w = a.call(http.MethodGet, w.Header().Get("Location"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var claim dto.ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claim))
	assert.Equal(t, "Hail", claim.Description)
	assert.Equal(t, "250.00", claim.Amount)

	w = a.call(http.MethodPost, "/api/v1/cars/car-1/claims", `{"claim_date":"2025-05-31","description":" ","amount":"1.234"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","fields":{
		"description":["Description must not be empty."],
		"amount":["`+domain.MsgAmountPrecision+`"]}}`, w.Body.String())

	assert.JSONEq(t, `{"carId":"car-1","date":"2025-05-31","valid":true}`,
		a.call(http.MethodGet, "/api/v1/cars/car-1/insurance-valid?date=2025-05-31", "").Body.String())
	assert.JSONEq(t, `{"carId":"car-1","date":"2025-06-01","valid":false}`,
		a.call(http.MethodGet, "/api/v1/cars/car-1/insurance-valid?date=2025-06-01", "").Body.String())

	w = a.call(http.MethodGet, "/api/v1/cars/car-1/claims", "")
	require.Equal(t, http.StatusOK, w.Code)
	var claims []dto.ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claims))
	require.Len(t, claims, 1)
	assert.Equal(t, claim.ID, claims[0].ID)

	w = a.call(http.MethodGet, "/api/v1/cars/car-1/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	var history []dto.HistoryEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "POLICY", history[0].Type)
	assert.Equal(t, "CLAIM", history[1].Type)

	created, err := a.services.Expiry.DetectAndLogExpired(context.Background(), domain.NewDate(2025, time.May, 31))
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	created, err = a.services.Expiry.DetectAndLogExpired(context.Background(), domain.NewDate(2025, time.May, 31))
	require.NoError(t, err)
	assert.Zero(t, created)

	w = a.call(http.MethodGet, "/api/v1/policy-expiry-logs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var logs []dto.ExpiryLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "car-1", logs[0].CarID)
	assert.Equal(t, "2025-05-31", logs[0].EndDate)
}

func TestAPI_EchoesRequestID(t *testing.T) {
	a := newAPI(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/car-1/history", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()

	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	assert.JSONEq(t, `[]`, w.Body.String())
}
