package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/SscSPs/car_insurance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	carIDParam   = "carID"
	carKey       = "car"
	msgCarAbsent = "Car not found"
)

// Messages for the insurance-valid date query parameter.
const (
	msgDateQueryRequired = "Query param 'date' is required (YYYY-MM-DD)."
	msgDateQueryFormat   = "Invalid date format. Use YYYY-MM-DD."
	msgDateQueryRange    = "Date out of allowed range [1900..2100]."
)

// carHandler serves the routes nested under a car.
type carHandler struct {
	carService      portssvc.CarSvc
	policyService   portssvc.PolicySvcFacade
	claimService    portssvc.ClaimSvcFacade
	validityService portssvc.ValiditySvc
	historyService  portssvc.HistorySvc
}

// registerCarRoutes registers routes scoped to a single car.
func registerCarRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &carHandler{
		carService:      services.Car,
		policyService:   services.Policy,
		claimService:    services.Claim,
		validityService: services.Validity,
		historyService:  services.History,
	}

	car := rg.Group("/cars/:"+carIDParam, h.requireCar)
	{
		car.GET("/policies", h.listPolicies)
		car.POST("/policies", h.createPolicy)
		car.GET("/claims", h.listClaims)
		car.POST("/claims", h.createClaim)
		car.GET("/history", h.getHistory)
		car.GET("/insurance-valid", h.getInsuranceValidity)
	}
}

// requireCar resolves the car in the path and aborts with 404 when it is absent.
func (h *carHandler) requireCar(c *gin.Context) {
	carID := c.Param(carIDParam)
	car, err := h.carService.GetCarByID(c.Request.Context(), carID)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		c.Abort()
		return
	}
	c.Set(carKey, car)
	c.Next()
}

func carFromContext(c *gin.Context) *domain.Car {
	return c.MustGet(carKey).(*domain.Car)
}

// createPolicy godoc
// @Summary Create an insurance policy
// @Description Adds a policy to a car. The interval is inclusive on both ends and must not share a day with another policy of the car.
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   carID path string true "Car ID"
// @Param   policy body dto.CreatePolicyRequest true "Policy details"
// @Success 201 {object} dto.PolicyResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Car not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent conflicting write"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cars/{carID}/policies [post]
func (h *carHandler) createPolicy(c *gin.Context) {
	car := carFromContext(c)
	var req dto.CreatePolicyRequest
	if !bindJSON(c, &req) {
		return
	}

	policy, err := h.policyService.CreatePolicy(c.Request.Context(), car.CarID, req)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPolicyResponse(policy))
}

// listPolicies godoc
// @Summary List a car's policies
// @Description Returns the car's policies ordered by start date.
// @Tags policies
// @Produce  json
// @Param   carID path string true "Car ID"
// @Success 200 {array} dto.PolicyResponse
// @Failure 404 {object} dto.ErrorResponse "Car not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cars/{carID}/policies [get]
func (h *carHandler) listPolicies(c *gin.Context) {
	car := carFromContext(c)

	policies, err := h.policyService.ListPoliciesByCar(c.Request.Context(), car.CarID)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPolicyResponse(policies))
}

// listClaims godoc
// @Summary List a car's claims
// @Description Returns the car's claims ordered by claim date.
// @Tags claims
// @Produce  json
// @Param   carID path string true "Car ID"
// @Success 200 {array} dto.ClaimResponse
// @Failure 404 {object} dto.ErrorResponse "Car not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cars/{carID}/claims [get]
func (h *carHandler) listClaims(c *gin.Context) {
	car := carFromContext(c)

	claims, err := h.claimService.ListClaimsByCar(c.Request.Context(), car.CarID)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		return
	}
	c.JSON(http.StatusOK, dto.ToListClaimResponse(claims))
}

// createClaim godoc
// @Summary File a claim
// @Description Records a claim against a car.
// @Tags claims
// @Accept  json
// @Produce  json
// @Param   carID path string true "Car ID"
// @Param   claim body dto.CreateClaimRequest true "Claim details"
// @Success 201 {object} dto.ClaimResponse
// @Header  201 {string} Location "/api/v1/claims/{id}"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Car not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cars/{carID}/claims [post]
func (h *carHandler) createClaim(c *gin.Context) {
	car := carFromContext(c)
	var req dto.CreateClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	claim, err := h.claimService.CreateClaim(c.Request.Context(), car.CarID, req)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		return
	}

	c.Header("Location", fmt.Sprintf("%s/claims/%s", apiV1Prefix, claim.ClaimID))
	c.JSON(http.StatusCreated, dto.ToClaimResponse(claim))
}

// getHistory godoc
// @Summary Get a car's history
// @Description Returns the car's policies and claims merged into one chronological timeline.
// @Tags cars
// @Produce  json
// @Param   carID path string true "Car ID"
// @Success 200 {array} dto.HistoryEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Car not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cars/{carID}/history [get]
func (h *carHandler) getHistory(c *gin.Context) {
	car := carFromContext(c)

	entries, err := h.historyService.GetHistory(c.Request.Context(), car.CarID)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(entries))
}

// getInsuranceValidity godoc
// @Summary Check insurance validity
// @Description Reports whether some policy of the car covers the given date.
// @Tags cars
// @Produce  json
// @Param   carID path string true "Car ID"
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.InsuranceValidityResponse
// @Failure 400 {object} dto.ErrorResponse "Missing, malformed or out-of-range date"
// @Failure 404 {object} dto.ErrorResponse "Car not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /cars/{carID}/insurance-valid [get]
func (h *carHandler) getInsuranceValidity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	car := carFromContext(c)

	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgDateQueryRequired})
		return
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		logger.Warn("Invalid date query parameter", slog.String("date", raw))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgDateQueryFormat})
		return
	}
	if !domain.YearInRange(date) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgDateQueryRange})
		return
	}

	valid, err := h.validityService.IsInsuredOn(c.Request.Context(), car.CarID, date)
	if err != nil {
		writeServiceError(c, err, msgCarAbsent)
		return
	}

	c.JSON(http.StatusOK, dto.InsuranceValidityResponse{
		CarID: car.CarID,
		Date:  domain.FormatDate(date),
		Valid: valid,
	})
}
