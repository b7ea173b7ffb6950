package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const msgPolicyAbsent = "Policy not found"

// policyHandler handles HTTP requests addressed to a single policy.
type policyHandler struct {
	policyService portssvc.PolicySvcFacade
}

// registerPolicyRoutes registers routes related to policies.
func registerPolicyRoutes(rg *gin.RouterGroup, policyService portssvc.PolicySvcFacade) {
	h := &policyHandler{policyService: policyService}

	policies := rg.Group("/policies")
	{
		policies.GET("/:policyID", h.getPolicy)
		policies.PUT("/:policyID", h.updatePolicy)
	}
}

// getPolicy godoc
// @Summary Get a policy by ID
// @Tags policies
// @Produce  json
// @Param   policyID path string true "Policy ID"
// @Success 200 {object} dto.PolicyResponse
// @Failure 404 {object} dto.ErrorResponse "Policy not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /policies/{policyID} [get]
func (h *policyHandler) getPolicy(c *gin.Context) {
	policy, err := h.policyService.GetPolicyByID(c.Request.Context(), c.Param("policyID"))
	if err != nil {
		writeServiceError(c, err, msgPolicyAbsent)
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyResponse(policy))
}

// updatePolicy godoc
// @Summary Replace a policy
// @Description Replaces provider and interval. The new interval is checked against every other policy of the same car.
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policyID path string true "Policy ID"
// @Param   policy body dto.UpdatePolicyRequest true "Policy details"
// @Success 200 {object} dto.PolicyResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Policy not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent conflicting write"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /policies/{policyID} [put]
func (h *policyHandler) updatePolicy(c *gin.Context) {
	var req dto.UpdatePolicyRequest
	if !bindJSON(c, &req) {
		return
	}

	policy, err := h.policyService.UpdatePolicy(c.Request.Context(), c.Param("policyID"), req)
	if err != nil {
		writeServiceError(c, err, msgPolicyAbsent)
		return
	}
	c.JSON(http.StatusOK, dto.ToPolicyResponse(policy))
}
