package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// claimHandler handles HTTP requests addressed to a single claim.
type claimHandler struct {
	claimService portssvc.ClaimSvcFacade
}

// registerClaimRoutes registers routes related to claims.
func registerClaimRoutes(rg *gin.RouterGroup, claimService portssvc.ClaimSvcFacade) {
	h := &claimHandler{claimService: claimService}
	rg.GET("/claims/:claimID", h.getClaim)
}

// getClaim godoc
// @Summary Get a claim by ID
// @Tags claims
// @Produce  json
// @Param   claimID path string true "Claim ID"
// @Success 200 {object} dto.ClaimResponse
// @Failure 404 {object} dto.ErrorResponse "Claim not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims/{claimID} [get]
func (h *claimHandler) getClaim(c *gin.Context) {
	claim, err := h.claimService.GetClaimByID(c.Request.Context(), c.Param("claimID"))
	if err != nil {
		writeServiceError(c, err, "Claim not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}
