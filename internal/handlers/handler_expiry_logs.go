package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// expiryLogHandler exposes the expiry log read-only.
type expiryLogHandler struct {
	expiryService portssvc.ExpiryLogReaderSvc
}

func registerExpiryLogRoutes(rg *gin.RouterGroup, expiryService portssvc.ExpiryLogReaderSvc) {
	h := &expiryLogHandler{expiryService: expiryService}
	rg.GET("/policy-expiry-logs", h.listExpiryLogs)
}

// listExpiryLogs godoc
// @Summary List policy expiry log entries
// @Description Returns the newest entries first. The limit is capped server-side.
// @Tags expiry
// @Produce  json
// @Param   limit query int false "Maximum number of entries" default(100)
// @Success 200 {array} dto.ExpiryLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /policy-expiry-logs [get]
func (h *expiryLogHandler) listExpiryLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Query param 'limit' must be a positive integer."})
			return
		}
		limit = n
	}

	logs, err := h.expiryService.ListExpiryLogs(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpiryLogResponse(logs))
}
