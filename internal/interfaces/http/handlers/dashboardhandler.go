package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jannivaran/internal/application/complaint/usecases"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/utils"
)

type DashboardHandler struct {
	statsUC usecases.GetDashboardStatsExecutor
	logger  logger.Interface
}

func NewDashboardHandler(statsUC usecases.GetDashboardStatsExecutor) *DashboardHandler {
	return &DashboardHandler{
		statsUC: statsUC,
		logger:  logger.NewLogger(),
	}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	result, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
