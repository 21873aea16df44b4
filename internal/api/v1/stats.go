package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/service"
)

type StatsHandler struct {
	statsService service.StatsService
	logger       *logger.Logger
}

func NewStatsHandler(statsService service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// @Summary Dashboard stats
// @Description Get sales figures, pending credit total, catalog counts and the USD quote
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Router /stats/dashboard [get]
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	resp, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
