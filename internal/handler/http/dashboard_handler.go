package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

// DashboardHandler serves the read-only overview endpoints: activity logs, stats and charts.
type DashboardHandler struct {
	activityUsecase  usecasecontract.IActivityUseCase
	analyticsUsecase usecasecontract.IAnalyticsUseCase
}

func NewDashboardHandler(activityUsecase usecasecontract.IActivityUseCase, analyticsUsecase usecasecontract.IAnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{activityUsecase: activityUsecase, analyticsUsecase: analyticsUsecase}
}

func (h *DashboardHandler) GetLogs(c *gin.Context) {
	logs, err := h.activityUsecase.GetLogs(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Activity log")
		return
	}
	SuccessHandler(c, http.StatusOK, logs)
}

func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.activityUsecase.GetDashboardStats(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Dashboard")
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}

func (h *DashboardHandler) GetDashboardAnalytics(c *gin.Context) {
	charts, err := h.analyticsUsecase.GetDashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Analytics")
		return
	}
	SuccessHandler(c, http.StatusOK, charts)
}

func (h *DashboardHandler) GetReportsAnalytics(c *gin.Context) {
	charts, err := h.analyticsUsecase.GetReports(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Analytics")
		return
	}
	SuccessHandler(c, http.StatusOK, charts)
}

func (h *DashboardHandler) GetStatusBreakdown(c *gin.Context) {
	breakdown, err := h.analyticsUsecase.GetStatusBreakdown(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Analytics")
		return
	}
	SuccessHandler(c, http.StatusOK, breakdown)
}
