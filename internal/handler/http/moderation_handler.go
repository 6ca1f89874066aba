package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

type ModerationHandler struct {
	moderationUsecase usecasecontract.IModerationUseCase
}

func NewModerationHandler(moderationUsecase usecasecontract.IModerationUseCase) *ModerationHandler {
	return &ModerationHandler{moderationUsecase: moderationUsecase}
}

func (h *ModerationHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.moderationUsecase.CreateReport(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err, "Report")
		return
	}
	SuccessHandler(c, http.StatusCreated, report)
}

func (h *ModerationHandler) GetReports(c *gin.Context) {
	reports, err := h.moderationUsecase.GetReports(c.Request.Context())
	if err != nil {
		HandleError(c, err, "Report")
		return
	}
	SuccessHandler(c, http.StatusOK, reports)
}

func (h *ModerationHandler) UpdateReportStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.moderationUsecase.UpdateReportStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleError(c, err, "Report")
		return
	}
	SuccessHandler(c, http.StatusOK, report)
}
