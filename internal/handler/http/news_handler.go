package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

type NewsHandler struct {
	newsUsecase usecasecontract.INewsUseCase
}

func NewNewsHandler(newsUsecase usecasecontract.INewsUseCase) *NewsHandler {
	return &NewsHandler{newsUsecase: newsUsecase}
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req dto.CreateNewsRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	news, err := h.newsUsecase.CreateNews(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err, "News")
		return
	}
	SuccessHandler(c, http.StatusCreated, news)
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	news, err := h.newsUsecase.GetNews(c.Request.Context())
	if err != nil {
		HandleError(c, err, "News")
		return
	}
	SuccessHandler(c, http.StatusOK, news)
}

func (h *NewsHandler) GetNewsByID(c *gin.Context) {
	news, err := h.newsUsecase.GetNewsByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err, "News")
		return
	}
	SuccessHandler(c, http.StatusOK, news)
}

func (h *NewsHandler) UpdateNewsStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	news, err := h.newsUsecase.UpdateNewsStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleError(c, err, "News")
		return
	}
	SuccessHandler(c, http.StatusOK, news)
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	if err := h.newsUsecase.DeleteNews(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err, "News")
		return
	}
	MessageHandler(c, http.StatusOK, "News deleted successfully")
}
