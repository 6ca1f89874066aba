package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/newsdesk/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/newsdesk/internal/usecase/contract"
)

type EventHandler struct {
	eventUsecase usecasecontract.IEventUseCase
}

func NewEventHandler(eventUsecase usecasecontract.IEventUseCase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), req.ToInput())
	if err != nil {
		HandleError(c, err, "Event")
		return
	}
	SuccessHandler(c, http.StatusCreated, event)
}

// GetEvents lists events, optionally filtered by ?type=.
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventUsecase.GetEvents(c.Request.Context(), c.Query("type"))
	if err != nil {
		HandleError(c, err, "Event")
		return
	}
	SuccessHandler(c, http.StatusOK, events)
}

func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	event, err := h.eventUsecase.UpdateEventStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		HandleError(c, err, "Event")
		return
	}
	SuccessHandler(c, http.StatusOK, event)
}
