package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aitax/tax-system/internal/core/ports"
)

// AssistantHandler serves the chat assistant.
type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

type askResponse struct {
	Topic  string `json:"topic"`
	Answer string `json:"answer"`
}

// Ask answers a tax question from the canned knowledge base.
//
// @Summary      Ask the tax assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      askRequest  true  "Question"
// @Success      200   {object}  askResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/assistant/ask [post]
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	answer, err := h.assistant.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, askResponse{Topic: answer.Topic, Answer: answer.Answer})
}
