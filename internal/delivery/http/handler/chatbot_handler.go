package handler

import (
	"encoding/json"
	"net/http"

	"oncoportal/internal/delivery/dto"
	"oncoportal/internal/service"
	"oncoportal/pkg/response"
	"oncoportal/pkg/validator"
)

type ChatbotHandler struct {
	chatbot   *service.ChatbotService
	validator *validator.CustomValidator
}

func NewChatbotHandler(chatbot *service.ChatbotService, validator *validator.CustomValidator) *ChatbotHandler {
	return &ChatbotHandler{
		chatbot:   chatbot,
		validator: validator,
	}
}

func (h *ChatbotHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatbotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply := h.chatbot.Respond(req.Message)

	response.Success(w, http.StatusOK, "Reply generated", dto.ChatbotResponse{Reply: reply})
}
