package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ChainBot_Go/internal/chat"
)

// HandleGetChat returns the activity record for a chat
// @Summary Get chat activity
// @Description Returns when a chat was first and last seen and how many messages it sent
// @Tags chats
// @Produce json
// @Param chatID path string true "Chat id"
// @Success 200 {object} domain.Chat
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/chats/{chatID} [get]
func HandleGetChat(chats chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if chats == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgChatTrackingDisabled)
			return
		}

		chatID := strings.TrimSpace(chi.URLParam(r, "chatID"))
		if chatID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgChatIDRequired)
			return
		}

		result, err := chats.GetChat(r.Context(), chatID)
		if err != nil {
			respondServiceError(w, r, "Get chat", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
