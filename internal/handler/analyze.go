package handler

import (
	"context"
	"net/http"

	"github.com/osse101/ChainBot_Go/internal/analysis"
	"github.com/osse101/ChainBot_Go/internal/chat"
	"github.com/osse101/ChainBot_Go/internal/domain"
	"github.com/osse101/ChainBot_Go/internal/event"
	"github.com/osse101/ChainBot_Go/internal/logger"
)

// HandleAnalyze classifies a chat message and extracts its parameters.
// @Summary Analyze chat message
// @Description Guess the intent of a free-text message and pull out amount, tokens, chains, and address
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Message to analyze"
// @Success 200 {object} domain.Analysis
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analyze [post]
func HandleAnalyze(svc analysis.Service, chats chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		data, reqErr := readBody(r)
		if reqErr != nil {
			log.Warn(LogMsgDecodeFailed, "error", reqErr)
			reqErr.respond(w)
			return
		}

		req, reqErr := parseAnalyzeRequest(data)
		if reqErr != nil {
			log.Warn(LogMsgValidationFailed, "error", reqErr)
			reqErr.respond(w)
			return
		}

		ctx := analysis.WithSource(r.Context(), event.SourceHTTP)
		result, err := svc.Analyze(ctx, req.Message, req.ChatID)
		if err != nil {
			respondServiceError(w, r, LogMsgAnalyzeFailed, err)
			return
		}

		recordChat(ctx, chats, req.ChatID)

		log.Info(LogMsgMessageAnalyzed,
			logger.AttrKeyChatID, req.ChatID.String(),
			"intent", result.Intent,
			"complete", result.Complete())

		respondJSON(w, http.StatusOK, result)
	}
}

// recordChat counts the message against its chat. Tracking is optional and
// its failures are already logged by the chat service.
func recordChat(ctx context.Context, chats chat.Service, chatID domain.ChatID) {
	if chats == nil {
		return
	}
	_ = chats.RecordMessage(ctx, chatID)
}
