package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// MaxMessageLength is the longest message, in characters, the analyzer accepts
const MaxMessageLength = 4096

// AnalyzeRequest is the body of an analyze call
type AnalyzeRequest struct {
	Message string        `json:"message" validate:"max=4096"`
	ChatID  domain.ChatID `json:"chatId" validate:"max=128,excludesall=\x00\n\r\t"`
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// requestError is a rejected request body with the response it should produce
type requestError struct {
	Status  int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *requestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *requestError) Unwrap() error {
	return e.Err
}

// respond writes the error as either a plain or a field-level error body
func (e *requestError) respond(w http.ResponseWriter) {
	if len(e.Fields) > 0 {
		respondJSON(w, e.Status, ValidationErrorResponse{Error: e.Message, Fields: e.Fields})
		return
	}
	respondError(w, e.Status, e.Message)
}

// parseAnalyzeRequest decodes and checks an analyze body. An empty, null, or
// non-object body counts as no data; a missing or blank message is reported
// before any other validation.
func parseAnalyzeRequest(data []byte) (AnalyzeRequest, *requestError) {
	var req AnalyzeRequest

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || len(fields) == 0 {
		return req, &requestError{Status: http.StatusBadRequest, Message: ErrMsgNoData, Err: err}
	}

	if err := json.Unmarshal(data, &req); err != nil {
		if errors.Is(err, domain.ErrInvalidChatID) {
			return req, &requestError{Status: http.StatusBadRequest, Message: ErrMsgInvalidChatIDError, Err: err}
		}
		return req, &requestError{Status: http.StatusBadRequest, Message: ErrMsgInvalidRequest, Err: err}
	}

	if strings.TrimSpace(req.Message) == "" {
		return req, &requestError{Status: http.StatusBadRequest, Message: ErrMsgNoMessage}
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		return req, &requestError{
			Status:  http.StatusBadRequest,
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
			Err:     err,
		}
	}

	return req, nil
}

// readBody reads the whole request body. A body over the size limit is a 413.
func readBody(r *http.Request) ([]byte, *requestError) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &requestError{Status: http.StatusRequestEntityTooLarge, Message: ErrMsgRequestTooLarge, Err: err}
		}
		return nil, &requestError{Status: http.StatusBadRequest, Message: ErrMsgNoData, Err: err}
	}
	return data, nil
}
