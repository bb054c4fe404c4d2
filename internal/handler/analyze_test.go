package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChainBot_Go/internal/analysis"
	"github.com/osse101/ChainBot_Go/internal/domain"
)

func postAnalyze(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleAnalyze_Success(t *testing.T) {
	h := HandleAnalyze(analysis.NewService(nil), nil)

	w := postAnalyze(t, h, `{"message":"swap 100 usdc to weth","chatId":"abc"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := decodeBody(t, w)
	assert.Len(t, body, 3)
	assert.Equal(t, "swap", body["intent"])
	assert.Equal(t, "Swapping 100 USDC to WETH.", body["response"])

	params, ok := body["parameters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 100.0, params["amount"])
	assert.Equal(t, "USDC", params["fromToken"])
	assert.Equal(t, "WETH", params["toToken"])
	assert.Contains(t, params, "toAddress")
	assert.Nil(t, params["toAddress"])
}

func TestHandleAnalyze_UnknownEchoesMessage(t *testing.T) {
	h := HandleAnalyze(analysis.NewService(nil), nil)

	w := postAnalyze(t, h, `{"message":"hello there","chatId":7}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "unknown", body["intent"])
	assert.Equal(t, "I understand you said: hello there", body["response"])
}

func TestHandleAnalyze_RequestErrors(t *testing.T) {
	h := HandleAnalyze(analysis.NewService(nil), nil)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"empty body", "", ErrMsgNoData},
		{"empty object", "{}", ErrMsgNoData},
		{"null", "null", ErrMsgNoData},
		{"array", "[1,2]", ErrMsgNoData},
		{"malformed json", "not-json", ErrMsgNoData},
		{"missing message", `{"chatId":1}`, ErrMsgNoMessage},
		{"empty message", `{"message":""}`, ErrMsgNoMessage},
		{"blank message", `{"message":"   \t"}`, ErrMsgNoMessage},
		{"null message", `{"message":null}`, ErrMsgNoMessage},
		{"message not a string", `{"message":5}`, ErrMsgInvalidRequest},
		{"chat id is a bool", `{"message":"hi","chatId":true}`, ErrMsgInvalidChatIDError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAnalyze(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantErr, decodeBody(t, w)["error"])
		})
	}
}

func TestHandleAnalyze_MessageLength(t *testing.T) {
	h := HandleAnalyze(analysis.NewService(nil), nil)

	t.Run("at the limit", func(t *testing.T) {
		msg := strings.Repeat("a", MaxMessageLength)
		w := postAnalyze(t, h, `{"message":"`+msg+`"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("over the limit", func(t *testing.T) {
		msg := strings.Repeat("a", MaxMessageLength+1)
		w := postAnalyze(t, h, `{"message":"`+msg+`"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Equal(t, "Must be at most 4096 characters", resp.Fields["message"])
	})

	t.Run("limit counts characters not bytes", func(t *testing.T) {
		msg := strings.Repeat("é", MaxMessageLength)
		w := postAnalyze(t, h, `{"message":"`+msg+`"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleAnalyze_BodyTooLarge(t *testing.T) {
	h := HandleAnalyze(analysis.NewService(nil), nil)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"message":"swap 1 eth to dai"}`))
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 8)
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, ErrMsgRequestTooLarge, decodeBody(t, w)["error"])
}

func TestHandleAnalyze_ServiceError(t *testing.T) {
	svc := new(MockAnalysisService)
	svc.On("Analyze", mock.Anything, "swap", domain.ChatID("1")).Return(nil, errors.New("boom"))

	w := postAnalyze(t, HandleAnalyze(svc, nil), `{"message":"swap","chatId":1}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ErrMsgGenericServerError, decodeBody(t, w)["error"])
	svc.AssertExpectations(t)
}

func TestHandleAnalyze_RecordsChat(t *testing.T) {
	t.Run("numeric chat id", func(t *testing.T) {
		chats := new(MockChatService)
		chats.On("RecordMessage", mock.Anything, domain.ChatID("42")).Return(nil).Once()

		w := postAnalyze(t, HandleAnalyze(analysis.NewService(nil), chats), `{"message":"check my balance","chatId":42}`)

		assert.Equal(t, http.StatusOK, w.Code)
		chats.AssertExpectations(t)
	})

	t.Run("tracking failure does not fail the request", func(t *testing.T) {
		chats := new(MockChatService)
		chats.On("RecordMessage", mock.Anything, domain.ChatID("42")).Return(domain.ErrDatabaseError)

		w := postAnalyze(t, HandleAnalyze(analysis.NewService(nil), chats), `{"message":"check my balance","chatId":"42"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "balance", decodeBody(t, w)["intent"])
	})

	t.Run("rejected requests are not recorded", func(t *testing.T) {
		chats := new(MockChatService)

		w := postAnalyze(t, HandleAnalyze(analysis.NewService(nil), chats), `{"message":" ","chatId":"42"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		chats.AssertNotCalled(t, "RecordMessage", mock.Anything, mock.Anything)
	})
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
