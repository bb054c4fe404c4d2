package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/ChainBot_Go/internal/analysis"
	"github.com/osse101/ChainBot_Go/internal/chat"
	"github.com/osse101/ChainBot_Go/internal/domain"
	"github.com/osse101/ChainBot_Go/internal/event"
	"github.com/osse101/ChainBot_Go/internal/logger"
	"github.com/osse101/ChainBot_Go/internal/metrics"
)

// WebSocket timings. Vars so tests can shorten them.
var (
	wsPingInterval = 15 * time.Second
	wsReadTimeout  = 60 * time.Second
	wsWriteTimeout = 5 * time.Second
)

const wsMaxFrameBytes = 64 << 10

// WebSocketRequest is one analyze request frame. ID is echoed back verbatim.
type WebSocketRequest struct {
	ID json.RawMessage `json:"id,omitempty"`
}

// WebSocketResponse answers a single frame with either an analysis or an error
type WebSocketResponse struct {
	ID json.RawMessage `json:"id,omitempty"`
	*domain.Analysis
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// NewUpgrader builds the upgrader for the WebSocket route. "*" or an empty
// origin accepts any caller.
func NewUpgrader(allowedOrigin string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" || allowedOrigin == "*" {
				return true
			}
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}
}

// wsConn serialises writes; gorilla allows one concurrent writer
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.conn.WriteJSON(v)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout))
}

// HandleWebSocket serves the analyze operation over a WebSocket. Every text
// frame gets exactly one answer; a bad frame gets an error frame and the
// connection stays open.
// @Summary Analyze over WebSocket
// @Description Send {"id","message","chatId"} frames and receive {"id","response","intent","parameters"} or {"id","error"}
// @Tags analyze
// @Router /api/v1/ws [get]
func HandleWebSocket(svc analysis.Service, chats chat.Service, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error
			log.Warn(LogMsgWSUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		metrics.WebSocketConnections.Inc()
		defer metrics.WebSocketConnections.Dec()
		log.Info(LogMsgWSConnected, "remote_addr", r.RemoteAddr)

		c := &wsConn{conn: conn}
		conn.SetReadLimit(wsMaxFrameBytes)
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		})

		done := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			keepAlive(c, done)
		}()
		defer wg.Wait()
		defer close(done)

		ctx := analysis.WithSource(r.Context(), event.SourceWebSocket)
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn(LogMsgWSUnexpectedClose, "error", err)
				} else {
					log.Info(LogMsgWSDisconnected)
				}
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

			var resp WebSocketResponse
			if msgType != websocket.TextMessage {
				resp = WebSocketResponse{Error: ErrMsgTextFramesOnly}
			} else {
				resp = handleFrame(ctx, svc, chats, data)
			}

			if err := c.send(resp); err != nil {
				log.Warn(LogMsgWSWriteFailed, "error", err)
				return
			}
		}
	}
}

// keepAlive pings the client until done is closed or a ping fails
func keepAlive(c *wsConn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}

// handleFrame analyzes one frame and builds its reply
func handleFrame(ctx context.Context, svc analysis.Service, chats chat.Service, data []byte) WebSocketResponse {
	var frame WebSocketRequest
	_ = json.Unmarshal(data, &frame)
	resp := WebSocketResponse{ID: frame.ID}

	req, reqErr := parseAnalyzeRequest(data)
	if reqErr != nil {
		resp.Error = reqErr.Message
		resp.Fields = reqErr.Fields
		return resp
	}

	result, err := svc.Analyze(ctx, req.Message, req.ChatID)
	if err != nil {
		_, msg := mapServiceErrorToUserMessage(err)
		logger.FromContext(ctx).Error(LogMsgAnalyzeFailed, "error", err)
		resp.Error = msg
		return resp
	}

	recordChat(ctx, chats, req.ChatID)
	resp.Analysis = result
	return resp
}
