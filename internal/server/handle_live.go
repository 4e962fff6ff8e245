package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/playperu/nostos/internal/metrics"
)

// handleLive drives a screen over a WebSocket. Each text message is a
// Command; every message gets exactly one reply, the resulting view or an
// error object.
func handleLive(logger *slog.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sc := sessionScreen(r)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Minute)
		defer cancel()

		for {
			_, msg, err := conn.Read(ctx)
			if err != nil {
				logger.Debug("websocket read ended", "error", err)
				return
			}

			var reply any
			var cmd Command
			if err := json.Unmarshal(msg, &cmd); err != nil {
				reply = ErrorResponse{Error: "invalid message"}
			} else if v, err := apply(sc, m, cmd); err != nil {
				reply = ErrorResponse{Error: commandMessage(err)}
			} else {
				reply = v
			}

			data, _ := json.Marshal(reply)
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
