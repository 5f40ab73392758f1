package websocket

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const LogPrefixChat = "internal.intent.delivery.websocket.Chat"

// Chat upgrades the request and answers each {"message": "..."} text frame
// until the client goes away.
func (h *handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Warnf(ctx, "%s: upgrade: %v", LogPrefixChat, err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	out := make(chan serverMessage, 8)
	done := make(chan struct{})
	go h.writeLoop(ctx, conn, out, done)
	defer func() {
		close(out)
		<-done
	}()

	out <- serverMessage{Type: TypeConnected}
	h.l.Debugf(ctx, "%s: client connected from %s", LogPrefixChat, r.RemoteAddr)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				h.l.Warnf(ctx, "%s: closed unexpectedly: %v", LogPrefixChat, err)
			}
			return
		}

		out <- h.answer(ctx, payload)
	}
}

func (h *handler) answer(ctx context.Context, payload []byte) serverMessage {
	var msg clientMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return serverMessage{Type: TypeError, Error: "invalid message: expected {\"message\": \"...\"}"}
	}

	output, err := h.uc.Classify(ctx, msg.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s: uc.Classify: %v", LogPrefixChat, err)
	}

	return serverMessage{
		Type: TypeAnswer,
		Data: &answerData{
			Intent:     output.Tag,
			Confidence: math.Round(output.Confidence*100) / 100,
			Answer:     output.Answer,
			Outcome:    string(output.Outcome),
		},
	}
}

// writeLoop owns all writes on conn: queued replies and keepalive pings.
func (h *handler) writeLoop(ctx context.Context, conn *websocket.Conn, out <-chan serverMessage, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-out:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.l.Debugf(ctx, "%s: write: %v", LogPrefixChat, err)
				drain(out)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				drain(out)
				return
			}
		}
	}
}

func drain(out <-chan serverMessage) {
	for range out {
	}
}
