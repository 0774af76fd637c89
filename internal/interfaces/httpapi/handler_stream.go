package httpapi

import (
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait    = 10 * time.Second
	streamMaxReadBytes = 512
)

type streamFrame struct {
	Type string     `json:"type"`
	Data auctionDTO `json:"data"`
}

// StreamAuction pushes every published auction view over a websocket. The
// first frame is the current state.
func (h *Handler) StreamAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StreamAuction")
	defer span.End()

	auctionID := r.PathValue("auctionID")
	updates, unsubscribe, err := h.auctionService.Subscribe(auctionID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(ctx, "websocket upgrade failed", "auction_id", auctionID, "error", err)
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go h.drainStream(conn, closed)

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case view := <-updates:
			frame, err := sonic.Marshal(streamFrame{Type: "auction", Data: auctionToDTO(view)})
			if err != nil {
				h.logger.ErrorContext(ctx, "encode stream frame failed", "auction_id", auctionID, "error", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.logger.DebugContext(ctx, "stream write failed", "auction_id", auctionID, "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// drainStream reads until the peer goes away so pongs and close frames are
// processed. Clients are not expected to send data.
func (h *Handler) drainStream(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	readWait := 2 * h.pingInterval
	conn.SetReadLimit(streamMaxReadBytes)
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
