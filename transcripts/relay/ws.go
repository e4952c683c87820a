package relay

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/transcripts"
)

const wsWriteTimeout = 5 * time.Second

// ServeRoom upgrades the request and streams the room's transcript feed,
// starting with the recent backlog. It returns when the client leaves.
func (h *Hub) ServeRoom(w http.ResponseWriter, r *http.Request, room string) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Warn("websocket accept failed",
			log.String("room", room),
			log.Error(err))
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closed")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sub := h.Subscribe(room)
	defer sub.Close()

	h.logger.Debug("transcript subscriber connected",
		log.String("room", room),
		log.String("subscriber", sub.ID))

	for _, ev := range h.Backlog(room) {
		if err := h.write(ctx, conn, ev); err != nil {
			return
		}
	}

	// drain reads so pings are answered and closes are noticed
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev := <-sub.C:
			if err := h.write(ctx, conn, ev); err != nil {
				h.logger.Debug("transcript subscriber write failed",
					log.String("room", room),
					log.String("subscriber", sub.ID),
					log.Error(err))
				return
			}
		}
	}
}

func (h *Hub) write(ctx context.Context, conn *websocket.Conn, ev transcripts.Event) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, ev)
}
