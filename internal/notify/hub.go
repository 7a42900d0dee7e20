package notify

import (
	"fleetd/internal/models"
	"fleetd/internal/providers"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const subscriberBuffer = 16

type NotifierInterface interface {
	Notify(alert models.ZoneAlert)
}

// Hub fans tracker alerts out to websocket subscribers and records them in
// the alert log. Delivery is fire-and-forget: a subscriber that cannot keep
// up is dropped, the tracker is never blocked.
type Hub struct {
	logger   providers.Logger
	alertLog *models.AlertLog
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[*websocket.Conn]chan models.ZoneAlert
}

func NewHub(logger providers.Logger, alertLog *models.AlertLog) *Hub {
	return &Hub{
		logger:   logger,
		alertLog: alertLog,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		subs: make(map[*websocket.Conn]chan models.ZoneAlert),
	}
}

func (h *Hub) Notify(alert models.ZoneAlert) {
	h.alertLog.Append(alert)

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.subs {
		select {
		case ch <- alert:
		default:
			// subscriber stalled, cut it loose
			h.logger.Warnf(providers.TypeApp, "Dropping slow alert subscriber %s", conn.RemoteAddr())
			delete(h.subs, conn)
			close(ch)
		}
	}
}

// ServeWS upgrades the request and streams alerts until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Errorf(providers.TypeApp, "Websocket upgrade failed: %s", err)
		return
	}

	ch := make(chan models.ZoneAlert, subscriberBuffer)
	h.mu.Lock()
	h.subs[conn] = ch
	h.mu.Unlock()

	go h.writeLoop(conn, ch)

	// The read loop only exists to observe the close handshake.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unsubscribe(conn)
}

func (h *Hub) writeLoop(conn *websocket.Conn, ch chan models.ZoneAlert) {
	for alert := range ch {
		if err := conn.WriteJSON(alert); err != nil {
			h.unsubscribe(conn)
			break
		}
	}
	_ = conn.Close()
}

func (h *Hub) unsubscribe(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[conn]; ok {
		delete(h.subs, conn)
		close(ch)
	}
}

// Close drops every subscriber, e.g. on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, ch := range h.subs {
		delete(h.subs, conn)
		close(ch)
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
