package notifier

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"economy-engine/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 5 * time.Second
	clientBufSize  = 16
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
)

type event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type lotEvent struct {
	LotID      string `json:"lot_id"`
	Title      string `json:"title"`
	CurrentBid int64  `json:"current_bid"`
	BidCount   int    `json:"bid_count"`
	Status     string `json:"status"`
	EndTime    string `json:"end_time"`
}

type client struct {
	conn      *websocket.Conn
	send      chan []byte
	accountID int64
}

// Hub fans auction events out to connected websocket clients. Delivery is
// best effort: a slow client loses messages rather than stalling the hub,
// and a send never blocks a settlement.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handler upgrades a gin request to a websocket subscription. Clients may
// identify themselves with an account_id query parameter to also receive
// their personal outbid notices.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	accountID, _ := strconv.ParseInt(c.Query("account_id"), 10, 64)
	cl := &client{
		conn:      conn,
		send:      make(chan []byte, clientBufSize),
		accountID: accountID,
	}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(cl)
	h.readLoop(cl)
}

func (h *Hub) remove(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
}

func (h *Hub) readLoop(cl *client) {
	defer func() {
		h.remove(cl)
		cl.conn.Close()
	}()
	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(cl *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-cl.send:
			if !ok {
				_ = cl.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(time.Second))
				return
			}
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) broadcast(msg []byte, only func(*client) bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for cl := range h.clients {
		if only != nil && !only(cl) {
			continue
		}
		select {
		case cl.send <- msg:
		default:
			// Client is not keeping up; drop the message.
		}
	}
}

func marshalLot(lot *model.AuctionLot) lotEvent {
	return lotEvent{
		LotID:      lot.LotID,
		Title:      lot.Title,
		CurrentBid: lot.CurrentBid,
		BidCount:   lot.BidCount,
		Status:     string(lot.Status),
		EndTime:    lot.EndTime.Format(time.RFC3339),
	}
}

// LotUpdated pushes the lot's new state to every subscriber.
func (h *Hub) LotUpdated(lot *model.AuctionLot) {
	msg, err := json.Marshal(event{Type: "auction_update", Data: marshalLot(lot)})
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal auction update")
		return
	}
	h.broadcast(msg, nil)
}

// Outbid tells one account it has lost the top spot on a lot.
func (h *Hub) Outbid(accountID int64, lot *model.AuctionLot) {
	msg, err := json.Marshal(event{Type: "outbid", Data: marshalLot(lot)})
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal outbid notice")
		return
	}
	h.broadcast(msg, func(cl *client) bool { return cl.accountID == accountID })
}
