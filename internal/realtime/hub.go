package realtime

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

type inbound struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

type ack struct {
	Event   string `json:"event"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
}

// Hub fans messages published on Redis out to websocket subscribers of this
// process.
type Hub struct {
	rdb    *redis.Client
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[string]map[*client]struct{}
}

func NewHub(rdb *redis.Client, logger ...*zap.Logger) *Hub {
	l := zap.L().Named("realtime.hub")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("realtime.hub")
	}
	return &Hub{
		rdb:    rdb,
		logger: l,
		subs:   make(map[string]map[*client]struct{}),
	}
}

// Run relays Redis broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	ps := h.rdb.PSubscribe(ctx, keyPrefix+"*")
	defer ps.Close()

	if _, err := ps.Receive(ctx); err != nil {
		return err
	}
	h.logger.Info("realtime hub subscribed", zap.String("pattern", keyPrefix+"*"))

	ch := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			h.dispatch(strings.TrimPrefix(msg.Channel, keyPrefix), []byte(msg.Payload))
		}
	}
}

func (h *Hub) dispatch(channel string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.subs[channel] {
		c.enqueue(payload)
	}
}

func (h *Hub) subscribe(c *client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subs[channel]
	if !ok {
		set = make(map[*client]struct{})
		h.subs[channel] = set
	}
	set[c] = struct{}{}
	c.channels[channel] = struct{}{}
}

func (h *Hub) unsubscribe(c *client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unsubscribeLocked(c, channel)
}

func (h *Hub) unsubscribeLocked(c *client, channel string) {
	if set, ok := h.subs[channel]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.subs, channel)
		}
	}
	delete(c.channels, channel)
}

// remove detaches c from every channel and closes its send queue. Holding the
// write lock guarantees no dispatch is still writing to it.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for channel := range c.channels {
		h.unsubscribeLocked(c, channel)
	}
	close(c.send)
}

func (h *Hub) subscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channel])
}

// Attach serves conn for userID until the peer disconnects.
func (h *Hub) Attach(conn *websocket.Conn, userID string) {
	c := &client{
		hub:      h,
		conn:     conn,
		userID:   userID,
		send:     make(chan []byte, sendBuffer),
		channels: make(map[string]struct{}),
	}

	go c.writePump()
	c.readPump()
}

type client struct {
	hub      *Hub
	conn     *websocket.Conn
	userID   string
	send     chan []byte
	channels map[string]struct{}
}

func (c *client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		c.hub.logger.Warn("dropping message for slow subscriber", zap.String("user_id", c.userID))
	}
}

func (c *client) reply(a ack) {
	payload, _ := json.Marshal(a)
	c.enqueue(payload)
}

func (c *client) readPump() {
	defer func() {
		c.hub.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg inbound
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("websocket closed", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}

		switch msg.Action {
		case "subscribe":
			if !CanSubscribe(c.userID, msg.Channel) {
				c.reply(ack{Event: "subscription_error", Channel: msg.Channel, Message: "forbidden"})
				continue
			}
			c.hub.subscribe(c, msg.Channel)
			c.reply(ack{Event: "subscription_succeeded", Channel: msg.Channel})
		case "unsubscribe":
			c.hub.unsubscribe(c, msg.Channel)
			c.reply(ack{Event: "unsubscribed", Channel: msg.Channel})
		case "ping":
			c.reply(ack{Event: "pong"})
		default:
			c.reply(ack{Event: "error", Message: "unknown action"})
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
