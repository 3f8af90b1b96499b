// Package ws streams order lifecycle events to connected admin clients
// over gorilla/websocket. The feed is one-way: inbound frames beyond
// pings are discarded.
package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shashiranjanraj/gearbay/pkg/event"
	"github.com/shashiranjanraj/gearbay/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins by default — restrict in production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SetCheckOrigin replaces the default (allow-all) origin checker.
func SetCheckOrigin(fn func(r *http.Request) bool) {
	upgrader.CheckOrigin = fn
}

// Frame is one event delivered to feed subscribers.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	feed *Feed
	conn *websocket.Conn
	send chan []byte
}

// readPump drains the connection so pong handlers run; any payload the
// client sends is ignored.
func (c *client) readPump() {
	defer func() {
		c.feed.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("ws: unexpected close", "error", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Feed fans order events out to every connected client.
type Feed struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
}

// NewFeed creates a Feed. Call feed.Run() in a goroutine at startup.
func NewFeed() *Feed {
	return &Feed{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// ListenOrderEvents subscribes the feed to every order lifecycle event.
func (f *Feed) ListenOrderEvents() {
	for _, name := range []string{event.OrderSubmitted, event.OrderPaid, event.OrderShipped} {
		name := name
		event.Listen(name, func(payload interface{}) {
			f.Publish(name, payload)
		})
	}
}

// Publish queues one event frame for every connected client.
func (f *Feed) Publish(name string, data any) {
	frame, err := json.Marshal(Frame{Event: name, Data: data})
	if err != nil {
		logger.Error("ws: marshal frame", "event", name, "error", err)
		return
	}
	select {
	case f.broadcast <- frame:
	default:
		// Feed backlogged — drop the frame rather than block the caller.
	}
}

// Run starts the feed event loop. Must run in its own goroutine.
func (f *Feed) Run() {
	for {
		select {
		case c := <-f.register:
			f.clients[c] = true
			logger.Info("ws: client connected", "total", len(f.clients))

		case c := <-f.unregister:
			if _, ok := f.clients[c]; ok {
				delete(f.clients, c)
				close(c.send)
				logger.Info("ws: client disconnected", "total", len(f.clients))
			}

		case msg := <-f.broadcast:
			for c := range f.clients {
				select {
				case c.send <- msg:
				default:
					close(c.send)
					delete(f.clients, c)
				}
			}
		}
	}
}

// ClientCount returns the number of currently connected clients.
func (f *Feed) ClientCount() int { return len(f.clients) }

// Upgrade upgrades an HTTP connection and attaches it to the feed.
func (f *Feed) Upgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("ws: upgrade failed", "error", err)
		return
	}
	c := &client{feed: f, conn: conn, send: make(chan []byte, 256)}
	f.register <- c
	go c.writePump()
	go c.readPump()
}
