package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit bounds one catchup response. Clients that missed more events
// receive a catchup.overflow and should reload over REST.
const catchupLimit = 200

// listenTimeout bounds how long a room subscription may block on LISTEN.
const listenTimeout = 10 * time.Second

// CatchupQuerier queries persisted events for catchup. Implemented by
// Service.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, room string, sinceID int64, limit int) ([]CatchupEvent, error)
}

// ClientMessage is the inbound WebSocket protocol.
type ClientMessage struct {
	Action      string `json:"action"` // subscribe | unsubscribe | catchup | ping
	Room        string `json:"room,omitempty"`
	LastEventID *int64 `json:"lastEventId,omitempty"`
}

// Connection is one WebSocket client. subscriptions is touched only by the
// goroutine that owns the connection's read loop.
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// ConnectionManager tracks WebSocket connections and their room
// subscriptions, and fans incoming NOTIFY payloads out to subscribers. One
// instance per process.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[string]*Connection

	roomMu sync.RWMutex
	rooms  map[string]map[string]bool // room → connection ids

	catchup CatchupQuerier

	listenerMu sync.RWMutex
	listener   *NotifyListener

	writeTimeout time.Duration
}

// NewConnectionManager creates the manager.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		connections:  make(map[string]*Connection),
		rooms:        make(map[string]map[string]bool),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NOTIFY listener for dynamic LISTEN/UNLISTEN. Called
// once during startup.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs one client's read loop until the socket closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &Connection{
		ID:            uuid.NewString(),
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{
		"type":         "connection.established",
		"connectionId": c.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.ID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, c, &msg)
	}
}

// Broadcast sends a NOTIFY payload to every connection subscribed to the
// room. Satisfies Sink.
func (m *ConnectionManager) Broadcast(room string, payload []byte) {
	m.roomMu.RLock()
	ids := make([]string, 0, len(m.rooms[room]))
	for id := range m.rooms[room] {
		ids = append(ids, id)
	}
	m.roomMu.RUnlock()

	// Snapshot pointers before sending so slow writes cannot stall
	// register/unregister.
	m.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.connections[id]; ok {
			conns = append(conns, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range conns {
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send to WebSocket client", "connection_id", c.ID, "error", err)
		}
	}
}

// ActiveConnections returns the connection count.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if err := ValidateRoom(msg.Room); err != nil {
			m.sendJSON(c, map[string]string{"type": "error", "message": err.Error()})
			return
		}
		if err := m.subscribe(c, msg.Room); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"room":    msg.Room,
				"message": "failed to subscribe to room",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type": "subscription.confirmed",
			"room": msg.Room,
		})
		// Late subscribers replay the room history from the start.
		m.handleCatchup(ctx, c, msg.Room, 0)

	case "unsubscribe":
		if msg.Room == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room is required"})
			return
		}
		m.unsubscribe(c, msg.Room)

	case "catchup":
		if msg.Room == "" || msg.LastEventID == nil {
			m.sendJSON(c, map[string]string{"type": "error", "message": "room and lastEventId are required"})
			return
		}
		m.handleCatchup(ctx, c, msg.Room, *msg.LastEventID)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe adds the connection to a room, starting LISTEN when it is the
// first subscriber. LISTEN completes before this returns, so the follow-up
// catchup cannot miss events published in between.
func (m *ConnectionManager) subscribe(c *Connection, room string) error {
	m.roomMu.Lock()
	needsListen := false
	if _, ok := m.rooms[room]; !ok {
		m.rooms[room] = make(map[string]bool)
		needsListen = true
	}
	m.rooms[room][c.ID] = true
	m.roomMu.Unlock()

	if needsListen {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, room); err != nil {
				slog.Error("Failed to LISTEN for room", "room", room, "error", err)
				m.roomMu.Lock()
				delete(m.rooms, room)
				m.roomMu.Unlock()
				return fmt.Errorf("LISTEN for room %s: %w", room, err)
			}
		}
	}

	c.subscriptions[room] = true
	return nil
}

// unsubscribe drops the connection from a room, stopping LISTEN when it was
// the last subscriber.
func (m *ConnectionManager) unsubscribe(c *Connection, room string) {
	m.roomMu.Lock()
	lastSubscriber := false
	if subs, ok := m.rooms[room]; ok {
		delete(subs, c.ID)
		if len(subs) == 0 {
			delete(m.rooms, room)
			lastSubscriber = true
		}
	}
	m.roomMu.Unlock()
	delete(c.subscriptions, room)

	if lastSubscriber {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			ctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Unsubscribe(ctx, room); err != nil {
				slog.Warn("Failed to UNLISTEN room", "room", room, "error", err)
			}
		}
	}
}

// handleCatchup replays persisted room events newer than sinceID.
func (m *ConnectionManager) handleCatchup(ctx context.Context, c *Connection, room string, sinceID int64) {
	if m.catchup == nil {
		return
	}
	catchupEvents, err := m.catchup.GetCatchupEvents(ctx, room, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "room", room, "error", err)
		m.sendJSON(c, map[string]string{
			"type": "catchup.error",
			"room": room,
		})
		return
	}

	overflow := len(catchupEvents) > catchupLimit
	if overflow {
		catchupEvents = catchupEvents[:catchupLimit]
	}

	for _, e := range catchupEvents {
		payload := make(map[string]interface{}, len(e.Payload)+1)
		for k, v := range e.Payload {
			payload[k] = v
		}
		payload["db_event_id"] = e.ID
		m.sendJSON(c, payload)
	}

	if overflow {
		m.sendJSON(c, map[string]string{
			"type": "catchup.overflow",
			"room": room,
		})
		return
	}
	m.sendJSON(c, map[string]string{
		"type": "catchup.complete",
		"room": room,
	})
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregister(c *Connection) {
	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	for room := range c.subscriptions {
		m.unsubscribe(c, room)
	}
	c.cancel()
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to marshal WebSocket message", "error", err)
		return
	}
	if err := m.sendRaw(c, raw); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, payload []byte) error {
	ctx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(ctx, websocket.MessageText, payload)
}
