package sse

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/metrics"
	"github.com/osse101/CardHeist_Go/internal/notification"
)

// ErrHubClosed is returned by Register after Stop
var ErrHubClosed = errors.New(ErrMsgHubClosed)

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one open stream of one user
type Client struct {
	ID           string
	UserID       string
	EventChannel chan Event
}

// Hub tracks open streams per user and delivers events to them.
// It implements notification.Sink.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[string]*Client
	closed  bool
}

var _ notification.Sink = (*Hub)(nil)

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[string]*Client)}
}

// Register opens a client for userID
func (h *Hub) Register(userID string) (*Client, error) {
	client := &Client{
		ID:           uuid.NewString(),
		UserID:       userID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrHubClosed
	}
	streams, ok := h.clients[userID]
	if !ok {
		streams = make(map[string]*Client)
		h.clients[userID] = streams
	}
	streams[client.ID] = client
	metrics.SSEClients.Inc()
	return client, nil
}

// Unregister closes and removes client; unknown clients are ignored
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	streams, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := streams[client.ID]; !ok {
		return
	}
	delete(streams, client.ID)
	if len(streams) == 0 {
		delete(h.clients, client.UserID)
	}
	close(client.EventChannel)
	metrics.SSEClients.Dec()
}

// Notify sends payload to every open stream of userID as a theft
// notification event. It returns notification.ErrNoListener when none is open.
func (h *Hub) Notify(ctx context.Context, userID string, payload any) error {
	return h.Send(ctx, userID, EventTypeTheftNotifications, payload)
}

// Send delivers an event of eventType to userID's streams without blocking.
// A client whose buffer is full misses the event.
func (h *Hub) Send(ctx context.Context, userID, eventType string, payload any) error {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	streams := h.clients[userID]
	if len(streams) == 0 {
		return notification.ErrNoListener
	}
	for _, client := range streams {
		select {
		case client.EventChannel <- event:
		default:
			logger.FromContext(ctx).Warn(LogMsgEventDropped, "client_id", client.ID, "recipient_id", userID)
		}
	}
	return nil
}

// ClientCount returns the number of open streams across all users
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, streams := range h.clients {
		n += len(streams)
	}
	return n
}

// Stop closes every client channel and refuses new registrations
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, streams := range h.clients {
		for _, client := range streams {
			close(client.EventChannel)
			metrics.SSEClients.Dec()
		}
	}
	h.clients = make(map[string]map[string]*Client)
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
