package sse

import (
	"net/http"
	"time"

	"github.com/osse101/CardHeist_Go/internal/logger"
)

// UserResolver extracts the acting user from a request
type UserResolver func(r *http.Request) (string, bool)

// Handler returns an HTTP handler streaming the acting user's events
func Handler(hub *Hub, resolve UserResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := resolve(r)
		if !ok {
			http.Error(w, ErrMsgMissingUser, http.StatusUnauthorized)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		client, err := hub.Register(userID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "total_clients", hub.ClientCount())
		}()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		write := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]string{"client_id": client.ID},
		}
		if !write(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub stopped
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
