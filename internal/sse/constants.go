package sse

import "time"

// Buffer sizes
const (
	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 16
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeConnected is sent once when a stream opens
	EventTypeConnected = "connected"

	// EventTypeTheftNotifications carries the victim's full theft notification list
	EventTypeTheftNotifications = "theft.notifications"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE client buffer full, dropping event"
	LogMsgWriteError         = "Failed to write SSE event"
)

const (
	ErrMsgStreamingUnsupported = "streaming not supported"
	ErrMsgMissingUser          = "missing user identity"
	ErrMsgHubClosed            = "event hub closed"
)
