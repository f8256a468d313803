package notification

// Log messages
const (
	LogMsgQueueFull      = "Notification queue full, dropping theft notification"
	LogMsgListFailed     = "Failed to load theft notifications for push"
	LogMsgDeliveryFailed = "Failed to deliver theft notification"
	LogMsgDelivered      = "Theft notification delivered"
	LogMsgNoListener     = "No listener for theft notification"
)
