package models

// Connection event types published to the audit topic.
const (
	EventRequestSent     = "request.sent"
	EventRequestReviewed = "request.reviewed"
)

// ConnectionEvent represents a connection request lifecycle event
type ConnectionEvent struct {
	EventID    string `json:"event_id"`     // Unique event identifier
	Type       string `json:"type"`         // request.sent or request.reviewed
	RequestID  string `json:"request_id"`   // Connection request ID
	FromUserID string `json:"from_user_id"` // Sender
	ToUserID   string `json:"to_user_id"`   // Recipient
	Status     string `json:"status"`       // Status after the event
	Timestamp  int64  `json:"timestamp"`    // Unix timestamp
}
