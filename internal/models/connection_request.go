package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the state of a connection request.
type RequestStatus string

const (
	StatusIgnored    RequestStatus = "ignored"
	StatusInterested RequestStatus = "interested"
	StatusAccepted   RequestStatus = "accepted"
	StatusRejected   RequestStatus = "rejected"
)

// CanSend reports whether a request may be created with this status.
func (s RequestStatus) CanSend() bool {
	return s == StatusIgnored || s == StatusInterested
}

// CanReview reports whether a reviewer may move a request into this status.
func (s RequestStatus) CanReview() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ConnectionRequestDB represents a directed connection request between two users
// swagger:model ConnectionRequest
type ConnectionRequestDB struct {
	RequestID  uuid.UUID     `json:"requestId" db:"request_id"`    // Primary key
	FromUserID uuid.UUID     `json:"fromUserId" db:"from_user_id"` // Sender
	ToUserID   uuid.UUID     `json:"toUserId" db:"to_user_id"`     // Recipient
	Status     RequestStatus `json:"status" db:"status"`           // Current status
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`    // Creation timestamp
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`    // Last update timestamp
}

// Counterpart returns the party of the request that is not userID.
func (c *ConnectionRequestDB) Counterpart(userID uuid.UUID) uuid.UUID {
	if c.FromUserID == userID {
		return c.ToUserID
	}
	return c.FromUserID
}

// ConnectionView is an accepted connection seen from one of its parties
// swagger:model ConnectionView
type ConnectionView struct {
	ConnectionID uuid.UUID     `json:"connectionId"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	User         UserSummary   `json:"user"`
}

// ReceivedRequestView is a pending request seen by its recipient
// swagger:model ReceivedRequestView
type ReceivedRequestView struct {
	RequestID uuid.UUID     `json:"requestId"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	User      UserSummary   `json:"user"`
}
