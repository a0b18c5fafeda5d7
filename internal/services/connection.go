package services

//go:generate mockgen -source=connection.go -destination=connection_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/dev-connect/internal/errs"
	"github.com/sbilibin2017/dev-connect/internal/logger"
	"github.com/sbilibin2017/dev-connect/internal/metrics"
	"github.com/sbilibin2017/dev-connect/internal/models"
	"github.com/segmentio/kafka-go"
)

// UserGetter looks up a single user.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ConnectionRequestReader defines read-only operations for connection requests.
type ConnectionRequestReader interface {
	GetByID(ctx context.Context, requestID uuid.UUID) (*models.ConnectionRequestDB, error)
	GetBetween(ctx context.Context, userA, userB uuid.UUID) (*models.ConnectionRequestDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *models.RequestStatus) ([]models.ConnectionRequestDB, error)
	ListReceived(ctx context.Context, userID uuid.UUID, status models.RequestStatus) ([]models.ConnectionRequestDB, error)
}

// ConnectionRequestWriter defines write operations for connection requests.
type ConnectionRequestWriter interface {
	Create(ctx context.Context, fromUserID, toUserID uuid.UUID, status models.RequestStatus) (*models.ConnectionRequestDB, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.RequestStatus) (*models.ConnectionRequestDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ConnectionService runs the send and review transitions of connection requests.
type ConnectionService struct {
	users       UserGetter
	reader      ConnectionRequestReader
	writer      ConnectionRequestWriter
	kafkaWriter KafkaWriter
}

// NewConnectionService creates a new ConnectionService. kafkaWriter may be nil.
func NewConnectionService(
	users UserGetter,
	reader ConnectionRequestReader,
	writer ConnectionRequestWriter,
	kafkaWriter KafkaWriter,
) *ConnectionService {
	return &ConnectionService{
		users:       users,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Send creates a connection request from fromUserID to the user identified by toUserID.
func (s *ConnectionService) Send(ctx context.Context, fromUserID uuid.UUID, toUserID, status string) (*models.ConnectionRequestDB, error) {
	st := models.RequestStatus(status)
	if !st.CanSend() {
		return nil, errs.New(errs.KindInvalidInput, "Invalid status type: "+status)
	}

	toID, err := uuid.Parse(toUserID)
	if err != nil {
		return nil, errs.New(errs.KindInvalidInput, "Invalid user id")
	}
	if toID == fromUserID {
		return nil, errs.New(errs.KindInvalidInput, "Cannot send a connection request to yourself")
	}

	// Lookups run one after the other: on PostgreSQL they share the request transaction.
	fromUser, err := s.users.GetByID(ctx, fromUserID)
	if err != nil {
		logger.Log.Errorw("failed to get sender", "from", fromUserID, "error", err)
		return nil, err
	}
	toUser, err := s.users.GetByID(ctx, toID)
	if err != nil {
		logger.Log.Errorw("failed to get recipient", "to", toID, "error", err)
		return nil, err
	}
	if fromUser == nil || toUser == nil {
		return nil, errs.New(errs.KindNotFound, "User not found")
	}

	existing, err := s.reader.GetBetween(ctx, fromUserID, toID)
	if err != nil {
		logger.Log.Errorw("failed to check existing request", "from", fromUserID, "to", toID, "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errs.New(errs.KindConflict, "Connection request already exists")
	}

	req, err := s.writer.Create(ctx, fromUserID, toID, st)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			return nil, errs.New(errs.KindConflict, "Connection request already exists")
		}
		logger.Log.Errorw("failed to save request", "from", fromUserID, "to", toID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.EventRequestSent, req)
	return req, nil
}

// Review moves an interested request received by currentUserID to accepted or rejected.
func (s *ConnectionService) Review(ctx context.Context, currentUserID uuid.UUID, requestID, status string) (*models.ConnectionRequestDB, error) {
	st := models.RequestStatus(status)
	if !st.CanReview() {
		return nil, errs.New(errs.KindInvalidInput, "Invalid status type: "+status)
	}

	reqID, err := uuid.Parse(requestID)
	if err != nil {
		return nil, errs.New(errs.KindInvalidInput, "Invalid request id")
	}

	req, err := s.reader.GetByID(ctx, reqID)
	if err != nil {
		logger.Log.Errorw("failed to get request", "request_id", reqID, "error", err)
		return nil, err
	}
	if req == nil {
		return nil, errs.New(errs.KindNotFound, "Connection request not found")
	}
	if req.ToUserID != currentUserID {
		return nil, errs.New(errs.KindForbidden, "Not authorized to review this request")
	}
	if req.Status != models.StatusInterested {
		return nil, notReviewable(req.Status)
	}

	updated, err := s.writer.UpdateStatus(ctx, reqID, models.StatusInterested, st)
	if err != nil {
		logger.Log.Errorw("failed to update request", "request_id", reqID, "error", err)
		return nil, err
	}
	if updated == nil {
		// Reviewed concurrently; report whatever won.
		current, err := s.reader.GetByID(ctx, reqID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, errs.New(errs.KindNotFound, "Connection request not found")
		}
		return nil, notReviewable(current.Status)
	}

	s.publishEvent(ctx, models.EventRequestReviewed, updated)
	return updated, nil
}

func notReviewable(current models.RequestStatus) error {
	return errs.New(errs.KindInvalidState, "Connection request cannot be reviewed").
		WithDetail("currentStatus", current)
}

// publishEvent counts a request lifecycle event and publishes it to Kafka.
func (s *ConnectionService) publishEvent(ctx context.Context, eventType string, req *models.ConnectionRequestDB) {
	metrics.RecordConnectionEvent(eventType, string(req.Status))

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "request_id", req.RequestID)
		return
	}

	event := models.ConnectionEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		RequestID:  req.RequestID.String(),
		FromUserID: req.FromUserID.String(),
		ToUserID:   req.ToUserID.String(),
		Status:     string(req.Status),
		Timestamp:  time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "request_id", event.RequestID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.RequestID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "request_id", event.RequestID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "request_id", event.RequestID, "type", eventType)
	}
}
