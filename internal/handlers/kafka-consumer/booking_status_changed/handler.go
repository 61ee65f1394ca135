package booking_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"shipease/internal/entities"
	bookingservice "shipease/internal/service/booking"
	"shipease/pkg/logger"
)

type Handler struct {
	bookingService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, bookingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		bookingService:           bookingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("booking.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("booking.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать (закрыта сессия).
// Такое сообщение не коммитится и будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil || event.BookingID == "" || event.Status == "" {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("booking.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("booking", event.BookingID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.status.changed processing")

	var res *entities.UpdateResult
	if event.withAssignment() {
		res, err = h.bookingService.UpdateStatusAndAssignment(ctx, event.BookingID, event.toModify())
	} else {
		res, err = h.bookingService.UpdateStatusOnly(ctx, event.BookingID, &event.Status)
	}
	if err != nil {
		switch {
		case sess.Context().Err() != nil:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler session closed, message will be reprocessed")
			return true

		case errors.Is(err, context.DeadlineExceeded):
			// медленное хранилище: партиция продолжает читаться, сообщение не отмечается
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("timeout", h.messageProcessingTimeout),
			).Error("booking.status.changed handler processing timeout")
			return false

		case errors.Is(err, bookingservice.ErrBookingNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler unknown booking")

		case errors.Is(err, bookingservice.ErrInvalidBookingID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.status.changed handler invalid booking id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("booking.status.changed handler failed to update booking")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("matched", res.MatchedCount),
		logger.NewField("modified", res.ModifiedCount),
	).Info("booking.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
