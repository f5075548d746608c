package serviceability_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"delivery-estimator/internal/entities"
	serviceabilityservice "delivery-estimator/internal/service/serviceability"
	"delivery-estimator/pkg/logger"
	"github.com/IBM/sarama"
)

var errMissingTurnaround = errors.New("tat is required unless deleted")

type Handler struct {
	serviceabilityService    Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, serviceabilityService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "serviceability.changed"))

	return &Handler{
		serviceabilityService:    serviceabilityService,
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
				h.log.Info("serviceability.changed: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("serviceability.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim must
// stop so the message is redelivered; every other outcome marks the message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	change, err := decode(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("serviceability.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("pincode", change.Pincode),
		logger.NewField("provider", change.Provider.String()),
		logger.NewField("tat", change.TurnaroundDays),
		logger.NewField("deleted", change.Deleted),
		logger.NewField("offset", message.Offset),
	)

	err = h.serviceabilityService.ProcessServiceabilityChange(ctx, change)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("serviceability.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, serviceabilityservice.ErrInvalidPincode),
			errors.Is(err, serviceabilityservice.ErrInvalidProvider),
			errors.Is(err, serviceabilityservice.ErrInvalidTurnaround),
			errors.Is(err, serviceabilityservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("serviceability.changed handler rejected invalid entry")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("serviceability.changed handler failed to apply change")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if !change.Deleted && !change.Provider.IsKnown() {
		msgLog.Warn("serviceability.changed: unknown provider, estimates for this pincode are unavailable")
	}
	msgLog.Info("serviceability.changed: processed")
	sess.MarkMessage(message, "")
	return false
}

func decode(value []byte) (entities.ServiceabilityChange, error) {
	var event changedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return entities.ServiceabilityChange{}, err
	}

	change := entities.ServiceabilityChange{
		Pincode:  event.Pincode,
		Provider: entities.ParseProvider(event.Provider),
		Deleted:  event.Deleted,
	}
	if !event.Deleted {
		if event.TurnaroundDays == nil {
			return entities.ServiceabilityChange{}, errMissingTurnaround
		}
		change.TurnaroundDays = *event.TurnaroundDays
	}
	return change, nil
}
