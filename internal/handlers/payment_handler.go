package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models"
	"github.com/jeffleon2/draftea-mpesa-service/internal/models/dto"
	"github.com/jeffleon2/draftea-mpesa-service/internal/service"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	Submit(ctx context.Context, req dto.Payment) (*models.PaymentAttempt, error)
	PayForBooking(ctx context.Context, req dto.Payment, onUpdate service.UpdateFunc) (*models.PaymentAttempt, error)
	Cancel(bookingID string) error
	Latest(ctx context.Context, bookingID string) (*models.PaymentAttempt, error)
	History(ctx context.Context, bookingID string) ([]models.PaymentAttempt, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /payments
//
// Responds 202 once the payment prompt is on the payer's phone. With
// ?wait=true it holds the request until the attempt is terminal.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.Payment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The attempt outlives the request; cancellation goes through DELETE.
	ctx := context.WithoutCancel(c.Request.Context())

	var attempt *models.PaymentAttempt
	var err error
	status := http.StatusAccepted
	if c.Query("wait") == "true" {
		attempt, err = h.Service.PayForBooking(ctx, req, nil)
		status = http.StatusOK
	} else {
		attempt, err = h.Service.Submit(ctx, req)
	}

	if err != nil {
		code := errorStatus(err)
		body := gin.H{"error": err.Error()}
		if attempt != nil {
			body["attempt"] = dto.FromEntity(*attempt)
		}
		c.JSON(code, body)
		return
	}

	c.JSON(status, dto.FromEntity(*attempt))
}

// GET /payments/:booking_id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	attempt, err := h.Service.Latest(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(*attempt))
}

// GET /payments/:booking_id/attempts
func (h *PaymentHandler) ListAttempts(c *gin.Context) {
	attempts, err := h.Service.History(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	views := make([]dto.Attempt, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, dto.FromEntity(a))
	}
	c.JSON(http.StatusOK, views)
}

// DELETE /payments/:booking_id
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	if err := h.Service.Cancel(c.Param("booking_id")); err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "cancellation requested"})
}

func errorStatus(err error) int {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAlreadyInProgress):
		return http.StatusConflict
	case errors.Is(err, models.ErrInitiationFailed):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrAttemptNotFound), errors.Is(err, models.ErrNoActiveAttempt):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// HandleEvents processes pay and cancel requests from the booking service.
// Rejections that a redelivery cannot fix are logged and acknowledged.
func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PayRequestedTopic:
		var event models.PayRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing pay requested event %s", err.Error())
			return fmt.Errorf("error parsing pay requested event %w", err)
		}

		var req dto.Payment
		req.FromEvent(event)
		log := logrus.WithFields(logrus.Fields{"booking_id": event.BookingID, "trace_id": event.TraceID})

		// Attempts outlive the consumer; cancellation arrives on the cancel topic.
		attempt, err := h.Service.Submit(context.WithoutCancel(ctx), req)
		if err != nil {
			if errorStatus(err) == http.StatusInternalServerError {
				return fmt.Errorf("error starting payment for booking %s %w", event.BookingID, err)
			}
			log.Warnf("Pay request rejected: %s", err.Error())
			return nil
		}
		log.WithField("correlation_id", attempt.CorrelationID).Info("Pay request accepted")
	case models.CancelRequestedTopic:
		var event models.CancelRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing cancel requested event %s", err.Error())
			return fmt.Errorf("error parsing cancel requested event %w", err)
		}

		if err := h.Service.Cancel(event.BookingID); err != nil {
			logrus.WithFields(logrus.Fields{"booking_id": event.BookingID, "reason": event.Reason}).Infof("Nothing to cancel: %s", err.Error())
		}
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	return nil
}
