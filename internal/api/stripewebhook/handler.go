package stripewebhooks

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
	"go.uber.org/zap"

	"haulsaver-app/internal/registration"
)

const maxBodyBytes = 65536

// Handler is the Stripe webhook endpoint. Signature verification runs over
// the raw body before anything is parsed; once a signature checks out the
// endpoint always acknowledges with 200 so Stripe never enters a redelivery
// storm over our own downstream failures.
type Handler struct {
	SigningSecret string
	Events        registration.EventStore
	Service       *registration.Service
	Logger        *zap.Logger
}

// POST /api/registration/webhook
func (h *Handler) HandleWebhook(c *gin.Context) {
	payload, err := readRawBody(c, maxBodyBytes)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		h.SigningSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.Logger.Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	first, err := h.Events.MarkProcessed(c.Request.Context(), event.ID, string(event.Type))
	if err != nil {
		// Dedup store down: keep going, the profile update is an
		// idempotent upsert anyway.
		h.Logger.Error("webhook dedup store failed", zap.String("event_id", event.ID), zap.Error(err))
	} else if !first {
		h.Logger.Info("duplicate webhook delivery",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
		)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		h.handleIntentSucceeded(c.Request.Context(), event)
	case "payment_intent.payment_failed":
		h.logIntentFailed(event)
	default:
		h.Logger.Info("ignoring webhook event", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *Handler) logIntentFailed(event stripe.Event) {
	h.Logger.Warn("payment intent failed",
		zap.String("event_id", event.ID),
	)
}

func readRawBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
