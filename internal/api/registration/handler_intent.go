package registrationapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"haulsaver-app/internal/registration"
)

// Handler carries the fee workflow services for the /api/registration surface.
type Handler struct {
	Issuer  *registration.Issuer
	Service *registration.Service
	Logger  *zap.Logger
}

// POST /api/registration/intent
// Body: {userId, email?, feeType?}. Amount and currency come from config.
func (h *Handler) CreateIntent(c *gin.Context) {
	var body struct {
		UserID  string `json:"userId"`
		Email   string `json:"email"`
		FeeType string `json:"feeType"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.Issuer.CreateOrReuseIntent(c.Request.Context(), registration.IntentRequest{
		UserID:  body.UserID,
		Email:   body.Email,
		FeeType: registration.FeeType(body.FeeType),
	})
	if err != nil {
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/registration/intent/:id — read-only lookup for debugging.
func (h *Handler) GetIntent(c *gin.Context) {
	intent, err := h.Issuer.LookupIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		var vErr *registration.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               intent.ID,
		"status":           intent.Status,
		"amount":           intent.Amount,
		"currency":         intent.Currency,
		"lastPaymentError": intent.LastError,
	})
}

// respondWorkflowError maps the workflow taxonomy onto HTTP statuses. Raw
// processor messages stay out of responses.
func respondWorkflowError(c *gin.Context, err error) {
	var (
		vErr   *registration.ValidationError
		aErr   *registration.AuthorizationError
		cfgErr *registration.ConfigurationError
		pErr   *registration.ProcessorError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
	case errors.As(err, &aErr):
		c.JSON(http.StatusForbidden, gin.H{"error": aErr.Msg})
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment processing is not configured"})
	case errors.As(err, &pErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not start payment, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not start payment, please try again"})
	}
}
