package registrationapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"haulsaver-app/internal/registration"
)

// POST /api/registration/mark-paid
// Fallback for environments without a reachable webhook (local dev). The
// session user must be the target user; the webhook remains authoritative
// and its later write wins.
func (h *Handler) MarkPaid(c *gin.Context) {
	sessionUserID := c.GetString("user_id")
	if sessionUserID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		UserID  string `json:"userId"`
		Payment struct {
			IntentID string `json:"intentId"`
		} `json:"payment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.Service.MarkPaid(c.Request.Context(), sessionUserID, body.UserID, body.Payment.IntentID)
	if err != nil {
		var storeErr *registration.ProfileStoreError
		if errors.As(err, &storeErr) {
			// The payment is real; the profile write is queued for
			// reconciliation. Don't tell the payer their payment failed.
			h.Logger.Error("mark-paid profile update failed", zap.String("user_id", sessionUserID), zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
		respondWorkflowError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
