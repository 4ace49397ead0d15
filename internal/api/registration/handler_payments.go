package registrationapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulsaver-app/database"
	"haulsaver-app/internal/domain/billing"
)

// GET /api/payments — the authenticated user's own fee payments.
func (h *Handler) GetPaymentHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var payments []billing.FeePayment
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]gin.H, 0, len(payments))
	for _, p := range payments {
		out = append(out, gin.H{
			"paymentIntentId": p.PaymentIntentID,
			"purpose":         p.Purpose,
			"amount":          p.Amount,
			"currency":        p.Currency,
			"status":          p.Status,
			"createdAt":       p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
