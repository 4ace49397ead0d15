package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulsaver-app/database"
	"haulsaver-app/internal/domain/access"
	"haulsaver-app/internal/domain/users"
)

// RequirePaidRegistration guards marketplace routes behind the one-time
// registration fee. Denial reasons map to distinct statuses so the SPA can
// send the user to login (401), nowhere (403) or the payment page (402).
func RequirePaidRegistration() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user *users.User
		if userID != "" {
			var u users.User
			if err := database.DB.Where("id = ?", userID).First(&u).Error; err == nil {
				user = &u
			}
		}

		decision := access.CanAccess(access.Route{
			RequiresAuth:             true,
			RequiresPaidRegistration: true,
		}, user)

		if decision.Allow {
			c.Next()
			return
		}

		switch decision.Reason {
		case access.ReasonNeedsAuth:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":  "Authentication required",
				"reason": string(decision.Reason),
			})
		case access.ReasonBanned:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":  "Account suspended",
				"reason": string(decision.Reason),
			})
		case access.ReasonNeedsPayment:
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error":  "Registration fee required",
				"reason": string(decision.Reason),
			})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":  "Access denied",
				"reason": string(decision.Reason),
			})
		}
	}
}
