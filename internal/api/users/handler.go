package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulsaver-app/database"
	"haulsaver-app/internal/domain/access"
	"haulsaver-app/internal/domain/users"
)

// GET /api/me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	decision := access.CanAccess(access.Route{
		RequiresAuth:             true,
		RequiresPaidRegistration: true,
	}, &user)

	resp := MeResponse{
		User: UserDTO{
			ID:          user.ID.String(),
			Email:       user.Email,
			Name:        user.Name,
			Lastname:    user.Lastname,
			Tel:         stringPtrIfNotEmpty(user.Tel),
			Role:        user.Role,
			CompanyName: user.CompanyName,
			IsVerified:  user.IsVerified,
		},
		Payment: PaymentDTO{
			RegistrationPaid:   users.IsRegistrationPaid(&user),
			RegistrationPaidAt: user.RegistrationPaidAt,
			ProfileUnlockPaid:  users.IsProfileUnlockPaid(&user),
			Reference:          buildReferenceDTO(user),
		},
		Access: AccessDTO{
			CanUseMarketplace: decision.Allow,
			Reason:            string(decision.Reason),
		},
	}

	c.JSON(http.StatusOK, resp)
}

func buildReferenceDTO(user users.User) *ReferenceDTO {
	if user.PaymentIntentID == nil {
		return nil
	}
	ref := &ReferenceDTO{IntentID: *user.PaymentIntentID}
	if user.PaymentAmount != nil {
		ref.Amount = *user.PaymentAmount
	}
	if user.PaymentCurrency != nil {
		ref.Currency = *user.PaymentCurrency
	}
	if user.PaymentStatus != nil {
		ref.Status = *user.PaymentStatus
	}
	return ref
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
