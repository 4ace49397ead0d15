package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haulsaver-app/database"
	"haulsaver-app/internal/domain/billing"
	"haulsaver-app/internal/domain/users"
	"haulsaver-app/internal/registration"
)

type Handler struct {
	Service *registration.Service
}

type AdminUser struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Lastname           string     `json:"lastname"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	IsVerified         bool       `json:"is_verified"`
	Banned             bool       `json:"banned"`
	RegistrationPaid   bool       `json:"registration_paid"`
	RegistrationPaidAt *time.Time `json:"registration_paid_at,omitempty"`
	ProfileUnlockPaid  bool       `json:"profile_unlock_paid"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AdminPayment struct {
	ID              uint      `json:"id"`
	Email           string    `json:"email"`
	Purpose         string    `json:"purpose"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	Source          string    `json:"source"`
	ProfileUpdated  bool      `json:"profile_updated"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdminStats struct {
	TotalUsers   int64 `json:"total_users"`
	PaidUsers    int64 `json:"paid_users"`
	RevenueCents int64 `json:"revenue_cents"`
	Unreconciled int64 `json:"unreconciled_payments"`
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	var stats AdminStats
	database.DB.Model(&users.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&users.User{}).Where("registration_paid = ?", true).Count(&stats.PaidUsers)
	database.DB.Model(&billing.FeePayment{}).
		Where("status = ?", "succeeded").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.RevenueCents)
	database.DB.Model(&billing.FeePayment{}).Where("profile_updated = ?", false).Count(&stats.Unreconciled)

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:                 u.ID.String(),
			Name:               u.Name,
			Lastname:           u.Lastname,
			Email:              u.Email,
			Role:               u.Role,
			IsVerified:         u.IsVerified,
			Banned:             u.Banned,
			RegistrationPaid:   u.RegistrationPaid,
			RegistrationPaidAt: u.RegistrationPaidAt,
			ProfileUnlockPaid:  u.ProfileUnlockPaid,
			CreatedAt:          u.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListAllPayments(c *gin.Context) {
	var payments []billing.FeePayment
	if err := database.DB.Preload("User").Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, buildAdminPayments(payments))
}

// ListUnreconciled returns payments whose money moved but whose profile
// update failed, leaving a paying user locked out.
func (h *Handler) ListUnreconciled(c *gin.Context) {
	var payments []billing.FeePayment
	if err := database.DB.
		Preload("User").
		Where("profile_updated = ?", false).
		Order("created_at ASC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reconciliation queue"})
		return
	}
	c.JSON(http.StatusOK, buildAdminPayments(payments))
}

// ReconcilePayment re-applies the paid flag for one stuck payment.
func (h *Handler) ReconcilePayment(c *gin.Context) {
	var payment billing.FeePayment
	if err := database.DB.Where("payment_intent_id = ?", c.Param("intentId")).First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	err := h.Service.ApplyPaid(c.Request.Context(), payment.UserID, payment.Purpose, registration.PaymentReference{
		IntentID: payment.PaymentIntentID,
		Amount:   payment.Amount,
		Currency: payment.Currency,
		Status:   payment.Status,
	}, payment.Source)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Profile update failed again"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// BanUser suspends an account. Bans never touch the paid flags.
func (h *Handler) BanUser(c *gin.Context) {
	res := database.DB.Model(&users.User{}).
		Where("id = ?", c.Param("id")).
		Update("banned", true)
	if res.Error != nil || res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func buildAdminPayments(payments []billing.FeePayment) []AdminPayment {
	out := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		out = append(out, AdminPayment{
			ID:              p.ID,
			Email:           p.User.Email,
			Purpose:         p.Purpose,
			PaymentIntentID: p.PaymentIntentID,
			Amount:          p.Amount,
			Currency:        p.Currency,
			Status:          p.Status,
			Source:          p.Source,
			ProfileUpdated:  p.ProfileUpdated,
			CreatedAt:       p.CreatedAt,
		})
	}
	return out
}
