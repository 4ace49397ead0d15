package loadsapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"haulsaver-app/database"
	"haulsaver-app/internal/domain/loads"
	"haulsaver-app/internal/domain/users"
)

// GET /api/loads — the caller's own loads, any status.
func GetMyLoads(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var mine []loads.Load
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&mine).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load listings"})
		return
	}

	c.JSON(http.StatusOK, buildLoadDTOs(mine))
}

// GET /api/loads/search — published loads, browsable without an account.
func SearchLoads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	results, err := searchPublished(database.DB, c.Query("origin"), c.Query("destination"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, buildLoadDTOs(results))
}

// GET /api/loads/:id
func GetLoadByID(c *gin.Context) {
	var load loads.Load
	if err := database.DB.Preload("User").Where("id = ?", c.Param("id")).First(&load).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	// Drafts are visible to their owner only
	if !load.IsPublished() && load.UserID.String() != c.GetString("user_id") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	dto := buildLoadDTO(load)
	dto.Contact = contactForViewer(load, currentViewer(c))
	c.JSON(http.StatusOK, dto)
}

// currentViewer resolves the optionally-authenticated caller, nil when
// anonymous or unknown.
func currentViewer(c *gin.Context) *users.User {
	userID := c.GetString("user_id")
	if userID == "" {
		return nil
	}
	var u users.User
	if err := database.DB.Where("id = ?", userID).First(&u).Error; err != nil {
		return nil
	}
	return &u
}

// POST /api/loads — shippers post loads.
func CreateLoad(c *gin.Context) {
	userID := c.GetString("user_id")
	if c.GetString("role") != users.RoleShipper {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only shippers can post loads"})
		return
	}

	var input LoadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var owner users.User
	if err := database.DB.Where("id = ?", userID).First(&owner).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	load := loads.Load{
		UserID:           owner.ID,
		Title:            input.Title,
		Description:      input.Description,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
		PickupDate:       input.PickupDate,
		WeightKG:         input.WeightKG,
		PriceCents:       input.PriceCents,
		Currency:         "usd",
		Status:           loads.StatusDraft,
	}

	if err := database.DB.Create(&load).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create load"})
		return
	}

	c.JSON(http.StatusCreated, buildLoadDTO(load))
}

// PUT /api/loads/:id
func UpdateLoad(c *gin.Context) {
	load, err := findOwnedLoad(database.DB, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	var input LoadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":             input.Title,
		"description":       input.Description,
		"pickup_location":   input.PickupLocation,
		"delivery_location": input.DeliveryLocation,
		"pickup_date":       input.PickupDate,
		"weight_kg":         input.WeightKG,
		"price_cents":       input.PriceCents,
	}
	if err := database.DB.Model(load).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update load"})
		return
	}

	c.JSON(http.StatusOK, buildLoadDTO(*load))
}

// DELETE /api/loads/:id
func DeleteLoad(c *gin.Context) {
	load, err := findOwnedLoad(database.DB, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	if err := database.DB.Delete(load).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete load"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Load deleted"})
}

// POST /api/loads/:id/publish
func PublishLoad(c *gin.Context) {
	setLoadStatus(c, loads.StatusPublished)
}

// POST /api/loads/:id/unpublish
func UnpublishLoad(c *gin.Context) {
	setLoadStatus(c, loads.StatusDraft)
}

// POST /api/loads/:id/close
func CloseLoad(c *gin.Context) {
	setLoadStatus(c, loads.StatusClosed)
}

func setLoadStatus(c *gin.Context, status string) {
	load, err := findOwnedLoad(database.DB, c.Param("id"), c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Load not found"})
		return
	}

	if err := database.DB.Model(load).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, buildLoadDTO(*load))
}
