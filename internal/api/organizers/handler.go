package organizers

import (
	"net/http"
	"strings"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/organizers"

	"github.com/gin-gonic/gin"
)

func ListOrganizers(c *gin.Context) {
	var list []organizers.Organizer
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuatkan senarai penganjur."})
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetOrganizer(c *gin.Context) {
	var org organizers.Organizer
	if err := database.DB.First(&org, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Penganjur tidak ditemui."})
		return
	}
	c.JSON(http.StatusOK, org)
}

func CreateOrganizer(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
		Email string `json:"email"`
		Code  string `json:"organizer_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org := organizers.Organizer{
		Name:   input.Name,
		Phone:  input.Phone,
		Email:  input.Email,
		Code:   strings.ToUpper(strings.TrimSpace(input.Code)),
		Status: organizers.StatusPending,
	}

	if err := database.DB.Create(&org).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Kod penganjur mungkin sudah wujud."})
		return
	}

	c.JSON(http.StatusOK, org)
}

func UpdateOrganizer(c *gin.Context) {
	var org organizers.Organizer
	if err := database.DB.First(&org, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Penganjur tidak ditemui."})
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
		Email *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiada perubahan."})
		return
	}

	if err := database.DB.Model(&org).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengemas kini penganjur."})
		return
	}

	c.JSON(http.StatusOK, org)
}

// ApproveOrganizer moves a pending organizer to active.
func ApproveOrganizer(c *gin.Context) {
	var org organizers.Organizer
	if err := database.DB.First(&org, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Penganjur tidak ditemui."})
		return
	}

	if org.Status == organizers.StatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Penganjur sudah aktif."})
		return
	}

	if err := database.DB.Model(&org).Update("status", organizers.StatusActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal meluluskan penganjur."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Penganjur diluluskan.", "organizer": org})
}
