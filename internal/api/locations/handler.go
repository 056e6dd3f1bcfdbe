package locations

import (
	"net/http"

	"github.com/webdevsha/permitakaun-6608e2f-sub002/database"
	"github.com/webdevsha/permitakaun-6608e2f-sub002/internal/domain/locations"

	"github.com/gin-gonic/gin"
)

func ListLocations(c *gin.Context) {
	q := database.DB.Order("name ASC")
	if orgID := c.Query("organizer_id"); orgID != "" {
		q = q.Where("organizer_id = ?", orgID)
	}

	var list []locations.Location
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memuatkan senarai lokasi."})
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetLocation(c *gin.Context) {
	var loc locations.Location
	if err := database.DB.First(&loc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lokasi tidak ditemui."})
		return
	}
	c.JSON(http.StatusOK, loc)
}

func CreateLocation(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required"`
		Type        string  `json:"type"`
		TentRate    float64 `json:"tent_rate"`
		StallRate   float64 `json:"stall_rate"`
		MonthlyRate float64 `json:"monthly_rate"`
		Capacity    int     `json:"capacity"`
		OrganizerID uint    `json:"organizer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locType := input.Type
	if locType != locations.TypeMonthly {
		locType = locations.TypeDaily
	}

	loc := locations.Location{
		Name:        input.Name,
		Type:        locType,
		TentRate:    input.TentRate,
		StallRate:   input.StallRate,
		MonthlyRate: input.MonthlyRate,
		Capacity:    input.Capacity,
		OrganizerID: input.OrganizerID,
		Status:      "active",
	}

	if err := database.DB.Create(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mencipta lokasi."})
		return
	}

	c.JSON(http.StatusOK, loc)
}

func UpdateLocation(c *gin.Context) {
	var loc locations.Location
	if err := database.DB.First(&loc, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lokasi tidak ditemui."})
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		Type        *string  `json:"type"`
		TentRate    *float64 `json:"tent_rate"`
		StallRate   *float64 `json:"stall_rate"`
		MonthlyRate *float64 `json:"monthly_rate"`
		Capacity    *int     `json:"capacity"`
		Status      *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.TentRate != nil {
		updates["tent_rate"] = *input.TentRate
	}
	if input.StallRate != nil {
		updates["stall_rate"] = *input.StallRate
	}
	if input.MonthlyRate != nil {
		updates["monthly_rate"] = *input.MonthlyRate
	}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiada perubahan."})
		return
	}

	if err := database.DB.Model(&loc).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengemas kini lokasi."})
		return
	}

	c.JSON(http.StatusOK, loc)
}

func DeleteLocation(c *gin.Context) {
	if err := database.DB.Delete(&locations.Location{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memadam lokasi."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lokasi dipadam."})
}
