package controllers

import (
	"net/http"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/models"
	"github.com/gin-gonic/gin"
)

// ListProperties handles GET /orders/properties - public list of the
// color, size and form catalogs
func ListProperties(c *gin.Context) {
	db := config.GetDB()

	var colors []models.Color
	var sizes []models.Size
	var forms []models.Form

	if err := db.Order("id").Find(&colors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load property catalog",
			},
		})
		return
	}
	if err := db.Order("id").Find(&sizes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load property catalog",
			},
		})
		return
	}
	if err := db.Order("id").Find(&forms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load property catalog",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"colors": colors,
			"sizes":  sizes,
			"forms":  forms,
		},
	})
}
