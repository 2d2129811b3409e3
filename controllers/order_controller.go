package controllers

import (
	"net/http"
	"strings"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/middleware"
	"github.com/craftline/orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	ColorID uint   `json:"color_id" binding:"required"`
	SizeID  uint   `json:"size_id" binding:"required"`
	FormID  uint   `json:"form_id" binding:"required"`
	Comment string `json:"comment" binding:"omitempty,max=250"`
}

// currentClient resolves the authenticated user's client profile. It
// writes the error response and returns false when the caller is not a
// service client.
func currentClient(c *gin.Context) (*models.Client, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return nil, false
	}

	db := config.GetDB()
	var client models.Client
	if err := db.Where("user_id = ?", userID).First(&client).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "The action is allowed only for service clients.",
			},
		})
		return nil, false
	}

	return &client, true
}

// isUniqueViolation detects unique-constraint failures from both
// PostgreSQL and SQLite error strings
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}

// ListOrders handles GET /orders - lists the caller's own orders
func ListOrders(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var orders []models.Order
	if err := db.Preload("Color").Preload("Size").Preload("Form").
		Where("client_id = ?", client.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}

// CreateOrder handles POST /orders - creates a new order for the caller.
// Orders matching a registered standard property set enter assembly
// instantly; everything else waits pending a manager decision.
func CreateOrder(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()

	// All three property references must resolve to catalog entries
	var count int64
	if err := db.Model(&models.Color{}).Where("id = ?", req.ColorID).Count(&count).Error; err == nil && count == 0 {
		respondUnknownProperty(c, "color", req.ColorID)
		return
	}
	if err := db.Model(&models.Size{}).Where("id = ?", req.SizeID).Count(&count).Error; err == nil && count == 0 {
		respondUnknownProperty(c, "size", req.SizeID)
		return
	}
	if err := db.Model(&models.Form{}).Where("id = ?", req.FormID).Count(&count).Error; err == nil && count == 0 {
		respondUnknownProperty(c, "form", req.FormID)
		return
	}

	standard, err := models.IsStandardSet(db, req.ColorID, req.SizeID, req.FormID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to match order against standard sets",
			},
		})
		return
	}

	order := models.Order{
		ClientID: &client.ID,
		ColorID:  req.ColorID,
		SizeID:   req.SizeID,
		FormID:   req.FormID,
		Status:   models.StatusInProcess,
		Process:  models.InitialProcess(standard),
		Comment:  req.Comment,
	}

	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	// Load the property relationships to return complete data
	if err := db.Preload("Color").Preload("Size").Preload("Form").
		First(&order, "code = ?", order.Code).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order details",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetOrder handles GET /orders/:code - retrieves one of the caller's own
// orders. Foreign orders are reported as not found, never as forbidden.
func GetOrder(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.Preload("Color").Preload("Size").Preload("Form").
		Where("code = ? AND client_id = ?", c.Param("code"), client.ID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ReturnOrder handles POST /orders/:code/return - marks a delivered order
// as returned and opens its return record. The status change and the
// return record creation commit or fail together.
func ReturnOrder(c *gin.Context) {
	client, ok := currentClient(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.Where("code = ? AND client_id = ?", c.Param("code"), client.ID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	if !order.CanFinalize() {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FORBIDDEN",
				"message": "The action is allowed only for delivered orders.",
			},
		})
		return
	}

	var orderReturn models.OrderReturn
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", models.StatusReturned).Error; err != nil {
			return err
		}
		order.Status = models.StatusReturned

		if err := models.ValidateOrderReturned(&order); err != nil {
			return err
		}

		orderReturn = models.OrderReturn{
			OrderCode: order.Code,
			Solution:  models.SolutionPending,
		}
		return tx.Create(&orderReturn).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "RETURN_EXISTS",
					"message": "A return already exists for this order",
				},
			})
			return
		}

		config.Logger().WithField("order", order.Code).Error("return failed: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to return order",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    orderReturn,
	})
}

// respondUnknownProperty writes the validation error for a property
// reference that does not resolve to a catalog entry
func respondUnknownProperty(c *gin.Context, kind string, id uint) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": "Unknown " + kind + " property",
			"details": gin.H{kind + "_id": id},
		},
	})
}
