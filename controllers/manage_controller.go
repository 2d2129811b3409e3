package controllers

import (
	"net/http"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/middleware"
	"github.com/craftline/orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BulkOrderRequest selects the orders a bulk lifecycle action applies to
type BulkOrderRequest struct {
	Codes []string `json:"codes" binding:"required,min=1"`
}

// ResolveReturnRequest represents the manager decision on a pending return
type ResolveReturnRequest struct {
	Solution string `json:"solution" binding:"required,oneof=money new_order"`
}

// ListManagedOrders handles GET /manage/orders. The visible set follows
// the caller's capability scopes: assembly-stage managers see orders in
// assembly, delivery-stage managers see orders in delivery, and a manager
// holding both scopes sees everything.
func ListManagedOrders(c *gin.Context) {
	scopes, err := middleware.GetScopes(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract token scopes",
			},
		})
		return
	}

	db := config.GetDB()
	query := db.Preload("Color").Preload("Size").Preload("Form").Order("created_at DESC")

	assembly := models.HasScope(scopes, models.ScopeManageInAssemblyOnly)
	delivery := models.HasScope(scopes, models.ScopeManageInDeliveryOnly)
	switch {
	case assembly && delivery:
		// unrestricted
	case assembly:
		query = query.Where("process = ?", models.ProcessInAssembly)
	case delivery:
		query = query.Where("process = ?", models.ProcessInDelivery)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
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

// AcceptOrders handles POST /manage/orders/accept - moves selected
// pending orders into assembly. Orders outside the pending process or no
// longer in process are skipped; each row update is independent.
func AcceptOrders(c *gin.Context) {
	bulkProcessUpdate(c, models.ProcessPending, models.ProcessInAssembly)
}

// AdvanceOrders handles POST /manage/orders/advance - moves selected
// orders from assembly into delivery
func AdvanceOrders(c *gin.Context) {
	bulkProcessUpdate(c, models.ProcessInAssembly, models.ProcessInDelivery)
}

// bulkProcessUpdate applies one set-based process transition over the
// selected codes, touching only orders still in the source process and an
// active status
func bulkProcessUpdate(c *gin.Context, from, to string) {
	var req BulkOrderRequest
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
	result := db.Model(&models.Order{}).
		Where("code IN ? AND process = ? AND status = ?", req.Codes, from, models.StatusInProcess).
		Update("process", to)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"requested": len(req.Codes),
			"updated":   result.RowsAffected,
		},
	})
}

// CompleteOrders handles POST /manage/orders/complete - marks selected
// delivering orders as completed and delivered. The two fields change in
// a single update; this is the only transition touching both axes.
func CompleteOrders(c *gin.Context) {
	var req BulkOrderRequest
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
	result := db.Model(&models.Order{}).
		Where("code IN ? AND process = ? AND status = ?",
			req.Codes, models.ProcessInDelivery, models.StatusInProcess).
		Updates(map[string]interface{}{
			"status":  models.StatusCompleted,
			"process": models.ProcessDelivered,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to complete orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"requested": len(req.Codes),
			"updated":   result.RowsAffected,
		},
	})
}

// CancelOrders handles POST /manage/orders/cancel - a manager override
// that cancels selected orders. Terminal orders (cancelled, returned) are
// never touched; the process field is left as is.
func CancelOrders(c *gin.Context) {
	var req BulkOrderRequest
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
	result := db.Model(&models.Order{}).
		Where("code IN ? AND status IN ?",
			req.Codes, []string{models.StatusInProcess, models.StatusCompleted}).
		Update("status", models.StatusCancelled)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to cancel orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"requested": len(req.Codes),
			"updated":   result.RowsAffected,
		},
	})
}

// ResolveReturn handles POST /manage/returns/:id/solution - records the
// manager decision on a pending return. Choosing new_order creates a
// fresh replacement order for the same client and properties; the
// replacement starts its own lifecycle under the usual creation rules.
func ResolveReturn(c *gin.Context) {
	var req ResolveReturnRequest
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
	var orderReturn models.OrderReturn
	if err := db.Preload("Order").First(&orderReturn, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETURN_NOT_FOUND",
				"message": "Order return not found",
			},
		})
		return
	}

	if orderReturn.Solution != models.SolutionPending {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETURN_RESOLVED",
				"message": "The return has already been resolved",
			},
		})
		return
	}

	if err := models.ValidateOrderReturned(&orderReturn.Order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"solution": req.Solution}

		if req.Solution == models.SolutionNewOrder {
			standard, err := models.IsStandardSet(tx,
				orderReturn.Order.ColorID, orderReturn.Order.SizeID, orderReturn.Order.FormID)
			if err != nil {
				return err
			}

			replacement := models.Order{
				ClientID: orderReturn.Order.ClientID,
				ColorID:  orderReturn.Order.ColorID,
				SizeID:   orderReturn.Order.SizeID,
				FormID:   orderReturn.Order.FormID,
				Status:   models.StatusInProcess,
				Process:  models.InitialProcess(standard),
			}
			if err := tx.Create(&replacement).Error; err != nil {
				return err
			}
			updates["new_order_code"] = replacement.Code
		}

		return tx.Model(&orderReturn).Updates(updates).Error
	})
	if err != nil {
		config.Logger().WithField("order", orderReturn.OrderCode).Error("return resolution failed: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to resolve return",
			},
		})
		return
	}

	if err := db.First(&orderReturn, orderReturn.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load return details",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orderReturn,
	})
}
