package controllers

import (
	"net/http"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/models"
	"github.com/craftline/orders-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePropertyRequest represents the request body for creating a
// catalog entry (color, size or form)
type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required,max=25"`
	Description string `json:"description" binding:"omitempty,max=250"`
}

// CreateStandardOrderRequest represents the request body for registering
// a standard property set
type CreateStandardOrderRequest struct {
	Name        string `json:"name" binding:"required,max=25"`
	Description string `json:"description" binding:"omitempty,max=250"`
	ColorID     uint   `json:"color_id" binding:"required"`
	SizeID      uint   `json:"size_id" binding:"required"`
	FormID      uint   `json:"form_id" binding:"required"`
}

// CreateClientRequest represents the request body for creating a client
// account (identity plus profile)
type CreateClientRequest struct {
	Username   string `json:"username" binding:"required,max=150"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
	Email      string `json:"email" binding:"omitempty,email"`
	FirstName  string `json:"first_name" binding:"omitempty,max=150"`
	LastName   string `json:"last_name" binding:"omitempty,max=150"`
	Address    string `json:"address" binding:"required,max=250"`
	Additional string `json:"additional" binding:"omitempty,max=250"`
}

// CreateColor handles POST /manage/colors
func CreateColor(c *gin.Context) {
	var req CreatePropertyRequest
	if !bindPropertyRequest(c, &req) {
		return
	}
	createCatalogEntry(c, &models.Color{Name: req.Name, Description: req.Description})
}

// CreateSize handles POST /manage/sizes
func CreateSize(c *gin.Context) {
	var req CreatePropertyRequest
	if !bindPropertyRequest(c, &req) {
		return
	}
	createCatalogEntry(c, &models.Size{Name: req.Name, Description: req.Description})
}

// CreateForm handles POST /manage/forms
func CreateForm(c *gin.Context) {
	var req CreatePropertyRequest
	if !bindPropertyRequest(c, &req) {
		return
	}
	createCatalogEntry(c, &models.Form{Name: req.Name, Description: req.Description})
}

func bindPropertyRequest(c *gin.Context, req *CreatePropertyRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return false
	}
	return true
}

func createCatalogEntry(c *gin.Context, entry interface{}) {
	db := config.GetDB()
	if err := db.Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PROPERTY_EXISTS",
					"message": "A catalog entry with this name already exists",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create catalog entry",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    entry,
	})
}

// DeleteColor handles DELETE /manage/colors/:id
func DeleteColor(c *gin.Context) {
	deleteCatalogEntry(c, &models.Color{}, "color_id")
}

// DeleteSize handles DELETE /manage/sizes/:id
func DeleteSize(c *gin.Context) {
	deleteCatalogEntry(c, &models.Size{}, "size_id")
}

// DeleteForm handles DELETE /manage/forms/:id
func DeleteForm(c *gin.Context) {
	deleteCatalogEntry(c, &models.Form{}, "form_id")
}

// deleteCatalogEntry removes a catalog entry unless an order or standard
// template still references it
func deleteCatalogEntry(c *gin.Context, model interface{}, fkColumn string) {
	id := c.Param("id")
	db := config.GetDB()

	var inOrders, inStandards int64
	if err := db.Model(&models.Order{}).Where(fkColumn+" = ?", id).Count(&inOrders).Error; err != nil {
		respondDatabaseError(c, "Failed to check catalog references")
		return
	}
	if err := db.Model(&models.StandardOrder{}).Where(fkColumn+" = ?", id).Count(&inStandards).Error; err != nil {
		respondDatabaseError(c, "Failed to check catalog references")
		return
	}
	if inOrders > 0 || inStandards > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PROPERTY_IN_USE",
				"message": "The catalog entry is referenced by orders or standard sets and cannot be deleted",
			},
		})
		return
	}

	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		respondDatabaseError(c, "Failed to delete catalog entry")
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PROPERTY_NOT_FOUND",
				"message": "Catalog entry not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// CreateStandardOrder handles POST /manage/standards - registers a
// property combination as standard
func CreateStandardOrder(c *gin.Context) {
	var req CreateStandardOrderRequest
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

	standard := models.StandardOrder{
		Name:        req.Name,
		Description: req.Description,
		ColorID:     req.ColorID,
		SizeID:      req.SizeID,
		FormID:      req.FormID,
	}
	if err := db.Create(&standard).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "STANDARD_EXISTS",
					"message": "A standard set with this name or property combination already exists",
				},
			})
			return
		}
		respondDatabaseError(c, "Failed to create standard set")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    standard,
	})
}

// DeleteStandardOrder handles DELETE /manage/standards/:id
func DeleteStandardOrder(c *gin.Context) {
	db := config.GetDB()
	result := db.Where("id = ?", c.Param("id")).Delete(&models.StandardOrder{})
	if result.Error != nil {
		respondDatabaseError(c, "Failed to delete standard set")
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "STANDARD_NOT_FOUND",
				"message": "Standard set not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}

// CreateClient handles POST /manage/clients - creates a client account:
// an identity row plus the client profile, committed together
func CreateClient(c *gin.Context) {
	var req CreateClientRequest
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

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondDatabaseError(c, "Failed to create client account")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
	}
	client := models.Client{
		Address:    req.Address,
		Additional: req.Additional,
	}

	db := config.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		client.UserID = user.ID
		return tx.Create(&client).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "USER_EXISTS",
					"message": "A user with this username already exists",
				},
			})
			return
		}
		respondDatabaseError(c, "Failed to create client account")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"client":   client,
		},
	})
}

func respondDatabaseError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": message,
		},
	})
}
