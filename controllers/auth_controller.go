package controllers

import (
	"net/http"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/middleware"
	"github.com/craftline/orders-api/models"
	"github.com/craftline/orders-api/utils"
	"github.com/gin-gonic/gin"
)

// LoginRequest represents the request body for authenticating a user
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required,max=128"`
}

// Login handles POST /auth/login - exchanges credentials for a bearer token
func Login(c *gin.Context) {
	var req LoginRequest
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
	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Unable to login with provided credentials.",
			},
		})
		return
	}

	if err := utils.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Unable to login with provided credentials.",
			},
		})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INACTIVE_ACCOUNT",
				"message": "User account not active.",
			},
		})
		return
	}

	cfg := config.GetConfig()
	token, err := utils.GenerateToken(cfg.JWTSecret, cfg.TokenLifespanHours, user.ID, user.Scopes)
	if err != nil {
		config.Logger().WithField("username", user.Username).Error("failed to issue token: " + err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TOKEN_ERROR",
				"message": "Failed to issue token",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"token": token},
	})
}

// GetPersonal handles GET /auth/personal - returns the authenticated
// client's profile
func GetPersonal(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.Preload("User").Where("user_id = ?", userID).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PROFILE_NOT_FOUND",
				"message": "Client profile not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":         client.User.ID,
			"username":   client.User.Username,
			"email":      client.User.Email,
			"first_name": client.User.FirstName,
			"last_name":  client.User.LastName,
			"address":    client.Address,
		},
	})
}
