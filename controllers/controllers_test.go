package controllers

import (
	"testing"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory database with all models migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := models.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// setupTestRouter creates a bare router in test mode
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockAuthMiddleware injects an authenticated identity the way
// middleware.EnsureValidToken would
func mockAuthMiddleware(userID uint, scopes string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("scopes", scopes)
		c.Next()
	}
}

// createTestClient creates a user with a client profile
func createTestClient(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Client) {
	t.Helper()

	user := models.User{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	client := models.Client{
		UserID:  user.ID,
		Address: "12 Test Street",
	}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	return &user, &client
}

// createTestCatalog seeds one color, size and form and registers the
// triple as a standard set named "Classic"
func createTestCatalog(t *testing.T, db *gorm.DB) (models.Color, models.Size, models.Form) {
	t.Helper()

	color := models.Color{Name: "Red"}
	size := models.Size{Name: "M"}
	form := models.Form{Name: "Box"}
	if err := db.Create(&color).Error; err != nil {
		t.Fatalf("Failed to create color: %v", err)
	}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("Failed to create size: %v", err)
	}
	if err := db.Create(&form).Error; err != nil {
		t.Fatalf("Failed to create form: %v", err)
	}

	standard := models.StandardOrder{
		Name:    "Classic",
		ColorID: color.ID,
		SizeID:  size.ID,
		FormID:  form.ID,
	}
	if err := db.Create(&standard).Error; err != nil {
		t.Fatalf("Failed to create standard set: %v", err)
	}

	return color, size, form
}

// createTestOrder inserts an order directly with the given lifecycle state
func createTestOrder(t *testing.T, db *gorm.DB, client *models.Client, color models.Color, size models.Size, form models.Form, status, process string) *models.Order {
	t.Helper()

	order := models.Order{
		ClientID: &client.ID,
		ColorID:  color.ID,
		SizeID:   size.ID,
		FormID:   form.ID,
		Status:   status,
		Process:  process,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}
	return &order
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:        "sqlite://memory",
		Port:               "8080",
		GoEnv:              "test",
		JWTSecret:          "test-secret",
		TokenLifespanHours: 1,
		LogLevel:           "error",
	}
}
