package testutil

import (
	"os"
	"testing"

	"github.com/craftline/orders-api/config"
	"github.com/craftline/orders-api/utils"
)

// RequireTestEnvironment fails the test unless GO_ENV is "test". It keeps
// environment-dependent tests away from development and production
// databases.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("tests must run with GO_ENV=test (current: %q); run them as: GO_ENV=test go test ./...", env)
	}
}

// BearerToken issues a signed token for the given user, suitable for the
// Authorization header of a test request
func BearerToken(t *testing.T, cfg *config.Config, userID uint, scopes string) string {
	t.Helper()

	token, err := utils.GenerateToken(cfg.JWTSecret, cfg.TokenLifespanHours, userID, scopes)
	if err != nil {
		t.Fatalf("failed to issue test token: %v", err)
	}
	return "Bearer " + token
}
