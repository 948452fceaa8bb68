package auth_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/studyhive/studyhive-lambda/internal/auth"
)

const testSecret = "a-long-and-secure-secret-for-tests"
const testUserID = "user-123"
const testRole = "student"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should have panicked when JWT_SECRET is empty, but did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID. Expected: %s, Got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Wrong Role. Expected: %s, Got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT should have failed on an expired token, but passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Wrong error for expired token. Expected: %v, Got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		if _, err := auth.ValidateJWT("not-a-jwt"); err == nil {
			t.Fatal("ValidateJWT should have failed on a malformed token, but passed.")
		}
	})
}

func TestClaimsContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		claims := &auth.Claims{UserID: testUserID, Role: testRole}
		ctx := auth.ContextWithClaims(context.Background(), claims)

		got, err := auth.GetUserClaimsFromContext(ctx)
		if err != nil {
			t.Fatalf("GetUserClaimsFromContext failed: %v", err)
		}
		if got.UserID != testUserID {
			t.Errorf("Wrong UserID from context: %s", got.UserID)
		}
	})

	t.Run("EmptyContext", func(t *testing.T) {
		_, err := auth.GetUserClaimsFromContext(context.Background())
		if !errors.Is(err, auth.ErrNoClaims) {
			t.Errorf("Expected ErrNoClaims, got: %v", err)
		}
	})
}
