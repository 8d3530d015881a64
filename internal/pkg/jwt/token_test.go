package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambunet/dispatch/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60,
			Issuer:     "dispatch-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name  string
		email string
		role  string
	}{
		{name: "driver token", email: "driver@example.com", role: "driver"},
		{name: "user token", email: "patient@example.com", role: "user"},
		{name: "empty role still signs", email: "x@example.com", role: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			cfg := getTestConfig()

			tokenString, expiresAt, err := GenerateToken(userID, tt.email, tt.role, cfg)
			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, userID.String(), claims["user_id"])
			assert.Equal(t, tt.email, claims["email"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, cfg.JWT.Issuer, claims["iss"])
		})
	}
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, _, err := GenerateToken(userID, "driver@example.com", "driver", cfg)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), (*claims)["user_id"])
		assert.Equal(t, "driver", (*claims)["role"])
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ValidateToken(tokenString, "some-other-secret")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", cfg.JWT.Secret)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := getTestConfig()
		expiredCfg.JWT.Expiration = -1

		expired, _, err := GenerateToken(userID, "driver@example.com", "driver", expiredCfg)
		require.NoError(t, err)

		_, err = ValidateToken(expired, expiredCfg.JWT.Secret)
		assert.Error(t, err)
	})
}
