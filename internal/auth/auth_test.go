package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		password := "samePassword"
		hash1, _ := HashPassword(password)
		hash2, _ := HashPassword(password)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	password := "correctPassword"
	hashed, _ := HashPassword(password)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPassword(hashed, password))
	})

	t.Run("Incorrect password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, "wrongPassword"))
	})

	t.Run("Empty password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, ""))
	})
}

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Successfully generate access token", func(t *testing.T) {
		token, err := GenerateAccessToken("user-1", "user@example.com", testSecret)

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Empty secret", func(t *testing.T) {
		_, err := GenerateAccessToken("user-1", "user@example.com", "")

		assert.ErrorIs(t, err, ErrEmptyJWTSecret)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("Valid access token", func(t *testing.T) {
		token, err := GenerateAccessToken("user-42", "user@example.com", testSecret)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)

		require.NoError(t, err)
		assert.Equal(t, "user-42", claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateAccessToken("user-42", "user@example.com", testSecret)
		require.NoError(t, err)

		_, err = ValidateToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := generateToken("user-42", "user@example.com", "access", testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(token, testSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", testSecret)
		assert.Error(t, err)
	})

	t.Run("Wrong signing method rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ValidateToken(signed, testSecret)
		assert.Error(t, err)
	})
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Valid refresh token", func(t *testing.T) {
		refresh, err := GenerateRefreshToken("user-7", "u@example.com", testSecret)
		require.NoError(t, err)

		access, claims, err := RefreshAccessToken(refresh, testSecret, testSecret)

		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.Equal(t, "user-7", claims.UserID)
	})

	t.Run("Access token rejected as refresh", func(t *testing.T) {
		access, err := GenerateAccessToken("user-7", "u@example.com", testSecret)
		require.NoError(t, err)

		_, _, err = RefreshAccessToken(access, testSecret, testSecret)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
