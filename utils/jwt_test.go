package utils

import (
	"testing"
	"time"

	"hotel-saas-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hotelID := uint(3)
	user := models.User{
		ID:      12,
		Email:   "staff@hotel.test",
		Role:    models.RoleUser,
		HotelID: &hotelID,
	}

	token, err := CreateToken(user, []string{"booking_view", "room_view"})
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, "staff@hotel.test", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	require.NotNil(t, claims.HotelID)
	assert.Equal(t, uint(3), *claims.HotelID)
	assert.Equal(t, []string{"booking_view", "room_view"}, claims.Permissions)

	// seven-day expiry
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenNilPermissionsSerializeAsEmptyList(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken(models.User{ID: 1, Email: "a@b.test", Role: models.RoleAdmin}, nil)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.NotNil(t, claims.Permissions)
	assert.Empty(t, claims.Permissions)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := CreateToken(models.User{ID: 1, Email: "a@b.test", Role: models.RoleUser}, nil)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := CreateToken(models.User{ID: 1, Email: "a@b.test", Role: models.RoleUser}, nil)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := Claims{
		UserID: 1,
		Email:  "a@b.test",
		Role:   models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsNonHMACSigning(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// alg=none style tokens must not validate
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
