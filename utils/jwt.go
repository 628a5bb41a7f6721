package utils

import (
	"errors"
	"os"
	"time"

	"hotel-saas-backend/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// Claims is the signed identity carried on every request: top-level role,
// tenant scope and the effective permission names resolved at login.
type Claims struct {
	UserID      uint     `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	HotelID     *uint    `json:"hotelId,omitempty"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func CreateToken(user models.User, permissions []string) (string, error) {
	if permissions == nil {
		permissions = []string{}
	}
	claims := Claims{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		HotelID:     user.HotelID,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ValidateToken(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("missing token")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
