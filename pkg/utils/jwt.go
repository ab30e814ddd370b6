package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

type Claims struct {
	AccountID string `json:"account_id"`
	// Kind is "creator" or "user"; empty while the account is still
	// mid-onboarding and has not picked a type yet.
	Kind               string `json:"kind"`
	NeedsTypeSelection bool   `json:"needs_type_selection"`
	jwt.RegisteredClaims
}

func CreateToken(accountID uuid.UUID, kind string, needsTypeSelection bool) (string, error) {
	claims := &Claims{
		AccountID:          accountID.String(),
		Kind:               kind,
		NeedsTypeSelection: needsTypeSelection,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
