package utils

import (
	"errors"
	"sync"
	"time"

	"vaxbook/models"

	"github.com/golang-jwt/jwt"
)

var (
	secretMu  sync.RWMutex
	secretKey = []byte("vaxbook-dev")
)

// SetJWTSecret replaces the signing key.
func SetJWTSecret(secret string) {
	if secret == "" {
		return
	}
	secretMu.Lock()
	secretKey = []byte(secret)
	secretMu.Unlock()
}

func currentSecret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secretKey
}

// GenerateToken creates a signed HS256 token carrying the user fields under
// "user". The token expires after duration.
func GenerateToken(claims models.Claims, duration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]interface{}{
			"id":    claims.UserID,
			"email": claims.Email,
			"name":  claims.Name,
			"role":  claims.Role,
		},
		"iat": now.Unix(),
		"exp": now.Add(duration).Unix(),
	})
	return token.SignedString(currentSecret())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return currentSecret(), nil
	})
}

// ExtractClaimsFromToken validates tokenString and returns its user fields.
func ExtractClaimsFromToken(tokenString string) (models.Claims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return models.Claims{}, err
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.Claims{}, errors.New("invalid token")
	}
	user, ok := mc["user"].(map[string]interface{})
	if !ok {
		return models.Claims{}, errors.New("token does not contain a user claim")
	}
	str := func(k string) string {
		s, _ := user[k].(string)
		return s
	}
	claims := models.Claims{UserID: str("id"), Email: str("email"), Name: str("name"), Role: str("role")}
	if claims.UserID == "" {
		return models.Claims{}, errors.New("token does not contain a valid user id")
	}
	return claims, nil
}
