package apiclient

import (
	"errors"
	"fmt"

	"vaxbook/models"

	"github.com/golang-jwt/jwt"
)

// DecodeClaims reads the user fields from a token payload without verifying
// the signature; the client never holds the signing key. The backend nests
// them under "user", older tokens carry them at the top level.
func DecodeClaims(token string) (models.Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, mc); err != nil {
		return models.Claims{}, fmt.Errorf("failed to decode token: %w", err)
	}

	src := map[string]interface{}(mc)
	if user, ok := mc["user"].(map[string]interface{}); ok {
		src = user
	}
	claims := models.Claims{
		UserID: firstString(src, "id", "_id", "sub"),
		Email:  firstString(src, "email"),
		Name:   firstString(src, "name"),
		Role:   firstString(src, "role"),
	}
	if claims.UserID == "" {
		return claims, errors.New("token carries no user id")
	}
	return claims, nil
}

func firstString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
