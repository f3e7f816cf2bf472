package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// DisplayNameFallback is shown when the token carries no usable identity.
const DisplayNameFallback = "Admin"

// DisplayName extracts the username claim from the backend-issued access
// token for the top bar. The claims are decoded without signature
// verification: the console does not hold the backend's signing key and the
// value is used for display only, never for authorization.
func DisplayName(token string) string {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return DisplayNameFallback
	}

	for _, key := range []string{"username", "name", "email"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return DisplayNameFallback
}
