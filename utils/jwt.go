package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"wednest/config"

	"github.com/golang-jwt/jwt"
)

// The WedNest backend signs auth tokens with an HMAC secret shared with this
// gateway through JWT_SECRET. The gateway never issues tokens itself; it only
// validates tokens the backend handed out at login.
func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// HashToken computes a SHA-256 hash of the token string.
// Session keys are derived from this hash so raw tokens never reach Redis.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIDFromToken extracts the user ID (subject) from a valid JWT token string.
// It returns the extracted ID or an error if validation fails.
func ExtractIDFromToken(tokenString string) (string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}

	return sub, nil
}
