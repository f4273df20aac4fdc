package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// GenerateToken creates a signed JWT for subject carrying the given roles.
// The token expires after the specified duration.
func GenerateToken(secret []byte, subject string, roles []string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"roles": roles,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(secret []byte, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

// TokenRoles collects the roles a token claims, from either a "roles" array or
// a single "role" string.
func TokenRoles(token *jwt.Token) []string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	var roles []string
	if list, ok := claims["roles"].([]interface{}); ok {
		for _, r := range list {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		roles = append(roles, role)
	}
	return roles
}

// TokenSubject returns the "sub" claim.
func TokenSubject(token *jwt.Token) string {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}

// TokenExpiry returns the "exp" claim, or the zero time when none is set.
func TokenExpiry(token *jwt.Token) time.Time {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(exp), 0)
}
