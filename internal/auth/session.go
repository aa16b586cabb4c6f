package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionSecret signs guest-session tokens. Read once at startup; the
// hardcoded fallback keeps local development working without a .env file.
var sessionSecret = func() []byte {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("meravi-dev-session-secret-change-me")
}()

// GenerateSessionToken creates a signed token wrapping a guest session id.
// Sessions live long: the cart has no automatic expiry, so the token lasts
// 30 days and the browser re-presents it on every visit.
func GenerateSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sessionSecret)
}

// ValidateSessionToken parses a session token and returns the session id.
func ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return sessionSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sessionID, ok := claims["sid"].(string)
		if !ok || sessionID == "" {
			return "", errors.New("invalid session claim")
		}
		return sessionID, nil
	}

	return "", errors.New("invalid token")
}
