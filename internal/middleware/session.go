package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/meravi-clothing/storefront-api/internal/auth"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "meravi_session"

// SessionHeader lets non-browser clients present the token directly.
const SessionHeader = "X-Session-Token"

// SessionMiddleware resolves the caller's guest session. A valid token (cookie
// or header) yields its session id; otherwise a fresh session is minted and
// set as a cookie. The session id lands in the gin context under "sessionID".
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Find an existing token ---
		tokenString := c.GetHeader(SessionHeader)
		if tokenString == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				tokenString = cookie
			}
		}

		// 2. --- Validate it ---
		if tokenString != "" {
			if sessionID, err := auth.ValidateSessionToken(tokenString); err == nil {
				c.Set("sessionID", sessionID)
				c.Next()
				return
			}
			// Invalid or expired token: fall through and mint a new session.
		}

		// 3. --- Mint a new session ---
		sessionID := uuid.NewString()
		token, err := auth.GenerateSessionToken(sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		c.SetCookie(SessionCookie, token, 30*24*3600, "/", "", false, true)
		c.Header(SessionHeader, token)
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// SessionID pulls the resolved session id out of the gin context.
func SessionID(c *gin.Context) string {
	sid, _ := c.Get("sessionID")
	if s, ok := sid.(string); ok {
		return s
	}
	return ""
}
