package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/copperstate/realty-core/internal/config"
	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const ContextKeyIsAdmin = "is_admin"

// Auth returns a middleware that enforces Basic authentication against the
// configured admin credentials. A missing or malformed header is 401, a wrong
// credential pair is 403. Never falls back to public behavior.
func Auth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := parseBasicAuth(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, "authentication required")
			return
		}
		if !credentialsMatch(cfg, username, password) {
			response.Forbidden(c, "invalid credentials")
			return
		}
		c.Set(ContextKeyIsAdmin, true)
		c.Next()
	}
}

// OptionalAuth marks the request as admin if a valid Basic header is present,
// but does not block the request.
func OptionalAuth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username, password, ok := parseBasicAuth(c.GetHeader("Authorization")); ok {
			if credentialsMatch(cfg, username, password) {
				c.Set(ContextKeyIsAdmin, true)
			}
		}
		c.Next()
	}
}

// IsAdmin reports whether the request carries valid admin credentials.
func IsAdmin(c *gin.Context) bool {
	v, _ := c.Get(ContextKeyIsAdmin)
	admin, _ := v.(bool)
	return admin
}

// ValidateCredentials checks a raw username/password pair, used by the login
// endpoint.
func ValidateCredentials(cfg *config.AppConfig, username, password string) bool {
	return credentialsMatch(cfg, username, password)
}

func credentialsMatch(cfg *config.AppConfig, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Admin.Password)) == 1
	return userOK && passOK
}

// parseBasicAuth decodes an "Authorization: Basic <base64(user:pass)>" header.
func parseBasicAuth(header string) (username, password string, ok bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", "", false
	}
	const prefix = "basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	pair := string(decoded)
	i := strings.IndexByte(pair, ':')
	if i < 0 {
		return "", "", false
	}
	return pair[:i], pair[i+1:], true
}
