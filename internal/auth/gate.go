package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var ErrUnauthorized = errors.New("invalid admin token")

const unauthorizedDetail = "Invalid admin token"

// Gate authorizes mutating requests against a single shared admin token.
// The token is fixed for the lifetime of the process.
type Gate struct {
	token []byte
}

func NewGate(token string) *Gate {
	return &Gate{token: []byte(token)}
}

// Verify compares presented against the admin token in constant time.
func (g *Gate) Verify(presented string) error {
	if len(g.token) == 0 || subtle.ConstantTimeCompare([]byte(presented), g.token) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// Middleware rejects the request with 401 unless it carries
// "Authorization: Bearer <admin token>".
func (g *Gate) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := g.Verify(extractToken(c)); err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": unauthorizedDetail})
			return
		}
		c.Next()
	}
}

// extractToken returns the bearer credential, or "" when the header is
// missing or uses another scheme.
func extractToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GenerateToken returns 32 random bytes encoded as URL-safe base64.
func GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
