package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Verify(t *testing.T) {
	g := NewGate("s3cret")

	assert.NoError(t, g.Verify("s3cret"))
	assert.ErrorIs(t, g.Verify("s3cre"), ErrUnauthorized)
	assert.ErrorIs(t, g.Verify(""), ErrUnauthorized)

	empty := NewGate("")
	assert.ErrorIs(t, empty.Verify(""), ErrUnauthorized)
}

func TestGate_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	g := NewGate("s3cret")
	calls := 0

	r := gin.New()
	r.POST("/write", g.Middleware(), func(c *gin.Context) {
		calls++
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic s3cret", http.StatusUnauthorized},
		{"no credential", "Bearer", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer s3cret", http.StatusNoContent},
		{"scheme is case insensitive", "bearer s3cret", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/write", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"detail":"Invalid admin token"}`, w.Body.String())
			}
		})
	}

	assert.Equal(t, 2, calls)
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "+")
	assert.NotContains(t, a, "/")
}
