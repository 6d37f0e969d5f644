package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"newsdesk-http-service/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requireRolesContext(t *testing.T, role string, set bool) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/backup", nil)
	if set {
		c.Set("role", role)
	}
	return c, w
}

func TestRequireRoles(t *testing.T) {
	handler := RequireRoles(models.RoleAdmin)

	t.Run("allows a listed role", func(t *testing.T) {
		c, w := requireRolesContext(t, models.RoleAdmin, true)
		handler(c)
		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects other roles", func(t *testing.T) {
		c, w := requireRolesContext(t, models.RoleEditor, true)
		handler(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient permissions")
	})

	t.Run("rejects requests without a role claim", func(t *testing.T) {
		c, w := requireRolesContext(t, "", false)
		handler(c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts any of several roles", func(t *testing.T) {
		either := RequireRoles(models.RoleAdmin, models.RoleProducer)
		c, w := requireRolesContext(t, models.RoleProducer, true)
		either(c)
		assert.False(t, c.IsAborted())
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
