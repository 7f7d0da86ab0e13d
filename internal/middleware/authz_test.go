package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(roleID any) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if roleID != nil {
			c.Set("role_id", roleID)
		}
		c.Next()
	})
	r.GET("/pipeline/report", RequireRoles(30, 50), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	router := roleTestRouter(50)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pipeline/report", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesRejectsOtherRole(t *testing.T) {
	router := roleTestRouter(10)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pipeline/report", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolesRejectsMissingRole(t *testing.T) {
	router := roleTestRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pipeline/report", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
