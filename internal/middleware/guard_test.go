package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/service"
	"github.com/edukit/edu-console-api/internal/store"
)

func newGuardRouter(t *testing.T) (*gin.Engine, *store.Adapter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	users := repository.NewUserRepository(adapter)
	authSvc := service.NewAuthService(users, adapter, "currentUser", nil, nil)

	r := gin.New()
	r.Use(Session(authSvc))
	r.GET("/admin/dashboard", RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/courses", RequireSignIn(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, adapter
}

func signInAs(t *testing.T, adapter *store.Adapter, role models.Role) {
	t.Helper()
	require.NoError(t, adapter.SetRecord(context.Background(), "currentUser", &models.User{
		ID: "u1", Name: "Test", Email: "test@x.com", Role: role,
	}))
}

func TestGuardRedirects(t *testing.T) {
	tests := []struct {
		name         string
		role         models.Role
		anonymous    bool
		path         string
		wantStatus   int
		wantLocation string
	}{
		{name: "anonymous to admin", anonymous: true, path: "/admin/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/signin"},
		{name: "anonymous to courses", anonymous: true, path: "/courses", wantStatus: http.StatusSeeOther, wantLocation: "/signin"},
		{name: "student to admin", role: models.RoleStudent, path: "/admin/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/unauthorized"},
		{name: "teacher to admin", role: models.RoleTeacher, path: "/admin/dashboard", wantStatus: http.StatusSeeOther, wantLocation: "/unauthorized"},
		{name: "admin to admin", role: models.RoleAdmin, path: "/admin/dashboard", wantStatus: http.StatusOK},
		{name: "student to courses", role: models.RoleStudent, path: "/courses", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, adapter := newGuardRouter(t)
			if !tt.anonymous {
				signInAs(t, adapter, tt.role)
			}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}

func TestSessionLoadsUserIntoContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	users := repository.NewUserRepository(adapter)
	authSvc := service.NewAuthService(users, adapter, "currentUser", nil, nil)
	signInAs(t, adapter, models.RoleTeacher)

	r := gin.New()
	r.Use(Session(authSvc))
	r.GET("/whoami", func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.String(http.StatusOK, string(user.Role))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, "teacher", w.Body.String())
}
