package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/service"
	"github.com/edukit/edu-console-api/internal/store"
)

func newCourseRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	courseSvc := service.NewCourseService(repository.NewCourseRepository(adapter), nil, nil)
	h := NewCourseHandler(courseSvc)

	r := gin.New()
	r.GET("/courses", h.List)
	r.POST("/courses", h.Create)
	r.DELETE("/courses/:id", h.Delete)
	return r
}

func createCourse(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/courses",
		strings.NewReader(`{"title":"Algebra","instructor":"Jane","price":"49.99"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope struct {
		Data struct {
			ID    string `json:"id"`
			Price string `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "$49.99", envelope.Data.Price)
	return envelope.Data.ID
}

func TestCourseDeleteConfirmationFlow(t *testing.T) {
	r := newCourseRouter(t)
	id := createCourse(t, r)

	// Missing confirmation is refused with 412.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/"+id, nil))
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/"+id+"?confirm=true", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Deleting again stays a no-op.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/courses/"+id+"?confirm=true", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCourseListEmptyIsArray(t *testing.T) {
	r := newCourseRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}
