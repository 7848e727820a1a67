package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/store"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

func newTeacherFixture(t *testing.T) (*TeacherService, *repository.UserRepository) {
	t.Helper()
	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	teachers := repository.NewTeacherRepository(adapter)
	users := repository.NewUserRepository(adapter)
	return NewTeacherService(teachers, "123456", nil, nil), users
}

func TestTeacherCreateMirrorsLoginWithDefaultPassword(t *testing.T) {
	svc, users := newTeacherFixture(t)
	ctx := context.Background()

	teacher, err := svc.Create(ctx, CreateTeacherRequest{
		Name: "Jane", Email: "Jane@X.com", Subject: "Physics",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", teacher.Email)
	assert.Equal(t, models.StatusActive, teacher.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), teacher.JoinDate)

	login, found, err := users.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.RoleTeacher, login.Role)
	assert.Equal(t, "123456", login.Password)
}

func TestTeacherSearch(t *testing.T) {
	svc, _ := newTeacherFixture(t)
	ctx := context.Background()

	for _, seed := range []CreateTeacherRequest{
		{Name: "Jane Doe", Email: "jane@x.com", Subject: "Physics"},
		{Name: "John Roe", Email: "john@x.com", Subject: "History"},
	} {
		_, err := svc.Create(ctx, seed)
		require.NoError(t, err)
	}

	tests := []struct {
		term string
		want int
	}{
		{term: "", want: 2},
		{term: "phys", want: 1},
		{term: "JOHN", want: 1},
		{term: "x.com", want: 2},
		{term: "chemistry", want: 0},
	}
	for _, tt := range tests {
		matched, err := svc.Search(ctx, tt.term)
		require.NoError(t, err)
		assert.Len(t, matched, tt.want, "term %q", tt.term)
	}
}

func TestTeacherToggleStatus(t *testing.T) {
	svc, _ := newTeacherFixture(t)
	ctx := context.Background()

	teacher, err := svc.Create(ctx, CreateTeacherRequest{Name: "Jane", Email: "jane@x.com", Subject: "Physics"})
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, toggled.Status)

	toggled, err = svc.ToggleStatus(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, toggled.Status)
}

func TestTeacherDeleteKeepsLogin(t *testing.T) {
	svc, users := newTeacherFixture(t)
	ctx := context.Background()

	teacher, err := svc.Create(ctx, CreateTeacherRequest{Name: "Jane", Email: "jane@x.com", Subject: "Physics"})
	require.NoError(t, err)

	err = svc.Delete(ctx, teacher.ID, false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConfirmationRequired.Code, appErrors.FromError(err).Code)

	require.NoError(t, svc.Delete(ctx, teacher.ID, true))

	_, err = svc.Get(ctx, teacher.ID)
	require.Error(t, err)

	_, found, err := users.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.True(t, found, "login account survives profile deletion")
}
