package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/repository"
	"github.com/edukit/edu-console-api/internal/store"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.UserRepository, *store.Adapter) {
	t.Helper()
	adapter := store.NewAdapter(store.NewMemoryKV(), nil, nil)
	users := repository.NewUserRepository(adapter)
	return NewAuthService(users, adapter, "currentUser", nil, nil), users, adapter
}

func TestSignInLiteralMatch(t *testing.T) {
	svc, users, adapter := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{
		Name: "Jane", Email: "jane@x.com", Password: "123456", Role: models.RoleTeacher,
	}))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "exact match", email: "jane@x.com", password: "123456"},
		{name: "wrong password", email: "jane@x.com", password: "12345", wantErr: true},
		{name: "different email case is rejected", email: "Jane@x.com", password: "123456", wantErr: true},
		{name: "unknown account", email: "nobody@x.com", password: "123456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.SignIn(ctx, SignInRequest{Email: tt.email, Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jane@x.com", user.Email)
			assert.Empty(t, user.Password)

			var session models.User
			found, err := adapter.Record(ctx, "currentUser", &session)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "jane@x.com", session.Email)
		})
	}
}

func TestSignUpDuplicateEmailFoldsCase(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{
		Name: "Jane", Email: "jane@x.com", Password: "123456", Role: models.RoleTeacher,
	}))

	_, err := svc.SignUp(ctx, SignUpRequest{
		Name: "Other Jane", Email: "Jane@X.com", Password: "pw", Role: "student",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrEmailTaken.Code, appErrors.FromError(err).Code)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "no second account is created")
}

func TestSignUpNormalizesAndStartsSession(t *testing.T) {
	svc, users, adapter := newAuthFixture(t)
	ctx := context.Background()

	user, err := svc.SignUp(ctx, SignUpRequest{
		Name: "  Bob  ", Email: "  Bob@X.com ", Password: "secret", Role: "student",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)
	assert.Equal(t, "bob@x.com", user.Email)
	assert.NotEmpty(t, user.ID)

	stored, found, err := users.FindByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "secret", stored.Password)

	var session models.User
	found, err = adapter.Record(ctx, "currentUser", &session)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestSignOutClearsSession(t *testing.T) {
	svc, users, adapter := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &models.User{
		Name: "Jane", Email: "jane@x.com", Password: "123456", Role: models.RoleAdmin,
	}))
	_, err := svc.SignIn(ctx, SignInRequest{Email: "jane@x.com", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx))

	var session models.User
	found, err := adapter.Record(ctx, "currentUser", &session)
	require.NoError(t, err)
	assert.False(t, found)

	// Signing out twice is harmless.
	require.NoError(t, svc.SignOut(ctx))
}

func TestCurrentReportsAbsentSession(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	user, found, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, user)
}
