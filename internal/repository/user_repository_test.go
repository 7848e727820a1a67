package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edukit/edu-console-api/internal/models"
	"github.com/edukit/edu-console-api/internal/store"
)

func newTestAdapter() *store.Adapter {
	return store.NewAdapter(store.NewMemoryKV(), nil, nil)
}

func TestUserRepositoryCreateAndList(t *testing.T) {
	repo := NewUserRepository(newTestAdapter())
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	user := &models.User{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
	assert.Equal(t, "ada@example.com", after[len(after)-1].Email)
}

func TestUserRepositoryFindByEmailIsLiteral(t *testing.T) {
	repo := NewUserRepository(newTestAdapter())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: models.RoleAdmin}))

	_, found, err := repo.FindByEmail(ctx, "ADA@EXAMPLE.COM")
	require.NoError(t, err)
	assert.False(t, found, "sign-in matching compares the stored email literally")

	_, found, err = repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, found)

	exists, err := repo.ExistsByEmailFold(ctx, "ADA@EXAMPLE.COM")
	require.NoError(t, err)
	assert.True(t, exists, "the duplicate check folds case")
}

func TestUserRepositoryUpdateIsIdempotent(t *testing.T) {
	repo := NewUserRepository(newTestAdapter())
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, user))

	updated := *user
	updated.Name = "Ada L."

	found, err := repo.Update(ctx, updated)
	require.NoError(t, err)
	assert.True(t, found)
	once, err := repo.List(ctx)
	require.NoError(t, err)

	found, err = repo.Update(ctx, updated)
	require.NoError(t, err)
	assert.True(t, found)
	twice, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestUserRepositoryUpdateMissingIsSilent(t *testing.T) {
	repo := NewUserRepository(newTestAdapter())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: models.RoleAdmin}))
	before, err := repo.List(ctx)
	require.NoError(t, err)

	found, err := repo.Update(ctx, models.User{ID: "no-such-id", Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, found)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUserRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := NewUserRepository(newTestAdapter())
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, repo.Create(ctx, &models.User{Name: "Grace", Email: "grace@example.com", Password: "pw", Role: models.RoleTeacher}))

	require.NoError(t, repo.Delete(ctx, user.ID))
	once, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, once, 1)

	require.NoError(t, repo.Delete(ctx, user.ID))
	twice, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
