package repository_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/testutil"
)

func newUser(t *testing.T, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username}
	require.NoError(t, user.SetPassword("pw123456"))
	return user
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(testutil.NewDB(t))

	user := newUser(t, "alice")
	user.Bio = "cooks a lot"
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	require.Equal(t, user.ID, byName.ID)
	require.Equal(t, "cooks a lot", byName.Bio)
	require.Equal(t, "", byName.ImageURL)
	require.True(t, byName.Authenticate("pw123456"))
	require.False(t, byName.Authenticate("pw1234567"))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "alice", byID.Username)
}

func TestUserRepository_MissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(testutil.NewDB(t))

	user, err := repo.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, user)

	user, err = repo.GetByID(ctx, 42)
	require.NoError(t, err)
	require.Nil(t, user)

	user, err = repo.GetByIDWithRecipes(ctx, 42)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewUserRepository(testutil.NewDB(t))

	require.NoError(t, repo.Create(ctx, newUser(t, "alice")))

	dup := newUser(t, "alice")
	dup.Bio = "different bio"
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestUserRepository_DeleteCascadesRecipes(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	recipes := repository.NewRecipeRepository(db)

	alice := newUser(t, "alice")
	bob := newUser(t, "bob")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	instructions := strings.Repeat("x", model.MinInstructionsLength)
	for _, owner := range []uint{alice.ID, alice.ID, bob.ID} {
		require.NoError(t, recipes.Create(ctx, &model.Recipe{
			Title:             "Bread",
			Instructions:      instructions,
			MinutesToComplete: 60,
			UserID:            owner,
		}))
	}

	loaded, err := users.GetByIDWithRecipes(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Recipes, 2)

	deleted, err := users.Delete(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	remaining, err := recipes.ListByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, remaining)

	bobs, err := recipes.ListByUserID(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobs, 1)

	deleted, err = users.Delete(ctx, alice.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
