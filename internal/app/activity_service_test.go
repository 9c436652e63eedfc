package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/testutil"
)

func TestActivityService_Recent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := repository.NewUserRepository(db)
	activities := repository.NewActivityRepository(db)
	svc := NewActivityService(users, activities)

	owner := &model.User{Username: "alice"}
	require.NoError(t, owner.SetPassword("pw123456"))
	require.NoError(t, users.Create(ctx, owner))

	empty, err := svc.Recent(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, empty)

	require.NoError(t, activities.Create(ctx, &model.Activity{UserID: owner.ID, Kind: model.ActivitySignup}))
	require.NoError(t, activities.Create(ctx, &model.Activity{UserID: owner.ID, Kind: model.ActivityRecipeCreated, SubjectID: 4}))

	recent, err := svc.Recent(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, model.ActivityRecipeCreated, recent[0].Kind)

	_, err = svc.Recent(ctx, 0)
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = users.Delete(ctx, owner.ID)
	require.NoError(t, err)
	_, err = svc.Recent(ctx, owner.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
