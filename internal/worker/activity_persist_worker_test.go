package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/testutil"
)

type failingWriter struct{}

func (failingWriter) Create(context.Context, *model.Activity) error {
	return errors.New("database unavailable")
}

func TestActivityPersistWorker_HandlePersists(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewActivityRepository(testutil.NewDB(t))
	w := NewActivityPersistWorker(nil, repo, "recipebox.activity", nil)

	body, err := json.Marshal(model.Activity{
		ID:        99,
		UserID:    3,
		Kind:      model.ActivityRecipeCreated,
		SubjectID: 12,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, w.handle(ctx, body))
	require.NoError(t, w.handle(ctx, body))

	stored, err := repo.ListRecentByUserID(ctx, 3, 10)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, model.ActivityRecipeCreated, stored[0].Kind)
	require.Equal(t, uint(12), stored[0].SubjectID)
	require.NotEqual(t, stored[0].ID, stored[1].ID)
}

func TestActivityPersistWorker_HandleRejectsMalformed(t *testing.T) {
	w := NewActivityPersistWorker(nil, failingWriter{}, "q", nil)

	for _, body := range []string{
		"not json",
		`{"kind":"user.login"}`,
		`{"user_id":1}`,
	} {
		err := w.handle(context.Background(), []byte(body))
		require.ErrorIs(t, err, errMalformedActivity, body)
	}
}

func TestActivityPersistWorker_HandleStorageError(t *testing.T) {
	w := NewActivityPersistWorker(nil, failingWriter{}, "q", nil)

	err := w.handle(context.Background(), []byte(`{"user_id":1,"kind":"user.login"}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, errMalformedActivity)
}

func TestActivityPersistWorker_CloseWithoutStart(t *testing.T) {
	w := NewActivityPersistWorker(nil, failingWriter{}, "q", nil)
	w.Close()
}
