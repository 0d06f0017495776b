package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteDraftRepository {
	t.Helper()
	repo, err := NewSQLiteDraftRepositoryWithPath(filepath.Join(t.TempDir(), "formflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestDraftRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepo(t)

	draft := &Draft{
		ID:          uuid.NewString(),
		FormID:      "signup",
		SubmittedAt: time.Now(),
		Values:      map[string]string{"name": "Jo", "email": "jo@example.com"},
	}
	require.NoError(t, repo.Save(draft))

	got, err := repo.Get(draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "signup", got.FormID)
	assert.Equal(t, "Jo", got.Values["name"])
	assert.WithinDuration(t, draft.SubmittedAt, got.SubmittedAt, time.Second)
}

func TestDraftRepository_SaveUpserts(t *testing.T) {
	repo := newTestRepo(t)

	draft := &Draft{
		ID:          "fixed-id",
		FormID:      "signup",
		SubmittedAt: time.Now(),
		Values:      map[string]string{"name": "v1"},
	}
	require.NoError(t, repo.Save(draft))

	draft.Values["name"] = "v2"
	require.NoError(t, repo.Save(draft))

	got, err := repo.Get("fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Values["name"])

	all, err := repo.ListByForm("signup")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDraftRepository_ListByForm(t *testing.T) {
	repo := newTestRepo(t)

	older := &Draft{ID: "a", FormID: "signup", SubmittedAt: time.Now().Add(-time.Hour)}
	newer := &Draft{ID: "b", FormID: "signup", SubmittedAt: time.Now()}
	other := &Draft{ID: "c", FormID: "survey", SubmittedAt: time.Now()}
	for _, d := range []*Draft{older, newer, other} {
		require.NoError(t, repo.Save(d))
	}

	drafts, err := repo.ListByForm("signup")
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "b", drafts[0].ID, "most recent first")
	assert.Equal(t, "a", drafts[1].ID)
}

func TestDraftRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Get("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draft not found")
}

func TestDraftRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)

	draft := &Draft{ID: "x", FormID: "signup", SubmittedAt: time.Now()}
	require.NoError(t, repo.Save(draft))
	require.NoError(t, repo.Delete("x"))

	_, err := repo.Get("x")
	assert.Error(t, err)

	// Deleting a missing draft is not an error.
	assert.NoError(t, repo.Delete("x"))
}

func TestDraftRepository_SaveNil(t *testing.T) {
	repo := newTestRepo(t)
	assert.Error(t, repo.Save(nil))
	assert.Error(t, repo.Save(&Draft{FormID: "signup"}))
}
