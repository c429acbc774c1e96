package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/mock"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
	"github.com/MKhiriev/go-persona-keeper/models"
)

func newIdentityServiceUnderTest(t *testing.T) (IdentityService, *mock.MockIdentityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockIdentityRepository(ctrl)
	return NewIdentityService(repo, logger.Nop()), repo
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestIdentityService_Create_TrimsAndClearsID(t *testing.T) {
	svc, repo := newIdentityServiceUnderTest(t)
	ctx := context.Background()

	saved := models.Identity{ID: "new-id", FirstName: "Ada"}
	repo.EXPECT().
		Save(gomock.Any(), models.Identity{FirstName: "Ada", City: "London"}).
		Return(saved, nil)

	got, err := svc.Create(ctx, models.Identity{ID: "caller-id", FirstName: "  Ada ", City: "London\n"})

	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestIdentityService_Create_RepoError(t *testing.T) {
	svc, repo := newIdentityServiceUnderTest(t)
	boom := errors.New("disk full")

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.Identity{}, boom)

	_, err := svc.Create(context.Background(), models.Identity{FirstName: "Ada"})
	assert.ErrorIs(t, err, boom)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestIdentityService_Update_KeepsCreatedAt(t *testing.T) {
	svc, repo := newIdentityServiceUnderTest(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Get(gomock.Any(), "id-1").Return(models.Identity{ID: "id-1", CreatedAt: created}, nil)
	repo.EXPECT().
		Save(gomock.Any(), models.Identity{ID: "id-1", LastName: "Byron", CreatedAt: created}).
		DoAndReturn(func(_ context.Context, i models.Identity) (models.Identity, error) { return i, nil })

	got, err := svc.Update(context.Background(), models.Identity{ID: "id-1", LastName: "Byron", CreatedAt: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
}

func TestIdentityService_Update_NotFound(t *testing.T) {
	svc, repo := newIdentityServiceUnderTest(t)

	repo.EXPECT().Get(gomock.Any(), "missing").Return(models.Identity{}, store.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), models.Identity{ID: "missing", FirstName: "X"})
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

// ── Get / List / Delete ──────────────────────────────────────────────────────

func TestIdentityService_GetListDelete(t *testing.T) {
	svc, repo := newIdentityServiceUnderTest(t)
	ctx := context.Background()
	rec := models.Identity{ID: "id-1", FirstName: "Ada"}

	repo.EXPECT().Get(gomock.Any(), "id-1").Return(rec, nil)
	repo.EXPECT().List(gomock.Any()).Return([]models.Identity{rec}, nil)
	repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

	got, err := svc.Get(ctx, " id-1 ")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Identity{rec}, list)

	require.NoError(t, svc.Delete(ctx, "id-1"))
}

func TestIdentityService_Delete_NotFound(t *testing.T) {
	svc, repo := newIdentityServiceUnderTest(t)

	repo.EXPECT().Delete(gomock.Any(), "gone").Return(store.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "gone"), store.ErrRecordNotFound)
}
