// AngelaMos | 2026
// service_test.go

package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/notification"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

func TestListForUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := store.New(store.WithClock(func() time.Time {
		return time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	}))
	repo := notification.NewRepository(db)
	svc := notification.NewService(db, repo)

	day := func(d int) time.Time { return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC) }
	for _, n := range []notification.Notification{
		{ID: "1", UserID: "2", Title: "Tugas Baru", Type: notification.TypeTask, CreatedAt: day(19)},
		{ID: "2", UserID: "2", Title: "Submission Disetujui", Type: notification.TypeSubmission, Read: true, CreatedAt: day(16)},
		{ID: "3", UserID: "3", Title: "Deadline Mendekat", Type: notification.TypeTask, CreatedAt: day(18)},
	} {
		require.NoError(t, repo.Seed(ctx, &n))
	}

	created, err := svc.Create(ctx, notification.CreateNotificationRequest{
		UserID:  "2",
		Title:   "Reward Ditukar",
		Message: "Voucher Service Gratis siap digunakan",
		Type:    notification.TypeReward,
	})
	require.NoError(t, err)

	inbox, err := svc.ListForUser(ctx, "2")
	require.NoError(t, err)

	got := make([]string, 0, len(inbox))
	for _, n := range inbox {
		got = append(got, n.ID)
	}
	assert.Equal(t, []string{created.ID, "1", "2"}, got)

	empty, err := svc.ListForUser(ctx, "404")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	db := store.New()
	svc := notification.NewService(db, notification.NewRepository(db))

	require.NoError(t, svc.NotifySystem(ctx, "2", "Selamat Datang", "Halo"))

	inbox, err := svc.ListForUser(ctx, "2")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.False(t, inbox[0].Read)

	require.NoError(t, svc.MarkRead(ctx, inbox[0].ID))
	require.NoError(t, svc.MarkRead(ctx, inbox[0].ID))

	inbox, err = svc.ListForUser(ctx, "2")
	require.NoError(t, err)
	assert.True(t, inbox[0].Read)

	require.ErrorIs(t, svc.MarkRead(ctx, "404"), core.ErrNotFound)
}

func TestCreateValidation(t *testing.T) {
	db := store.New()
	svc := notification.NewService(db, notification.NewRepository(db))

	_, err := svc.Create(context.Background(), notification.CreateNotificationRequest{
		UserID:  "2",
		Title:   "Promo",
		Message: "Diskon",
		Type:    "promo",
	})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}
