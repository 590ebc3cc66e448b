// AngelaMos | 2026
// service_test.go

package task_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
	"github.com/carterperez-dev/templates/loyalty/internal/task"
)

var testNow = time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) *task.Service {
	t.Helper()

	db := store.New(store.WithClock(func() time.Time { return testNow }))
	repo := task.NewRepository(db)

	seed := []task.Task{
		{ID: "1", Title: "Review Service Yamaha NMAX", Description: "Upload foto struk service", Category: task.CategoryService, Status: task.StatusActive, Reward: 75000},
		{ID: "2", Title: "Share Foto Motor di Instagram", Description: "Posting foto motor", Category: task.CategorySocial, Status: task.StatusActive, Reward: 35000},
		{ID: "3", Title: "Survey Kepuasan", Description: "Isi survey", Category: task.CategorySurvey, Status: task.StatusExpired, Reward: 50000},
		{ID: "4", Title: "Service Check", Description: "Foto bengkel", Category: task.CategoryService, Status: task.StatusCompleted, Reward: 20000},
	}
	for i := range seed {
		require.NoError(t, repo.Seed(context.Background(), &seed[i]))
	}

	return task.NewService(db, repo)
}

func taskIDs(tasks []task.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	tests := []struct {
		name   string
		filter task.Filter
		want   []string
	}{
		{"no filter", task.Filter{}, []string{"1", "2", "3", "4"}},
		{"all is no filter", task.Filter{Category: task.FilterAll, Status: task.FilterAll}, []string{"1", "2", "3", "4"}},
		{"category", task.Filter{Category: task.CategoryService}, []string{"1", "4"}},
		{"status", task.Filter{Status: task.StatusActive}, []string{"1", "2"}},
		{"category and status", task.Filter{Category: task.CategoryService, Status: task.StatusActive}, []string{"1"}},
		{"search is case insensitive", task.Filter{Search: "FOTO"}, []string{"1", "2", "4"}},
		{"nothing matches", task.Filter{Category: "museum"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, taskIDs(got))
		})
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		Title:        "Workshop Safety Riding",
		Description:  "Ikuti workshop",
		Reward:       120000,
		Deadline:     testNow.AddDate(0, 1, 0),
		Category:     task.CategoryWorkshop,
		Requirements: []string{"Hadir tepat waktu"},
		CreatedBy:    "1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, task.StatusActive, created.Status)
	assert.Equal(t, testNow, created.CreatedAt)

	all, err := svc.List(ctx, task.Filter{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, 5, svc.Count(ctx))
	assert.Equal(t, 3, svc.CountActive(ctx))

	_, err = svc.Create(ctx, task.CreateTaskRequest{Title: "no description"})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	status := task.StatusCompleted
	updated, err := svc.Update(ctx, "2", task.UpdateTaskRequest{
		Status:       &status,
		Requirements: []string{"Tag 3 teman"},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, updated.Status)
	assert.Equal(t, []string{"Tag 3 teman"}, updated.Requirements)
	assert.Equal(t, "Share Foto Motor di Instagram", updated.Title)

	_, err = svc.Update(ctx, "99", task.UpdateTaskRequest{Status: &status})
	require.ErrorIs(t, err, core.ErrNotFound)

	bad := "archived"
	_, err = svc.Update(ctx, "2", task.UpdateTaskRequest{Status: &bad})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := setup(t)

	require.NoError(t, svc.Delete(ctx, "2"))

	_, err := svc.GetByID(ctx, "2")
	require.ErrorIs(t, err, core.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "2"), core.ErrNotFound)
}
