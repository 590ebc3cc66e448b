// AngelaMos | 2026
// main_test.go

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/carterperez-dev/templates/loyalty/internal/config"
	"github.com/carterperez-dev/templates/loyalty/internal/core"
	"github.com/carterperez-dev/templates/loyalty/internal/loyalty"
	"github.com/carterperez-dev/templates/loyalty/internal/seed"
	"github.com/carterperez-dev/templates/loyalty/internal/store"
)

func seededService(t *testing.T) *loyalty.Service {
	t.Helper()

	db := store.New()
	repos := loyalty.NewRepositories(db)
	require.NoError(t, seed.Load(context.Background(), db, repos))

	return loyalty.New(db, repos, loyalty.Options{})
}

func TestDispatch(t *testing.T) {
	svc := seededService(t)

	tests := []struct {
		args []string
		want int
	}{
		{[]string{"users"}, 6},
		{[]string{"tasks"}, 8},
		{[]string{"tasks", "social"}, 1},
		{[]string{"rewards"}, 5},
		{[]string{"leaderboard", "2"}, 2},
		{[]string{"achievements", "2"}, 5},
		{[]string{"notifications", "2"}, 2},
		{[]string{"transactions"}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, dispatch(context.Background(), svc, tt.args, &out))

			var items []map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &items))
			assert.Len(t, items, tt.want)
		})
	}
}

func TestDispatchStatistics(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, dispatch(context.Background(), seededService(t), []string{"statistics"}, &out))

	var st map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &st))
	assert.EqualValues(t, 8, st["total_tasks"])
}

func TestDispatchUsage(t *testing.T) {
	svc := seededService(t)

	for _, args := range [][]string{{"bogus"}, {"search"}, {"achievements"}} {
		require.ErrorIs(t, dispatch(context.Background(), svc, args, &bytes.Buffer{}), errUsage)
	}

	require.Error(t, dispatch(context.Background(), svc, []string{"leaderboard", "ten"}, &bytes.Buffer{}))
}

func TestRunWithoutCommand(t *testing.T) {
	require.ErrorIs(t, run("", nil), errUsage)
}

func TestFacadeOptionsUsesTelemetryTracer(t *testing.T) {
	ctx := context.Background()

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	tel := &core.Telemetry{Tracer: tp.Tracer("loyalty")}
	opts := facadeOptions(&config.Config{}, tel, nil)
	require.Equal(t, tel.Tracer, opts.Tracer)
	assert.Equal(t, core.NoLatency, opts.Boundary)

	db := store.New()
	repos := loyalty.NewRepositories(db)
	require.NoError(t, seed.Load(ctx, db, repos))

	_, err := loyalty.New(db, repos, opts).ListUsers(ctx)
	require.NoError(t, err)

	ended := spans.Ended()
	require.NotEmpty(t, ended)
	assert.Equal(t, "loyalty.ListUsers", ended[len(ended)-1].Name())
}

func TestFacadeOptionsWithoutTelemetry(t *testing.T) {
	opts := facadeOptions(&config.Config{}, nil, nil)
	assert.Nil(t, opts.Tracer)
}
