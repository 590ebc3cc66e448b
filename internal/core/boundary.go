// AngelaMos | 2026
// boundary.go

package core

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/carterperez-dev/templates/loyalty/internal/config"
)

// Boundary runs before every facade operation. It is the single place where
// remote-API behaviour (latency, throttling, faults) is simulated.
type Boundary interface {
	Before(ctx context.Context, op string) error
}

type noLatency struct{}

func (noLatency) Before(ctx context.Context, _ string) error {
	return ctx.Err()
}

// NoLatency passes every call straight through.
var NoLatency Boundary = noLatency{}

// DefaultDelays are the base response times of the remote API, per operation.
var DefaultDelays = map[string]time.Duration{
	"ListUsers":            500 * time.Millisecond,
	"GetUser":              300 * time.Millisecond,
	"GetUserByEmail":       300 * time.Millisecond,
	"UpdateUser":           500 * time.Millisecond,
	"RegisterUser":         1200 * time.Millisecond,
	"ListTasks":            400 * time.Millisecond,
	"GetTask":              300 * time.Millisecond,
	"CreateTask":           600 * time.Millisecond,
	"UpdateTask":           500 * time.Millisecond,
	"DeleteTask":           400 * time.Millisecond,
	"ListSubmissions":      400 * time.Millisecond,
	"GetSubmission":        300 * time.Millisecond,
	"CreateSubmission":     600 * time.Millisecond,
	"UpdateSubmission":     500 * time.Millisecond,
	"ReviewSubmission":     500 * time.Millisecond,
	"ListNotifications":    300 * time.Millisecond,
	"MarkNotificationRead": 200 * time.Millisecond,
	"CreateNotification":   300 * time.Millisecond,
	"ListTransactions":     400 * time.Millisecond,
	"CreateTransaction":    500 * time.Millisecond,
	"ProcessWithdrawal":    800 * time.Millisecond,
	"Leaderboard":          400 * time.Millisecond,
	"ListAchievements":     300 * time.Millisecond,
	"UserAchievements":     300 * time.Millisecond,
	"ListRewards":          400 * time.Millisecond,
	"GetReward":            300 * time.Millisecond,
	"RedeemReward":         600 * time.Millisecond,
	"Statistics":           500 * time.Millisecond,
	"DashboardStats":       400 * time.Millisecond,
	"SearchAll":            400 * time.Millisecond,
}

const fallbackDelay = 300 * time.Millisecond

type Simulator struct {
	delays    map[string]time.Duration
	scale     float64
	jitter    float64
	faultRate float64
	limiter   *rate.Limiter
	sleep     func(ctx context.Context, d time.Duration) error

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulator(cfg config.LatencyConfig) *Simulator {
	s := &Simulator{
		delays:    DefaultDelays,
		scale:     cfg.Scale,
		jitter:    cfg.Jitter,
		faultRate: cfg.FaultRate,
		sleep:     sleepContext,
		//nolint:gosec // G404: simulated latency, not security sensitive
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return s
}

// NewBoundary returns NoLatency unless simulation is enabled.
func NewBoundary(cfg config.LatencyConfig) Boundary {
	if !cfg.Enabled {
		return NoLatency
	}
	return NewSimulator(cfg)
}

func (s *Simulator) Before(ctx context.Context, op string) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: throttled: %w", op, err)
		}
	}

	if err := s.sleep(ctx, s.Delay(op)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.faultRate > 0 && s.roll() < s.faultRate {
		return fmt.Errorf("%s: injected fault: %w", op, ErrInternal)
	}

	return nil
}

// Delay returns the jittered delay for op.
func (s *Simulator) Delay(op string) time.Duration {
	base, ok := s.delays[op]
	if !ok {
		base = fallbackDelay
	}

	d := float64(base) * s.scale
	if s.jitter > 0 {
		d += d * s.jitter * (2*s.roll() - 1)
	}
	if d < 0 {
		return 0
	}

	return time.Duration(d)
}

func (s *Simulator) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
