package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultCheckTimeout = 3 * time.Second

// Pinger is anything the readiness probe can check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports whether the server's dependencies answer.
type HealthService interface {
	// Ready pings every registered dependency concurrently. The map holds "ok" or the error text per check.
	Ready(ctx context.Context) (map[string]string, error)
}

type healthService struct {
	checks  map[string]Pinger
	timeout time.Duration
}

// NewHealthService creates a HealthService. Nil pingers are skipped, so optional dependencies can be passed as-is.
func NewHealthService(checks map[string]Pinger) HealthService {
	registered := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			registered[name] = p
		}
	}
	return &healthService{checks: registered, timeout: defaultCheckTimeout}
}

// Ready implements HealthService
func (s *healthService) Ready(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		results = make(map[string]string, len(s.checks))
	)

	// a plain Group, not WithContext: one failing check must not cancel the others
	var g errgroup.Group
	for name, p := range s.checks {
		g.Go(func() error {
			err := p.Ping(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[name] = err.Error()
				return err
			}
			results[name] = "ok"
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
