package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/store"
)

// HousekeepingService periodically reaps stale kiosk sessions. This is the
// only mechanism that reclaims sessions which were created but never bound,
// and it applies to bound sessions too: there is no "last used" timestamp,
// so kiosks must tolerate an old session disappearing by creating a new one.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the session reaper. Interval defaults to
// 24h and retention to 30 days when unset.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call exactly once from
// the application's startup routine, and Stop() on graceful shutdown.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping started", "interval", s.Interval, "retention", s.Retention)
}

// Stop shuts down the worker and blocks until any in-progress cleanup ends.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup bulk-deletes sessions older than the retention window. A session
// created exactly at the cutoff is retained. Errors are logged, never fatal.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	cutoff := time.Now().Add(-s.Retention)

	deleted, err := s.Store.Sessions().DeleteSessionsBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete old sessions", "error", err)
		return
	}

	s.Logger.Info("old sessions deleted", "count", deleted, "cutoff", cutoff)
}
