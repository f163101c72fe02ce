package mailbox

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
)

const (
	reconnectBaseDelay = 5 * time.Second
	reconnectMaxDelay  = 5 * time.Minute
)

// Watcher runs the continuous ingestion loop: poll the mailbox at a fixed
// interval and upsert every extracted pair into the pending-auth store,
// keyed by phone number with last-write-wins semantics.
//
// Run one Watcher per mailbox credential, process-wide.
type Watcher struct {
	Config        Config
	Store         store.Store
	Logger        *slog.Logger
	CheckInterval time.Duration
	SearchWindow  time.Duration
}

// Run blocks until ctx is cancelled. Connection failures trigger a reconnect
// with capped exponential backoff and jitter; malformed mails are skipped
// inside the poller and never stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	delay := reconnectBaseDelay

	for {
		poller, err := Dial(w.Config)
		if err != nil {
			w.Logger.Error("mailbox connect failed", "error", err, "retry_in", delay)
			if !sleepCtx(ctx, withJitter(delay)) {
				return ctx.Err()
			}
			delay = min(delay*2, reconnectMaxDelay)
			continue
		}
		w.Logger.Info("mailbox connected", "address", w.Config.Address)

		healthy, err := w.ingest(ctx, poller.PollOnce)
		_ = poller.Close()
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return ctx.Err()
		}

		// A connection only earns a backoff reset once it has completed a
		// poll: a server that accepts logins but fails every poll keeps
		// escalating instead of reconnecting in a tight loop.
		if healthy {
			delay = reconnectBaseDelay
		}
		w.Logger.Error("mailbox poll loop failed, reconnecting", "error", err, "retry_in", delay)
		if !sleepCtx(ctx, withJitter(delay)) {
			return ctx.Err()
		}
		delay = min(delay*2, reconnectMaxDelay)
	}
}

type pollFunc func(ctx context.Context, since time.Time) ([]Verification, error)

// ingest polls on a ticker until ctx is done or the connection errors out.
// It reports whether at least one poll completed on this connection.
func (w *Watcher) ingest(ctx context.Context, poll pollFunc) (bool, error) {
	ticker := time.NewTicker(w.CheckInterval)
	defer ticker.Stop()

	healthy := false
	for {
		verifications, err := poll(ctx, time.Now().Add(-w.SearchWindow))
		if err != nil {
			return healthy, err
		}
		healthy = true

		for _, v := range verifications {
			rec := domain.PendingAuth{
				PhoneNumber: v.PhoneNumber,
				UID:         v.Code,
				CreatedAt:   time.Now(),
			}
			if err := w.Store.PendingAuths().UpsertPendingAuth(ctx, rec); err != nil {
				w.Logger.Error("pending auth upsert failed", "phone_number", v.PhoneNumber, "error", err)
				continue
			}
			w.Logger.Info("pending auth recorded", "phone_number", v.PhoneNumber)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return healthy, ctx.Err()
		}
	}
}

func withJitter(d time.Duration) time.Duration {
	// up to +25% so restarting replicas don't reconnect in lockstep
	return d + rand.N(d/4)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
