package service

import (
	"context"
	"errors"
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/internal/kioskauth/mailbox"
	"github.com/posturekit/kioskauth/internal/kioskauth/store"
	"github.com/posturekit/kioskauth/pkg/slogx"
)

// ErrVerifyTimeout is returned when no verification mail matching the
// requested code arrives before the deadline.
var ErrVerifyTimeout = errors.New("verify_timeout")

// MailPoller is the slice of mailbox.Poller the verify flow needs; it exists
// so tests can stand in a fake mailbox.
type MailPoller interface {
	PollOnce(ctx context.Context, since time.Time) ([]mailbox.Verification, error)
	Close() error
}

// MailboxDialer opens a fresh authenticated poller.
type MailboxDialer func() (MailPoller, error)

// VerifyService implements the blocking-match verification flow: the mobile
// app sends an SMS carrying its code to the gateway number, calls
// request-verify, and blocks until the forwarded mail shows up in the inbox.
type VerifyService struct {
	Dial  MailboxDialer
	Store store.Store

	Timeout       time.Duration
	CheckInterval time.Duration
	SearchWindow  time.Duration
}

// WaitForCode polls the mailbox until a message whose code equals the
// requested one arrives, records the pending auth for the sender's phone
// number and returns it. The poll loop runs on its own goroutine and is
// cancelled through the context deadline; ErrVerifyTimeout reports expiry,
// while a caller-cancelled context surfaces as context.Canceled.
func (s *VerifyService) WaitForCode(ctx context.Context, code string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	poller, err := s.Dial()
	if err != nil {
		return "", err
	}

	type result struct {
		phone string
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		defer poller.Close()
		phone, err := s.pollForMatch(ctx, poller, code)
		resultCh <- result{phone: phone, err: err}
	}()

	select {
	case res := <-resultCh:
		return res.phone, res.err
	case <-ctx.Done():
		// The worker observes the cancelled context on its next loop
		// iteration and closes the connection behind us.
		return "", waitErr(ctx)
	}
}

// waitErr maps deadline expiry to the timeout sentinel. A cancelled caller
// context (client disconnect) passes through as context.Canceled so it is
// never reported as a timeout.
func waitErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrVerifyTimeout
	}
	return ctx.Err()
}

func (s *VerifyService) pollForMatch(ctx context.Context, poller MailPoller, code string) (string, error) {
	log := slogx.FromContext(ctx)
	ticker := time.NewTicker(s.CheckInterval)
	defer ticker.Stop()

	for {
		verifications, err := poller.PollOnce(ctx, time.Now().Add(-s.SearchWindow))
		if err != nil {
			if ctx.Err() != nil {
				return "", waitErr(ctx)
			}
			return "", err
		}

		for _, v := range verifications {
			if v.Code != code {
				continue
			}

			rec := domain.PendingAuth{
				PhoneNumber: v.PhoneNumber,
				UID:         code,
				CreatedAt:   time.Now(),
			}
			if err := s.Store.PendingAuths().UpsertPendingAuth(ctx, rec); err != nil {
				return "", err
			}

			log.Info("verification code matched", "phone_number", v.PhoneNumber)
			return v.PhoneNumber, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return "", waitErr(ctx)
		}
	}
}
