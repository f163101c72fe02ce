package mailbox

import (
	"context"
	"fmt"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// Config holds the IMAPS mailbox credentials and extraction settings.
type Config struct {
	Address        string // host:port, IMAPS
	Username       string
	Password       string
	AllowedDomains []string
	Source         CodeSource
}

// Poller owns one authenticated IMAP connection and scans the inbox for
// gateway mails. It is not safe for concurrent use, and only one poller may
// run against a mailbox credential at a time: two pollers would observe and
// double-process the same messages.
//
// Connection and auth errors are returned to the caller; the supervisor owns
// reconnect-with-backoff (see Watcher).
type Poller struct {
	client    *imapclient.Client
	extractor *Extractor

	// lastUID is the per-connection watermark so a UID is never processed
	// twice within a run. IMAP UIDs are non-decreasing within a mailbox by
	// provider convention, not a hard guarantee.
	lastUID imap.UID
}

// Dial connects to the IMAPS server, authenticates and selects the inbox.
func Dial(cfg Config) (*Poller, error) {
	client, err := imapclient.DialTLS(cfg.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("mailbox: dial %s: %w", cfg.Address, err)
	}

	if err := client.Login(cfg.Username, cfg.Password).Wait(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("mailbox: login: %w", err)
	}

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("mailbox: select inbox: %w", err)
	}

	return &Poller{
		client:    client,
		extractor: NewExtractor(cfg.AllowedDomains, cfg.Source),
	}, nil
}

// Close logs out and releases the connection.
func (p *Poller) Close() error {
	err := p.client.Logout().Wait()
	if cerr := p.client.Close(); err == nil {
		err = cerr
	}
	return err
}

// PollOnce searches the inbox for messages arriving in [since, now] and
// returns the verification pairs extracted from them. Messages already seen
// on this connection (by UID watermark) and malformed messages are skipped.
func (p *Poller) PollOnce(ctx context.Context, since time.Time) ([]Verification, error) {
	// IMAP SINCE has date granularity only; the envelope date check below
	// narrows the window to the requested time.
	search, err := p.client.UIDSearch(&imap.SearchCriteria{Since: since}, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("mailbox: uid search: %w", err)
	}

	uids := p.newUIDs(search.AllUIDs())
	if len(uids) == 0 {
		return nil, nil
	}

	options := &imap.FetchOptions{UID: true, Envelope: true}
	bodySection := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierText}
	if p.extractor.source == CodeFromBody {
		options.BodySection = []*imap.FetchItemBodySection{bodySection}
	}

	fetch := p.client.Fetch(imap.UIDSetNum(uids...), options)
	defer fetch.Close()

	now := time.Now()
	var out []Verification
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		data := fetch.Next()
		if data == nil {
			break
		}

		buf, err := data.Collect()
		if err != nil {
			// A single unfetchable message is not fatal to the run.
			continue
		}

		p.advance(buf.UID)

		msg, ok := messageFromBuffer(buf, bodySection)
		if !ok {
			continue
		}

		if v, ok := p.extractor.Extract(msg, since, now); ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// newUIDs filters out every UID at or below the watermark, so a UID is never
// processed twice on this connection.
func (p *Poller) newUIDs(uids []imap.UID) []imap.UID {
	out := make([]imap.UID, 0, len(uids))
	for _, uid := range uids {
		if uid > p.lastUID {
			out = append(out, uid)
		}
	}
	return out
}

func (p *Poller) advance(uid imap.UID) {
	if uid > p.lastUID {
		p.lastUID = uid
	}
}

func messageFromBuffer(buf *imapclient.FetchMessageBuffer, bodySection *imap.FetchItemBodySection) (Message, bool) {
	env := buf.Envelope
	if env == nil || len(env.From) == 0 {
		return Message{}, false
	}

	msg := Message{
		UID:        uint32(buf.UID),
		Date:       env.Date,
		FromLocal:  env.From[0].Mailbox,
		FromDomain: env.From[0].Host,
		Subject:    env.Subject,
	}
	if body := buf.FindBodySection(bodySection); body != nil {
		msg.Body = string(body)
	}
	return msg, true
}
