package mailbox

import (
	"testing"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/stretchr/testify/require"
)

func TestWatermarkSkipsAlreadySeenUIDs(t *testing.T) {
	p := &Poller{}

	first := p.newUIDs([]imap.UID{3, 5, 8})
	require.Equal(t, []imap.UID{3, 5, 8}, first)

	for _, uid := range first {
		p.advance(uid)
	}

	// A second pass over the same search result yields nothing.
	require.Empty(t, p.newUIDs([]imap.UID{3, 5, 8}))

	// Only UIDs above the watermark come through.
	require.Equal(t, []imap.UID{9}, p.newUIDs([]imap.UID{5, 8, 9}))
}

func TestWatermarkNeverMovesBackwards(t *testing.T) {
	p := &Poller{}

	p.advance(8)
	p.advance(3)

	require.Empty(t, p.newUIDs([]imap.UID{8}))
	require.Equal(t, []imap.UID{9}, p.newUIDs([]imap.UID{9}))
}

func TestMessageFromBuffer(t *testing.T) {
	section := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierText}

	buf := &imapclient.FetchMessageBuffer{
		UID: 7,
		Envelope: &imap.Envelope{
			Date:    testNow,
			Subject: "9981",
			From:    []imap.Address{{Mailbox: "01012345678", Host: "gateway.example.com"}},
		},
	}

	msg, ok := messageFromBuffer(buf, section)
	require.True(t, ok)
	require.Equal(t, uint32(7), msg.UID)
	require.Equal(t, "01012345678", msg.FromLocal)
	require.Equal(t, "gateway.example.com", msg.FromDomain)
	require.Equal(t, "9981", msg.Subject)
}

func TestMessageFromBufferSkipsIncompleteEnvelopes(t *testing.T) {
	section := &imap.FetchItemBodySection{Specifier: imap.PartSpecifierText}

	_, ok := messageFromBuffer(&imapclient.FetchMessageBuffer{UID: 1}, section)
	require.False(t, ok)

	_, ok = messageFromBuffer(&imapclient.FetchMessageBuffer{
		UID:      2,
		Envelope: &imap.Envelope{Date: testNow, Subject: "9981"},
	}, section)
	require.False(t, ok)
}
