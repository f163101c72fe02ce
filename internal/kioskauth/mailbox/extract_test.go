package mailbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testSince = testNow.Add(-time.Minute)
)

func gatewayMessage(uid uint32) Message {
	return Message{
		UID:        uid,
		Date:       testNow.Add(-30 * time.Second),
		FromLocal:  "01012345678",
		FromDomain: "gateway.example.com",
		Subject:    "9981",
		Body:       "device-uid-1\nrest of the message",
	}
}

func TestExtractFromSubject(t *testing.T) {
	e := NewExtractor([]string{"gateway.example.com"}, CodeFromSubject)

	v, ok := e.Extract(gatewayMessage(1), testSince, testNow)
	require.True(t, ok)
	require.Equal(t, Verification{Code: "9981", PhoneNumber: "01012345678"}, v)
}

func TestExtractFromBodyFirstLine(t *testing.T) {
	e := NewExtractor([]string{"gateway.example.com"}, CodeFromBody)

	v, ok := e.Extract(gatewayMessage(1), testSince, testNow)
	require.True(t, ok)
	require.Equal(t, Verification{Code: "device-uid-1", PhoneNumber: "01012345678"}, v)
}

func TestExtractRejectsUnlistedDomain(t *testing.T) {
	e := NewExtractor([]string{"gateway.example.com"}, CodeFromSubject)

	msg := gatewayMessage(1)
	msg.FromDomain = "other.com"
	_, ok := e.Extract(msg, testSince, testNow)
	require.False(t, ok)
}

func TestExtractDomainMatchIsCaseInsensitive(t *testing.T) {
	e := NewExtractor([]string{"Gateway.Example.COM"}, CodeFromSubject)

	_, ok := e.Extract(gatewayMessage(1), testSince, testNow)
	require.True(t, ok)
}

func TestExtractRejectsOutOfWindowDates(t *testing.T) {
	e := NewExtractor([]string{"gateway.example.com"}, CodeFromSubject)

	t.Run("missing date", func(t *testing.T) {
		msg := gatewayMessage(1)
		msg.Date = time.Time{}
		_, ok := e.Extract(msg, testSince, testNow)
		require.False(t, ok)
	})

	t.Run("before window", func(t *testing.T) {
		msg := gatewayMessage(1)
		msg.Date = testSince.Add(-time.Second)
		_, ok := e.Extract(msg, testSince, testNow)
		require.False(t, ok)
	})

	t.Run("after window", func(t *testing.T) {
		msg := gatewayMessage(1)
		msg.Date = testNow.Add(time.Second)
		_, ok := e.Extract(msg, testSince, testNow)
		require.False(t, ok)
	})
}

func TestExtractSkipsMessagesWithNothingToExtract(t *testing.T) {
	e := NewExtractor([]string{"gateway.example.com"}, CodeFromSubject)

	msg := gatewayMessage(1)
	msg.Subject = "   "
	_, ok := e.Extract(msg, testSince, testNow)
	require.False(t, ok)

	msg = gatewayMessage(2)
	msg.FromLocal = ""
	_, ok = e.Extract(msg, testSince, testNow)
	require.False(t, ok)
}

func TestPhoneNumberIsFirstTokenOfLocalPart(t *testing.T) {
	e := NewExtractor([]string{"gateway.example.com"}, CodeFromSubject)

	msg := gatewayMessage(1)
	msg.FromLocal = `"01099998888 via gateway"`
	v, ok := e.Extract(msg, testSince, testNow)
	require.True(t, ok)
	require.Equal(t, "01099998888", v.PhoneNumber)
}
