package domain

import "time"

// Session is a kiosk pairing session. Created when a kiosk terminal starts a
// visit, bound to a user once they authenticate (QR hand-off or phone+password),
// and reaped by housekeeping after the retention window.
type Session struct {
	SessionKey string // opaque 128-bit hex token, primary lookup key
	KioskID    string
	UserID     *string // nil until a bind succeeds
	IsIssued   bool    // one-shot redemption flag; flips to true exactly once
	CreatedAt  time.Time
}

// Bound reports whether a user has been paired into the session.
func (s Session) Bound() bool { return s.UserID != nil }
