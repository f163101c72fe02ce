package domain

import "time"

// PendingAuth is the ephemeral, single-use record produced by phone
// verification: it correlates a device/OTP identifier (the mobile UID from
// the SMS gateway mail) to the phone number that sent it. The record is
// destroyed the moment it is exchanged for tokens.
type PendingAuth struct {
	PhoneNumber string // upsert key, last-write-wins
	UID         string // correlation id presented by the mobile app
	CreatedAt   time.Time
}
