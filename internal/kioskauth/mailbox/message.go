// Package mailbox polls an IMAP inbox for SMS-gateway-forwarded verification
// mails and extracts (code, phone number) pairs from them. Carrier gateways
// deliver an SMS as a mail whose sender local part is the originating phone
// number and whose subject (or first body line) is the message text.
package mailbox

import "time"

// Message is the subset of a fetched mail the extractor cares about. Keeping
// it plain makes the extraction rules testable without an IMAP server.
type Message struct {
	UID        uint32
	Date       time.Time
	FromLocal  string // local part of the sender address (the phone number)
	FromDomain string // sender domain, checked against the allow-list
	Subject    string
	Body       string // plaintext body; only fetched in body-source mode
}

// Verification is one extracted (code, phone number) pair.
type Verification struct {
	Code        string
	PhoneNumber string
}
