package mailbox

import (
	"strings"
	"time"
)

// CodeSource selects where the verification code is read from.
type CodeSource int

const (
	// CodeFromSubject reads the code from the mail subject. Used by the
	// blocking-match verification flow.
	CodeFromSubject CodeSource = iota

	// CodeFromBody reads the code from the first line of the plaintext body.
	// Used by the continuous ingestion flow, where gateways put the device
	// uid in the body.
	CodeFromBody
)

// Extractor applies the gateway mail extraction rules: sender domain
// allow-list, arrival window, and code/phone extraction.
type Extractor struct {
	allowed map[string]struct{}
	source  CodeSource
}

func NewExtractor(allowedDomains []string, source CodeSource) *Extractor {
	allowed := make(map[string]struct{}, len(allowedDomains))
	for _, d := range allowedDomains {
		allowed[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	return &Extractor{allowed: allowed, source: source}
}

// Extract returns the verification pair carried by msg, or false when the
// message must be skipped: missing or out-of-window date, sender domain not
// in the allow-list, or nothing to extract. Malformed messages are never an
// error, just skipped.
func (e *Extractor) Extract(msg Message, since, now time.Time) (Verification, bool) {
	if msg.Date.IsZero() || msg.Date.Before(since) || msg.Date.After(now) {
		return Verification{}, false
	}

	domain := strings.ToLower(strings.TrimSpace(msg.FromDomain))
	if _, ok := e.allowed[domain]; !ok {
		return Verification{}, false
	}

	phone := phoneFromLocalPart(msg.FromLocal)
	if phone == "" {
		return Verification{}, false
	}

	var code string
	switch e.source {
	case CodeFromBody:
		code = firstLine(msg.Body)
	default:
		code = strings.TrimSpace(msg.Subject)
	}
	if code == "" {
		return Verification{}, false
	}

	return Verification{Code: code, PhoneNumber: phone}, true
}

// phoneFromLocalPart strips quotes and display-name remnants; gateways put
// the bare number first.
func phoneFromLocalPart(local string) string {
	local = strings.Trim(strings.TrimSpace(local), `"`)
	fields := strings.Fields(local)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func firstLine(body string) string {
	line, _, _ := strings.Cut(body, "\n")
	return strings.TrimSpace(line)
}
