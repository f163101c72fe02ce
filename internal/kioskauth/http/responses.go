package http

import (
	"time"

	"github.com/posturekit/kioskauth/internal/kioskauth/domain"
	"github.com/posturekit/kioskauth/pkg/jwtx"
)

// UserInfo is the wire representation of an identity. Optional affiliation
// fields use "N/A" / -1 placeholders instead of nulls so kiosk clients never
// have to null-check.
type UserInfo struct {
	UserID        string    `json:"user_id"`
	UserType      string    `json:"user_type"`
	UserName      string    `json:"user_name"`
	PhoneNumber   string    `json:"phone_number"`
	CreatedAt     time.Time `json:"created_dt"`
	Year          int       `json:"year"`
	SchoolID      string    `json:"school_id"`
	Organization  string    `json:"organization"`
	StudentName   string    `json:"student_name"`
	StudentGrade  int       `json:"student_grade"`
	StudentClass  int       `json:"student_class"`
	StudentNumber int       `json:"student_number"`
}

// TokenResponse pairs an identity with freshly issued tokens, as returned by
// the kiosk redeem and mobile login endpoints.
type TokenResponse struct {
	UserInfo  UserInfo       `json:"user_info"`
	JWTTokens jwtx.TokenPair `json:"jwt_tokens"`
}

// MessageResponse is a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service health for the probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

func newUserInfo(u domain.User) UserInfo {
	return UserInfo{
		UserID:        u.ID,
		UserType:      orNA(&u.UserType),
		UserName:      u.Username,
		PhoneNumber:   orNA(&u.PhoneNumber),
		CreatedAt:     u.CreatedAt,
		Year:          orNeg(u.Year),
		SchoolID:      orNA(u.SchoolID),
		Organization:  orNA(u.Organization),
		StudentName:   orNA(u.StudentName),
		StudentGrade:  orNeg(u.StudentGrade),
		StudentClass:  orNeg(u.StudentClass),
		StudentNumber: orNeg(u.StudentNumber),
	}
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func orNeg(i *int) int {
	if i == nil {
		return -1
	}
	return *i
}
