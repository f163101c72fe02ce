package domain

import "time"

// User account types, classified from affiliations. School takes precedence
// over Organization; accounts with neither are Guests.
const (
	UserTypeSchool       = "S"
	UserTypeOrganization = "O"
	UserTypeGuest        = "G"
)

// User is an identity resolved by phone number or id. Guest accounts are
// provisioned on first contact during the mobile token exchange.
type User struct {
	ID            string
	Username      string
	PhoneNumber   string
	PasswordHash  string // argon2id encoded
	UserType      string
	SchoolID      *string
	Organization  *string
	StudentName   *string
	StudentGrade  *int
	StudentClass  *int
	StudentNumber *int
	Year          *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClassifyType derives the account type from affiliations.
func (u User) ClassifyType() string {
	switch {
	case u.SchoolID != nil:
		return UserTypeSchool
	case u.Organization != nil:
		return UserTypeOrganization
	default:
		return UserTypeGuest
	}
}
