package domain

import (
	"strings"
	"time"
)

// DefaultPlan is assigned when registration does not name a plan.
const DefaultPlan = "Başlangıç"

// TrialPeriod is the free trial window granted at registration.
const TrialPeriod = 14 * 24 * time.Hour

// User is the persisted account record. JSON tags double as the wire shape:
// the same struct is written to the store document and returned verbatim by
// the list and current-user endpoints, password field included.
type User struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           string     `json:"company"`
	Phone             string     `json:"phone,omitempty"`
	Plan              string     `json:"plan"`
	Verified          bool       `json:"verified"`
	VerificationToken *string    `json:"verificationToken"`
	Password          string     `json:"password,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	TrialEndsAt       time.Time  `json:"trialEndsAt"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
}

// Contact is the shape of an enterprise contact request. Requests are logged,
// never appended to the document; the contacts array stays empty.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// Document is the unit of persistence: one JSON object holding every user
// and the (always empty) contacts list. Writes replace it wholesale.
type Document struct {
	Users    []User    `json:"users"`
	Contacts []Contact `json:"contacts"`
}

// NewDocument returns an empty document with non-nil slices so it
// serializes as {"users":[],"contacts":[]} rather than nulls.
func NewDocument() *Document {
	return &Document{Users: []User{}, Contacts: []Contact{}}
}

// FindUserByEmail returns a pointer into the users slice, or nil.
// Email comparison is case-insensitive.
func (d *Document) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if strings.EqualFold(d.Users[i].Email, email) {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByID returns a pointer into the users slice, or nil.
func (d *Document) FindUserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByVerificationToken returns the user whose stored verification
// token equals the given one, or nil. Users with a null token never match.
func (d *Document) FindUserByVerificationToken(token string) *User {
	for i := range d.Users {
		if d.Users[i].VerificationToken != nil && *d.Users[i].VerificationToken == token {
			return &d.Users[i]
		}
	}
	return nil
}
