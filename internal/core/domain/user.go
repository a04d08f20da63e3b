package domain

import "time"

// MinPasswordLength is enforced on the raw password before hashing.
const MinPasswordLength = 6

// User models a registered account.
//
// PasswordHash is never serialized: profile and auth responses carry the
// user with the hash stripped by the transport layer, and the json tag is a
// second line of defence.
type User struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	LinkedinEmail string    `json:"linkedin_email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
