package entities

import "time"

// Admin is a shop operator account. Only the bcrypt hash of the
// password is ever stored.
//
// Storage model (DynamoDB): PK email.
type Admin struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
