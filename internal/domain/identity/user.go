package identity

import "time"

// User is a registered account. The service only reads users; they are
// provisioned elsewhere.
type User struct {
	ID          int
	Token       string
	Name        string
	Address     string
	PhoneNumber string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
