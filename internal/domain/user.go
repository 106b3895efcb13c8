package domain

import "time"

// User is a platform account. Guests book places; hosts own them.
// The same account can play both roles.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
