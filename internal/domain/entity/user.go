package entity

import "time"

// User is the persisted session record of the logged-in shopper.
// Its presence in the durable store is what "logged in" means.
type User struct {
	UserID     int64     `json:"userId,omitempty"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	LoggedInAt time.Time `json:"loggedInAt"`
}
