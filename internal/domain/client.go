package domain

import "time"

// Client is the domain model for a registered client account.
type Client struct {
	ID           int64
	Name         string
	Age          int
	Email        string
	Phone        string
	Address      string
	Gender       string
	NationalID   string
	PasswordHash string
	CreatedAt    time.Time
}

// ClientSummary is the listing projection of a client. It never carries the
// password hash.
type ClientSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
	Gender     string `json:"gender"`
}
