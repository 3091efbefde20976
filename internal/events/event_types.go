package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventClientRegistered   EventType = "client_registered"
	EventSupplierRegistered EventType = "supplier_registered"
	EventClientLoggedIn     EventType = "client_logged_in"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ClientRegisteredPayload payload.
type ClientRegisteredPayload struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// SupplierRegisteredPayload payload.
type SupplierRegisteredPayload struct {
	SupplierID int64  `json:"supplier_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// ClientLoggedInPayload payload.
type ClientLoggedInPayload struct {
	ClientID int64 `json:"client_id"`
}
