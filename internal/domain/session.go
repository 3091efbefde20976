package domain

// SessionMarker binds an authenticated client's identity and display name for
// the transport layer to persist in its session mechanism.
type SessionMarker struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
}
