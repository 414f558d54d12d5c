package model

// User is the authenticated-identity marker persisted for the session.
type User struct {
	Username string `json:"username"`
}
