// Package entities defines the server-owned records the client caches.
// Every identifier is assigned by the server; the client never generates one.
package entities

// User is the authenticated game-master account.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
