// Package models defines the client-side entities mirrored from the
// sharing service: the account User, Shares and the Files inside them.
package models

// User is an immutable snapshot of the account as reported by the server.
// The session keeps exactly one User and overwrites it on each fetch.
type User struct {
	// UserID is the server-assigned account identifier.
	UserID string

	// FullName is the display name attached to the account.
	FullName string

	// Email is the account email address.
	Email string

	// StorageUsed is the number of bytes currently consumed.
	StorageUsed int64

	// StorageLimit is the account quota in bytes.
	StorageLimit int64
}
