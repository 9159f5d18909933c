// Package models holds the backend's persisted records.
package models

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	DefaultCity  string
	CreatedAt    time.Time
}
