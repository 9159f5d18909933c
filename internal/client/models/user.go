// Package models holds the DTOs the CLI exchanges with the backend.
package models

import "strings"

type Preferences struct {
	DefaultCity string `json:"defaultCity,omitempty"`
}

// User is the profile returned by /login and /me and cached in the session.
type User struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// City returns the user's preferred city, or fallback when none is set.
func (u *User) City(fallback string) string {
	if u == nil || u.Preferences == nil || strings.TrimSpace(u.Preferences.DefaultCity) == "" {
		return fallback
	}
	return u.Preferences.DefaultCity
}

type RegisterRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,maxbytes=72"`
	DefaultCity string `json:"defaultCity,omitempty" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
