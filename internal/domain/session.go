package domain

import "time"

// Credential is a sign-in identity linked to a courier.
type Credential struct {
	UserID    string
	Email     string
	Password  string
	CourierID string
}

// Session is an issued sign-in session.
type Session struct {
	Token     string
	Courier   Courier
	IssuedAt  time.Time
	ExpiresAt time.Time
}
