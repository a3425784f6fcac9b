package dto

import "adjaoko/app/domains"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// OKResponse acknowledges an operation with no payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// PricesResponse carries the dashboard prices and last-sync stamp.
type PricesResponse struct {
	Prices   []domains.PriceSnapshot `json:"prices"`
	LastSync string                  `json:"last_sync"`
}

// ListingsResponse carries browse results.
type ListingsResponse struct {
	Listings []domains.Listing `json:"listings"`
}

// ProfileResponse carries the user profile; Profile is null for first-time
// users who have not saved one yet.
type ProfileResponse struct {
	Profile *domains.UserProfile `json:"profile"`
}

// SessionResponse reports the session holder's view.
type SessionResponse struct {
	State string        `json:"state"`
	User  *domains.User `json:"user,omitempty"`
}

// UserResponse carries the identity returned by sign-in/sign-up.
type UserResponse struct {
	User *domains.User `json:"user"`
}
