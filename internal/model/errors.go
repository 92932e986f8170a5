package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage     = "internal server error"
	ErrInvalidCredentialsMessage = "invalid email or password"
	ErrNotAuthenticatedMessage   = "not authenticated"
	ErrNoBusinessMessage         = "no selected business"
	ErrCreateOrderFailedMessage  = "Failed to create order. Please try again."
	ErrLoadOrdersFailedMessage   = "Failed to load orders. Please try again."
	ErrProfileFallbackMessage    = "failed to load profile"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrNoSession        = errors.New("no active session")
	ErrNotAuthenticated = errors.New(ErrNotAuthenticatedMessage)
	ErrNoBusiness       = errors.New(ErrNoBusinessMessage)
)
