package model

import "time"

// Profile is the backend-held user record, distinct from the identity
// provider's principal.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

func (p Profile) FullName() string {
	switch {
	case p.Name == "" && p.LastName == "":
		return ""
	case p.LastName == "":
		return p.Name
	case p.Name == "":
		return p.LastName
	}
	return p.Name + " " + p.LastName
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MeResponse is the GET /api/user payload.
type MeResponse struct {
	ID         string     `json:"id"`
	Name       *string    `json:"name"`
	LastName   *string    `json:"last_name"`
	Businesses []Business `json:"businesses"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	LastName string `json:"last_name" validate:"required"`
}

// IdentitySession is the signed-in principal as tracked by the identity
// provider: the stable user id plus the credential needed to mint fresh
// bearer tokens.
type IdentitySession struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	RefreshToken string `json:"refresh_token"`
}

// Session is the server-side state for one browser session: the identity
// principal plus the cached screen state that the SPA kept in component
// memory.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Identity IdentitySession `json:"identity"`

	// auth/profile snapshot cache
	Profile      *Profile   `json:"profile,omitempty"`
	Businesses   []Business `json:"businesses,omitempty"`
	ProfileError string     `json:"profile_error,omitempty"`
	ProfileUID   string     `json:"profile_uid,omitempty"`

	// orders screen state
	Rows        []Order         `json:"rows,omitempty"`
	RowsKey     string          `json:"rows_key,omitempty"`
	RowsError   string          `json:"rows_error,omitempty"`
	Banner      *Banner         `json:"banner,omitempty"`
	CopiedID    string          `json:"copied_id,omitempty"`
	CopiedUntil time.Time       `json:"copied_until,omitempty"`
	ModalOpen   bool            `json:"modal_open,omitempty"`
	FormError   string          `json:"form_error,omitempty"`
	Form        CreateOrderForm `json:"form,omitempty"`
}

// SessionClaims is the payload carried by the signed session cookie.
type SessionClaims struct {
	SID string `json:"sid"`
}

// AuthSnapshot is the unified auth/profile view handed to screens.
type AuthSnapshot struct {
	UID            string
	Email          string
	Profile        *Profile
	Businesses     []Business
	ProfileLoading bool
	ProfileError   string
}

func (s AuthSnapshot) Authenticated() bool { return s.UID != "" }

type TokenEventKind string

const (
	TokenEventSignIn  TokenEventKind = "signin"
	TokenEventRefresh TokenEventKind = "refresh"
	TokenEventSignOut TokenEventKind = "signout"
)

// TokenEvent is published by the identity client whenever the provider
// reports a session or token change.
type TokenEvent struct {
	Kind  TokenEventKind
	UID   string
	Token string // empty on sign-out
}
