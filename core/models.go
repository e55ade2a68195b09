package core

import "time"

// User represents a user as the authentication framework sees it.
//
// Optional profile fields are pointers so that a missing column value
// round-trips as null rather than as a zero value.
type User struct {
	ID            string     `json:"id"`
	Name          *string    `json:"name,omitempty"`
	Email         *string    `json:"email,omitempty"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         *string    `json:"image,omitempty"`
}

// Session represents an active login session.
//
// SessionToken is the primary lookup key. ID is a separate generated
// identifier kept for parity with the framework's session shape.
type Session struct {
	ID           string    `json:"id"`
	SessionToken string    `json:"sessionToken"`
	UserID       string    `json:"userId"`
	Expires      time.Time `json:"expires"`
}

// Account links a user to an external identity provider.
//
// (Provider, ProviderAccountID) is the composite lookup key. The OAuth
// token fields are optional and stored verbatim.
type Account struct {
	ID                string  `json:"id"`
	UserID            string  `json:"userId"`
	Type              string  `json:"type"`
	Provider          string  `json:"provider"`
	ProviderAccountID string  `json:"providerAccountId"`
	RefreshToken      *string `json:"refresh_token,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	ExpiresAt         *int64  `json:"expires_at,omitempty"`
	TokenType         *string `json:"token_type,omitempty"`
	Scope             *string `json:"scope,omitempty"`
	IDToken           *string `json:"id_token,omitempty"`
	SessionState      *string `json:"session_state,omitempty"`
}

// VerificationToken is a single-use secret for passwordless and
// confirmation flows, keyed by (Identifier, Token).
type VerificationToken struct {
	Identifier string    `json:"identifier"`
	Token      string    `json:"token"`
	Expires    time.Time `json:"expires"`
}

// Authenticator is a WebAuthn credential registered for a user.
type Authenticator struct {
	ID                   string  `json:"id"`
	CredentialID         string  `json:"credentialID"`
	UserID               string  `json:"userId"`
	ProviderAccountID    string  `json:"providerAccountId"`
	CredentialPublicKey  string  `json:"credentialPublicKey"`
	Counter              int64   `json:"counter"`
	CredentialDeviceType string  `json:"credentialDeviceType"`
	CredentialBackedUp   bool    `json:"credentialBackedUp"`
	Transports           *string `json:"transports,omitempty"`
}

// SessionAndUser pairs a session with its owning user.
// The model returned for session lookups.
type SessionAndUser struct {
	Session *Session `json:"session"`
	User    *User    `json:"user"`
}

// UserPatch is a partial user update. Nil fields keep the stored value.
type UserPatch struct {
	ID            string
	Name          *string
	Email         *string
	EmailVerified *time.Time
	Image         *string
}
