package core

import (
	"context"
	"time"
)

// Ports define the storage contract the authentication framework consumes.
// The method set, argument shapes and nullability are fixed by the
// framework: lookups that find nothing return (nil, nil), never an error.

// ============================================
// STORAGE PORTS (Database operations)
// ============================================

// UserStore defines user-related database operations
type UserStore interface {
	// CreateUser persists the user and returns the stored row. A missing
	// ID is generated by the store.
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserByAccount resolves a user through a linked provider account.
	GetUserByAccount(ctx context.Context, providerAccountID, provider string) (*User, error)
	// UpdateUser merges the patch over the stored row. Returns
	// ErrUserNotFound when no row exists for patch.ID.
	UpdateUser(ctx context.Context, patch *UserPatch) (*User, error)
	// DeleteUser removes the user together with their sessions and
	// accounts. Returns ErrUserNotFound when the user does not exist.
	DeleteUser(ctx context.Context, id string) error
}

// SessionStore defines session-related database operations
type SessionStore interface {
	CreateSession(ctx context.Context, session *Session) (*Session, error)
	GetSessionAndUser(ctx context.Context, sessionToken string) (*SessionAndUser, error)
	// UpdateSession persists a new expiry for the given token and returns
	// the stored session, or (nil, nil) when the token is unknown.
	UpdateSession(ctx context.Context, sessionToken string, expires time.Time) (*Session, error)
	// DeleteSession removes the session. Deleting an unknown token is not
	// an error.
	DeleteSession(ctx context.Context, sessionToken string) error
}

// AccountStore defines provider-account database operations
type AccountStore interface {
	LinkAccount(ctx context.Context, account *Account) error
	UnlinkAccount(ctx context.Context, providerAccountID, provider string) error
	GetAccount(ctx context.Context, providerAccountID, provider string) (*Account, error)
}

// VerificationTokenStore defines verification-token database operations
type VerificationTokenStore interface {
	CreateVerificationToken(ctx context.Context, token *VerificationToken) (*VerificationToken, error)
	// UseVerificationToken consumes the token: it is deleted as part of
	// the lookup and can never be used twice.
	UseVerificationToken(ctx context.Context, identifier, token string) (*VerificationToken, error)
}

// AuthenticatorStore defines WebAuthn credential database operations
type AuthenticatorStore interface {
	CreateAuthenticator(ctx context.Context, authenticator *Authenticator) (*Authenticator, error)
	GetAuthenticator(ctx context.Context, credentialID string) (*Authenticator, error)
	ListAuthenticatorsByUserID(ctx context.Context, userID string) ([]*Authenticator, error)
	UpdateAuthenticatorCounter(ctx context.Context, credentialID string, counter int64) (*Authenticator, error)
}

// Adapter is the full storage contract.
type Adapter interface {
	UserStore
	SessionStore
	AccountStore
	VerificationTokenStore
	AuthenticatorStore
}
