package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jacobprall/next-auth/core"
)

// CreateAuthenticator registers a WebAuthn credential for a user and
// returns the stored row.
func (a *Adapter) CreateAuthenticator(ctx context.Context, authenticator *core.Authenticator) (*core.Authenticator, error) {
	id := authenticator.ID
	if id == "" {
		id = uuid.NewString()
	}

	if _, err := a.db.ExecContext(ctx, createAuthenticatorSQL,
		id, authenticator.CredentialID, authenticator.UserID,
		authenticator.ProviderAccountID, authenticator.CredentialPublicKey,
		authenticator.Counter, authenticator.CredentialDeviceType,
		authenticator.CredentialBackedUp, deref(authenticator.Transports)); err != nil {
		return nil, fmt.Errorf("sqlite: creating authenticator: %w", err)
	}

	obj, err := queryObject(ctx, a.db, getAuthenticatorSQL, authenticator.CredentialID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading created authenticator: %w", err)
	}
	return authenticatorFromObject(obj), nil
}

// GetAuthenticator fetches a credential by its credentialID, or nil when
// none exists.
func (a *Adapter) GetAuthenticator(ctx context.Context, credentialID string) (*core.Authenticator, error) {
	obj, err := queryObject(ctx, a.db, getAuthenticatorSQL, credentialID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting authenticator: %w", err)
	}
	return authenticatorFromObject(obj), nil
}

// ListAuthenticatorsByUserID returns every credential registered for the
// user.
func (a *Adapter) ListAuthenticatorsByUserID(ctx context.Context, userID string) ([]*core.Authenticator, error) {
	objects, err := queryObjects(ctx, a.db, listAuthenticatorsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing authenticators: %w", err)
	}

	authenticators := make([]*core.Authenticator, 0, len(objects))
	for _, obj := range objects {
		authenticators = append(authenticators, authenticatorFromObject(obj))
	}
	return authenticators, nil
}

// UpdateAuthenticatorCounter stores a new signature counter and returns
// the updated row, or nil when the credential is unknown.
func (a *Adapter) UpdateAuthenticatorCounter(ctx context.Context, credentialID string, counter int64) (*core.Authenticator, error) {
	if _, err := a.db.ExecContext(ctx, updateAuthenticatorCounterSQL,
		counter, credentialID); err != nil {
		return nil, fmt.Errorf("sqlite: updating authenticator counter: %w", err)
	}

	obj, err := queryObject(ctx, a.db, getAuthenticatorSQL, credentialID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading updated authenticator: %w", err)
	}
	return authenticatorFromObject(obj), nil
}
