package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jacobprall/next-auth/core"
)

// CreateSession inserts the session under a freshly generated id and
// returns the stored row, read back by its token.
func (a *Adapter) CreateSession(ctx context.Context, session *core.Session) (*core.Session, error) {
	row := insertableFromSession(session)

	if _, err := a.db.ExecContext(ctx, createSessionSQL,
		uuid.NewString(), row["sessionToken"], row["userId"], row["expires"]); err != nil {
		return nil, fmt.Errorf("sqlite: creating session: %w", err)
	}

	obj, err := queryObject(ctx, a.db, getSessionByTokenSQL, session.SessionToken)
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading created session: %w", err)
	}
	return sessionFromObject(obj), nil
}

// GetSessionAndUser fetches the session by token, then its owning user.
// Returns nil when either is absent.
func (a *Adapter) GetSessionAndUser(ctx context.Context, sessionToken string) (*core.SessionAndUser, error) {
	sessionObj, err := queryObject(ctx, a.db, getSessionByTokenSQL, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting session: %w", err)
	}
	if sessionObj == nil {
		return nil, nil
	}
	session := sessionFromObject(sessionObj)

	userObj, err := queryObject(ctx, a.db, getUserByIDSQL, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting session user: %w", err)
	}
	if userObj == nil {
		return nil, nil
	}

	return &core.SessionAndUser{
		Session: session,
		User:    userFromObject(userObj),
	}, nil
}

// UpdateSession persists a new expiry for the given token and returns the
// stored session, or nil when the token is unknown.
func (a *Adapter) UpdateSession(ctx context.Context, sessionToken string, expires time.Time) (*core.Session, error) {
	if _, err := a.db.ExecContext(ctx, updateSessionByTokenSQL,
		isoString(expires), sessionToken); err != nil {
		return nil, fmt.Errorf("sqlite: updating session: %w", err)
	}

	obj, err := queryObject(ctx, a.db, getSessionByTokenSQL, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading updated session: %w", err)
	}
	return sessionFromObject(obj), nil
}

// DeleteSession removes the session by token. Unknown tokens are not an
// error.
func (a *Adapter) DeleteSession(ctx context.Context, sessionToken string) error {
	if _, err := a.db.ExecContext(ctx, deleteSessionSQL, sessionToken); err != nil {
		return fmt.Errorf("sqlite: deleting session: %w", err)
	}
	return nil
}
