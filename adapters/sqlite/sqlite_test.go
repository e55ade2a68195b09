package sqlite

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/jacobprall/next-auth/core"
)

// newTestAdapter returns an Adapter backed by a fresh in-memory database
// with the schema applied.
func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)

	// Each pooled connection to ":memory:" would get its own database, so
	// pin the pool to a single connection.
	db.SetMaxOpenConns(1)

	a := New(db, WithLogger(log.New(io.Discard)))
	a.Up(context.Background())

	t.Cleanup(func() { a.Close() })
	return a
}

func strPtr(s string) *string { return &s }

// createTestUser inserts a user and fails the test on error.
func createTestUser(t *testing.T, a *Adapter, name, email string) *core.User {
	t.Helper()
	user, err := a.CreateUser(context.Background(), &core.User{
		Name:  strPtr(name),
		Email: strPtr(email),
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// createTestSession inserts a session for the user and fails the test on
// error.
func createTestSession(t *testing.T, a *Adapter, userID, sessionToken string) *core.Session {
	t.Helper()
	session, err := a.CreateSession(context.Background(), &core.Session{
		SessionToken: sessionToken,
		UserID:       userID,
		Expires:      time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	return session
}
