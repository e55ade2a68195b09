package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	a := newTestAdapter(t)

	user := createTestUser(t, a, "S", "s@x.com")
	session := createTestSession(t, a, user.ID, "token-create")

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "token-create", session.SessionToken)
	assert.Equal(t, user.ID, session.UserID)
	assert.False(t, session.Expires.IsZero())
}

func TestGetSessionAndUser(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	user := createTestUser(t, a, "S2", "s2@x.com")
	session := createTestSession(t, a, user.ID, "token-pair")

	pair, err := a.GetSessionAndUser(ctx, "token-pair")
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotNil(t, pair.Session)
	require.NotNil(t, pair.User)
	assert.Equal(t, session.SessionToken, pair.Session.SessionToken)
	assert.Equal(t, user.ID, pair.Session.UserID)
	assert.Equal(t, user.ID, pair.User.ID)
	assert.Equal(t, "s2@x.com", *pair.User.Email)
}

func TestGetSessionAndUser_UnknownToken(t *testing.T) {
	a := newTestAdapter(t)

	pair, err := a.GetSessionAndUser(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestUpdateSession(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	user := createTestUser(t, a, "S3", "s3@x.com")
	createTestSession(t, a, user.ID, "token-refresh")

	newExpiry := time.Now().Add(48 * time.Hour).Truncate(time.Millisecond)
	updated, err := a.UpdateSession(ctx, "token-refresh", newExpiry)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Expires.Equal(newExpiry),
		"expires = %v, want %v", updated.Expires, newExpiry)

	pair, err := a.GetSessionAndUser(ctx, "token-refresh")
	require.NoError(t, err)
	assert.True(t, pair.Session.Expires.Equal(newExpiry))
}

func TestUpdateSession_UnknownToken(t *testing.T) {
	a := newTestAdapter(t)

	updated, err := a.UpdateSession(context.Background(), "no-such-token", time.Now())
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteSession(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	user := createTestUser(t, a, "S4", "s4@x.com")
	createTestSession(t, a, user.ID, "token-signout")

	require.NoError(t, a.DeleteSession(ctx, "token-signout"))

	pair, err := a.GetSessionAndUser(ctx, "token-signout")
	require.NoError(t, err)
	assert.Nil(t, pair)
}

func TestDeleteSession_UnknownToken(t *testing.T) {
	a := newTestAdapter(t)

	// deleting a token that never existed is not an error
	require.NoError(t, a.DeleteSession(context.Background(), "no-such-token"))
}
