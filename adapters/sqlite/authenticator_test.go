package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacobprall/next-auth/core"
)

func createTestAuthenticator(t *testing.T, a *Adapter, userID, credentialID string) *core.Authenticator {
	t.Helper()
	authenticator, err := a.CreateAuthenticator(context.Background(), &core.Authenticator{
		CredentialID:         credentialID,
		UserID:               userID,
		ProviderAccountID:    credentialID,
		CredentialPublicKey:  "pubkey-" + credentialID,
		Counter:              0,
		CredentialDeviceType: "singleDevice",
		CredentialBackedUp:   false,
		Transports:           strPtr("usb,nfc"),
	})
	require.NoError(t, err)
	require.NotNil(t, authenticator)
	return authenticator
}

func TestCreateAndGetAuthenticator(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	user := createTestUser(t, a, "W", "w@x.com")
	created := createTestAuthenticator(t, a, user.ID, "cred-1")
	assert.NotEmpty(t, created.ID)

	found, err := a.GetAuthenticator(ctx, "cred-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "pubkey-cred-1", found.CredentialPublicKey)
	assert.Equal(t, int64(0), found.Counter)
	assert.False(t, found.CredentialBackedUp)
	require.NotNil(t, found.Transports)
	assert.Equal(t, "usb,nfc", *found.Transports)
}

func TestGetAuthenticator_NotFound(t *testing.T) {
	a := newTestAdapter(t)

	found, err := a.GetAuthenticator(context.Background(), "cred-missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestListAuthenticatorsByUserID(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	user := createTestUser(t, a, "W2", "w2@x.com")
	other := createTestUser(t, a, "W3", "w3@x.com")
	createTestAuthenticator(t, a, user.ID, "cred-a")
	createTestAuthenticator(t, a, user.ID, "cred-b")
	createTestAuthenticator(t, a, other.ID, "cred-c")

	list, err := a.ListAuthenticatorsByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := a.ListAuthenticatorsByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateAuthenticatorCounter(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	user := createTestUser(t, a, "W4", "w4@x.com")
	createTestAuthenticator(t, a, user.ID, "cred-counter")

	updated, err := a.UpdateAuthenticatorCounter(ctx, "cred-counter", 41)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, int64(41), updated.Counter)

	found, err := a.GetAuthenticator(ctx, "cred-counter")
	require.NoError(t, err)
	assert.Equal(t, int64(41), found.Counter)
}
