package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jacobprall/next-auth/core"
)

// LinkAccount inserts the full account row, OAuth token fields included.
// Unique-constraint violations from the database propagate unmodified.
func (a *Adapter) LinkAccount(ctx context.Context, account *core.Account) error {
	row := insertableFromAccount(account)
	id := account.ID
	if id == "" {
		id = uuid.NewString()
	}

	if _, err := a.db.ExecContext(ctx, createAccountSQL,
		id, row["userId"], row["type"], row["provider"],
		row["providerAccountId"], row["refresh_token"], row["access_token"],
		row["expires_at"], row["token_type"], row["scope"],
		row["id_token"], row["session_state"]); err != nil {
		return fmt.Errorf("sqlite: linking account: %w", err)
	}
	return nil
}

// UnlinkAccount deletes the account identified by (provider,
// providerAccountId).
func (a *Adapter) UnlinkAccount(ctx context.Context, providerAccountID, provider string) error {
	if _, err := a.db.ExecContext(ctx, deleteAccountByProviderSQL,
		provider, providerAccountID); err != nil {
		return fmt.Errorf("sqlite: unlinking account: %w", err)
	}
	return nil
}

// GetAccount fetches the account identified by (provider,
// providerAccountId), or nil when none exists.
func (a *Adapter) GetAccount(ctx context.Context, providerAccountID, provider string) (*core.Account, error) {
	obj, err := queryObject(ctx, a.db, getAccountByProviderSQL, provider, providerAccountID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting account: %w", err)
	}
	return accountFromObject(obj), nil
}
