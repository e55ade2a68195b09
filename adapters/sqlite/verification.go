package sqlite

import (
	"context"
	"fmt"

	"github.com/jacobprall/next-auth/core"
)

// CreateVerificationToken inserts the token and returns the input value,
// mirroring what the framework expects back.
func (a *Adapter) CreateVerificationToken(ctx context.Context, token *core.VerificationToken) (*core.VerificationToken, error) {
	row := insertableFromVerificationToken(token)

	if _, err := a.db.ExecContext(ctx, createVerificationTokenSQL,
		row["identifier"], row["expires"], row["token"]); err != nil {
		return nil, fmt.Errorf("sqlite: creating verification token: %w", err)
	}
	return token, nil
}

// UseVerificationToken consumes the token identified by (identifier,
// token): the row is deleted whether or not the lookup found it, and the
// fetched value is returned, or nil when no token matched. Fetch and
// delete run inside one transaction so two concurrent calls cannot both
// observe the token.
func (a *Adapter) UseVerificationToken(ctx context.Context, identifier, token string) (*core.VerificationToken, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: using verification token: %w", err)
	}
	defer tx.Rollback()

	obj, err := queryObject(ctx, tx, getVerificationTokenSQL, identifier, token)
	if err != nil {
		return nil, fmt.Errorf("sqlite: using verification token: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteVerificationTokenSQL, identifier, token); err != nil {
		return nil, fmt.Errorf("sqlite: using verification token: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sqlite: using verification token: %w", err)
	}
	return verificationTokenFromObject(obj), nil
}
