package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jacobprall/next-auth/core"
)

// CreateUser inserts the user and returns the row as stored. The inserted
// row is read back by its rowid so database-applied defaults are included.
func (a *Adapter) CreateUser(ctx context.Context, user *core.User) (*core.User, error) {
	row := insertableFromUser(user)
	id := user.ID
	if id == "" {
		id = uuid.NewString()
	}

	res, err := a.db.ExecContext(ctx, createUserSQL,
		id, row["name"], row["email"], row["emailVerified"], row["image"])
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating user: %w", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: creating user: %w", err)
	}

	obj, err := queryObject(ctx, a.db, getUserByRowIDSQL, rowID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading created user: %w", err)
	}
	return userFromObject(obj), nil
}

// GetUser fetches a user by id, or nil when none exists.
func (a *Adapter) GetUser(ctx context.Context, id string) (*core.User, error) {
	obj, err := queryObject(ctx, a.db, getUserByIDSQL, id)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}
	return userFromObject(obj), nil
}

// GetUserByEmail fetches a user by email, or nil when none exists.
func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	obj, err := queryObject(ctx, a.db, getUserByEmailSQL, email)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user by email: %w", err)
	}
	return userFromObject(obj), nil
}

// GetUserByAccount resolves the user owning the given provider account,
// or nil when the account is not linked.
func (a *Adapter) GetUserByAccount(ctx context.Context, providerAccountID, provider string) (*core.User, error) {
	obj, err := queryObject(ctx, a.db, getUserByAccountSQL, providerAccountID, provider)
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting user by account: %w", err)
	}
	return userFromObject(obj), nil
}

// UpdateUser merges the patch over the stored row and returns the result.
// The read-merge-write sequence runs inside one transaction so concurrent
// updates to the same user cannot interleave between the read and the
// write.
func (a *Adapter) UpdateUser(ctx context.Context, patch *core.UserPatch) (*core.User, error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating user %s: %w", patch.ID, err)
	}
	defer tx.Rollback()

	obj, err := queryObject(ctx, tx, getUserByIDSQL, patch.ID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating user %s: %w", patch.ID, err)
	}
	if obj == nil {
		return nil, core.ErrUserNotFound
	}

	merged := userFromObject(obj)
	if patch.Name != nil {
		merged.Name = patch.Name
	}
	if patch.Email != nil {
		merged.Email = patch.Email
	}
	if patch.EmailVerified != nil {
		merged.EmailVerified = patch.EmailVerified
	}
	if patch.Image != nil {
		merged.Image = patch.Image
	}

	row := insertableFromUser(merged)
	if _, err := tx.ExecContext(ctx, updateUserByIDSQL,
		row["name"], row["email"], row["emailVerified"], row["image"], merged.ID); err != nil {
		return nil, fmt.Errorf("sqlite: updating user %s: %w", patch.ID, err)
	}

	obj, err = queryObject(ctx, tx, getUserByIDSQL, merged.ID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading updated user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sqlite: updating user %s: %w", patch.ID, err)
	}
	return userFromObject(obj), nil
}

// DeleteUser removes the user row, then the user's sessions, then their
// accounts, as a single transaction. Returns ErrUserNotFound when the user
// does not exist.
func (a *Adapter) DeleteUser(ctx context.Context, id string) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: deleting user %s: %w", id, err)
	}
	defer tx.Rollback()

	obj, err := queryObject(ctx, tx, getUserByIDSQL, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting user %s: %w", id, err)
	}
	if obj == nil {
		return core.ErrUserNotFound
	}

	if _, err := tx.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("sqlite: deleting user %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, deleteSessionsByUserSQL, id); err != nil {
		return fmt.Errorf("sqlite: deleting sessions for user %s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, deleteAccountsByUserSQL, id); err != nil {
		return fmt.Errorf("sqlite: deleting accounts for user %s: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: deleting user %s: %w", id, err)
	}
	return nil
}
