package sqlite

import "context"

// Schema lifecycle. Entity ids are TEXT: the adapter generates UUID
// identifiers on insert, so integer autoincrement keys would reject them.
// The separate rowid still backs the post-insert re-fetch in CreateUser.

var upStatements = []string{
	`CREATE TABLE IF NOT EXISTS "users" (
		"id" TEXT PRIMARY KEY,
		"name" TEXT DEFAULT NULL,
		"email" TEXT DEFAULT NULL,
		"emailVerified" TEXT DEFAULT NULL,
		"image" TEXT DEFAULT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS "sessions" (
		"id" TEXT NOT NULL,
		"sessionToken" TEXT PRIMARY KEY,
		"userId" TEXT NOT NULL,
		"expires" TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS "accounts" (
		"id" TEXT PRIMARY KEY,
		"userId" TEXT NOT NULL,
		"type" TEXT NOT NULL,
		"provider" TEXT NOT NULL,
		"providerAccountId" TEXT NOT NULL,
		"refresh_token" TEXT DEFAULT NULL,
		"access_token" TEXT DEFAULT NULL,
		"expires_at" INTEGER DEFAULT NULL,
		"token_type" TEXT DEFAULT NULL,
		"scope" TEXT DEFAULT NULL,
		"id_token" TEXT DEFAULT NULL,
		"session_state" TEXT DEFAULT NULL,
		UNIQUE ("provider", "providerAccountId")
	);`,
	`CREATE TABLE IF NOT EXISTS "verification_tokens" (
		"identifier" TEXT NOT NULL,
		"token" TEXT NOT NULL,
		"expires" TEXT NOT NULL,
		PRIMARY KEY ("token")
	);`,
	`CREATE TABLE IF NOT EXISTS "authenticator" (
		"id" TEXT PRIMARY KEY,
		"credentialID" TEXT NOT NULL UNIQUE,
		"userId" TEXT NOT NULL,
		"providerAccountId" TEXT NOT NULL,
		"credentialPublicKey" TEXT NOT NULL,
		"counter" INTEGER NOT NULL,
		"credentialDeviceType" TEXT NOT NULL,
		"credentialBackedUp" BOOLEAN NOT NULL,
		"transports" TEXT,
		FOREIGN KEY ("userId")
			REFERENCES "users" ("id")
			ON DELETE CASCADE
			ON UPDATE CASCADE
	);`,
}

var downStatements = []string{
	`DROP TABLE IF EXISTS "accounts";`,
	`DROP TABLE IF EXISTS "sessions";`,
	`DROP TABLE IF EXISTS "users";`,
	`DROP TABLE IF EXISTS "verification_tokens";`,
	`DROP TABLE IF EXISTS "authenticator";`,
}

// Up creates the adapter's tables. Each statement is executed
// independently: a failure is logged and the remaining statements still
// run, so migration is best-effort rather than atomic.
func (a *Adapter) Up(ctx context.Context) {
	for _, stmt := range upStatements {
		if _, err := a.db.ExecContext(ctx, stmt); err != nil {
			a.log.Error("migration statement failed", "err", err)
		}
	}
}

// Down drops the adapter's tables, ignoring tables that are already gone.
// Like Up, failures are logged per statement and do not abort the rest.
func (a *Adapter) Down(ctx context.Context) {
	for _, stmt := range downStatements {
		if _, err := a.db.ExecContext(ctx, stmt); err != nil {
			a.log.Error("migration statement failed", "err", err)
		}
	}
}
