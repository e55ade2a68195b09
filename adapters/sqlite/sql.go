package sqlite

// Every adapter operation is composed from this fixed statement set.

// users
const (
	createUserSQL     = `INSERT INTO users (id, name, email, emailVerified, image) VALUES (?, ?, ?, ?, ?)`
	getUserByIDSQL    = `SELECT * FROM users WHERE id = ?`
	getUserByRowIDSQL = `SELECT * FROM users WHERE rowid = ?`
	getUserByEmailSQL = `SELECT * FROM users WHERE email = ?`
	getUserByAccountSQL = `
	SELECT u.*
	FROM users u JOIN accounts a ON a.userId = u.id
	WHERE a.providerAccountId = ? AND a.provider = ?`
	updateUserByIDSQL = `
	UPDATE users
	SET name = ?, email = ?, emailVerified = ?, image = ?
	WHERE id = ?`
	deleteUserSQL = `DELETE FROM users WHERE id = ?`
)

// sessions
const (
	createSessionSQL        = `INSERT INTO sessions (id, sessionToken, userId, expires) VALUES (?, ?, ?, ?)`
	getSessionByTokenSQL    = `SELECT * FROM sessions WHERE sessionToken = ?`
	updateSessionByTokenSQL = `UPDATE sessions SET expires = ? WHERE sessionToken = ?`
	deleteSessionSQL        = `DELETE FROM sessions WHERE sessionToken = ?`
	deleteSessionsByUserSQL = `DELETE FROM sessions WHERE userId = ?`
)

// accounts
const (
	createAccountSQL = `
	INSERT INTO accounts (
		id, userId, type, provider,
		providerAccountId, refresh_token, access_token,
		expires_at, token_type, scope, id_token, session_state
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getAccountByProviderSQL    = `SELECT * FROM accounts WHERE provider = ? AND providerAccountId = ?`
	deleteAccountByProviderSQL = `DELETE FROM accounts WHERE provider = ? AND providerAccountId = ?`
	deleteAccountsByUserSQL    = `DELETE FROM accounts WHERE userId = ?`
)

// verification_tokens
const (
	createVerificationTokenSQL = `INSERT INTO verification_tokens (identifier, expires, token) VALUES (?, ?, ?)`
	getVerificationTokenSQL    = `SELECT * FROM verification_tokens WHERE identifier = ? AND token = ?`
	deleteVerificationTokenSQL = `DELETE FROM verification_tokens WHERE identifier = ? AND token = ?`
)

// authenticator
const (
	createAuthenticatorSQL = `
	INSERT INTO authenticator (
		id, credentialID, userId, providerAccountId,
		credentialPublicKey, counter, credentialDeviceType,
		credentialBackedUp, transports
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getAuthenticatorSQL           = `SELECT * FROM authenticator WHERE credentialID = ?`
	listAuthenticatorsByUserSQL   = `SELECT * FROM authenticator WHERE userId = ?`
	updateAuthenticatorCounterSQL = `UPDATE authenticator SET counter = ? WHERE credentialID = ?`
)
