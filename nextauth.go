// Package nextauth exposes the storage contract consumed by the
// authentication framework together with the shared entity models.
// Concrete database adapters live under adapters/.
package nextauth

import (
	"github.com/jacobprall/next-auth/core"
)

// interfaces
type (
	Adapter = core.Adapter

	UserStore              = core.UserStore
	SessionStore           = core.SessionStore
	AccountStore           = core.AccountStore
	VerificationTokenStore = core.VerificationTokenStore
	AuthenticatorStore     = core.AuthenticatorStore
)

// models
type (
	User              = core.User
	UserPatch         = core.UserPatch
	Session           = core.Session
	Account           = core.Account
	VerificationToken = core.VerificationToken
	Authenticator     = core.Authenticator
	SessionAndUser    = core.SessionAndUser
)

var (
	ErrUserNotFound             = core.ErrUserNotFound
	ErrConnectionStringRequired = core.ErrConnectionStringRequired
)
