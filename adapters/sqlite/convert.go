package sqlite

import (
	"strconv"
	"time"

	"github.com/jacobprall/next-auth/core"
)

// Typed mapping between marshalled objects and the core models. Fields are
// copied one by one rather than by key iteration so unexpected columns can
// never leak into an entity.

// deref unwraps an optional field for the insert path; a nil pointer
// becomes a NULL bind value.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// asString normalizes an identifier value. SQLite reports integer-affinity
// columns as int64 even when the framework treats ids as strings.
func asString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func optString(obj map[string]any, key string) *string {
	if v, ok := obj[key].(string); ok {
		return &v
	}
	return nil
}

func optTime(obj map[string]any, key string) *time.Time {
	if v, ok := obj[key].(time.Time); ok {
		return &v
	}
	return nil
}

func timeField(obj map[string]any, key string) time.Time {
	if v, ok := obj[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func optInt64(obj map[string]any, key string) *int64 {
	switch v := obj[key].(type) {
	case int64:
		return &v
	case float64:
		n := int64(v)
		return &n
	}
	return nil
}

func int64Field(obj map[string]any, key string) int64 {
	if p := optInt64(obj, key); p != nil {
		return *p
	}
	return 0
}

func boolField(obj map[string]any, key string) bool {
	switch v := obj[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	}
	return false
}

func userFromObject(obj map[string]any) *core.User {
	if obj == nil {
		return nil
	}
	return &core.User{
		ID:            asString(obj["id"]),
		Name:          optString(obj, "name"),
		Email:         optString(obj, "email"),
		EmailVerified: optTime(obj, "emailVerified"),
		Image:         optString(obj, "image"),
	}
}

func insertableFromUser(u *core.User) map[string]any {
	return InsertableFromObject(map[string]any{
		"id":            u.ID,
		"name":          deref(u.Name),
		"email":         deref(u.Email),
		"emailVerified": deref(u.EmailVerified),
		"image":         deref(u.Image),
	})
}

func sessionFromObject(obj map[string]any) *core.Session {
	if obj == nil {
		return nil
	}
	return &core.Session{
		ID:           asString(obj["id"]),
		SessionToken: asString(obj["sessionToken"]),
		UserID:       asString(obj["userId"]),
		Expires:      timeField(obj, "expires"),
	}
}

func insertableFromSession(s *core.Session) map[string]any {
	return InsertableFromObject(map[string]any{
		"id":           s.ID,
		"sessionToken": s.SessionToken,
		"userId":       s.UserID,
		"expires":      s.Expires,
	})
}

func accountFromObject(obj map[string]any) *core.Account {
	if obj == nil {
		return nil
	}
	return &core.Account{
		ID:                asString(obj["id"]),
		UserID:            asString(obj["userId"]),
		Type:              asString(obj["type"]),
		Provider:          asString(obj["provider"]),
		ProviderAccountID: asString(obj["providerAccountId"]),
		RefreshToken:      optString(obj, "refresh_token"),
		AccessToken:       optString(obj, "access_token"),
		ExpiresAt:         optInt64(obj, "expires_at"),
		TokenType:         optString(obj, "token_type"),
		Scope:             optString(obj, "scope"),
		IDToken:           optString(obj, "id_token"),
		SessionState:      optString(obj, "session_state"),
	}
}

func insertableFromAccount(a *core.Account) map[string]any {
	return InsertableFromObject(map[string]any{
		"id":                a.ID,
		"userId":            a.UserID,
		"type":              a.Type,
		"provider":          a.Provider,
		"providerAccountId": a.ProviderAccountID,
		"refresh_token":     deref(a.RefreshToken),
		"access_token":      deref(a.AccessToken),
		"expires_at":        deref(a.ExpiresAt),
		"token_type":        deref(a.TokenType),
		"scope":             deref(a.Scope),
		"id_token":          deref(a.IDToken),
		"session_state":     deref(a.SessionState),
	})
}

func verificationTokenFromObject(obj map[string]any) *core.VerificationToken {
	if obj == nil {
		return nil
	}
	return &core.VerificationToken{
		Identifier: asString(obj["identifier"]),
		Token:      asString(obj["token"]),
		Expires:    timeField(obj, "expires"),
	}
}

func insertableFromVerificationToken(v *core.VerificationToken) map[string]any {
	return InsertableFromObject(map[string]any{
		"identifier": v.Identifier,
		"token":      v.Token,
		"expires":    v.Expires,
	})
}

func authenticatorFromObject(obj map[string]any) *core.Authenticator {
	if obj == nil {
		return nil
	}
	return &core.Authenticator{
		ID:                   asString(obj["id"]),
		CredentialID:         asString(obj["credentialID"]),
		UserID:               asString(obj["userId"]),
		ProviderAccountID:    asString(obj["providerAccountId"]),
		CredentialPublicKey:  asString(obj["credentialPublicKey"]),
		Counter:              int64Field(obj, "counter"),
		CredentialDeviceType: asString(obj["credentialDeviceType"]),
		CredentialBackedUp:   boolField(obj, "credentialBackedUp"),
		Transports:           optString(obj, "transports"),
	}
}
