package model

// TokenClaims is the identity decoded from a verified bearer token. It lives
// for a single request and is never persisted.
type TokenClaims struct {
	Email string `json:"email"`
}
