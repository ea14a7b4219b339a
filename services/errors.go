package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate
// these to HTTP status codes at the boundary.
var (
	// ErrDuplicateCredential means the username or email is already taken
	ErrDuplicateCredential = errors.New("user with this email or username already exists")

	// ErrInvalidCredentials is returned for any login mismatch. The
	// message never reveals whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound covers both a missing resource and a resource owned by
	// another user, so existence is not leaked to non-owners
	ErrNotFound = errors.New("not found")

	// ErrTokenExpired means the token was valid but its lifetime is over
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid covers malformed tokens and bad signatures
	ErrTokenInvalid = errors.New("token is not valid")
)
