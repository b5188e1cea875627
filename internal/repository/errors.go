// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUsernameExists and ErrEmailExists indicate that a
// registration collided with an existing account, while
// ErrInvalidCredentials deliberately covers both an unknown username
// and a wrong password so handlers cannot leak which one it was.
package repository

import "errors"

// ErrUsernameExists is returned when registering a username that is
// already taken. Handlers translate this into a duplicate-field notice.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when registering an email address that is
// already taken. Handlers translate this into a duplicate-field notice.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned by Authenticate for both a missing
// account and a password mismatch. The single value prevents username
// enumeration through differing error messages.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrInvalidResult is returned when a reported game result is not one of
// win, loss or tie. Handlers should translate this into an HTTP 400
// response without touching any counter.
var ErrInvalidResult = errors.New("invalid game result")
