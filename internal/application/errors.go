package application

import "errors"

// ErrInvalidCredentials is returned by Login for an unknown email and for a
// wrong password alike.
var ErrInvalidCredentials = errors.New("invalid credentials")
