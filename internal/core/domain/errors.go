package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrEmptyToken = errors.New("empty access token")
var ErrNoSession = errors.New("no active session")
