package service

import "errors"

var (
	ErrUnknownContainer = errors.New("unknown container")
	ErrUnknownForm      = errors.New("unknown form")
	// ErrMissingUserID marks a backend auth answer without a user id.
	ErrMissingUserID = errors.New("response carries no user id")
)
