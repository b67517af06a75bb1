package models

import (
	"errors"
)

var (
	ErrUserNotFound       = errors.New("models: user not found")
	ErrComplaintNotFound  = errors.New("models: complaint not found")
	ErrPostNotFound       = errors.New("models: post not found")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
)
