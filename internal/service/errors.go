package service

import "errors"

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrPackNotFound       = errors.New("conversation pack not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLogNotFound        = errors.New("log not found")
)
