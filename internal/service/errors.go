package service

import "errors"

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrEmptyPassword = errors.New("password must not be empty")

	ErrVaultExists  = errors.New("vault already exists")
	ErrVaultNotOpen = errors.New("vault is not open")

	ErrNoteNotFound = errors.New("note was not found")
)
