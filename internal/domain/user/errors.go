package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserEmailExists       = errors.New("email already registered")
	ErrEmployeeCodeExists    = errors.New("employee code already exists")
	ErrManagerAccessRequired = errors.New("manager access required")
)
