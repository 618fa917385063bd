package core

import "errors"

// Account errors
var (
	ErrUserExists         = errors.New("User with the credentials found in the DB!") // 400
	ErrUserNotFound       = errors.New("User not found!")                            // 400
	ErrInvalidCredentials = errors.New("Invalid user credentials!")                  // 400
)

// Gate errors
var (
	ErrNoToken      = errors.New("Not authorized, No token!")      // 401
	ErrInvalidToken = errors.New("Not authorized, Invalid token!") // 401
	ErrNotAdmin     = errors.New("Not authorized as an admin!")    // 401
)

// Validation errors (client input)
var (
	ErrFieldsRequired = errors.New("All fields are required!") // 400
)
