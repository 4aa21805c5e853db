package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Account and authentication errors
	ErrDuplicateUser    = fmt.Errorf("username already exists")
	ErrAuthFailed       = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated = fmt.Errorf("not logged in")

	// Book repository errors
	ErrBookNotFound = fmt.Errorf("book not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
