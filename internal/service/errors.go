package service

import "errors"

// Sentinel errors matched with errors.Is in the handlers. The message texts
// are part of the API: the frontend matches on them, so they stay verbatim,
// capitalization quirks included.
var (
	ErrUserNotFound       = errors.New("User Not Found")
	ErrWrongPassword      = errors.New("Wrong Password")
	ErrWrongOldPassword   = errors.New("wrong old password")
	ErrWeakPassword       = errors.New("Password must be at least 8 characters long.")
	ErrDuplicateUser      = errors.New("User already exists")
	ErrDepartmentNotFound = errors.New("Department not found")
	ErrEmployeeNotFound   = errors.New("Employee not found")
	ErrIdeaNotFound       = errors.New("Idea not found")
	ErrInvalidImpact      = errors.New("invalid impact category")
	ErrInvalidDate        = errors.New("invalid applied date")
	ErrInvalidStatus      = errors.New("status must be Approved or Rejected")
	ErrIdeaFinalized      = errors.New("idea status has already been finalized")
)

// IsNotFound groups the sentinels the API maps to 404. Credential mismatches
// are in here too: the frontend expects 404 for them and matching on the
// message text, so the quirk stays.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWrongPassword) ||
		errors.Is(err, ErrWrongOldPassword) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrIdeaNotFound)
}

// IsValidation groups the sentinels the API maps to 400.
func IsValidation(err error) bool {
	return errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrInvalidImpact) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrIdeaFinalized)
}
