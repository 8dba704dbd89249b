package domain

import "errors"

var (
	// ErrUnauthorized means no resolvable principal was presented on a
	// protected operation. Distinct from ErrForbidden.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means a principal was present but lacks the role or
	// ownership required by the operation.
	ErrForbidden = errors.New("access forbidden")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongPassword      = errors.New("current password incorrect")

	ErrMemberNotFound = errors.New("member not found")
	ErrEmailExists    = errors.New("email already exists")

	ErrPerfumeNotFound = errors.New("perfume not found")
	ErrBrandNotFound   = errors.New("brand not found")
	ErrBrandInUse      = errors.New("brand is referenced by perfumes")

	ErrDuplicateReview = errors.New("member already reviewed this perfume")
	ErrInvalidReview   = errors.New("invalid review")

	ErrInvalidInput = errors.New("invalid input")
)
