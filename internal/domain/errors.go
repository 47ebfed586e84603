package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for the boundary layer. Services return
// kinded errors and never decide user-visible formatting themselves.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindAuth
	KindDependency
)

type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error of the same kind with the same message, so the
// predeclared values below work with errors.Is across wrapping.
func (e *Error) Is(target error) bool {
	var de *Error
	if !errors.As(target, &de) {
		return false
	}
	return e.Kind == de.Kind && e.Message == de.Message
}

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Dependencyf wraps a persistence or collaborator failure. Mutations
// carrying this kind must never be retried automatically.
func Dependencyf(cause error, format string, args ...any) error {
	return &Error{Kind: KindDependency, Message: fmt.Sprintf(format, args...), cause: cause}
}

// KindOf extracts the kind from anywhere in an error chain.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

var (
	ErrSelfFollow       = &Error{Kind: KindValidation, Message: "cannot follow yourself"}
	ErrAlreadyFollowing = &Error{Kind: KindConflict, Message: "already following this user"}
	ErrNotFollowing     = &Error{Kind: KindNotFound, Message: "not following this user"}

	ErrUserNotFound    = &Error{Kind: KindNotFound, Message: "user not found"}
	ErrPostNotFound    = &Error{Kind: KindNotFound, Message: "post not found"}
	ErrCommentNotFound = &Error{Kind: KindNotFound, Message: "comment not found"}

	ErrDuplicateEmail     = &Error{Kind: KindConflict, Message: "email is already registered"}
	ErrInvalidCredentials = &Error{Kind: KindAuth, Message: "invalid credentials"}
	ErrUnauthorized       = &Error{Kind: KindAuth, Message: "authentication required"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "not allowed"}
)
