// Package apperror holds the typed errors returned by services and mapped to
// HTTP responses by the handler layer.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindUnauthorized
	KindNotFound
	KindToken
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindToken:
		return "token"
	default:
		return "internal"
	}
}

// HTTPStatus : status code used when an error of this kind reaches a client
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindAuth, KindToken:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error   { return New(KindValidation, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Unauthorized(message string) *Error { return New(KindUnauthorized, message) }

// KindOf : KindInternal for anything that is not an *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

var (
	ErrInvalidCredentials = New(KindAuth, "incorrect credentials")

	ErrInvalidToken      = New(KindToken, "refresh token invalid")
	ErrTokenNotFound     = New(KindToken, "refresh token not found")
	ErrTokenExpired      = New(KindToken, "refresh token expired")
	ErrTokenUserNotFound = New(KindToken, "user not found")

	ErrAccessTokenMissing = New(KindUnauthorized, "access token missing")
	ErrAccessTokenInvalid = New(KindUnauthorized, "access token invalid or expired")
	ErrPrincipalNotFound  = New(KindUnauthorized, "user not found")

	// ErrNotFound : returned by repositories when a row is absent
	ErrNotFound = errors.New("not found")
)
