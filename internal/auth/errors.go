package auth

import (
	"errors"
	"net/http"

	apperrors "github.com/mentorverse/mentorverse-api/pkg/util"
)

// Token verification failures. Expired is kept apart from the others so
// callers can ask for re-authentication instead of treating it as tampering.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)

// Gate failures. Every one of them is terminal for the request.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrForbidden         = errors.New("forbidden")
)

const (
	msgAccessDenied  = "Access denied"
	msgInvalidToken  = "Invalid token"
	msgAdminRequired = "Admin access required"
)

func missingCredential() error {
	return apperrors.Wrap("MISSING_CREDENTIAL", msgAccessDenied, http.StatusUnauthorized, ErrMissingCredential)
}

func invalidCredential(cause error) error {
	if cause == nil {
		cause = ErrInvalidCredential
	} else {
		cause = errors.Join(ErrInvalidCredential, cause)
	}
	return apperrors.Wrap("INVALID_CREDENTIAL", msgInvalidToken, http.StatusForbidden, cause)
}

func forbidden(message string) error {
	return apperrors.Wrap("FORBIDDEN", message, http.StatusForbidden, ErrForbidden)
}
