package domainerr

import "net/http"

// Codes d'erreur métier
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "AUTH_REQUIRED"
	CodeBadCredentials  = "INVALID_CREDENTIALS"
	CodeForbidden       = "ACCESS_DENIED"
	CodeInactiveAccount = "ACCOUNT_DISABLED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeSlotUnavailable = "SLOT_UNAVAILABLE"
	CodeDuplicateEmail  = "EMAIL_ALREADY_USED"
	CodeInternal        = "INTERNAL_ERROR"
)

// DomainError est l'erreur métier transportée des services vers les contrôleurs
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// New crée une erreur métier
func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func Validation(message string) *DomainError {
	return New(CodeValidation, message)
}

func NotFound(message string) *DomainError {
	return New(CodeNotFound, message)
}

func Forbidden(message string) *DomainError {
	return New(CodeForbidden, message)
}

func SlotUnavailable() *DomainError {
	return New(CodeSlotUnavailable, "Ce créneau n'est pas disponible")
}

func DuplicateEmail() *DomainError {
	return New(CodeDuplicateEmail, "Cet email est déjà utilisé")
}

// HTTPStatus mappe un code métier vers le statut HTTP correspondant
func HTTPStatus(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthenticated, CodeBadCredentials:
		return http.StatusUnauthorized
	case CodeForbidden, CodeInactiveAccount:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeSlotUnavailable, CodeDuplicateEmail:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
