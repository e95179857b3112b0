package httperr

import "errors"

// códigos de erro de negócio compartilhados entre use cases e handlers
const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeValidation         = "validation_error"
	CodeSelfDelete         = "self_delete_forbidden"
)

var (
	ErrInvalidCredentials = ErrBusiness(CodeInvalidCredentials)
	ErrForbidden          = ErrBusiness(CodeForbidden)
	ErrNotFound           = ErrBusiness(CodeNotFound)
	ErrConflict           = ErrBusiness(CodeConflict)
	ErrValidation         = ErrBusiness(CodeValidation)
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Code devolve o código de negócio do erro, ou "" se não for um BusinessError
func Code(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
