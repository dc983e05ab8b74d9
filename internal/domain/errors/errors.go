package errors

import (
	"errors"
	"fmt"
)

// Kind classifica erros de domínio para mapeamento HTTP
type Kind string

const (
	KindConflict        Kind = "conflict"
	KindNotFound        Kind = "not_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnexpected      Kind = "unexpected"
)

// Códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
const (
	CodeEmailAlreadyRegistered = "error.email_already_registered"
	CodeCpfAlreadyRegistered   = "error.cpf_already_registered"
	CodeStudentNotFound        = "error.student_not_found"
	CodeEmployeeNotFound       = "error.employee_not_found"
	CodeProfilePictureNotFound = "error.profile_picture_not_found"
	CodeInvalidArgument        = "error.invalid_argument"
	CodeUnexpected             = "error.unexpected"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeUnauthorized = "/problems/unauthorized"
)

// DomainError representa um erro de domínio com classificação e código i18n.
// Params alimenta a interpolação das mensagens traduzidas.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Params  map[string]interface{}
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is contra outro DomainError com o mesmo código
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

// NewEmailAlreadyRegistered cria um erro de conflito para e-mail duplicado
func NewEmailAlreadyRegistered(email string) error {
	return &DomainError{
		Kind:    KindConflict,
		Code:    CodeEmailAlreadyRegistered,
		Message: fmt.Sprintf("e-mail %s already registered", email),
		Params:  map[string]interface{}{"Value": email},
	}
}

// NewCpfAlreadyRegistered cria um erro de conflito para CPF duplicado
func NewCpfAlreadyRegistered(cpf string) error {
	return &DomainError{
		Kind:    KindConflict,
		Code:    CodeCpfAlreadyRegistered,
		Message: fmt.Sprintf("CPF %s already registered", cpf),
		Params:  map[string]interface{}{"Value": cpf},
	}
}

// NewStudentNotFound cria um erro para estudante inexistente
func NewStudentNotFound(id string) error {
	return &DomainError{
		Kind:    KindNotFound,
		Code:    CodeStudentNotFound,
		Message: fmt.Sprintf("student with ID %s not found", id),
		Params:  map[string]interface{}{"ID": id},
	}
}

// NewEmployeeNotFound cria um erro para funcionário inexistente
func NewEmployeeNotFound(id string) error {
	return &DomainError{
		Kind:    KindNotFound,
		Code:    CodeEmployeeNotFound,
		Message: fmt.Sprintf("employee with ID %s not found", id),
		Params:  map[string]interface{}{"ID": id},
	}
}

// NewProfilePictureNotFound cria um erro para foto de perfil inexistente
func NewProfilePictureNotFound(id string) error {
	return &DomainError{
		Kind:    KindNotFound,
		Code:    CodeProfilePictureNotFound,
		Message: fmt.Sprintf("profile picture for user %s not found", id),
		Params:  map[string]interface{}{"ID": id},
	}
}

// NewInvalidArgument cria um erro de validação de domínio
func NewInvalidArgument(message string) error {
	return &DomainError{
		Kind:    KindInvalidArgument,
		Code:    CodeInvalidArgument,
		Message: message,
	}
}

// NewUnexpected embrulha uma falha não classificada
func NewUnexpected(err error) error {
	return &DomainError{
		Kind:    KindUnexpected,
		Code:    CodeUnexpected,
		Message: "unexpected error",
		Err:     err,
	}
}

// KindOf retorna a classificação de um erro (KindUnexpected quando desconhecido)
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}

// CodeOf retorna o código i18n de um erro, ou CodeUnexpected
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeUnexpected
}

// ParamsOf retorna os parâmetros de interpolação de um erro, ou nil
func ParamsOf(err error) map[string]interface{} {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Params
	}
	return nil
}

// IsConflict informa se o erro é de conflito (e-mail/CPF duplicado)
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsNotFound informa se o erro é de recurso inexistente
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidArgument informa se o erro é de validação
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }
