package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericInternalMessage é a única mensagem devolvida ao cliente para falhas 5xx.
// O detalhe do erro original fica apenas no log.
const GenericInternalMessage = "Erro interno do servidor."

// AppError é a interface central para todos os erros customizados do GoYard.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
// Field guarda o nome JSON do primeiro campo inválido, quando conhecido.
type ValidationError struct {
	Msg   string
	Field string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação sem campo associado.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError cria um erro de validação apontando o campo ofensor.
func NewFieldValidationError(field, msg string) AppError {
	return &ValidationError{Msg: msg, Field: field}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConstraintViolationError representa a violação de uma restrição do banco (e.g., código duplicado).
// É um erro do cliente: o payload colide com um registro existente.
type ConstraintViolationError struct {
	Msg   string
	Field string
	Err   error
}

func (e *ConstraintViolationError) Error() string    { return e.Msg }
func (e *ConstraintViolationError) Category() string { return "CONSTRAINT_VIOLATION" }
func (e *ConstraintViolationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ConstraintViolationError) Unwrap() error    { return e.Err }

// NewConstraintViolationError cria um erro de violação de restrição para o campo informado.
func NewConstraintViolationError(field, msg string, err error) AppError {
	return &ConstraintViolationError{Msg: msg, Field: field, Err: err}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Erro Interno: %s", e.Msg)
	}
	return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, categoria e mensagem pública.
// Erros 5xx nunca expõem a mensagem original.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus()
		if status >= http.StatusInternalServerError {
			return status, appErr.Category(), GenericInternalMessage
		}
		return status, appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratado como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", GenericInternalMessage
}

// FieldOf devolve o campo associado a um erro de validação ou de restrição, se houver.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	var cv *ConstraintViolationError
	if errors.As(err, &cv) {
		return cv.Field
	}
	return ""
}

// IsNotFound informa se algum erro da cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
