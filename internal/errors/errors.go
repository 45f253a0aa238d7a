package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError é o erro tipado que atravessa repositório, serviço e handlers de contratos.
// A categoria vai no corpo JSON; o status HTTP sai de HTTPStatus.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// ValidationError: contrato rejeitado antes de chegar ao banco (cliente vazio, UF inválida).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError: nenhum contrato com o ID pedido.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError: o corpo da atualização traz um ID diferente do da rota.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// InternalError: falha do banco, do cache ou da serialização. Err guarda a causa para o log.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Erro Interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Erro Interno: %s", e.Msg)
}
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro interno com a causa original.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError marca a mensagem como falha do banco de contratos.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// IsNotFound informa se algum erro da cadeia é um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return stderrors.As(err, &nf)
}

// IsValidation informa se algum erro da cadeia é um ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// MapToHTTPStatus devolve status, categoria e mensagem para o corpo de erro.
// Erros encapsulados com %w também são reconhecidos.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			// A causa raiz fica apenas no log; o cliente recebe a mensagem resumida.
			return appErr.HTTPStatus(), appErr.Category(), "Ocorreu um erro inesperado. Tente novamente."
		}
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
