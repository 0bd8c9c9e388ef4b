// Package apperror define os erros de aplicação exibidos ao usuário.
//
// Um Error carrega uma mensagem legível e o código de saída do processo.
// Erros do provedor que não foram previstos não são convertidos aqui.
package apperror

import (
	"errors"
	"fmt"
)

// Códigos de saída
const (
	CodeNothingToDo = 0

	CodeInvalidRegion = 1
	CodeMissingRegion = 2

	CodeKeyPairRequired      = 1001
	CodeRepositoryRequired   = 1002
	CodeKeyPairNotFound      = 1003
	CodeRepositoryNotFound   = 1004
	CodeEnclaveExists        = 1005
	CodeNamespaceExhausted   = 1006
	CodeNameTaken            = 1007
	CodeUnsupportedFamily    = 1008
	CodeUnsupportedSize      = 1009
	CodeDeleteFilterRequired = 2001
)

// Error é um erro conhecido, com mensagem para o usuário e código de saída
type Error struct {
	Code    int
	Message string
	Err     error
}

// New cria um erro de aplicação
func New(code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap cria um erro de aplicação preservando a causa
func Wrap(err error, code int, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Failed indica se o erro representa uma falha (código diferente de zero)
func (e *Error) Failed() bool {
	return e.Code != CodeNothingToDo
}

// As extrai um *Error da cadeia de err
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf retorna o código de err, ou -1 se não for um erro de aplicação
func CodeOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return -1
}
