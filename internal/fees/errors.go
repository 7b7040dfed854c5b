package fees

import (
	"errors"
	"fmt"
)

// Campos validados do formulário
const (
	FieldOriginalFee        = "originalFee"
	FieldDiscountType       = "discountType"
	FieldDiscountAmount     = "discountAmount"
	FieldDiscountPercentage = "discountPercentage"
	FieldGSTType            = "gstType"
	FieldGSTPercentage      = "gstPercentage"
)

// ErrInvalidFee indica que o formulário não passou na validação
var ErrInvalidFee = errors.New("fees: mensalidade inválida")

// ValidationError representa um erro de validação com detalhes do campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("erro de validação no campo '%s': %s", e.Field, e.Message)
}

// NewValidationError cria um novo ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ValidationResult agrega os erros de validação na ordem em que foram encontrados
type ValidationResult struct {
	Errors []*ValidationError `json:"errors,omitempty"`
}

// Valid retorna true se não há erros
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Message retorna a primeira mensagem bloqueante, ou vazio se válido
func (r ValidationResult) Message() string {
	if r.Valid() {
		return ""
	}
	return r.Errors[0].Message
}

// Err converte o resultado em erro que envolve ErrInvalidFee
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidFee, r.Message())
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, NewValidationError(field, message))
}
