package gymapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/magnani/gym-fees/backend/internal/ports"
)

// Erros sentinela para condições comuns
var (
	// ErrNotFound indica que o recurso não foi encontrado
	ErrNotFound = fmt.Errorf("gymapi: %w", ports.ErrNotFound)

	// ErrUnauthorized indica falha de autenticação
	ErrUnauthorized = errors.New("gymapi: não autorizado")

	// ErrInvalidRequest indica requisição inválida
	ErrInvalidRequest = errors.New("gymapi: requisição inválida")

	// ErrRateLimited indica rate limiting
	ErrRateLimited = errors.New("gymapi: rate limit atingido")

	// ErrServerError indica erro interno do servidor da API
	ErrServerError = errors.New("gymapi: erro do servidor")
)

// IsNotFound retorna true se o erro indica que o recurso não foi encontrado
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || hasStatus(err, func(s int) bool { return s == http.StatusNotFound })
}

// IsUnauthorized retorna true se o erro indica falha de autenticação
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || hasStatus(err, func(s int) bool {
		return s == http.StatusUnauthorized || s == http.StatusForbidden
	})
}

// IsRateLimited retorna true se o erro indica rate limiting
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited) || hasStatus(err, func(s int) bool { return s == http.StatusTooManyRequests })
}

// IsServerError retorna true se o erro é do servidor (5xx)
func IsServerError(err error) bool {
	return errors.Is(err, ErrServerError) || hasStatus(err, func(s int) bool { return s >= 500 })
}

func hasStatus(err error, match func(int) bool) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return match(apiErr.Status)
	}
	return false
}

// ClassifyError envolve um erro da API com o erro sentinela correspondente.
// O *APIError original continua acessível via errors.As.
func ClassifyError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch {
	case apiErr.Status == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case apiErr.Status == http.StatusUnauthorized, apiErr.Status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case apiErr.Status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case apiErr.Status >= 500:
		return fmt.Errorf("%w: %w", ErrServerError, err)
	case apiErr.Status >= 400:
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return err
}
