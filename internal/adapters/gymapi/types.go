package gymapi

import (
	"fmt"

	"github.com/magnani/gym-fees/backend/internal/domain"
)

// envelope é o formato padrão de resposta da API
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// APIError representa um erro retornado pela API
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gymapi: status %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("gymapi: status %d: %s", e.Status, e.Message)
}

type (
	plansResponse    = envelope[[]domain.Plan]
	planResponse     = envelope[*domain.Plan]
	membersResponse  = envelope[[]domain.Member]
	trainersResponse = envelope[[]domain.Trainer]
	memberResponse   = envelope[*domain.Member]
)
