// Package domain contém as entidades de domínio da aplicação
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Plan representa um plano da academia que o aluno pode contratar.
// O Amount é o valor original da mensalidade antes de desconto e GST.
type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Pricing
	Amount         decimal.Decimal `json:"amount"`
	DurationMonths int             `json:"duration"`

	// Status
	IsActive bool `json:"isActive"`

	// Timestamps
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Fee retorna o valor original do plano (zero se negativo)
func (p *Plan) Fee() decimal.Decimal {
	if p.Amount.IsNegative() {
		return decimal.Zero
	}
	return p.Amount
}

// DurationLabel retorna a duração formatada
func (p *Plan) DurationLabel() string {
	switch {
	case p.DurationMonths <= 0:
		return "avulso"
	case p.DurationMonths == 1:
		return "1 mês"
	default:
		return fmt.Sprintf("%d meses", p.DurationMonths)
	}
}

// NewPlan cria um novo plano ativo
func NewPlan(id, name string, amount decimal.Decimal, durationMonths int) *Plan {
	now := time.Now()
	return &Plan{
		ID:             id,
		Name:           name,
		Amount:         amount,
		DurationMonths: durationMonths,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
