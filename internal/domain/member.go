package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member representa um aluno (cliente) da academia e sua mensalidade negociada
type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	PlanID    string `json:"planId,omitempty"`
	TrainerID string `json:"trainerId,omitempty"`

	// Valores negociados
	FinalFee   decimal.Decimal `json:"finalFee"`
	PaidAmount decimal.Decimal `json:"paidAmount"`

	DueDate  *time.Time `json:"dueDate,omitempty"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// IsPastDue verifica se a data de vencimento já passou
func (m *Member) IsPastDue(now time.Time) bool {
	if m.DueDate == nil {
		return false
	}
	return now.After(*m.DueDate)
}

// DaysUntilDue retorna dias até o vencimento (negativo se vencido)
func (m *Member) DaysUntilDue(now time.Time) int {
	if m.DueDate == nil {
		return 0
	}
	return int(m.DueDate.Sub(now).Hours() / 24)
}

// Trainer representa um instrutor que pode ser atribuído a alunos
type Trainer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
}
