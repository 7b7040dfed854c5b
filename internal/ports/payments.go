// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/fees"
)

// ErrNotFound é retornado pelos adaptadores quando o recurso não existe
var ErrNotFound = errors.New("recurso não encontrado")

// ──────────────────────────────────────────────
// Gym API types
// ──────────────────────────────────────────────

// UpdateFeeRequest é o payload enviado ao confirmar a mensalidade de um aluno
type UpdateFeeRequest struct {
	ClientID        string               `json:"clientId"`
	PlanID          string               `json:"planId"`
	FinalFee        decimal.Decimal      `json:"finalFee"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	ReferenceNumber string               `json:"referenceNumber,omitempty"`
	GSTType         fees.GSTKind         `json:"gstType"`
	GSTPercentage   decimal.Decimal      `json:"gstPercentage"`
}

// UpdateFeeResponse é a resposta da API após atualizar a mensalidade
type UpdateFeeResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Member  *domain.Member `json:"client,omitempty"`
}

// ──────────────────────────────────────────────
// Provider interfaces
// ──────────────────────────────────────────────

// GymAPI define a interface para a API REST da academia (dona dos dados)
type GymAPI interface {
	// ListPlans lista os planos cadastrados
	ListPlans(ctx context.Context) ([]domain.Plan, error)

	// GetPlan busca um plano pelo ID
	GetPlan(ctx context.Context, planID string) (*domain.Plan, error)

	// ListMembers lista os alunos da academia
	ListMembers(ctx context.Context) ([]domain.Member, error)

	// GetMember busca um aluno pelo ID
	GetMember(ctx context.Context, memberID string) (*domain.Member, error)

	// ListTrainers lista os instrutores
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)

	// UpdateFee grava a mensalidade negociada de um aluno
	UpdateFee(ctx context.Context, req *UpdateFeeRequest) (*UpdateFeeResponse, error)
}

// ──────────────────────────────────────────────
// Service interfaces
// ──────────────────────────────────────────────

// PlanCatalog define a consulta de planos usada pelo cálculo
type PlanCatalog interface {
	// List lista todos os planos
	List(ctx context.Context) ([]domain.Plan, error)

	// Get busca plano pelo ID
	Get(ctx context.Context, planID string) (*domain.Plan, error)
}
