// Package filter implementa os filtros de listas usados pelas telas de alunos,
// planos e instrutores. As funções não alteram a ordem da lista original.
package filter

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/fees"
)

// MemberQuery agrupa os critérios da lista de alunos. Campos vazios não filtram.
type MemberQuery struct {
	Search string
	Status domain.FeeStatus
	PlanID string
}

// Members filtra alunos por nome/telefone, situação da mensalidade e plano
func Members(members []domain.Member, q MemberQuery, now time.Time) []domain.Member {
	search := normalize(q.Search)
	return lo.Filter(members, func(m domain.Member, _ int) bool {
		if search != "" && !contains(m.Name, search) && !contains(m.Phone, search) {
			return false
		}
		if q.PlanID != "" && m.PlanID != q.PlanID {
			return false
		}
		if q.Status != "" && fees.MemberStatus(&m, now) != q.Status {
			return false
		}
		return true
	})
}

// Plans filtra planos pelo nome, opcionalmente apenas os ativos
func Plans(plans []domain.Plan, search string, activeOnly bool) []domain.Plan {
	search = normalize(search)
	return lo.Filter(plans, func(p domain.Plan, _ int) bool {
		if activeOnly && !p.IsActive {
			return false
		}
		return search == "" || contains(p.Name, search)
	})
}

// Trainers filtra instrutores pelo nome ou especialidade
func Trainers(trainers []domain.Trainer, search string) []domain.Trainer {
	search = normalize(search)
	return lo.Filter(trainers, func(t domain.Trainer, _ int) bool {
		return search == "" || contains(t.Name, search) || contains(t.Specialization, search)
	})
}

// StatusCounts conta os alunos em cada situação
func StatusCounts(members []domain.Member, now time.Time) map[domain.FeeStatus]int {
	return lo.CountValuesBy(members, func(m domain.Member) domain.FeeStatus {
		return fees.MemberStatus(&m, now)
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(field, search string) bool {
	return strings.Contains(strings.ToLower(field), search)
}
