// Package service contém os serviços que orquestram o cálculo de mensalidades
// e a API da academia
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/ports"
)

const plansKey = "plans"

// PlanCatalog implementa ports.PlanCatalog com cache em memória.
// A lista de planos muda pouco; o TTL controla quando a API é consultada de novo.
type PlanCatalog struct {
	api    ports.GymAPI
	cache  *gocache.Cache
	logger *zap.Logger
}

// NewPlanCatalog cria um catálogo com o TTL informado
func NewPlanCatalog(api ports.GymAPI, ttl time.Duration, logger *zap.Logger) *PlanCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanCatalog{
		api:    api,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// List lista os planos, usando o cache quando possível
func (c *PlanCatalog) List(ctx context.Context) ([]domain.Plan, error) {
	if cached, ok := c.cache.Get(plansKey); ok {
		return clonePlans(cached.([]domain.Plan)), nil
	}

	plans, err := c.api.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar planos: %w", err)
	}

	c.cache.SetDefault(plansKey, clonePlans(plans))
	for i := range plans {
		p := plans[i]
		c.cache.SetDefault(planKey(p.ID), &p)
	}
	c.logger.Debug("plan catalog refreshed", zap.Int("plans", len(plans)))

	return plans, nil
}

// Get busca um plano pelo ID
func (c *PlanCatalog) Get(ctx context.Context, planID string) (*domain.Plan, error) {
	if cached, ok := c.cache.Get(planKey(planID)); ok {
		p := *cached.(*domain.Plan)
		return &p, nil
	}

	plan, err := c.api.GetPlan(ctx, planID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar plano: %w", err)
	}

	p := *plan
	c.cache.SetDefault(planKey(planID), &p)
	return plan, nil
}

// Invalidate descarta o cache (ex.: após alteração de planos)
func (c *PlanCatalog) Invalidate() {
	c.cache.Flush()
}

func planKey(id string) string {
	return "plan:" + id
}

func clonePlans(plans []domain.Plan) []domain.Plan {
	out := make([]domain.Plan, len(plans))
	copy(out, plans)
	return out
}

// Garante que PlanCatalog implementa ports.PlanCatalog
var _ ports.PlanCatalog = (*PlanCatalog)(nil)
