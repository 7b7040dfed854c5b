package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/fees"
	"github.com/magnani/gym-fees/backend/internal/filter"
	"github.com/magnani/gym-fees/backend/internal/ports"
)

// ListHandler expõe as listas filtradas de planos, alunos e instrutores
type ListHandler struct {
	plans  ports.PlanCatalog
	api    ports.GymAPI
	logger *zap.Logger
	now    func() time.Time
}

// memberView é o aluno com a situação da mensalidade já calculada
type memberView struct {
	domain.Member
	Status       domain.FeeStatus `json:"status"`
	Outstanding  string           `json:"outstanding"`
	DaysUntilDue int              `json:"daysUntilDue"`
}

// Plans lista planos
// Endpoint: GET /api/plans?q=&active=
func (h *ListHandler) Plans(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	activeOnly := cast.ToBool(c.Query("active"))
	c.JSON(http.StatusOK, gin.H{"data": filter.Plans(plans, c.Query("q"), activeOnly)})
}

// Members lista alunos
// Endpoint: GET /api/members?q=&status=&plan=
func (h *ListHandler) Members(c *gin.Context) {
	status := domain.FeeStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status inválido"})
		return
	}

	members, err := h.api.ListMembers(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	now := h.now()
	filtered := filter.Members(members, filter.MemberQuery{
		Search: c.Query("q"),
		Status: status,
		PlanID: c.Query("plan"),
	}, now)

	views := make([]memberView, 0, len(filtered))
	for i := range filtered {
		m := &filtered[i]
		views = append(views, memberView{
			Member:       *m,
			Status:       fees.MemberStatus(m, now),
			Outstanding:  fees.Reconcile(m.FinalFee, m.PaidAmount).Outstanding.StringFixed(2),
			DaysUntilDue: m.DaysUntilDue(now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":   views,
		"counts": filter.StatusCounts(members, now),
	})
}

// Trainers lista instrutores
// Endpoint: GET /api/trainers?q=
func (h *ListHandler) Trainers(c *gin.Context) {
	trainers, err := h.api.ListTrainers(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": filter.Trainers(trainers, c.Query("q"))})
}

func (h *ListHandler) upstreamError(c *gin.Context, err error) {
	h.logger.Error("gym api request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "não foi possível consultar a API da academia"})
}
