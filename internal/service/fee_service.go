package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/fees"
	"github.com/magnani/gym-fees/backend/internal/ports"
)

// Mensagem exibida quando a API falha no envio
const submitFailedMessage = "Não foi possível atualizar a mensalidade. Tente novamente."

// FeeRequest é o formulário de mensalidade mais os dados de pagamento
type FeeRequest struct {
	Form            fees.Form
	PaymentMethod   domain.PaymentMethod
	ReferenceNumber string
}

// Quote é a prévia exibida antes da confirmação
type Quote struct {
	Valid       bool                  `json:"valid"`
	Message     string                `json:"message,omitempty"`
	Validation  fees.ValidationResult `json:"validation"`
	Computation fees.Computation      `json:"computation"`
	Receipt     fees.Receipt          `json:"receipt"`

	form fees.Form
}

// SubmitResult é o resultado de um envio aceito pela API
type SubmitResult struct {
	Quote   *Quote                  `json:"quote"`
	Request *ports.UpdateFeeRequest `json:"request"`
	Message string                  `json:"message,omitempty"`
	Member  *domain.Member          `json:"client,omitempty"`
}

// FeeService orquestra cálculo, validação e envio da mensalidade
type FeeService struct {
	api    ports.GymAPI
	plans  ports.PlanCatalog
	logger *zap.Logger
}

// NewFeeService cria o serviço de mensalidades
func NewFeeService(api ports.GymAPI, plans ports.PlanCatalog, logger *zap.Logger) *FeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeeService{api: api, plans: plans, logger: logger}
}

// Quote calcula a mensalidade. Quando há plano selecionado, o valor original
// vem do catálogo e não do formulário, e o plano precisa estar ativo. Formulário inválido não é erro: o
// resultado volta com Valid=false e a mensagem bloqueante.
func (s *FeeService) Quote(ctx context.Context, req FeeRequest) (*Quote, error) {
	form := req.Form

	var plan *domain.Plan
	if form.PlanID != "" {
		p, err := s.plans.Get(ctx, form.PlanID)
		if err != nil {
			return nil, err
		}
		if !p.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrPlanInactive, p.ID)
		}
		plan = p
		form.SetPlan(plan)
	}

	validation := form.Validate()
	computation := form.Compute()

	return &Quote{
		Valid:       validation.Valid(),
		Message:     validation.Message(),
		Validation:  validation,
		Computation: computation,
		Receipt:     fees.NewReceipt(plan, computation, req.PaymentMethod, strings.TrimSpace(req.ReferenceNumber)),
		form:        form,
	}, nil
}

// Submit valida e envia a mensalidade negociada do aluno. Uma única tentativa é feita.
func (s *FeeService) Submit(ctx context.Context, memberID string, req FeeRequest) (*SubmitResult, error) {
	if strings.TrimSpace(memberID) == "" {
		return nil, ErrMissingMember
	}

	quote, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}
	if !quote.Valid {
		return nil, quote.Validation.Err()
	}
	if !req.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	c := quote.Computation
	payload := &ports.UpdateFeeRequest{
		ClientID:        memberID,
		PlanID:          quote.form.PlanID,
		FinalFee:        c.FinalFee(),
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: strings.TrimSpace(req.ReferenceNumber),
		GSTType:         c.GSTType,
		GSTPercentage:   c.GSTPercentage,
	}

	resp, err := s.api.UpdateFee(ctx, payload)
	if err != nil {
		s.logger.Error("fee update failed",
			zap.String("client_id", memberID),
			zap.String("plan_id", payload.PlanID),
			zap.Error(err),
		)
		return nil, &SubmissionError{Message: submitFailedMessage, Err: err}
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = submitFailedMessage
		}
		s.logger.Warn("fee update rejected", zap.String("client_id", memberID), zap.String("message", resp.Message))
		return nil, &SubmissionError{Message: msg, Err: ErrRejected}
	}

	s.logger.Info("fee updated",
		zap.String("client_id", memberID),
		zap.String("plan_id", payload.PlanID),
		zap.String("final_fee", payload.FinalFee.StringFixed(2)),
		zap.String("payment_method", string(payload.PaymentMethod)),
	)

	return &SubmitResult{
		Quote:   quote,
		Request: payload,
		Message: resp.Message,
		Member:  resp.Member,
	}, nil
}

// Reconcile confere a situação do aluno após um aviso de pagamento.
// A API registra o pagamento antes de avisar, então o saldo do aluno já o inclui.
func (s *FeeService) Reconcile(ctx context.Context, n *domain.PaymentNotification) (*fees.Reconciliation, error) {
	member, err := s.api.GetMember(ctx, n.MemberID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, n.MemberID)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar aluno: %w", err)
	}

	r := fees.Reconcile(member.FinalFee, member.PaidAmount)

	fields := []zap.Field{
		zap.String("event_id", n.EventID),
		zap.String("client_id", member.ID),
		zap.String("amount", n.Amount.StringFixed(2)),
		zap.String("status", string(r.Status)),
		zap.String("outstanding", r.Outstanding.StringFixed(2)),
	}
	if r.Status == domain.FeeStatusOverpaid {
		s.logger.Warn("payment exceeds negotiated fee", append(fields, zap.String("excess", r.Excess.StringFixed(2)))...)
	} else {
		s.logger.Info("payment reconciled", fields...)
	}

	return &r, nil
}
