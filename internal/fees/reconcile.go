package fees

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magnani/gym-fees/backend/internal/domain"
)

// Reconciliation compara o valor devido com o valor pago
type Reconciliation struct {
	Expected    decimal.Decimal  `json:"expected"`
	Paid        decimal.Decimal  `json:"paid"`
	Outstanding decimal.Decimal  `json:"outstanding"`
	Excess      decimal.Decimal  `json:"excess"`
	Status      domain.FeeStatus `json:"status"`
}

// Reconcile calcula a situação de uma mensalidade. Pagamentos negativos contam como zero.
func Reconcile(expected, paid decimal.Decimal) Reconciliation {
	expected = decimal.Max(decimal.Zero, expected)
	paid = decimal.Max(decimal.Zero, paid)

	r := Reconciliation{
		Expected:    expected,
		Paid:        paid,
		Outstanding: decimal.Max(decimal.Zero, expected.Sub(paid)),
		Excess:      decimal.Max(decimal.Zero, paid.Sub(expected)),
	}

	switch {
	case paid.GreaterThan(expected):
		r.Status = domain.FeeStatusOverpaid
	case paid.Equal(expected):
		r.Status = domain.FeeStatusPaid
	case paid.IsZero():
		r.Status = domain.FeeStatusPending
	default:
		r.Status = domain.FeeStatusPartial
	}

	return r
}

// MemberStatus retorna a situação do aluno, marcando como vencida a mensalidade
// em aberto depois da data de vencimento
func MemberStatus(m *domain.Member, now time.Time) domain.FeeStatus {
	status := Reconcile(m.FinalFee, m.PaidAmount).Status
	if !status.IsSettled() && m.IsPastDue(now) {
		return domain.FeeStatusOverdue
	}
	return status
}
