package fees

import (
	"fmt"

	"github.com/magnani/gym-fees/backend/internal/domain"
)

// Receipt é a visão do recibo exibida antes da confirmação.
// Os valores já vêm formatados com 2 casas decimais.
type Receipt struct {
	PlanID          string               `json:"planId,omitempty"`
	PlanName        string               `json:"planName,omitempty"`
	PlanDuration    string               `json:"planDuration,omitempty"`
	OriginalFee     string               `json:"originalFee"`
	Discount        string               `json:"discount"`
	DiscountLabel   string               `json:"discountLabel"`
	BaseAmount      string               `json:"baseAmount"`
	GSTLabel        string               `json:"gstLabel"`
	GSTAmount       string               `json:"gstAmount"`
	Total           string               `json:"total"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod,omitempty"`
	ReferenceNumber string               `json:"referenceNumber,omitempty"`
}

// NewReceipt monta o recibo a partir do cálculo. plan pode ser nil.
func NewReceipt(plan *domain.Plan, c Computation, method domain.PaymentMethod, reference string) Receipt {
	r := Receipt{
		OriginalFee:     c.OriginalFee.StringFixed(2),
		Discount:        c.DiscountAmount.StringFixed(2),
		DiscountLabel:   fmt.Sprintf("%s%%", c.DiscountPercentage.StringFixed(2)),
		BaseAmount:      c.BaseAmount.StringFixed(2),
		GSTLabel:        gstLabel(c),
		GSTAmount:       c.GSTAmount.StringFixed(2),
		Total:           c.TotalAmount.StringFixed(2),
		PaymentMethod:   method,
		ReferenceNumber: reference,
	}
	if plan != nil {
		r.PlanID = plan.ID
		r.PlanName = plan.Name
		r.PlanDuration = plan.DurationLabel()
	}
	return r
}

func gstLabel(c Computation) string {
	switch c.GSTType {
	case GSTInclusive:
		return fmt.Sprintf("GST %s%% (incluso)", c.GSTPercentage.String())
	case GSTExclusive:
		return fmt.Sprintf("GST %s%%", c.GSTPercentage.String())
	default:
		return "Sem GST"
	}
}
