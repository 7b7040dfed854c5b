package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/magnani/gym-fees/backend/internal/domain"
)

func TestNewReceipt(t *testing.T) {
	plan := domain.NewPlan("p1", "Trimestral", d("5000"), 3)
	c := Compute(Input{
		OriginalFee: decimal.NewNullDecimal(d("5000")),
		Discount:    AmountDiscount(d("500")),
		GST:         ExclusiveGST(d("18")),
	})

	r := NewReceipt(plan, c, domain.PaymentMethodUPI, "UTR123")

	assert.Equal(t, "p1", r.PlanID)
	assert.Equal(t, "Trimestral", r.PlanName)
	assert.Equal(t, "3 meses", r.PlanDuration)
	assert.Equal(t, "5000.00", r.OriginalFee)
	assert.Equal(t, "500.00", r.Discount)
	assert.Equal(t, "10.00%", r.DiscountLabel)
	assert.Equal(t, "4500.00", r.BaseAmount)
	assert.Equal(t, "GST 18%", r.GSTLabel)
	assert.Equal(t, "810.00", r.GSTAmount)
	assert.Equal(t, "5310.00", r.Total)
	assert.Equal(t, domain.PaymentMethodUPI, r.PaymentMethod)
	assert.Equal(t, "UTR123", r.ReferenceNumber)
}

func TestNewReceipt_GSTLabels(t *testing.T) {
	base := Input{OriginalFee: decimal.NewNullDecimal(d("1000")), Discount: PercentageDiscount(d("10"))}

	base.GST = InclusiveGST(d("18"))
	r := NewReceipt(nil, Compute(base), domain.PaymentMethodCash, "")
	assert.Equal(t, "GST 18% (incluso)", r.GSTLabel)
	assert.Equal(t, "900.00", r.Total)
	assert.Empty(t, r.PlanID)

	base.GST = NoGST()
	r = NewReceipt(nil, Compute(base), domain.PaymentMethodCash, "")
	assert.Equal(t, "Sem GST", r.GSTLabel)
	assert.Equal(t, "0.00", r.GSTAmount)
}
