package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnani/gym-fees/backend/internal/domain"
)

func TestForm_Defaults(t *testing.T) {
	f := NewForm()

	assert.Equal(t, DiscountAmount, f.DiscountType)
	assert.Equal(t, GSTNone, f.GSTType)

	res := f.Validate()
	require.False(t, res.Valid())
	assert.Equal(t, FieldOriginalFee, res.Errors[0].Field)
}

func TestForm_SetPlan(t *testing.T) {
	f := NewForm()
	f.SetPlan(domain.NewPlan("p1", "Trimestral", d("5000"), 3))

	assert.Equal(t, "p1", f.PlanID)
	assert.Equal(t, "5000", f.OriginalFee)

	f.SetPlan(nil)
	assert.Empty(t, f.PlanID)
	assert.Empty(t, f.OriginalFee)
}

func TestForm_ComputeExample(t *testing.T) {
	f := NewForm()
	f.SetPlan(domain.NewPlan("p1", "Trimestral", d("5000"), 3))
	f.SetDiscountValue("500")
	f.SetGSTType(GSTExclusive)
	f.SetGSTPercentage("18")

	require.True(t, f.Validate().Valid())

	c := f.Compute()
	assertDecimal(t, "4500", c.BaseAmount)
	assertDecimal(t, "810", c.GSTAmount)
	assertDecimal(t, "5310", c.TotalAmount)
}

func TestForm_SetDiscountTypeResetsDiscount(t *testing.T) {
	f := NewForm()
	f.OriginalFee = "1000"
	f.SetDiscountValue("200")
	assertDecimal(t, "800", f.Compute().BaseAmount)

	f.SetDiscountType(DiscountPercentage)

	assert.Empty(t, f.DiscountAmount)
	assert.Empty(t, f.DiscountPercentage)
	c := f.Compute()
	assertDecimal(t, "1000", c.BaseAmount)
	assert.True(t, c.DiscountAmount.IsZero())

	f.SetDiscountValue("10")
	assert.Equal(t, "10", f.DiscountPercentage)
	assertDecimal(t, "900", f.Compute().BaseAmount)

	f.SetDiscountType(DiscountAmount)
	assert.Empty(t, f.DiscountPercentage)
	assertDecimal(t, "1000", f.Compute().BaseAmount)
}

func TestForm_SetDiscountTypeSameKindKeepsValue(t *testing.T) {
	f := NewForm()
	f.OriginalFee = "1000"
	f.SetDiscountValue("200")

	f.SetDiscountType(DiscountAmount)

	assert.Equal(t, "200", f.DiscountAmount)
}

func TestForm_NonNumericInputIsCoerced(t *testing.T) {
	f := NewForm()
	f.OriginalFee = "1000"
	f.SetDiscountValue("abc")
	f.SetGSTType(GSTExclusive)
	f.SetGSTPercentage("x")

	in := f.Input()
	assert.True(t, in.Discount.Value.IsZero())
	require.True(t, in.GST.Percentage.Valid)
	assert.True(t, in.GST.Percentage.Decimal.IsZero())

	c := f.Compute()
	assertDecimal(t, "1000", c.TotalAmount)
	assert.True(t, f.Validate().Valid())
}

func TestForm_EmptyGSTPercentageBlocks(t *testing.T) {
	f := NewForm()
	f.OriginalFee = "1000"
	f.SetGSTType(GSTInclusive)

	res := f.Validate()
	require.False(t, res.Valid())
	assert.Equal(t, FieldGSTPercentage, res.Errors[0].Field)
}
