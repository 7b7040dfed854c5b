package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func TestComputeBaseAmount(t *testing.T) {
	tests := []struct {
		name     string
		fee      string
		discount Discount
		want     string
	}{
		{"flat discount", "5000", AmountDiscount(d("500")), "4500"},
		{"flat discount equal to fee", "5000", AmountDiscount(d("5000")), "0"},
		{"flat discount above fee is clamped", "5000", AmountDiscount(d("7000")), "0"},
		{"negative flat discount is clamped", "5000", AmountDiscount(d("-100")), "5000"},
		{"percentage discount", "1000", PercentageDiscount(d("10")), "900"},
		{"percentage above 100 is clamped", "1000", PercentageDiscount(d("150")), "0"},
		{"negative percentage is clamped", "1000", PercentageDiscount(d("-5")), "1000"},
		{"fractional percentage", "999", PercentageDiscount(d("12.5")), "874.125"},
		{"zero fee ignores discount", "0", AmountDiscount(d("500")), "0"},
		{"zero fee ignores percentage", "0", PercentageDiscount(d("50")), "0"},
		{"negative fee floors at zero", "-10", AmountDiscount(d("0")), "0"},
		{"no discount", "2500", NoDiscount(), "2500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, ComputeBaseAmount(d(tt.fee), tt.discount))
		})
	}
}

func TestComputeBaseAmount_FlatDiscountProperty(t *testing.T) {
	fee := d("3750.50")
	for _, v := range []string{"0", "0.50", "1", "100", "1875.25", "3750.50"} {
		got := ComputeBaseAmount(fee, AmountDiscount(d(v)))
		assertDecimal(t, fee.Sub(d(v)).String(), got, v)
	}
}

func TestComputeBaseAmount_PercentageProperty(t *testing.T) {
	fee := d("1234.56")
	for p := int64(0); p <= 100; p += 5 {
		pct := decimal.NewFromInt(p)
		want := fee.Mul(hundred.Sub(pct)).Div(hundred)
		got := ComputeBaseAmount(fee, PercentageDiscount(pct))
		assertDecimal(t, want.String(), got, p)
		assert.False(t, got.IsNegative())
	}
}

func TestEffectiveDiscount(t *testing.T) {
	amount, pct := EffectiveDiscount(d("5000"), AmountDiscount(d("500")))
	assertDecimal(t, "500", amount)
	assertDecimal(t, "10", pct)

	amount, pct = EffectiveDiscount(d("1000"), PercentageDiscount(d("25")))
	assertDecimal(t, "250", amount)
	assertDecimal(t, "25", pct)

	amount, pct = EffectiveDiscount(d("3000"), AmountDiscount(d("1000")))
	assertDecimal(t, "1000", amount)
	assertDecimal(t, "33.33", pct)

	amount, pct = EffectiveDiscount(decimal.Zero, PercentageDiscount(d("25")))
	assert.True(t, amount.IsZero())
	assert.True(t, pct.IsZero())
}

func TestComputeGSTAmount(t *testing.T) {
	tests := []struct {
		name string
		base string
		gst  GST
		want string
	}{
		{"no gst", "4500", NoGST(), "0"},
		{"no gst ignores stray percentage", "4500", GST{Kind: GSTNone, Percentage: decimal.NewNullDecimal(d("18"))}, "0"},
		{"exclusive", "4500", ExclusiveGST(d("18")), "810"},
		{"inclusive", "900", InclusiveGST(d("18")), "162"},
		{"missing percentage", "900", GST{Kind: GSTExclusive}, "0"},
		{"unknown kind", "900", GST{Kind: "vat", Percentage: decimal.NewNullDecimal(d("18"))}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, ComputeGSTAmount(d(tt.base), tt.gst))
		})
	}
}

func TestComputeTotal(t *testing.T) {
	assertDecimal(t, "4500", ComputeTotal(d("4500"), d("810"), GSTNone))
	assertDecimal(t, "4500", ComputeTotal(d("4500"), d("810"), GSTInclusive))
	assertDecimal(t, "5310", ComputeTotal(d("4500"), d("810"), GSTExclusive))
}

func TestCompute_Examples(t *testing.T) {
	t.Run("flat discount with exclusive gst", func(t *testing.T) {
		c := Compute(Input{
			OriginalFee: decimal.NewNullDecimal(d("5000")),
			Discount:    AmountDiscount(d("500")),
			GST:         ExclusiveGST(d("18")),
		})

		assertDecimal(t, "5000", c.OriginalFee)
		assertDecimal(t, "500", c.DiscountAmount)
		assertDecimal(t, "10", c.DiscountPercentage)
		assertDecimal(t, "4500", c.BaseAmount)
		assertDecimal(t, "810", c.GSTAmount)
		assertDecimal(t, "5310", c.TotalAmount)
		require.Equal(t, GSTExclusive, c.GSTType)
		require.Equal(t, "5310.00", c.FinalFee().StringFixed(2))
	})

	t.Run("percentage discount with inclusive gst", func(t *testing.T) {
		c := Compute(Input{
			OriginalFee: decimal.NewNullDecimal(d("1000")),
			Discount:    PercentageDiscount(d("10")),
			GST:         InclusiveGST(d("18")),
		})

		assertDecimal(t, "900", c.BaseAmount)
		assertDecimal(t, "900", c.TotalAmount)
		require.Equal(t, GSTInclusive, c.GSTType)
	})

	t.Run("zero fee", func(t *testing.T) {
		c := Compute(Input{
			OriginalFee: decimal.NewNullDecimal(decimal.Zero),
			Discount:    PercentageDiscount(d("40")),
			GST:         ExclusiveGST(d("18")),
		})

		assert.True(t, c.BaseAmount.IsZero())
		assert.True(t, c.TotalAmount.IsZero())
	})

	t.Run("missing fee behaves as zero", func(t *testing.T) {
		c := Compute(Input{Discount: AmountDiscount(d("100")), GST: NoGST()})
		assert.True(t, c.BaseAmount.IsZero())
	})

	t.Run("unknown gst kind is reported as no gst", func(t *testing.T) {
		c := Compute(Input{
			OriginalFee: decimal.NewNullDecimal(d("100")),
			Discount:    NoDiscount(),
			GST:         GST{Kind: "vat"},
		})
		require.Equal(t, GSTNone, c.GSTType)
		assertDecimal(t, "100", c.TotalAmount)
	})
}
