package fees

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		OriginalFee: decimal.NewNullDecimal(d("5000")),
		Discount:    AmountDiscount(d("500")),
		GST:         ExclusiveGST(d("18")),
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *Input)
		wantField string
	}{
		{
			name:   "valid input",
			mutate: func(in *Input) {},
		},
		{
			name:   "no gst without percentage",
			mutate: func(in *Input) { in.GST = NoGST() },
		},
		{
			name:   "gst percentage above 100 is accepted",
			mutate: func(in *Input) { in.GST = ExclusiveGST(d("250")) },
		},
		{
			name:      "gst percentage missing",
			mutate:    func(in *Input) { in.GST = GST{Kind: GSTInclusive} },
			wantField: FieldGSTPercentage,
		},
		{
			name:      "gst percentage negative",
			mutate:    func(in *Input) { in.GST = ExclusiveGST(d("-1")) },
			wantField: FieldGSTPercentage,
		},
		{
			name:      "unknown gst kind",
			mutate:    func(in *Input) { in.GST = GST{Kind: "vat"} },
			wantField: FieldGSTType,
		},
		{
			name:      "original fee missing",
			mutate:    func(in *Input) { in.OriginalFee = decimal.NullDecimal{} },
			wantField: FieldOriginalFee,
		},
		{
			name:      "original fee zero",
			mutate:    func(in *Input) { in.OriginalFee = decimal.NewNullDecimal(decimal.Zero) },
			wantField: FieldOriginalFee,
		},
		{
			name:      "original fee with huge exponent",
			mutate:    func(in *Input) { in.OriginalFee = decimal.NewNullDecimal(decimal.New(1, 5000000)) },
			wantField: FieldOriginalFee,
		},
		{
			name:      "original fee above twelve integer digits",
			mutate:    func(in *Input) { in.OriginalFee = decimal.NewNullDecimal(d("1000000000000")) },
			wantField: FieldOriginalFee,
		},
		{
			name:   "original fee at the limit",
			mutate: func(in *Input) { in.OriginalFee = decimal.NewNullDecimal(d("999999999999.99")) },
		},
		{
			name:      "gst percentage with huge exponent",
			mutate:    func(in *Input) { in.GST = ExclusiveGST(decimal.New(1, 1000000)) },
			wantField: FieldGSTPercentage,
		},
		{
			name:      "flat discount with huge exponent",
			mutate:    func(in *Input) { in.Discount = AmountDiscount(decimal.New(1, 1000000)) },
			wantField: FieldDiscountAmount,
		},
		{
			name:      "percentage with tiny exponent",
			mutate:    func(in *Input) { in.Discount = PercentageDiscount(decimal.New(1, -1000000)) },
			wantField: FieldDiscountPercentage,
		},
		{
			name:      "flat discount negative",
			mutate:    func(in *Input) { in.Discount = AmountDiscount(d("-1")) },
			wantField: FieldDiscountAmount,
		},
		{
			name:      "flat discount above fee",
			mutate:    func(in *Input) { in.Discount = AmountDiscount(d("5000.01")) },
			wantField: FieldDiscountAmount,
		},
		{
			name:   "flat discount equal to fee",
			mutate: func(in *Input) { in.Discount = AmountDiscount(d("5000")) },
		},
		{
			name:      "percentage above 100",
			mutate:    func(in *Input) { in.Discount = PercentageDiscount(d("100.5")) },
			wantField: FieldDiscountPercentage,
		},
		{
			name:      "percentage negative",
			mutate:    func(in *Input) { in.Discount = PercentageDiscount(d("-0.1")) },
			wantField: FieldDiscountPercentage,
		},
		{
			name:   "percentage bounds are inclusive",
			mutate: func(in *Input) { in.Discount = PercentageDiscount(d("100")) },
		},
		{
			name:      "unknown discount kind",
			mutate:    func(in *Input) { in.Discount = Discount{Kind: "coupon"} },
			wantField: FieldDiscountType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			res := Validate(in)
			if tt.wantField == "" {
				require.True(t, res.Valid(), "unexpected errors: %v", res.Errors)
				require.NoError(t, res.Err())
				require.Empty(t, res.Message())
				return
			}

			require.False(t, res.Valid())
			assert.Equal(t, tt.wantField, res.Errors[0].Field)
			assert.NotEmpty(t, res.Message())
		})
	}
}

func TestValidate_ReportsErrorsInOrder(t *testing.T) {
	res := Validate(Input{
		Discount: PercentageDiscount(d("120")),
		GST:      GST{Kind: GSTExclusive},
	})

	require.Len(t, res.Errors, 3)
	assert.Equal(t, FieldGSTPercentage, res.Errors[0].Field)
	assert.Equal(t, FieldOriginalFee, res.Errors[1].Field)
	assert.Equal(t, FieldDiscountPercentage, res.Errors[2].Field)
	assert.Equal(t, res.Errors[0].Message, res.Message())
}

func TestForm_RejectsExponentNotationQuickly(t *testing.T) {
	f := NewForm()
	f.OriginalFee = "1e5000000"
	f.SetGSTType(GSTExclusive)
	f.SetGSTPercentage("18")

	res := f.Validate()
	require.False(t, res.Valid())
	assert.Equal(t, FieldOriginalFee, res.Errors[0].Field)
	assert.Equal(t, "0.00", f.Compute().TotalAmount.StringFixed(2))
}

func TestValidationResult_Err(t *testing.T) {
	res := Validate(Input{Discount: NoDiscount(), GST: NoGST()})

	err := res.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFee))
	assert.Contains(t, err.Error(), res.Message())
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(FieldOriginalFee, "obrigatório")
	assert.Equal(t, "erro de validação no campo 'originalFee': obrigatório", err.Error())
}
