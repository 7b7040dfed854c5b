package fees

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Input reúne os dados já convertidos do formulário
type Input struct {
	OriginalFee decimal.NullDecimal
	Discount    Discount
	GST         GST
}

// Fee retorna o valor original ou zero se não informado
func (in Input) Fee() decimal.Decimal {
	if !in.OriginalFee.Valid {
		return decimal.Zero
	}
	return in.OriginalFee.Decimal
}

// Computation é o resultado derivado de um Input. Não é persistido.
type Computation struct {
	OriginalFee        decimal.Decimal `json:"originalFee"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	BaseAmount         decimal.Decimal `json:"baseAmount"`
	GSTType            GSTKind         `json:"gstType"`
	GSTPercentage      decimal.Decimal `json:"gstPercentage"`
	GSTAmount          decimal.Decimal `json:"gstAmount"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
}

// FinalFee retorna o valor a ser cobrado, arredondado em 2 casas
func (c Computation) FinalFee() decimal.Decimal {
	return c.TotalAmount.Round(2)
}

// Compute recalcula todos os valores a partir do Input
func Compute(in Input) Computation {
	fee := in.Fee()
	discountAmount, discountPercentage := EffectiveDiscount(fee, in.Discount)
	base := ComputeBaseAmount(fee, in.Discount)
	gstAmount := ComputeGSTAmount(base, in.GST)

	kind := in.GST.Kind
	if !kind.IsValid() {
		kind = GSTNone
	}

	return Computation{
		OriginalFee:        fee,
		DiscountAmount:     discountAmount,
		DiscountPercentage: discountPercentage,
		BaseAmount:         base,
		GSTType:            kind,
		GSTPercentage:      in.GST.Rate(),
		GSTAmount:          gstAmount,
		TotalAmount:        ComputeTotal(base, gstAmount, kind),
	}
}

// ComputeBaseAmount aplica o desconto sobre o valor original.
// Valor original zero é retornado sem alteração; o desconto é limitado a [0, originalFee].
func ComputeBaseAmount(originalFee decimal.Decimal, discount Discount) decimal.Decimal {
	if originalFee.IsZero() {
		return originalFee
	}
	if originalFee.IsNegative() {
		return decimal.Zero
	}

	amount, _ := EffectiveDiscount(originalFee, discount)
	return decimal.Max(decimal.Zero, originalFee.Sub(amount))
}

// EffectiveDiscount retorna o desconto efetivamente aplicado, em valor e em percentual.
// O percentual derivado de um desconto fixo é arredondado em 2 casas.
func EffectiveDiscount(originalFee decimal.Decimal, discount Discount) (amount, percentage decimal.Decimal) {
	if !originalFee.IsPositive() {
		return decimal.Zero, decimal.Zero
	}

	if discount.Kind == DiscountPercentage {
		p := clamp(discount.Value, decimal.Zero, hundred)
		return originalFee.Mul(p).Div(hundred), p
	}

	a := clamp(discount.Value, decimal.Zero, originalFee)
	return a, a.Mul(hundred).Div(originalFee).Round(2)
}

// ComputeGSTAmount calcula o imposto sobre a base. Sem GST o resultado é sempre zero.
func ComputeGSTAmount(baseAmount decimal.Decimal, gst GST) decimal.Decimal {
	if !gst.Applies() {
		return decimal.Zero
	}
	return baseAmount.Mul(gst.Rate()).Div(hundred)
}

// ComputeTotal soma o imposto apenas quando ele é exclusivo
func ComputeTotal(baseAmount, gstAmount decimal.Decimal, kind GSTKind) decimal.Decimal {
	if kind == GSTExclusive {
		return baseAmount.Add(gstAmount)
	}
	return baseAmount
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}
