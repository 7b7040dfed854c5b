package fees

import "github.com/shopspring/decimal"

// DiscountKind representa o modo de desconto aplicado à mensalidade
type DiscountKind string

const (
	// DiscountAmount desconto em valor fixo
	DiscountAmount DiscountKind = "amount"
	// DiscountPercentage desconto em percentual do valor original
	DiscountPercentage DiscountKind = "percentage"
)

// IsValid verifica se o tipo de desconto é conhecido
func (k DiscountKind) IsValid() bool {
	return k == DiscountAmount || k == DiscountPercentage
}

// Discount é o desconto ativo. Apenas um tipo está ativo por vez.
type Discount struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// AmountDiscount cria um desconto de valor fixo
func AmountDiscount(value decimal.Decimal) Discount {
	return Discount{Kind: DiscountAmount, Value: value}
}

// PercentageDiscount cria um desconto percentual
func PercentageDiscount(value decimal.Decimal) Discount {
	return Discount{Kind: DiscountPercentage, Value: value}
}

// NoDiscount é um desconto fixo de zero
func NoDiscount() Discount {
	return AmountDiscount(decimal.Zero)
}

// Amount retorna o valor fixo do desconto (zero se o desconto é percentual)
func (d Discount) Amount() decimal.Decimal {
	if d.Kind == DiscountPercentage {
		return decimal.Zero
	}
	return d.Value
}

// Percentage retorna o percentual do desconto (zero se o desconto é fixo)
func (d Discount) Percentage() decimal.Decimal {
	if d.Kind != DiscountPercentage {
		return decimal.Zero
	}
	return d.Value
}
