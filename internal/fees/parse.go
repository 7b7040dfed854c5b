package fees

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Limites aceitos para valores digitados. Fora deles o valor vira zero.
const (
	maxInputLength    = 32
	maxIntegerDigits  = 12
	maxFractionDigits = 8
)

// ParseDecimal converte qualquer entrada do formulário em decimal.
// Entradas não numéricas ou fora dos limites viram zero; nunca retorna erro.
func ParseDecimal(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return bounded(x)
	case string:
		s := strings.TrimSpace(x)
		if len(s) > maxInputLength {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return bounded(d)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return bounded(decimal.NewFromFloat(f))
}

// ParseOptionalDecimal converte um campo que pode estar vazio.
// Campo vazio vira nulo; texto não numérico vira zero.
func ParseOptionalDecimal(raw string) decimal.NullDecimal {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(ParseDecimal(raw))
}

func bounded(d decimal.Decimal) decimal.Decimal {
	if !withinLimits(d) {
		return decimal.Zero
	}
	return d
}

// withinLimits olha só o expoente e a quantidade de dígitos, sem comparar
// valores: comparar com um expoente enorme obriga o decimal a reescalar.
func withinLimits(d decimal.Decimal) bool {
	if d.IsZero() {
		return true
	}
	exp := int64(d.Exponent())
	if exp < -maxFractionDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= maxIntegerDigits
}
