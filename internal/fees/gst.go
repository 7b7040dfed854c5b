package fees

import "github.com/shopspring/decimal"

// GSTKind representa como o GST é aplicado sobre a base
type GSTKind string

const (
	GSTNone      GSTKind = "no_gst"
	GSTInclusive GSTKind = "inclusive"
	GSTExclusive GSTKind = "exclusive"
)

// ValidGSTKinds lista todos os tipos de GST válidos
var ValidGSTKinds = []GSTKind{
	GSTNone,
	GSTInclusive,
	GSTExclusive,
}

// IsValid verifica se o tipo de GST é conhecido
func (k GSTKind) IsValid() bool {
	for _, v := range ValidGSTKinds {
		if k == v {
			return true
		}
	}
	return false
}

// GST é a configuração de imposto do formulário.
// Percentage é nulo quando o usuário não informou o percentual.
type GST struct {
	Kind       GSTKind             `json:"kind"`
	Percentage decimal.NullDecimal `json:"percentage"`
}

// NoGST cria uma configuração sem imposto
func NoGST() GST {
	return GST{Kind: GSTNone}
}

// InclusiveGST cria um GST já embutido no valor
func InclusiveGST(percentage decimal.Decimal) GST {
	return GST{Kind: GSTInclusive, Percentage: decimal.NewNullDecimal(percentage)}
}

// ExclusiveGST cria um GST somado ao valor
func ExclusiveGST(percentage decimal.Decimal) GST {
	return GST{Kind: GSTExclusive, Percentage: decimal.NewNullDecimal(percentage)}
}

// Applies retorna true se há imposto a considerar
func (g GST) Applies() bool {
	return g.Kind == GSTInclusive || g.Kind == GSTExclusive
}

// Rate retorna o percentual informado ou zero
func (g GST) Rate() decimal.Decimal {
	if !g.Applies() || !g.Percentage.Valid {
		return decimal.Zero
	}
	return g.Percentage.Decimal
}
