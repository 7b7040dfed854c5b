package fees

import "github.com/magnani/gym-fees/backend/internal/domain"

// Form espelha o estado editável da tela de mensalidade.
// Os campos numéricos guardam o texto digitado; a conversão acontece em Input.
type Form struct {
	PlanID             string       `json:"planId,omitempty"`
	OriginalFee        string       `json:"originalFee"`
	DiscountType       DiscountKind `json:"discountType"`
	DiscountAmount     string       `json:"discountAmount"`
	DiscountPercentage string       `json:"discountPercentage"`
	GSTType            GSTKind      `json:"gstType"`
	GSTPercentage      string       `json:"gstPercentage"`
}

// NewForm cria um formulário com desconto fixo e sem GST
func NewForm() *Form {
	return &Form{
		DiscountType: DiscountAmount,
		GSTType:      GSTNone,
	}
}

// SetPlan seleciona o plano e usa o valor dele como valor original
func (f *Form) SetPlan(plan *domain.Plan) {
	if plan == nil {
		f.PlanID = ""
		f.OriginalFee = ""
		return
	}
	f.PlanID = plan.ID
	f.OriginalFee = plan.Fee().String()
}

// SetDiscountType troca o tipo de desconto. A troca limpa os dois campos,
// então o cálculo recomeça do valor original.
func (f *Form) SetDiscountType(kind DiscountKind) {
	if kind == f.DiscountType {
		return
	}
	f.DiscountType = kind
	f.DiscountAmount = ""
	f.DiscountPercentage = ""
}

// SetDiscountValue grava o valor no campo do tipo de desconto ativo
func (f *Form) SetDiscountValue(raw string) {
	if f.DiscountType == DiscountPercentage {
		f.DiscountPercentage = raw
		return
	}
	f.DiscountAmount = raw
}

// SetGSTType troca o tipo de GST
func (f *Form) SetGSTType(kind GSTKind) {
	f.GSTType = kind
}

// SetGSTPercentage grava o percentual de GST digitado
func (f *Form) SetGSTPercentage(raw string) {
	f.GSTPercentage = raw
}

// Input converte o texto do formulário em valores tipados
func (f *Form) Input() Input {
	discount := Discount{Kind: f.DiscountType}
	switch f.DiscountType {
	case DiscountPercentage:
		discount.Value = ParseDecimal(f.DiscountPercentage)
	default:
		discount.Value = ParseDecimal(f.DiscountAmount)
	}

	return Input{
		OriginalFee: ParseOptionalDecimal(f.OriginalFee),
		Discount:    discount,
		GST: GST{
			Kind:       f.GSTType,
			Percentage: ParseOptionalDecimal(f.GSTPercentage),
		},
	}
}

// Compute recalcula os valores do formulário
func (f *Form) Compute() Computation {
	return Compute(f.Input())
}

// Validate valida o formulário
func (f *Form) Validate() ValidationResult {
	return Validate(f.Input())
}
