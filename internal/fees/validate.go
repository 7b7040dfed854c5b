package fees

// Validate verifica se o Input pode seguir para o envio.
// O percentual de GST não tem teto além do limite de dígitos da entrada.
func Validate(in Input) ValidationResult {
	var res ValidationResult

	switch {
	case !in.GST.Kind.IsValid():
		res.add(FieldGSTType, "tipo de GST inválido")
	case in.GST.Applies() && !in.GST.Percentage.Valid:
		res.add(FieldGSTPercentage, "informe o percentual de GST")
	case in.GST.Applies() && !withinLimits(in.GST.Percentage.Decimal):
		res.add(FieldGSTPercentage, "percentual de GST fora do limite permitido")
	case in.GST.Applies() && in.GST.Percentage.Decimal.IsNegative():
		res.add(FieldGSTPercentage, "percentual de GST não pode ser negativo")
	}

	fee := in.Fee()
	switch {
	case !withinLimits(fee):
		res.add(FieldOriginalFee, "valor original acima do limite permitido")
	case !in.OriginalFee.Valid || !fee.IsPositive():
		res.add(FieldOriginalFee, "valor original deve ser maior que zero")
	}

	switch in.Discount.Kind {
	case DiscountAmount:
		v := in.Discount.Value
		if !withinLimits(v) {
			res.add(FieldDiscountAmount, "desconto fora do limite permitido")
		} else if v.IsNegative() {
			res.add(FieldDiscountAmount, "desconto não pode ser negativo")
		} else if withinLimits(fee) && fee.IsPositive() && v.GreaterThan(fee) {
			res.add(FieldDiscountAmount, "desconto não pode ser maior que o valor original")
		}
	case DiscountPercentage:
		v := in.Discount.Value
		if !withinLimits(v) || v.IsNegative() || v.GreaterThan(hundred) {
			res.add(FieldDiscountPercentage, "percentual de desconto deve estar entre 0 e 100")
		}
	default:
		res.add(FieldDiscountType, "tipo de desconto inválido")
	}

	return res
}
