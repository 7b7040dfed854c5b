// Package fees implementa o cálculo de mensalidades de alunos da academia.
//
// O pacote é puro: não faz I/O, não guarda estado global e nunca entra em pânico
// com entrada inválida. Toda mudança no formulário (plano, desconto, GST)
// deve gerar um novo cálculo com Compute.
//
// # Fluxo
//
//	form := fees.NewForm()
//	form.SetPlan(plan)                       // valor original vem do plano
//	form.SetDiscountType(fees.DiscountAmount)
//	form.SetDiscountValue("500")
//	form.SetGSTType(fees.GSTExclusive)
//	form.SetGSTPercentage("18")
//
//	if res := form.Validate(); !res.Valid() {
//	    // bloqueia o envio e mostra res.Message() ao usuário
//	}
//	c := form.Compute() // c.BaseAmount = 4500, c.GSTAmount = 810, c.TotalAmount = 5310
//
// # Desconto
//
// O desconto é fixo (DiscountAmount) ou percentual (DiscountPercentage), nunca os
// dois ao mesmo tempo. Trocar o tipo zera os dois campos do formulário.
//
// # GST
//
//   - GSTNone: sem imposto, total = base
//   - GSTInclusive: o imposto já está embutido na base, total = base
//   - GSTExclusive: imposto somado à base, total = base + base*percentual/100
//
// Valores monetários usam decimal.Decimal para evitar erro de ponto flutuante.
package fees
