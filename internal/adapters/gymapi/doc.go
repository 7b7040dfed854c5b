// Package gymapi implementa o adaptador para a API REST da academia.
//
// A API é externa: ela guarda planos, alunos e instrutores e recebe a
// mensalidade negociada quando o atendente confirma o formulário.
//
// # Autenticação
//
// OAuth2 client credentials. Opcionalmente mTLS com certificado .p12:
//   - Client ID e Client Secret
//   - Certificado .p12 e senha (quando a API exige mTLS)
//
// # Início Rápido
//
//	client, err := gymapi.NewClient(&cfg.GymAPI)
//	plans, err := client.ListPlans(ctx)
//
//	resp, err := client.UpdateFee(ctx, &ports.UpdateFeeRequest{
//	    ClientID:      "c-42",
//	    PlanID:        "quarterly",
//	    FinalFee:      decimal.RequireFromString("5310"),
//	    PaymentMethod: domain.PaymentMethodUPI,
//	    GSTType:       fees.GSTExclusive,
//	    GSTPercentage: decimal.NewFromInt(18),
//	})
//
// Não há retentativa automática: uma falha volta como erro e o usuário reenvia.
// Use IsNotFound, IsUnauthorized e IsServerError para classificar.
//
// # Webhooks
//
// Pagamentos registrados na API chegam assinados com HMAC-SHA256 no header
// X-Signature. Use ValidateSignature e ParsePaymentNotification.
package gymapi
