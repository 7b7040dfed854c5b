package service

import "errors"

var (
	// ErrPlanNotFound indica que o plano selecionado não existe
	ErrPlanNotFound = errors.New("plano não encontrado")

	// ErrPlanInactive indica que o plano não está mais disponível para novas mensalidades
	ErrPlanInactive = errors.New("plano inativo")

	// ErrMemberNotFound indica que o aluno não existe
	ErrMemberNotFound = errors.New("aluno não encontrado")

	// ErrMissingMember indica que o ID do aluno não foi informado
	ErrMissingMember = errors.New("aluno é obrigatório")

	// ErrInvalidPaymentMethod indica método de pagamento não aceito
	ErrInvalidPaymentMethod = errors.New("método de pagamento inválido")

	// ErrRejected indica que a API recusou a atualização
	ErrRejected = errors.New("atualização recusada pela API")
)

// SubmissionError é a falha no envio da mensalidade. Message é o texto
// exibido ao usuário; não há retentativa, o usuário reenvia.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
