package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStatus representa a situação da mensalidade de um aluno
type FeeStatus string

const (
	FeeStatusPaid     FeeStatus = "paid"
	FeeStatusPartial  FeeStatus = "partial"
	FeeStatusPending  FeeStatus = "pending"
	FeeStatusOverpaid FeeStatus = "overpaid"
	FeeStatusOverdue  FeeStatus = "overdue"
)

// ValidFeeStatuses lista todos os status válidos
var ValidFeeStatuses = []FeeStatus{
	FeeStatusPaid,
	FeeStatusPartial,
	FeeStatusPending,
	FeeStatusOverpaid,
	FeeStatusOverdue,
}

// IsValid verifica se o status é válido
func (s FeeStatus) IsValid() bool {
	for _, v := range ValidFeeStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsSettled retorna true quando não há valor em aberto
func (s FeeStatus) IsSettled() bool {
	return s == FeeStatusPaid || s == FeeStatusOverpaid
}

// PaymentMethod representa o método de pagamento
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
)

// ValidPaymentMethods lista os métodos aceitos
var ValidPaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodUPI,
	PaymentMethodCard,
	PaymentMethodBankTransfer,
	PaymentMethodCheque,
}

// IsValid verifica se o método é aceito
func (m PaymentMethod) IsValid() bool {
	for _, v := range ValidPaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// PaymentNotification é o aviso enviado pela API da academia quando um pagamento é registrado
type PaymentNotification struct {
	EventID         string          `json:"eventId"`
	MemberID        string          `json:"clientId"`
	PlanID          string          `json:"planId,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Method          PaymentMethod   `json:"paymentMethod"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	PaidAt          time.Time       `json:"paidAt"`
}
