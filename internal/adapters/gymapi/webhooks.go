package gymapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/magnani/gym-fees/backend/internal/domain"
)

// Sign calcula a assinatura HMAC-SHA256 (hex) de um payload
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidateSignature valida a assinatura de um webhook usando HMAC-SHA256
func ValidateSignature(secret string, payload []byte, signature string) bool {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(strings.ToLower(signature)), []byte(Sign(secret, payload)))
}

// SignatureFromHeader extrai a assinatura do request
func SignatureFromHeader(h http.Header) string {
	return h.Get(headerSignature)
}

// ParsePaymentNotification decodifica e valida o aviso de pagamento
func ParsePaymentNotification(payload []byte) (*domain.PaymentNotification, error) {
	var n domain.PaymentNotification
	if err := json.Unmarshal(payload, &n); err != nil {
		return nil, fmt.Errorf("erro ao decodificar webhook: %w", err)
	}
	if n.EventID == "" {
		return nil, fmt.Errorf("%w: eventId é obrigatório", ErrInvalidRequest)
	}
	if n.MemberID == "" {
		return nil, fmt.Errorf("%w: clientId é obrigatório", ErrInvalidRequest)
	}
	if n.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: valor não pode ser negativo", ErrInvalidRequest)
	}
	return &n, nil
}
