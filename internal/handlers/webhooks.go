package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/adapters/gymapi"
	"github.com/magnani/gym-fees/backend/internal/service"
)

// maxWebhookBody limita o corpo aceito no webhook de pagamentos
const maxWebhookBody = 64 << 10

// WebhookHandler recebe avisos de pagamento da API da academia
type WebhookHandler struct {
	fees          *service.FeeService
	webhookSecret string
	logger        *zap.Logger
}

// NewWebhookHandler cria um novo handler de webhooks.
// Com secret vazio a assinatura não é verificada.
func NewWebhookHandler(fees *service.FeeService, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		fees:          fees,
		webhookSecret: secret,
		logger:        logger,
	}
}

// HandlePayment processa o aviso de pagamento e concilia a mensalidade
// Endpoint: POST /api/webhooks/payments
func (wh *WebhookHandler) HandlePayment(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "requisição muito grande"})
			return
		}
		wh.logger.Warn("webhook body read failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "erro ao ler requisição"})
		return
	}

	if wh.webhookSecret != "" {
		signature := gymapi.SignatureFromHeader(c.Request.Header)
		if !gymapi.ValidateSignature(wh.webhookSecret, body, signature) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "assinatura inválida"})
			return
		}
	}

	notification, err := gymapi.ParsePaymentNotification(body)
	if err != nil {
		wh.logger.Warn("invalid payment webhook", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reconciliation, err := wh.fees.Reconcile(c.Request.Context(), notification)
	if err != nil {
		// Retornamos 200 mesmo assim para evitar retentativas da API
		wh.logger.Error("payment reconciliation failed",
			zap.String("event_id", notification.EventID),
			zap.Error(err),
		)
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "received",
		"reconciliation": reconciliation,
	})
}
