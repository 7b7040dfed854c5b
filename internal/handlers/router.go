// Package handlers contém os handlers HTTP da aplicação
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/ports"
	"github.com/magnani/gym-fees/backend/internal/service"
)

// Dependencies agrupa o que os handlers precisam
type Dependencies struct {
	Fees          *service.FeeService
	Plans         ports.PlanCatalog
	API           ports.GymAPI
	WebhookSecret string
	Logger        *zap.Logger

	// Now permite fixar o relógio nos testes
	Now func() time.Time
}

// NewRouter registra todas as rotas
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(deps.Logger))

	// Health check
	r.GET("/health", HealthCheck)
	r.GET("/api/health", HealthCheck)

	lists := &ListHandler{plans: deps.Plans, api: deps.API, logger: deps.Logger, now: deps.Now}
	feeHandler := &FeeHandler{fees: deps.Fees, logger: deps.Logger}
	webhooks := NewWebhookHandler(deps.Fees, deps.WebhookSecret, deps.Logger)

	api := r.Group("/api")
	api.GET("/plans", lists.Plans)
	api.GET("/members", lists.Members)
	api.GET("/trainers", lists.Trainers)
	api.POST("/fees/quote", feeHandler.Quote)
	api.POST("/members/:id/fee", feeHandler.Submit)
	api.POST("/webhooks/payments", webhooks.HandlePayment)

	return r
}

// HealthCheck endpoint para verificar se o servidor está funcionando
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "gym-fees-api",
	})
}

// RequestLogger registra cada requisição no logger
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
