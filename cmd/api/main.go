// Package main é o ponto de entrada da API de mensalidades
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/adapters/gymapi"
	"github.com/magnani/gym-fees/backend/internal/config"
	"github.com/magnani/gym-fees/backend/internal/handlers"
	"github.com/magnani/gym-fees/backend/internal/logging"
	"github.com/magnani/gym-fees/backend/internal/service"
)

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro ao carregar configurações: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Erro ao criar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("🏋️ Iniciando API de mensalidades...", zap.String("env", cfg.Env))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Cliente da API da academia
	client, err := gymapi.NewClient(&cfg.GymAPI, gymapi.WithLogger(logger))
	if err != nil {
		logger.Fatal("❌ Erro ao inicializar cliente da API da academia", zap.Error(err))
	}
	logger.Info("✅ Cliente da API da academia inicializado", zap.String("base_url", cfg.GymAPI.BaseURL))

	catalog := service.NewPlanCatalog(client, cfg.PlanCacheTTL, logger)
	feeService := service.NewFeeService(client, catalog, logger)

	if cfg.Webhook.Secret == "" {
		logger.Warn("⚠️  WEBHOOK_SECRET vazio: assinatura dos webhooks não será verificada")
	}

	router := handlers.NewRouter(handlers.Dependencies{
		Fees:          feeService,
		Plans:         catalog,
		API:           client,
		WebhookSecret: cfg.Webhook.Secret,
		Logger:        logger,
	})

	// Inicia o servidor
	addr := ":" + cfg.Port
	logger.Info("🚀 Servidor rodando", zap.String("addr", "http://localhost"+addr))
	logger.Info("🏥 Health check", zap.String("url", "http://localhost"+addr+"/health"))

	if err := router.Run(addr); err != nil {
		logger.Fatal("❌ Erro ao iniciar servidor", zap.Error(err))
	}
}
