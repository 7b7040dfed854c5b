// Package config gerencia as configurações do aplicativo
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config armazena todas as configurações da aplicação
type Config struct {
	// Servidor
	Port     string
	Env      string
	LogLevel string

	// API da academia
	GymAPI GymAPIConfig

	// Cache de planos
	PlanCacheTTL time.Duration

	// Webhook
	Webhook WebhookConfig
}

// GymAPIConfig armazena configurações da API REST da academia
type GymAPIConfig struct {
	BaseURL             string
	ClientID            string
	ClientSecret        string
	CertificatePath     string
	CertificatePassword string
	Timeout             time.Duration
}

// WebhookConfig armazena configurações de webhook
type WebhookConfig struct {
	Secret string
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente
// O arquivo .env é opcional - variáveis de ambiente têm prioridade
func Load() (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		GymAPI: GymAPIConfig{
			BaseURL:             getEnv("GYM_API_URL", ""),
			ClientID:            getEnv("GYM_API_CLIENT_ID", ""),
			ClientSecret:        getEnv("GYM_API_CLIENT_SECRET", ""),
			CertificatePath:     getEnv("GYM_API_CERTIFICATE_PATH", ""),
			CertificatePassword: getEnv("GYM_API_CERTIFICATE_PASSWORD", ""),
			Timeout:             getEnvDuration("GYM_API_TIMEOUT", 30*time.Second),
		},
		PlanCacheTTL: getEnvDuration("PLAN_CACHE_TTL", 5*time.Minute),
		Webhook: WebhookConfig{
			Secret: getEnv("WEBHOOK_SECRET", ""),
		},
	}

	// Validação básica
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate verifica se as configurações obrigatórias estão presentes
func (c *Config) validate() error {
	if c.GymAPI.BaseURL == "" {
		return fmt.Errorf("GYM_API_URL é obrigatório")
	}
	if c.GymAPI.ClientID == "" {
		return fmt.Errorf("GYM_API_CLIENT_ID é obrigatório")
	}
	if c.GymAPI.ClientSecret == "" {
		return fmt.Errorf("GYM_API_CLIENT_SECRET é obrigatório")
	}
	return nil
}

// IsDevelopment retorna true se estiver em ambiente de desenvolvimento
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction retorna true se estiver em ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv obtém uma variável de ambiente ou retorna o valor padrão
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration obtém uma variável de ambiente como duração ("30s", "5m").
// Números sem unidade são tratados como segundos.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if secs, err := cast.ToInt64E(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	parsed, err := cast.ToDurationE(value)
	if err != nil || parsed < 0 {
		return defaultValue
	}
	return parsed
}
