package gymapi

import "time"

const (
	// DefaultTimeout é o timeout padrão das requisições
	DefaultTimeout = 30 * time.Second

	// Endpoints
	tokenPath    = "/oauth/token"
	plansPath    = "/api/plans"
	clientsPath  = "/api/clients"
	trainersPath = "/api/trainers"

	// Headers
	headerRequestID = "X-Request-ID"
	headerSignature = "X-Signature"
)
