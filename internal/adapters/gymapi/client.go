package gymapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/pkcs12"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/magnani/gym-fees/backend/internal/config"
	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/ports"
)

// Client implementa ports.GymAPI
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option customiza o Client
type Option func(*Client)

// WithLogger define o logger do cliente
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient cria um cliente autenticado via OAuth2 client credentials,
// com mTLS quando um certificado é configurado
func NewClient(cfg *config.GymAPIConfig, opts ...Option) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.CertificatePath != "" {
		tlsConfig, err := loadCertificate(cfg.CertificatePath, cfg.CertificatePassword)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar certificado: %w", err)
		}
		transport.TLSClientConfig = tlsConfig
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := &http.Client{Timeout: timeout, Transport: transport}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     baseURL + tokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// O token source usa o mesmo transporte (mTLS) para buscar o token
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := credentials.Client(ctx)
	httpClient.Timeout = timeout

	return NewClientWithHTTP(baseURL, httpClient, opts...), nil
}

// NewClientWithHTTP cria um cliente usando um http.Client já autenticado
func NewClientWithHTTP(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// loadCertificate carrega um certificado .p12 para mTLS
func loadCertificate(certPath, password string) (*tls.Config, error) {
	certData, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler certificado: %w", err)
	}

	privateKey, certificate, err := pkcs12.Decode(certData, password)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar certificado PKCS12: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{certificate.Raw},
			PrivateKey:  privateKey,
		}},
		MinVersion: tls.VersionTLS12,
	}, nil
}

// doRequest executa uma requisição e decodifica a resposta em out (se não nil)
func (c *Client) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro na requisição HTTP: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	c.logger.Debug("gym api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(respBody, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return ClassifyError(apiErr)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta: %w", err)
	}
	return nil
}

// ListPlans lista os planos cadastrados
func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	var resp plansResponse
	if err := c.doRequest(ctx, http.MethodGet, plansPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("erro ao listar planos: %w", err)
	}
	return resp.Data, nil
}

// GetPlan busca um plano pelo ID
func (c *Client) GetPlan(ctx context.Context, planID string) (*domain.Plan, error) {
	if planID == "" {
		return nil, fmt.Errorf("%w: plan_id é obrigatório", ErrInvalidRequest)
	}

	var resp planResponse
	path := fmt.Sprintf("%s/%s", plansPath, url.PathEscape(planID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("erro ao consultar plano: %w", err)
	}
	if resp.Data == nil {
		return nil, ErrNotFound
	}
	return resp.Data, nil
}

// ListMembers lista os alunos
func (c *Client) ListMembers(ctx context.Context) ([]domain.Member, error) {
	var resp membersResponse
	if err := c.doRequest(ctx, http.MethodGet, clientsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("erro ao listar alunos: %w", err)
	}
	return resp.Data, nil
}

// GetMember busca um aluno pelo ID
func (c *Client) GetMember(ctx context.Context, memberID string) (*domain.Member, error) {
	if memberID == "" {
		return nil, fmt.Errorf("%w: client_id é obrigatório", ErrInvalidRequest)
	}

	var resp memberResponse
	path := fmt.Sprintf("%s/%s", clientsPath, url.PathEscape(memberID))
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("erro ao consultar aluno: %w", err)
	}
	if resp.Data == nil {
		return nil, ErrNotFound
	}
	return resp.Data, nil
}

// ListTrainers lista os instrutores
func (c *Client) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	var resp trainersResponse
	if err := c.doRequest(ctx, http.MethodGet, trainersPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("erro ao listar instrutores: %w", err)
	}
	return resp.Data, nil
}

// UpdateFee grava a mensalidade negociada de um aluno
func (c *Client) UpdateFee(ctx context.Context, req *ports.UpdateFeeRequest) (*ports.UpdateFeeResponse, error) {
	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: client_id é obrigatório", ErrInvalidRequest)
	}

	var resp memberResponse
	path := fmt.Sprintf("%s/%s/fee", clientsPath, url.PathEscape(req.ClientID))
	if err := c.doRequest(ctx, http.MethodPut, path, req, &resp); err != nil {
		return nil, fmt.Errorf("erro ao atualizar mensalidade: %w", err)
	}

	return &ports.UpdateFeeResponse{
		Success: resp.Success,
		Message: resp.Message,
		Member:  resp.Data,
	}, nil
}

// Garante que Client implementa GymAPI
var _ ports.GymAPI = (*Client)(nil)
