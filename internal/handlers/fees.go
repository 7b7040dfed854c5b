package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/magnani/gym-fees/backend/internal/domain"
	"github.com/magnani/gym-fees/backend/internal/fees"
	"github.com/magnani/gym-fees/backend/internal/service"
)

// FeeHandler expõe o cálculo e o envio de mensalidades
type FeeHandler struct {
	fees   *service.FeeService
	logger *zap.Logger
}

// feeRequest é o corpo enviado pela tela de mensalidade.
// Campos numéricos aceitam número ou texto.
type feeRequest struct {
	PlanID             string `json:"planId"`
	OriginalFee        any    `json:"originalFee"`
	DiscountType       string `json:"discountType"`
	DiscountAmount     any    `json:"discountAmount"`
	DiscountPercentage any    `json:"discountPercentage"`
	GSTType            string `json:"gstType"`
	GSTPercentage      any    `json:"gstPercentage"`
	PaymentMethod      string `json:"paymentMethod"`
	ReferenceNumber    string `json:"referenceNumber"`
}

func (r feeRequest) toService() service.FeeRequest {
	form := fees.NewForm()
	form.PlanID = r.PlanID
	form.OriginalFee = raw(r.OriginalFee)
	if r.DiscountType != "" {
		form.DiscountType = fees.DiscountKind(r.DiscountType)
	}
	form.DiscountAmount = raw(r.DiscountAmount)
	form.DiscountPercentage = raw(r.DiscountPercentage)
	if r.GSTType != "" {
		form.GSTType = fees.GSTKind(r.GSTType)
	}
	form.GSTPercentage = raw(r.GSTPercentage)

	return service.FeeRequest{
		Form:            *form,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		ReferenceNumber: r.ReferenceNumber,
	}
}

func raw(v any) string {
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

// Quote calcula a prévia da mensalidade
// Endpoint: POST /api/fees/quote
func (h *FeeHandler) Quote(c *gin.Context) {
	var body feeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	quote, err := h.fees.Quote(c.Request.Context(), body.toService())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Submit confirma a mensalidade de um aluno
// Endpoint: POST /api/members/:id/fee
func (h *FeeHandler) Submit(c *gin.Context) {
	var body feeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON inválido"})
		return
	}

	res, err := h.fees.Submit(c.Request.Context(), c.Param("id"), body.toService())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *FeeHandler) writeError(c *gin.Context, err error) {
	var subErr *service.SubmissionError
	switch {
	case errors.As(err, &subErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": subErr.Message})
	case errors.Is(err, fees.ErrInvalidFee),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrPlanInactive),
		errors.Is(err, service.ErrMissingMember):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("fee handler failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erro interno"})
	}
}
