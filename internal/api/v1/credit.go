package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/puntoventa/puntoventa/internal/api/dto"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/service"
)

type CreditHandler struct {
	creditService  service.CreditService
	paymentService service.PaymentService
	logger         *logger.Logger
}

func NewCreditHandler(creditService service.CreditService, paymentService service.PaymentService, logger *logger.Logger) *CreditHandler {
	return &CreditHandler{
		creditService:  creditService,
		paymentService: paymentService,
		logger:         logger,
	}
}

// @Summary List credits
// @Description Get the credit ledger aggregated to one row per customer
// @Tags Credits
// @Produce json
// @Success 200 {object} dto.ListCreditsResponse
// @Router /credits [get]
func (h *CreditHandler) ListCredits(c *gin.Context) {
	resp, err := h.creditService.ListCredits(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Create credit
// @Description Register a manual credit entry
// @Tags Credits
// @Accept json
// @Produce json
// @Param credit body dto.CreateCreditRequest true "Credit request"
// @Success 201 {object} dto.CreditRecordResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /credits [post]
func (h *CreditHandler) CreateCredit(c *gin.Context) {
	var req dto.CreateCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.creditService.CreateCredit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List customer credit records
// @Description Get one customer's raw credit records, oldest first
// @Tags Credits
// @Produce json
// @Param customer_id query string false "Registered client id"
// @Param customer_name query string false "Customer name"
// @Success 200 {array} dto.CreditRecordResponse
// @Router /credits/customer [get]
func (h *CreditHandler) ListCustomerRecords(c *gin.Context) {
	var q dto.CustomerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.creditService.ListCustomerRecords(c.Request.Context(), &q)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List customer invoices
// @Description Get the invoices behind one customer's credit records
// @Tags Credits
// @Produce json
// @Param customer_id query string false "Registered client id"
// @Param customer_name query string false "Customer name"
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /credits/customer/invoices [get]
func (h *CreditHandler) ListCustomerInvoices(c *gin.Context) {
	var q dto.CustomerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the query parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.creditService.ListCustomerInvoices(c.Request.Context(), &q)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Record payment
// @Description Apply a payment to a customer's credit records, oldest first
// @Tags Credits
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment request"
// @Success 200 {object} dto.RecordPaymentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /credits/payments [post]
func (h *CreditHandler) RecordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.paymentService.RecordPayment(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("failed to record payment",
			"customer_name", req.CustomerName,
			"error", err,
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
