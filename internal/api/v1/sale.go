package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/puntoventa/puntoventa/internal/api/dto"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/logger"
	"github.com/puntoventa/puntoventa/internal/service"
)

type SaleHandler struct {
	saleService service.SaleService
	logger      *logger.Logger
}

func NewSaleHandler(saleService service.SaleService, logger *logger.Logger) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
		logger:      logger,
	}
}

// @Summary Process sale
// @Description Create an invoice with line items; credit sales open a credit record
// @Tags Sales
// @Accept json
// @Produce json
// @Param sale body dto.ProcessSaleRequest true "Sale request"
// @Success 201 {object} dto.ProcessSaleResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /sales [post]
func (h *SaleHandler) ProcessSale(c *gin.Context) {
	var req dto.ProcessSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Please check the request payload").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.saleService.ProcessSale(c.Request.Context(), &req)
	if err != nil {
		h.logger.Errorw("failed to process sale",
			"customer_name", req.CustomerName,
			"error", err,
		)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List invoices
// @Description Get the invoice history, newest first
// @Tags Sales
// @Produce json
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /invoices [get]
func (h *SaleHandler) ListInvoices(c *gin.Context) {
	resp, err := h.saleService.ListInvoices(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get invoice
// @Description Get one invoice with its line items
// @Tags Sales
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /invoices/{id} [get]
func (h *SaleHandler) GetInvoice(c *gin.Context) {
	resp, err := h.saleService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
