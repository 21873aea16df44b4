package service

import (
	"context"
	"strings"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SaleService processes sales at the register
type SaleService interface {
	// ProcessSale creates the invoice with its line items and, for credit
	// sales, opens a credit record for the invoice total. Everything
	// happens in one store transaction.
	ProcessSale(ctx context.Context, req *dto.ProcessSaleRequest) (*dto.ProcessSaleResponse, error)

	// GetInvoice returns one invoice with its line items
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)

	// ListInvoices returns the user's invoice history, newest first
	ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error)
}

type saleService struct {
	ServiceParams
}

func NewSaleService(params ServiceParams) SaleService {
	return &saleService{ServiceParams: params}
}

func (s *saleService) ProcessSale(ctx context.Context, req *dto.ProcessSaleRequest) (*dto.ProcessSaleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	taxRate := s.Config.Sales.DefaultTaxRatePercent
	if req.TaxRatePercent != nil {
		taxRate = *req.TaxRatePercent
	}

	inv := &invoice.Invoice{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		Number:       types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_INVOICE),
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		PaymentType:  req.PaymentType,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}

	items := make([]*invoice.LineItem, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, line := range req.Items {
		lineTotal := line.Price.Mul(line.Quantity).Round(2)
		subtotal = subtotal.Add(lineTotal)
		items = append(items, &invoice.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
			InvoiceID:   inv.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Unit:        line.Unit,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Total:       lineTotal,
			BaseModel:   types.GetDefaultBaseModel(ctx),
		})
	}

	inv.Subtotal = subtotal
	inv.Tax = subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	inv.Total = inv.Subtotal.Add(inv.Tax)
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	var creditRecord *credit.CreditRecord
	if req.PaymentType == types.PaymentTypeCredit {
		creditRecord = &credit.CreditRecord{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT),
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			InvoiceID:     &inv.ID,
			Products:      describeProducts(req.Items),
			Total:         inv.Total,
			PendingAmount: inv.Total,
			BaseModel:     types.GetDefaultBaseModel(ctx),
		}
		if err := creditRecord.Validate(); err != nil {
			return nil, err
		}
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		if err := s.LineItemRepo.CreateBulk(ctx, items); err != nil {
			return err
		}
		if creditRecord != nil {
			return s.CreditRepo.Create(ctx, creditRecord)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("sale processed",
		"invoice_id", inv.ID,
		"invoice_number", inv.Number,
		"payment_type", inv.PaymentType,
		"total", inv.Total,
	)

	resp := &dto.ProcessSaleResponse{
		Invoice: dto.NewInvoiceResponse(inv, items),
	}
	if creditRecord != nil {
		resp.CreditID = &creditRecord.ID
	}
	return resp, nil
}

func (s *saleService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.LineItemRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	return dto.NewInvoiceResponse(inv, items), nil
}

func (s *saleService) ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.ListForUser(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(invoices, func(inv *invoice.Invoice, _ int) *dto.InvoiceResponse {
		return dto.NewInvoiceResponse(inv, nil)
	})

	return &dto.ListInvoicesResponse{
		Items: items,
		Total: len(items),
	}, nil
}

// describeProducts builds the free-text product note stored on the credit
// record, the line shown on the ledger next to the debt.
func describeProducts(items []dto.SaleItemRequest) string {
	names := lo.Map(items, func(item dto.SaleItemRequest, _ int) string {
		return item.ProductName
	})
	return strings.Join(names, ", ")
}
