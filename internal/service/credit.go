package service

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/samber/lo"
)

// CreditService manages the customer credit ledger
type CreditService interface {
	// ListCredits returns the ledger aggregated to one row per customer.
	// Settled records are cleaned up before the read so the list never
	// shows zero balances.
	ListCredits(ctx context.Context) (*dto.ListCreditsResponse, error)

	// CreateCredit registers a manual credit entry
	CreateCredit(ctx context.Context, req *dto.CreateCreditRequest) (*dto.CreditRecordResponse, error)

	// ListCustomerRecords returns one customer's raw credit records,
	// oldest first
	ListCustomerRecords(ctx context.Context, q *dto.CustomerQuery) ([]*dto.CreditRecordResponse, error)

	// ListCustomerInvoices returns the invoices behind one customer's
	// open credit records
	ListCustomerInvoices(ctx context.Context, q *dto.CustomerQuery) (*dto.ListInvoicesResponse, error)
}

type creditService struct {
	ServiceParams
}

func NewCreditService(params ServiceParams) CreditService {
	return &creditService{ServiceParams: params}
}

func (s *creditService) ListCredits(ctx context.Context) (*dto.ListCreditsResponse, error) {
	if err := cleanupSettledRecords(ctx, s.ServiceParams); err != nil {
		return nil, err
	}

	records, err := s.CreditRepo.ListForUser(ctx)
	if err != nil {
		return nil, err
	}

	summaries := credit.SummarizeByCustomer(records)
	items := lo.Map(summaries, func(summary *credit.CustomerSummary, _ int) *dto.CustomerCreditResponse {
		return dto.NewCustomerCreditResponse(summary)
	})

	return &dto.ListCreditsResponse{
		Items: items,
		Total: len(items),
	}, nil
}

func (s *creditService) CreateCredit(ctx context.Context, req *dto.CreateCreditRequest) (*dto.CreditRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToCreditRecord()
	record.BaseModel = types.GetDefaultBaseModel(ctx)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.CreditRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.Logger.Infow("credit record created",
		"credit_id", record.ID,
		"customer_name", record.CustomerName,
		"total", record.Total,
	)

	// an insert is also a chance to sweep records other flows settled
	if err := cleanupSettledRecords(ctx, s.ServiceParams); err != nil {
		return nil, err
	}

	return dto.NewCreditRecordResponse(record), nil
}

func (s *creditService) ListCustomerRecords(ctx context.Context, q *dto.CustomerQuery) ([]*dto.CreditRecordResponse, error) {
	records, err := s.CreditRepo.ListByCustomer(ctx, q.ToCustomerRef())
	if err != nil {
		return nil, err
	}

	return lo.Map(records, func(record *credit.CreditRecord, _ int) *dto.CreditRecordResponse {
		return dto.NewCreditRecordResponse(record)
	}), nil
}

func (s *creditService) ListCustomerInvoices(ctx context.Context, q *dto.CustomerQuery) (*dto.ListInvoicesResponse, error) {
	records, err := s.CreditRepo.ListByCustomer(ctx, q.ToCustomerRef())
	if err != nil {
		return nil, err
	}

	invoiceIDs := collectInvoiceIDs(records)
	invoices, err := s.InvoiceRepo.GetByIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		lineItems, err := s.LineItemRepo.ListByInvoice(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.NewInvoiceResponse(inv, lineItems))
	}

	return &dto.ListInvoicesResponse{
		Items: items,
		Total: len(items),
	}, nil
}

// cleanupSettledRecords removes credit records whose balance reached zero
// together with the line items of their invoices. Line items go first so a
// failure mid-sweep never leaves an orphaned item behind a deleted credit.
func cleanupSettledRecords(ctx context.Context, params ServiceParams) error {
	settled, err := params.CreditRepo.ListSettled(ctx)
	if err != nil {
		return err
	}
	if len(settled) == 0 {
		return nil
	}

	creditIDs := lo.Map(settled, func(record *credit.CreditRecord, _ int) string {
		return record.ID
	})
	invoiceIDs := collectInvoiceIDs(settled)

	params.Logger.Infow("cleaning up settled credit records",
		"credit_ids", creditIDs,
		"invoice_ids", invoiceIDs,
	)

	return params.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := params.LineItemRepo.DeleteByInvoiceIDs(ctx, invoiceIDs); err != nil {
			return err
		}
		return params.CreditRepo.DeleteByIDs(ctx, creditIDs)
	})
}

func collectInvoiceIDs(records []*credit.CreditRecord) []string {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		if record.InvoiceID != nil && *record.InvoiceID != "" {
			ids = append(ids, *record.InvoiceID)
		}
	}
	return lo.Uniq(ids)
}
