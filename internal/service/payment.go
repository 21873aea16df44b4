package service

import (
	"context"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
)

// PaymentService applies customer payments against the credit ledger
type PaymentService interface {
	// RecordPayment distributes a payment across the customer's credit
	// records, oldest first. All resulting updates and deletions happen
	// in one store transaction; a failure leaves the ledger untouched.
	RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

func (s *paymentService) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records, err := s.CreditRepo.ListByCustomer(ctx, req.ToCustomerRef())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ierr.NewError("no credit records for customer").
			WithHintf("%s has no outstanding credit", req.CustomerName).
			Mark(ierr.ErrNotFound)
	}

	result, err := credit.AllocatePayment(records, req.Amount)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, update := range result.Updates {
			if err := s.CreditRepo.UpdatePending(ctx, update.ID, update.PendingAmount); err != nil {
				return err
			}
		}
		if len(result.DeleteIDs) == 0 {
			return nil
		}

		settled := recordsByID(records, result.DeleteIDs)
		if err := s.LineItemRepo.DeleteByInvoiceIDs(ctx, collectInvoiceIDs(settled)); err != nil {
			return err
		}
		return s.CreditRepo.DeleteByIDs(ctx, result.DeleteIDs)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("payment recorded",
		"customer_name", req.CustomerName,
		"amount", req.Amount,
		"applied", result.Applied,
		"updated", len(result.Updates),
		"settled", len(result.DeleteIDs),
	)

	return &dto.RecordPaymentResponse{
		Applied:          result.Applied,
		UpdatedRecords:   len(result.Updates),
		SettledRecords:   len(result.DeleteIDs),
		RemainingBalance: credit.SumPending(records).Sub(result.Applied),
	}, nil
}

func recordsByID(records []*credit.CreditRecord, ids []string) []*credit.CreditRecord {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	matched := make([]*credit.CreditRecord, 0, len(ids))
	for _, record := range records {
		if _, ok := wanted[record.ID]; ok {
			matched = append(matched, record)
		}
	}
	return matched
}
