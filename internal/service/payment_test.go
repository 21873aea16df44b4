package service

import (
	"testing"
	"time"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/testutil"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PaymentService
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPaymentService(newTestServiceParams(&s.BaseServiceTestSuite))
}

// seedCredit inserts a credit record with a controlled creation time so the
// oldest-first order is deterministic.
func (s *PaymentServiceSuite) seedCredit(id string, name string, total float64, age time.Duration) *credit.CreditRecord {
	amount := decimal.NewFromFloat(total)
	record := &credit.CreditRecord{
		ID:            id,
		CustomerName:  name,
		Total:         amount,
		PendingAmount: amount,
		BaseModel: types.BaseModel{
			UserID:    types.DefaultUserID,
			CreatedAt: s.GetNow().Add(-age),
			UpdatedAt: s.GetNow().Add(-age),
		},
	}
	s.NoError(s.GetStores().CreditRepo.Create(s.GetContext(), record))
	return record
}

func (s *PaymentServiceSuite) TestPartialPaymentSettlesOldestFirst() {
	// Ana owes 30 on the older record and 20 on the newer one
	s.seedCredit("cred_1", "Ana", 30, 48*time.Hour)
	s.seedCredit("cred_2", "Ana", 20, 24*time.Hour)

	resp, err := s.service.RecordPayment(s.GetContext(), &dto.RecordPaymentRequest{
		CustomerName: "Ana",
		Amount:       decimal.NewFromInt(35),
	})
	s.NoError(err)
	s.True(resp.Applied.Equal(decimal.NewFromInt(35)))
	s.Equal(1, resp.SettledRecords)
	s.Equal(1, resp.UpdatedRecords)
	s.True(resp.RemainingBalance.Equal(decimal.NewFromInt(15)))

	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Ana"})
	s.NoError(err)
	s.Len(records, 1)
	s.Equal("cred_2", records[0].ID)
	s.True(records[0].PendingAmount.Equal(decimal.NewFromInt(15)))
}

func (s *PaymentServiceSuite) TestFullPaymentClearsCustomer() {
	s.seedCredit("cred_1", "Pedro", 50, time.Hour)

	resp, err := s.service.RecordPayment(s.GetContext(), &dto.RecordPaymentRequest{
		CustomerName: "Pedro",
		Amount:       decimal.NewFromInt(50),
	})
	s.NoError(err)
	s.Equal(1, resp.SettledRecords)
	s.True(resp.RemainingBalance.IsZero())

	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Pedro"})
	s.NoError(err)
	s.Empty(records)
}

func (s *PaymentServiceSuite) TestOverPaymentRejectedAndStateUntouched() {
	s.seedCredit("cred_1", "Luisa", 30, 2*time.Hour)
	s.seedCredit("cred_2", "Luisa", 20, time.Hour)

	_, err := s.service.RecordPayment(s.GetContext(), &dto.RecordPaymentRequest{
		CustomerName: "Luisa",
		Amount:       decimal.NewFromInt(51),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Luisa"})
	s.NoError(err)
	s.Len(records, 2)
	s.True(records[0].PendingAmount.Equal(decimal.NewFromInt(30)))
	s.True(records[1].PendingAmount.Equal(decimal.NewFromInt(20)))
}

func (s *PaymentServiceSuite) TestNonPositiveAmountRejected() {
	s.seedCredit("cred_1", "Marta", 10, time.Hour)

	_, err := s.service.RecordPayment(s.GetContext(), &dto.RecordPaymentRequest{
		CustomerName: "Marta",
		Amount:       decimal.NewFromInt(-5),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestUnknownCustomerNotFound() {
	_, err := s.service.RecordPayment(s.GetContext(), &dto.RecordPaymentRequest{
		CustomerName: "Nadie",
		Amount:       decimal.NewFromInt(10),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestSettledRecordCascadesLineItems() {
	invoiceID := "inv_55"
	amount := decimal.NewFromInt(25)
	record := &credit.CreditRecord{
		ID:            "cred_9",
		CustomerName:  "Carlos",
		InvoiceID:     &invoiceID,
		Total:         amount,
		PendingAmount: amount,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CreditRepo.Create(s.GetContext(), record))
	s.seedLineItems(invoiceID, 2)

	_, err := s.service.RecordPayment(s.GetContext(), &dto.RecordPaymentRequest{
		CustomerName: "Carlos",
		Amount:       amount,
	})
	s.NoError(err)

	store := s.GetStores().LineItemRepo.(*testutil.InMemoryLineItemStore)
	s.Equal(0, store.CountForInvoice(invoiceID))
}

func (s *PaymentServiceSuite) seedLineItems(invoiceID string, n int) {
	items := make([]*invoice.LineItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &invoice.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
			InvoiceID:   invoiceID,
			ProductName: "Producto",
			Quantity:    decimal.NewFromInt(1),
			Price:       decimal.NewFromInt(5),
			Total:       decimal.NewFromInt(5),
			BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
		})
	}
	s.NoError(s.GetStores().LineItemRepo.CreateBulk(s.GetContext(), items))
}
