package service

import (
	"testing"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	"github.com/puntoventa/puntoventa/internal/domain/credit"
	"github.com/puntoventa/puntoventa/internal/domain/invoice"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/testutil"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CreditServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CreditService
}

func TestCreditService(t *testing.T) {
	suite.Run(t, new(CreditServiceSuite))
}

func (s *CreditServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCreditService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *CreditServiceSuite) seedRecord(id string, name string, total float64, pending float64, invoiceID *string) {
	record := &credit.CreditRecord{
		ID:            id,
		CustomerName:  name,
		InvoiceID:     invoiceID,
		Total:         decimal.NewFromFloat(total),
		PendingAmount: decimal.NewFromFloat(pending),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CreditRepo.Create(s.GetContext(), record))
}

func (s *CreditServiceSuite) TestListCreditsAggregatesByCustomer() {
	// three records for the same customer plus one for another
	s.seedRecord("cred_1", "Ana", 10, 10, nil)
	s.seedRecord("cred_2", "Ana", 20, 10, nil)
	s.seedRecord("cred_3", "Ana", 5, 5, nil)
	s.seedRecord("cred_4", "Pedro", 40, 40, nil)

	resp, err := s.service.ListCredits(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Total)

	byName := make(map[string]*dto.CustomerCreditResponse)
	for _, item := range resp.Items {
		byName[item.CustomerName] = item
	}
	s.True(byName["Ana"].Total.Equal(decimal.NewFromInt(35)))
	s.True(byName["Ana"].PendingAmount.Equal(decimal.NewFromInt(25)))
	s.Equal(types.CreditStatusPending, byName["Ana"].Status)
}

func (s *CreditServiceSuite) TestListCreditsCleansSettledFirst() {
	invoiceID := "inv_7"
	s.seedRecord("cred_1", "Ana", 30, 0.005, &invoiceID)
	s.seedRecord("cred_2", "Ana", 20, 0.02, nil)
	s.seedLineItem(invoiceID)

	resp, err := s.service.ListCredits(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Total)

	// 0.005 is settled within tolerance and swept with its line items;
	// 0.02 stays on the ledger
	s.True(resp.Items[0].PendingAmount.Equal(decimal.NewFromFloat(0.02)))

	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Ana"})
	s.NoError(err)
	s.Len(records, 1)
	s.Equal("cred_2", records[0].ID)

	store := s.GetStores().LineItemRepo.(*testutil.InMemoryLineItemStore)
	s.Equal(0, store.CountForInvoice(invoiceID))
}

func (s *CreditServiceSuite) TestRegisteredAndWalkInCustomersNeverMerge() {
	clientID := "clnt_1"
	record := &credit.CreditRecord{
		ID:            "cred_1",
		CustomerID:    &clientID,
		CustomerName:  "Ana",
		Total:         decimal.NewFromInt(10),
		PendingAmount: decimal.NewFromInt(10),
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CreditRepo.Create(s.GetContext(), record))
	s.seedRecord("cred_2", "Ana", 15, 15, nil)

	resp, err := s.service.ListCredits(s.GetContext())
	s.NoError(err)
	s.Equal(2, resp.Total)
}

func (s *CreditServiceSuite) TestCreateCredit() {
	resp, err := s.service.CreateCredit(s.GetContext(), &dto.CreateCreditRequest{
		CustomerName: "Maria",
		Products:     "harina, aceite",
		Total:        decimal.NewFromFloat(12.50),
	})
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.True(resp.PendingAmount.Equal(decimal.NewFromFloat(12.50)))
	s.Equal(types.CreditStatusPending, resp.Status)

	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Maria"})
	s.NoError(err)
	s.Len(records, 1)
}

func (s *CreditServiceSuite) TestCreateCreditRejectsMissingName() {
	_, err := s.service.CreateCredit(s.GetContext(), &dto.CreateCreditRequest{
		Total: decimal.NewFromInt(10),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CreditServiceSuite) TestCreateCreditRejectsZeroTotal() {
	_, err := s.service.CreateCredit(s.GetContext(), &dto.CreateCreditRequest{
		CustomerName: "Maria",
		Total:        decimal.Zero,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CreditServiceSuite) TestListCustomerRecords() {
	s.seedRecord("cred_1", "Ana", 10, 10, nil)
	s.seedRecord("cred_2", "Ana", 20, 20, nil)
	s.seedRecord("cred_3", "Pedro", 5, 5, nil)

	records, err := s.service.ListCustomerRecords(s.GetContext(), &dto.CustomerQuery{CustomerName: "Ana"})
	s.NoError(err)
	s.Len(records, 2)
}

func (s *CreditServiceSuite) seedLineItem(invoiceID string) {
	s.NoError(s.GetStores().LineItemRepo.CreateBulk(s.GetContext(), []*invoice.LineItem{{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
		InvoiceID:   invoiceID,
		ProductName: "Producto",
		Quantity:    decimal.NewFromInt(1),
		Price:       decimal.NewFromInt(5),
		Total:       decimal.NewFromInt(5),
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}}))
}
