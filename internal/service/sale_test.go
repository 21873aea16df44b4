package service

import (
	"testing"

	"github.com/puntoventa/puntoventa/internal/api/dto"
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/testutil"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SaleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SaleService
}

func TestSaleService(t *testing.T) {
	suite.Run(t, new(SaleServiceSuite))
}

func (s *SaleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSaleService(newTestServiceParams(&s.BaseServiceTestSuite))
}

func (s *SaleServiceSuite) saleRequest(paymentType types.PaymentType) *dto.ProcessSaleRequest {
	return &dto.ProcessSaleRequest{
		CustomerName: "Ana",
		PaymentType:  paymentType,
		Items: []dto.SaleItemRequest{
			{ProductName: "Harina", Quantity: decimal.NewFromInt(2), Price: decimal.NewFromFloat(1.50)},
			{ProductName: "Aceite", Quantity: decimal.NewFromInt(1), Price: decimal.NewFromFloat(4.00)},
		},
	}
}

func (s *SaleServiceSuite) TestCashSaleCreatesInvoiceWithTotals() {
	resp, err := s.service.ProcessSale(s.GetContext(), s.saleRequest(types.PaymentTypeCash))
	s.NoError(err)
	s.Nil(resp.CreditID)

	// subtotal 7.00, default tax 16% = 1.12
	s.True(resp.Invoice.Subtotal.Equal(decimal.NewFromFloat(7.00)))
	s.True(resp.Invoice.Tax.Equal(decimal.NewFromFloat(1.12)))
	s.True(resp.Invoice.Total.Equal(decimal.NewFromFloat(8.12)))
	s.Len(resp.Invoice.Items, 2)
	s.Contains(resp.Invoice.Number, "INV-")

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), resp.Invoice.ID)
	s.NoError(err)
	s.Equal(types.PaymentTypeCash, inv.PaymentType)

	// cash sales never touch the ledger
	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Ana"})
	s.NoError(err)
	s.Empty(records)
}

func (s *SaleServiceSuite) TestCreditSaleOpensCreditRecord() {
	resp, err := s.service.ProcessSale(s.GetContext(), s.saleRequest(types.PaymentTypeCredit))
	s.NoError(err)
	s.NotNil(resp.CreditID)

	records, err := s.GetStores().CreditRepo.ListByCustomer(s.GetContext(), types.CustomerRef{CustomerName: "Ana"})
	s.NoError(err)
	s.Len(records, 1)
	s.Equal(*resp.CreditID, records[0].ID)
	s.True(records[0].PendingAmount.Equal(resp.Invoice.Total))
	s.True(records[0].Total.Equal(resp.Invoice.Total))
	s.NotNil(records[0].InvoiceID)
	s.Equal(resp.Invoice.ID, *records[0].InvoiceID)
	s.Equal("Harina, Aceite", records[0].Products)
}

func (s *SaleServiceSuite) TestTaxRateOverride() {
	req := s.saleRequest(types.PaymentTypeCash)
	zero := decimal.Zero
	req.TaxRatePercent = &zero

	resp, err := s.service.ProcessSale(s.GetContext(), req)
	s.NoError(err)
	s.True(resp.Invoice.Tax.IsZero())
	s.True(resp.Invoice.Total.Equal(resp.Invoice.Subtotal))
}

func (s *SaleServiceSuite) TestRejectsEmptyItems() {
	_, err := s.service.ProcessSale(s.GetContext(), &dto.ProcessSaleRequest{
		CustomerName: "Ana",
		PaymentType:  types.PaymentTypeCash,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SaleServiceSuite) TestRejectsInvalidPaymentType() {
	req := s.saleRequest("tarjeta")
	_, err := s.service.ProcessSale(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SaleServiceSuite) TestRejectsNonPositiveQuantity() {
	req := s.saleRequest(types.PaymentTypeCash)
	req.Items[0].Quantity = decimal.Zero
	_, err := s.service.ProcessSale(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SaleServiceSuite) TestGetInvoiceWithItems() {
	created, err := s.service.ProcessSale(s.GetContext(), s.saleRequest(types.PaymentTypeCash))
	s.NoError(err)

	resp, err := s.service.GetInvoice(s.GetContext(), created.Invoice.ID)
	s.NoError(err)
	s.Equal(created.Invoice.ID, resp.ID)
	s.Len(resp.Items, 2)
}

func (s *SaleServiceSuite) TestGetInvoiceNotFound() {
	_, err := s.service.GetInvoice(s.GetContext(), "inv_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
