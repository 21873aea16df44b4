package types

// CreditStatus is the settlement state of a credit record or a customer
// summary. It is a projection computed from the pending amount, never
// stored, so it cannot drift from the balance it describes.
type CreditStatus string

const (
	CreditStatusPending CreditStatus = "pendiente"
	CreditStatusPaid    CreditStatus = "pagado"
)

// PaymentType is how a sale was settled at the register. Credit sales open
// a credit record for the invoice total.
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "contado"
	PaymentTypeCredit PaymentType = "credito"
)

func (t PaymentType) Validate() bool {
	switch t {
	case PaymentTypeCash, PaymentTypeCredit:
		return true
	}
	return false
}
