package credit

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// PendingUpdate is a per-record reduction produced by the allocator.
type PendingUpdate struct {
	ID            string          `json:"id"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
}

// AllocationResult is the outcome of distributing one payment across a
// customer's open credit records. Records driven to zero within tolerance
// are marked for deletion instead of being updated to a near-zero balance.
type AllocationResult struct {
	Updates   []PendingUpdate `json:"updates"`
	DeleteIDs []string        `json:"delete_ids"`
	// Applied is the amount actually absorbed by the records. It equals
	// the payment amount minus any sub-tolerance remainder.
	Applied decimal.Decimal `json:"applied"`
}

// AllocatePayment applies a single payment against the customer's credit
// records in the order given, which must be created_at ascending so the
// oldest debt is settled first. It is pure: the input records are not
// mutated and nothing is persisted.
//
// Money is conserved: sum(pending before) - amount == sum(pending after)
// within tolerance, with deleted records counting as zero after.
//
// The whole payment is rejected, with nothing applied, when the amount is
// not positive or exceeds the total outstanding balance by more than the
// tolerance.
func AllocatePayment(records []*CreditRecord, amount decimal.Decimal) (*AllocationResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ierr.NewError("invalid payment amount").
			WithHint("Payment amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}

	totalPending := SumPending(records)
	if amount.GreaterThan(totalPending.Add(types.DecimalTolerance)) {
		return nil, ierr.NewError("payment exceeds pending balance").
			WithHintf("The payment (%s) cannot be greater than the total pending amount (%s)",
				types.FormatAmount(amount), types.FormatAmount(totalPending)).
			WithReportableDetails(map[string]any{
				"payment":       amount,
				"total_pending": totalPending,
			}).
			Mark(ierr.ErrValidation)
	}

	result := &AllocationResult{}
	remaining := amount

	for _, record := range records {
		if remaining.LessThanOrEqual(types.DecimalTolerance) {
			break
		}
		if record.Settled() {
			continue
		}

		applied := decimal.Min(remaining, record.PendingAmount)
		newPending := record.PendingAmount.Sub(applied)

		if newPending.LessThanOrEqual(types.DecimalTolerance) {
			result.DeleteIDs = append(result.DeleteIDs, record.ID)
		} else {
			result.Updates = append(result.Updates, PendingUpdate{
				ID:            record.ID,
				PendingAmount: newPending,
			})
		}

		remaining = remaining.Sub(applied)
		result.Applied = result.Applied.Add(applied)
	}

	return result, nil
}
