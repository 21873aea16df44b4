package credit

import (
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// CustomerSummary is one row of the aggregated credit list: all of a
// customer's open credit records folded into a single balance. It is
// derived on every read and never persisted.
type CustomerSummary struct {
	CustomerID    *string            `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	Total         decimal.Decimal    `json:"total"`
	PendingAmount decimal.Decimal    `json:"pending_amount"`
	Status        types.CreditStatus `json:"status"`
}

// SummarizeByCustomer groups raw credit records into one summary per
// customer identity. Records sharing a customer_id merge; records without
// one merge by customer_name. Sums are order-independent and the output
// follows first-occurrence order of each customer. A summary is pendiente
// when any constituent record is unsettled.
func SummarizeByCustomer(records []*CreditRecord) []*CustomerSummary {
	summaries := make([]*CustomerSummary, 0, len(records))
	index := make(map[string]*CustomerSummary, len(records))

	for _, record := range records {
		key := groupKey(record)
		summary, ok := index[key]
		if !ok {
			summary = &CustomerSummary{
				CustomerID:   record.CustomerID,
				CustomerName: record.CustomerName,
				Status:       types.CreditStatusPaid,
			}
			index[key] = summary
			summaries = append(summaries, summary)
		}

		summary.Total = summary.Total.Add(record.Total)
		summary.PendingAmount = summary.PendingAmount.Add(record.PendingAmount)
		if !record.Settled() {
			summary.Status = types.CreditStatusPending
		}
	}

	return summaries
}

func groupKey(record *CreditRecord) string {
	if record.CustomerID != nil {
		return "id:" + *record.CustomerID
	}
	return "name:" + record.CustomerName
}

// SumPending returns the total outstanding balance of a record set.
func SumPending(records []*CreditRecord) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.PendingAmount)
	}
	return total
}
