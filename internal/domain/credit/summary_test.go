package credit

import (
	"math/rand"
	"testing"

	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(customerID *string, name string, total, pending float64) *CreditRecord {
	return &CreditRecord{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT),
		CustomerID:    customerID,
		CustomerName:  name,
		Total:         decimal.NewFromFloat(total),
		PendingAmount: decimal.NewFromFloat(pending),
	}
}

func TestSummarizeByCustomerMergesByID(t *testing.T) {
	// three raw records for the same registered client fold into one row
	records := []*CreditRecord{
		record(lo.ToPtr("clnt_1"), "Ana", 10, 0),
		record(lo.ToPtr("clnt_1"), "Ana", 20, 20),
		record(lo.ToPtr("clnt_1"), "Ana", 5, 5),
	}

	summaries := SummarizeByCustomer(records)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Total.Equal(decimal.NewFromInt(35)))
	assert.True(t, summaries[0].PendingAmount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, types.CreditStatusPending, summaries[0].Status)
}

func TestSummarizeByCustomerKeyFallsBackToName(t *testing.T) {
	records := []*CreditRecord{
		record(nil, "Pedro", 10, 10),
		record(nil, "Pedro", 15, 5),
		record(lo.ToPtr("clnt_9"), "Pedro", 30, 30),
	}

	// the walk-in "Pedro" and the registered client "Pedro" are distinct
	summaries := SummarizeByCustomer(records)
	require.Len(t, summaries, 2)
	assert.Nil(t, summaries[0].CustomerID)
	assert.True(t, summaries[0].Total.Equal(decimal.NewFromInt(25)))
	assert.True(t, summaries[1].Total.Equal(decimal.NewFromInt(30)))
}

func TestSummarizeByCustomerOrderIndependentSums(t *testing.T) {
	records := []*CreditRecord{
		record(lo.ToPtr("clnt_1"), "Ana", 10, 5),
		record(nil, "Pedro", 20, 20),
		record(lo.ToPtr("clnt_1"), "Ana", 30, 12.5),
		record(nil, "Maria", 7, 0),
		record(nil, "Pedro", 3, 1),
	}

	baseline := SummarizeByCustomer(records)
	byKey := make(map[string]*CustomerSummary)
	for _, s := range baseline {
		byKey[s.CustomerName+lo.FromPtr(s.CustomerID)] = s
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]*CreditRecord(nil), records...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		summaries := SummarizeByCustomer(shuffled)
		require.Len(t, summaries, len(baseline))
		for _, s := range summaries {
			expected := byKey[s.CustomerName+lo.FromPtr(s.CustomerID)]
			require.NotNil(t, expected)
			assert.True(t, s.Total.Equal(expected.Total))
			assert.True(t, s.PendingAmount.Equal(expected.PendingAmount))
			assert.Equal(t, expected.Status, s.Status)
		}
	}
}

func TestSummarizeByCustomerFirstOccurrenceOrder(t *testing.T) {
	records := []*CreditRecord{
		record(nil, "Pedro", 20, 20),
		record(lo.ToPtr("clnt_1"), "Ana", 10, 5),
		record(nil, "Pedro", 3, 1),
	}

	summaries := SummarizeByCustomer(records)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Pedro", summaries[0].CustomerName)
	assert.Equal(t, "Ana", summaries[1].CustomerName)
}

func TestSummarizeByCustomerStatus(t *testing.T) {
	// all records settled means the summary reads pagado
	summaries := SummarizeByCustomer([]*CreditRecord{
		record(nil, "Maria", 10, 0),
		record(nil, "Maria", 5, 0.005),
	})
	require.Len(t, summaries, 1)
	assert.Equal(t, types.CreditStatusPaid, summaries[0].Status)

	// one open record anywhere in the set flips it to pendiente
	summaries = SummarizeByCustomer([]*CreditRecord{
		record(nil, "Maria", 10, 0),
		record(nil, "Maria", 5, 5),
	})
	require.Len(t, summaries, 1)
	assert.Equal(t, types.CreditStatusPending, summaries[0].Status)
}

func TestSummarizeByCustomerEmpty(t *testing.T) {
	assert.Empty(t, SummarizeByCustomer(nil))
}
