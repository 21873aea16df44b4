package credit

import (
	"testing"
	"time"

	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(id string, pending float64, createdAt time.Time) *CreditRecord {
	p := decimal.NewFromFloat(pending)
	return &CreditRecord{
		ID:            id,
		CustomerName:  "Ana",
		Total:         p,
		PendingAmount: p,
		BaseModel: types.BaseModel{
			UserID:    types.DefaultUserID,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
}

func TestAllocatePaymentOldestFirst(t *testing.T) {
	now := time.Now().UTC()
	records := []*CreditRecord{
		testRecord("cred_1", 30, now.Add(-2*time.Hour)),
		testRecord("cred_2", 20, now.Add(-1*time.Hour)),
	}

	// a payment smaller than the oldest balance touches only that record
	result, err := AllocatePayment(records, decimal.NewFromInt(10))
	require.NoError(t, err)
	require.Len(t, result.Updates, 1)
	assert.Equal(t, "cred_1", result.Updates[0].ID)
	assert.True(t, result.Updates[0].PendingAmount.Equal(decimal.NewFromInt(20)))
	assert.Empty(t, result.DeleteIDs)
}

func TestAllocatePaymentAcrossRecords(t *testing.T) {
	// Ana owes $30 on the older record and $20 on the newer one. A $35
	// payment settles the first entirely and leaves $15 on the second.
	now := time.Now().UTC()
	records := []*CreditRecord{
		testRecord("cred_1", 30, now.Add(-2*time.Hour)),
		testRecord("cred_2", 20, now.Add(-1*time.Hour)),
	}

	result, err := AllocatePayment(records, decimal.NewFromInt(35))
	require.NoError(t, err)

	assert.Equal(t, []string{"cred_1"}, result.DeleteIDs)
	require.Len(t, result.Updates, 1)
	assert.Equal(t, "cred_2", result.Updates[0].ID)
	assert.True(t, result.Updates[0].PendingAmount.Equal(decimal.NewFromInt(15)))
	assert.True(t, result.Applied.Equal(decimal.NewFromInt(35)))
}

func TestAllocatePaymentConservation(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		name     string
		pendings []float64
		payment  float64
	}{
		{"partial on first", []float64{30, 20}, 12.5},
		{"exact first record", []float64{30, 20}, 30},
		{"spans three records", []float64{10, 15.75, 40}, 50},
		{"full settlement", []float64{10, 20, 5}, 35},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := make([]*CreditRecord, len(tc.pendings))
			for i, p := range tc.pendings {
				records[i] = testRecord(types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CREDIT), p, now.Add(time.Duration(i)*time.Minute))
			}
			before := SumPending(records)

			result, err := AllocatePayment(records, decimal.NewFromFloat(tc.payment))
			require.NoError(t, err)

			updated := make(map[string]decimal.Decimal, len(result.Updates))
			for _, u := range result.Updates {
				updated[u.ID] = u.PendingAmount
			}
			deleted := make(map[string]bool, len(result.DeleteIDs))
			for _, id := range result.DeleteIDs {
				deleted[id] = true
			}

			// deleted records contribute zero after; records the payment
			// never reached keep their original balance
			after := decimal.Zero
			for _, r := range records {
				if deleted[r.ID] {
					continue
				}
				if pending, ok := updated[r.ID]; ok {
					after = after.Add(pending)
					continue
				}
				after = after.Add(r.PendingAmount)
			}
			expected := before.Sub(decimal.NewFromFloat(tc.payment))
			assert.True(t, types.ApproxEqual(after, expected),
				"after=%s expected=%s", after, expected)
		})
	}
}

func TestAllocatePaymentRejectsOverpayment(t *testing.T) {
	now := time.Now().UTC()
	records := []*CreditRecord{
		testRecord("cred_1", 30, now.Add(-2*time.Hour)),
		testRecord("cred_2", 20, now.Add(-1*time.Hour)),
	}

	// one dollar above the outstanding total must be rejected whole
	result, err := AllocatePayment(records, decimal.NewFromInt(51))
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	// nothing was applied: the inputs are untouched
	assert.True(t, records[0].PendingAmount.Equal(decimal.NewFromInt(30)))
	assert.True(t, records[1].PendingAmount.Equal(decimal.NewFromInt(20)))
}

func TestAllocatePaymentWithinToleranceOfTotal(t *testing.T) {
	now := time.Now().UTC()
	records := []*CreditRecord{testRecord("cred_1", 50, now)}

	// overshoot within tolerance is accepted and settles the record
	result, err := AllocatePayment(records, decimal.NewFromFloat(50.005))
	require.NoError(t, err)
	assert.Equal(t, []string{"cred_1"}, result.DeleteIDs)
	assert.Empty(t, result.Updates)
}

func TestAllocatePaymentRejectsNonPositive(t *testing.T) {
	now := time.Now().UTC()
	records := []*CreditRecord{testRecord("cred_1", 50, now)}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		result, err := AllocatePayment(records, amount)
		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	}
}

func TestAllocatePaymentSkipsSettledRecords(t *testing.T) {
	now := time.Now().UTC()
	settled := testRecord("cred_0", 0.005, now.Add(-3*time.Hour))
	open := testRecord("cred_1", 20, now.Add(-2*time.Hour))
	records := []*CreditRecord{settled, open}

	result, err := AllocatePayment(records, decimal.NewFromInt(20))
	require.NoError(t, err)

	// the settled record is ignored, not deleted; cleanup owns it
	assert.Equal(t, []string{"cred_1"}, result.DeleteIDs)
	assert.Empty(t, result.Updates)
}

func TestAllocatePaymentNearZeroResultDeletes(t *testing.T) {
	now := time.Now().UTC()
	records := []*CreditRecord{testRecord("cred_1", 10, now)}

	// a residue below tolerance marks the record for deletion rather than
	// persisting a near-zero balance
	result, err := AllocatePayment(records, decimal.NewFromFloat(9.995))
	require.NoError(t, err)
	assert.Equal(t, []string{"cred_1"}, result.DeleteIDs)
	assert.Empty(t, result.Updates)
}
