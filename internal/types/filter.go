package types

import "time"

// CustomerRef identifies a customer the way the credits table does: by
// client id when the sale was made against a registered client, otherwise
// by the free-form name typed at the register. Records with an id and
// records with only a name never merge.
type CustomerRef struct {
	CustomerID   *string `json:"customer_id,omitempty" form:"customer_id"`
	CustomerName string  `json:"customer_name" form:"customer_name"`
}

// Matches reports whether a record with the given identity belongs to this
// customer reference.
func (r CustomerRef) Matches(customerID *string, customerName string) bool {
	if r.CustomerID != nil {
		return customerID != nil && *customerID == *r.CustomerID
	}
	return customerID == nil && customerName == r.CustomerName
}

// TimeRangeFilter bounds a read-side aggregation to a window, both ends
// inclusive.
type TimeRangeFilter struct {
	Start time.Time
	End   time.Time
}

// MonthRange returns the calendar month window containing now.
func MonthRange(now time.Time) TimeRangeFilter {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return TimeRangeFilter{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Second),
	}
}

// DayRange returns the calendar day window containing now.
func DayRange(now time.Time) TimeRangeFilter {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return TimeRangeFilter{
		Start: start,
		End:   start.Add(24*time.Hour - time.Second),
	}
}
