package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/fincerdas/internal/finance"
)

func TestSplitBudget(t *testing.T) {
	split := finance.SplitBudget(5000000)
	assert.Equal(t, int64(2500000), split.Needs)
	assert.Equal(t, int64(1500000), split.Wants)
	assert.Equal(t, int64(1000000), split.Savings)

	assert.Equal(t, finance.BudgetSplit{}, finance.SplitBudget(-100))
}

func TestLoanAnnuity(t *testing.T) {
	// 12 million over 12 months at 12%/year: i = 1%/month.
	got := finance.LoanAnnuity(12000000, 12, 12)
	assert.Equal(t, int64(1066185), got.Payment)
	assert.Equal(t, int64(12794220), got.Total)
	assert.Equal(t, int64(794220), got.Interest)

	// Uneven division rounds to the nearest rupiah.
	assert.Equal(t, int64(3333333), finance.LoanAnnuity(10000000, 0, 3).Payment)

	assert.Equal(t, finance.LoanResult{}, finance.LoanAnnuity(0, 10, 12))
	assert.Equal(t, finance.LoanResult{}, finance.LoanAnnuity(-5, 10, 12))

	// Months below one count as one.
	assert.Equal(t, int64(500000), finance.LoanAnnuity(500000, 0, 0).Payment)
}

func TestLoanAnnuityZeroRatePaysNoInterest(t *testing.T) {
	got := finance.LoanAnnuity(12000000, 0, 12)

	assert.Equal(t, int64(1000000), got.Payment)
	assert.Equal(t, int64(12000000), got.Total)
	assert.Zero(t, got.Interest)
}

func TestEmergencyFund(t *testing.T) {
	assert.Equal(t, int64(15000000), finance.EmergencyFund(2500000, 6))

	// Coverage clamps to 1..12.
	assert.Equal(t, int64(2500000), finance.EmergencyFund(2500000, 0))
	assert.Equal(t, int64(30000000), finance.EmergencyFund(2500000, 48))

	assert.Zero(t, finance.EmergencyFund(-100, 6))
}
