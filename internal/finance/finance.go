// Package finance holds the pure calculator math behind the simulation
// screens. Inputs and results are whole rupiah.
package finance

import "math"

// CalculatorPoints is the award for running any calculator.
const CalculatorPoints = 10

// BudgetSplit is the 50/30/20 division of a monthly income.
type BudgetSplit struct {
	Needs   int64
	Wants   int64
	Savings int64
}

// SplitBudget divides an income 50/30/20, rounding each part down.
func SplitBudget(income int64) BudgetSplit {
	if income < 0 {
		income = 0
	}
	return BudgetSplit{
		Needs:   income * 50 / 100,
		Wants:   income * 30 / 100,
		Savings: income * 20 / 100,
	}
}

// LoanResult is the outcome of a loan calculation: the fixed monthly
// installment, what is paid over the whole tenor, and the interest share.
type LoanResult struct {
	Payment  int64
	Total    int64
	Interest int64
}

// LoanAnnuity computes the installment for a principal repaid over the given
// months at a yearly nominal rate in percent. A zero rate divides the
// principal evenly; months below one count as one. Total is payment times
// months; interest is total minus principal.
func LoanAnnuity(principal int64, yearlyRatePct float64, months int) LoanResult {
	if principal <= 0 {
		return LoanResult{}
	}
	if months < 1 {
		months = 1
	}

	var payment int64
	if yearlyRatePct <= 0 {
		payment = int64(math.Round(float64(principal) / float64(months)))
	} else {
		i := yearlyRatePct / 100 / 12
		factor := math.Pow(1+i, float64(months))
		payment = int64(math.Round(float64(principal) * i * factor / (factor - 1)))
	}

	total := payment * int64(months)
	return LoanResult{Payment: payment, Total: total, Interest: total - principal}
}

// EmergencyFund returns the recommended reserve: the monthly expense times
// the coverage in months, clamped to 1 through 12.
func EmergencyFund(monthlyExpense int64, months int) int64 {
	if monthlyExpense < 0 {
		monthlyExpense = 0
	}
	if months < 1 {
		months = 1
	}
	if months > 12 {
		months = 12
	}
	return monthlyExpense * int64(months)
}
